package blueprint

import (
	"testing"

	"github.com/anchorlayer/anchorage/pkg/layout"
)

type recordingStateModel struct {
	saves int
}

func (m *recordingStateModel) Save(*Decorator) { m.saves++ }

func newTestDecorator(t *testing.T, w *layout.Widget) (*Decorator, *recordingStateModel) {
	t.Helper()
	clock := newTestClock()
	d := NewDecorator(w, BlueprintPalette(), nil, clock.now)
	state := &recordingStateModel{}
	d.SetStateModel(state)
	return d, state
}

func TestDeleteConnectionsAction(t *testing.T) {
	g := layout.New(1000, 800)
	w, _ := g.AddWidget("a", layout.Rect{Width: 100, Height: 50})
	b, _ := g.AddWidget("b", layout.Rect{X: 200, Width: 100, Height: 50})

	d, state := newTestDecorator(t, w)
	var action Action
	for _, a := range d.Actions() {
		if _, ok := a.(*deleteConnectionsAction); ok {
			action = a
		}
	}
	if action == nil {
		t.Fatal("decorator has no delete connections action")
	}

	action.Update()
	if action.IsVisible() {
		t.Error("IsVisible() = true with no connections")
	}

	mustConnect(t, w, layout.AnchorRight, b.Anchor(layout.AnchorLeft))
	action.Update()
	if !action.IsVisible() {
		t.Error("IsVisible() = false with a connection")
	}

	if !action.Click() {
		t.Error("Click() = false, want true")
	}
	if w.HasConnections() {
		t.Error("widget still has connections after Click()")
	}
	if state.saves != 1 {
		t.Errorf("saves = %d, want 1", state.saves)
	}

	// A click on an already empty widget still reports a change.
	if !action.Click() {
		t.Error("Click() on empty widget = false, want true")
	}
}

func TestLockAction(t *testing.T) {
	g := layout.New(1000, 800)
	w, _ := g.AddWidget("a", layout.Rect{Width: 100, Height: 50})
	b, _ := g.AddWidget("b", layout.Rect{X: 200, Width: 100, Height: 50})

	d, state := newTestDecorator(t, w)
	var action *lockAction
	for _, a := range d.Actions() {
		if la, ok := a.(*lockAction); ok {
			action = la
		}
	}
	if action == nil {
		t.Fatal("decorator has no lock action")
	}

	action.Update()
	if action.IsVisible() {
		t.Error("IsVisible() = true with no connections")
	}

	// Two soft connections, one user connection: auto wins the majority.
	mustConnectSoft(t, w, layout.AnchorLeft, g.Root().Anchor(layout.AnchorLeft))
	mustConnectSoft(t, w, layout.AnchorTop, g.Root().Anchor(layout.AnchorTop))
	mustConnect(t, w, layout.AnchorRight, b.Anchor(layout.AnchorLeft))
	action.Update()
	if !action.IsVisible() {
		t.Error("IsVisible() = false with connections")
	}
	if action.creator != layout.CreatorAuto {
		t.Errorf("majority creator = %v, want auto", action.creator)
	}

	// Clicking locks: every connection becomes user-authored.
	if !action.Click() {
		t.Error("Click() = false, want true")
	}
	for _, anchor := range w.Anchors() {
		if anchor.IsConnected() && anchor.Creator() != layout.CreatorUser {
			t.Errorf("anchor %s creator = %v after lock, want user", anchor.Type(), anchor.Creator())
		}
	}
	if state.saves != 1 {
		t.Errorf("saves = %d, want 1", state.saves)
	}
	if !d.IsAnimating() {
		t.Error("IsAnimating() = false, want locking animations running")
	}

	// And back: with all connections user-authored, clicking unlocks.
	action.Update()
	if action.creator != layout.CreatorUser {
		t.Errorf("creator after lock = %v, want user", action.creator)
	}
	action.Click()
	for _, anchor := range w.Anchors() {
		if anchor.IsConnected() && anchor.Creator() != layout.CreatorAuto {
			t.Errorf("anchor %s creator = %v after unlock, want auto", anchor.Type(), anchor.Creator())
		}
	}
}

func TestToggleChainStyleAction(t *testing.T) {
	g := layout.New(1000, 800)
	a, _ := g.AddWidget("a", layout.Rect{Width: 100, Height: 50})
	b, _ := g.AddWidget("b", layout.Rect{X: 200, Width: 100, Height: 50})

	d, state := newTestDecorator(t, b)
	var action Action
	for _, act := range d.Actions() {
		if _, ok := act.(*toggleChainStyleAction); ok {
			action = act
		}
	}
	if action == nil {
		t.Fatal("decorator has no toggle chain style action")
	}

	action.Update()
	if action.IsVisible() {
		t.Error("IsVisible() = true outside any chain")
	}

	mustConnect(t, a, layout.AnchorLeft, g.Root().Anchor(layout.AnchorLeft))
	mustConnect(t, a, layout.AnchorRight, b.Anchor(layout.AnchorLeft))
	mustConnect(t, b, layout.AnchorLeft, a.Anchor(layout.AnchorRight))
	action.Update()
	if !action.IsVisible() {
		t.Error("IsVisible() = false inside a chain")
	}

	// Clicking from the tail mutates the head's style.
	if !action.Click() {
		t.Error("Click() = false, want true")
	}
	if got := a.HorizontalChainStyle(); got != layout.ChainSpreadInside {
		t.Errorf("head style after toggle = %v, want spread_inside", got)
	}
	if b.HorizontalChainStyle() != layout.ChainSpread {
		t.Error("toggle mutated the tail's style instead of the head's")
	}
	if state.saves != 1 {
		t.Errorf("saves = %d, want 1", state.saves)
	}
}

func mustConnectSoft(t *testing.T, w *layout.Widget, at layout.AnchorType, target *layout.Anchor) {
	t.Helper()
	if err := w.Connect(at, target, layout.CreatorAuto); err != nil {
		t.Fatalf("Connect(%s): %v", at, err)
	}
}
