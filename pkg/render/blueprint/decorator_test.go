package blueprint

import (
	"testing"
	"time"

	"github.com/fogleman/gg"

	"github.com/anchorlayer/anchorage/pkg/layout"
)

func TestDecoratorSelection(t *testing.T) {
	g := layout.New(1000, 800)
	w, _ := g.AddWidget("a", layout.Rect{X: 100, Y: 100, Width: 200, Height: 50})
	w.SetBaselineDistance(20)

	clock := newTestClock()
	d := NewDecorator(w, BlueprintPalette(), nil, clock.now)

	d.SetSelected(true)
	if d.Look() != LookSelected {
		t.Errorf("look after select = %v, want selected", d.Look())
	}
	if !d.ActionsVisible() {
		t.Error("actions hidden right after selection")
	}
	if d.ShowBaseline() {
		t.Error("baseline reveal done immediately after selection")
	}
	if !d.IsAnimating() {
		t.Error("IsAnimating() = false right after selection")
	}

	// Baseline reveal: 1s delay plus 1s ramp.
	clock.advance(2100 * time.Millisecond)
	if !d.ShowBaseline() {
		t.Error("baseline reveal not done after delay plus duration")
	}

	d.SetSelected(false)
	if d.Look() != LookNormal {
		t.Errorf("look after deselect = %v, want normal", d.Look())
	}
	if d.ShowBaseline() {
		t.Error("baseline reveal survived deselection")
	}
}

func TestDecoratorHideActionsTimeout(t *testing.T) {
	g := layout.New(1000, 800)
	w, _ := g.AddWidget("a", layout.Rect{X: 10, Y: 10, Width: 50, Height: 20})

	clock := newTestClock()
	d := NewDecorator(w, BlueprintPalette(), nil, clock.now)
	d.SetSelected(true)
	d.SetShowResizeHandles(true)
	d.Hover(true)
	d.Hover(false)

	dc := gg.NewContext(200, 200)
	vt := NewViewTransform(1, 0, 0)

	d.Paint(vt, dc, Config{})
	if !d.ActionsVisible() {
		t.Fatal("actions hidden before the timeout")
	}

	clock.advance(actionsHideTimeout + time.Millisecond)
	d.Paint(vt, dc, Config{})
	if d.ActionsVisible() {
		t.Error("actions still visible after the hide timeout")
	}

	// Another hover re-arms the timeout and shows the actions again.
	d.Hover(true)
	d.Hover(false)
	d.Paint(vt, dc, Config{})
	if !d.ActionsVisible() {
		t.Error("actions did not reappear after a new hover")
	}
}

func TestDecoratorPaintSelectedPolicy(t *testing.T) {
	g := layout.New(1000, 800)
	w, _ := g.AddWidget("a", layout.Rect{X: 10, Y: 10, Width: 50, Height: 20})

	clock := newTestClock()
	d := NewDecorator(w, BlueprintPalette(), nil, clock.now)
	d.SetSelected(true)
	d.SetShowResizeHandles(true)

	dc := gg.NewContext(200, 200)
	vt := NewViewTransform(1, 0, 0)
	d.Paint(vt, dc, Config{})

	if want := NewDisplaySet(DisplayAll, DisplaySelected); d.Policy() != want {
		t.Errorf("policy after paint = %v, want %v", d.Policy(), want)
	}

	d.SetShowResizeHandles(false)
	d.Paint(vt, dc, Config{})
	if want := NewDisplaySet(DisplayConnected); d.Policy() != want {
		t.Errorf("policy without handles = %v, want %v", d.Policy(), want)
	}
}

func TestDecoratorPaintSettles(t *testing.T) {
	g := layout.New(1000, 800)
	w, _ := g.AddWidget("a", layout.Rect{X: 10, Y: 10, Width: 50, Height: 20})
	w.SetBaselineDistance(8)

	clock := newTestClock()
	d := NewDecorator(w, BlueprintPalette(), nil, clock.now)
	d.SetSelected(true)
	d.SetShowResizeHandles(true)

	dc := gg.NewContext(200, 200)
	vt := NewViewTransform(1, 0, 0)

	if !d.Paint(vt, dc, Config{}) {
		t.Fatal("Paint() = false right after selection, want animating")
	}

	// All reveals and fades complete well within three seconds.
	clock.advance(3 * time.Second)
	if d.Paint(vt, dc, Config{}) {
		t.Error("Paint() = true after all animations settled")
	}
}

func TestDecoratorActionAt(t *testing.T) {
	g := layout.New(1000, 800)
	w, _ := g.AddWidget("a", layout.Rect{X: 10, Y: 10, Width: 100, Height: 20})
	b, _ := g.AddWidget("b", layout.Rect{X: 200, Y: 10, Width: 50, Height: 20})
	mustConnect(t, w, layout.AnchorRight, b.Anchor(layout.AnchorLeft))

	clock := newTestClock()
	d := NewDecorator(w, BlueprintPalette(), nil, clock.now)
	d.SetSelected(true)
	d.SetShowResizeHandles(true)

	dc := gg.NewContext(400, 200)
	vt := NewViewTransform(1, 0, 0)
	d.Paint(vt, dc, Config{})

	// The first visible action is laid out at the widget's left edge
	// below its bottom.
	x := vt.X(10) + actionSize/2
	y := vt.Y(10) + vt.Dim(20) + anchorGap + 4 + actionSize/2
	action := d.ActionAt(x, y)
	if action == nil {
		t.Fatal("ActionAt() on a painted button = nil")
	}
	if _, ok := action.(*lockAction); !ok {
		t.Errorf("ActionAt() = %T, want *lockAction", action)
	}

	if got := d.ActionAt(0, 0); got != nil {
		t.Errorf("ActionAt(0,0) = %T, want nil", got)
	}
}
