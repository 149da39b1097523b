package blueprint

import (
	"bytes"
	"testing"
	"time"

	"github.com/fogleman/gg"

	"github.com/anchorlayer/anchorage/pkg/layout"
)

func newTestEditor(t *testing.T) (*Editor, *layout.Graph, *testClock) {
	t.Helper()
	g := layout.New(400, 300)
	clock := newTestClock()
	e := NewEditor(g, WithClock(clock.now), WithStateModel(&recordingStateModel{}))
	return e, g, clock
}

func TestEditorSelect(t *testing.T) {
	e, g, _ := newTestEditor(t)
	a, _ := g.AddWidget("a", layout.Rect{X: 10, Y: 10, Width: 100, Height: 50})
	b, _ := g.AddWidget("b", layout.Rect{X: 150, Y: 10, Width: 100, Height: 50})

	e.Select(a)
	if e.SelectedWidget() != a {
		t.Fatal("SelectedWidget() != a after Select(a)")
	}
	if !e.Decorator(a).IsSelected() {
		t.Error("a's decorator not selected")
	}

	e.Select(b)
	if e.Decorator(a).IsSelected() {
		t.Error("a's decorator still selected after Select(b)")
	}
	if !e.Decorator(b).IsSelected() {
		t.Error("b's decorator not selected")
	}

	e.Select(nil)
	if e.SelectedWidget() != nil {
		t.Error("SelectedWidget() != nil after Select(nil)")
	}
	if e.Decorator(b).IsSelected() {
		t.Error("b's decorator still selected after clearing")
	}
}

func TestEditorClickSelects(t *testing.T) {
	e, g, _ := newTestEditor(t)
	a, _ := g.AddWidget("a", layout.Rect{X: 10, Y: 10, Width: 100, Height: 50})

	vt := NewViewTransform(1, 0, 0)
	if got := e.Click(50, 30, vt); got != a {
		t.Errorf("Click inside a = %v, want a", got)
	}
	if got := e.Click(390, 290, vt); got != nil {
		t.Errorf("Click on empty canvas = %v, want nil", got)
	}
}

func TestEditorClickHitsAction(t *testing.T) {
	e, g, _ := newTestEditor(t)
	a, _ := g.AddWidget("a", layout.Rect{X: 10, Y: 10, Width: 100, Height: 50})
	b, _ := g.AddWidget("b", layout.Rect{X: 150, Y: 10, Width: 100, Height: 50})
	mustConnect(t, a, layout.AnchorRight, b.Anchor(layout.AnchorLeft))

	vt := NewViewTransform(1, 0, 0)
	e.Select(a)

	// Paint once so the action buttons get their bounds.
	dc := gg.NewContext(400, 300)
	e.Paint(dc, vt, Config{})

	// First button sits below the widget's bottom-left corner.
	x := vt.X(10) + actionSize/2
	y := vt.Y(10) + vt.Dim(50) + anchorGap + 4 + actionSize/2
	if got := e.Click(x, y, vt); got != a {
		t.Errorf("Click on an action changed the selection to %v", got)
	}
}

func TestEditorHoverHighlights(t *testing.T) {
	e, g, _ := newTestEditor(t)
	a, _ := g.AddWidget("a", layout.Rect{X: 10, Y: 10, Width: 100, Height: 50})

	vt := NewViewTransform(1, 0, 0)
	if got := e.HoverAt(50, 30, vt); got != a {
		t.Fatalf("HoverAt inside a = %v, want a", got)
	}
	if e.Decorator(a).Look() != LookHighlighted {
		t.Errorf("hovered look = %v, want highlighted", e.Decorator(a).Look())
	}

	if got := e.HoverAt(390, 290, vt); got != nil {
		t.Fatalf("HoverAt on empty canvas = %v, want nil", got)
	}
	if e.Decorator(a).Look() != LookNormal {
		t.Errorf("look after hover left = %v, want normal", e.Decorator(a).Look())
	}
}

func TestEditorHoverKeepsSelectedLook(t *testing.T) {
	e, g, _ := newTestEditor(t)
	a, _ := g.AddWidget("a", layout.Rect{X: 10, Y: 10, Width: 100, Height: 50})

	vt := NewViewTransform(1, 0, 0)
	e.Select(a)
	e.HoverAt(50, 30, vt)
	if e.Decorator(a).Look() != LookSelected {
		t.Errorf("hovering the selected widget changed its look to %v", e.Decorator(a).Look())
	}
	e.HoverAt(390, 290, vt)
	if e.Decorator(a).Look() != LookSelected {
		t.Errorf("leaving the selected widget changed its look to %v", e.Decorator(a).Look())
	}
}

func TestEditorPaintUnselectedPolicies(t *testing.T) {
	e, g, clock := newTestEditor(t)
	a, _ := g.AddWidget("a", layout.Rect{X: 10, Y: 10, Width: 100, Height: 50})
	b, _ := g.AddWidget("b", layout.Rect{X: 150, Y: 10, Width: 100, Height: 50})
	mustConnect(t, a, layout.AnchorRight, b.Anchor(layout.AnchorLeft))

	e.Select(a)
	dc := gg.NewContext(400, 300)
	vt := NewViewTransform(1, 0, 0)
	e.Paint(dc, vt, Config{})

	// b receives the landing flag for a's connection onto its left side.
	want := NewDisplaySet(DisplayNone, DisplayLeft)
	if got := e.Decorator(b).Policy(); got != want {
		t.Errorf("b's policy = %v, want %v", got, want)
	}

	// The frame settles once every animation completes.
	clock.advance(3 * time.Second)
	if e.Paint(dc, vt, Config{}) {
		t.Error("Paint() = true after all animations settled")
	}
}

func TestEditorRenderPNG(t *testing.T) {
	e, g, _ := newTestEditor(t)
	if _, err := g.AddWidget("a", layout.Rect{X: 10, Y: 10, Width: 100, Height: 50}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := e.RenderPNG(&buf, 1, Config{}); err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	header := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(buf.Bytes(), header) {
		t.Error("RenderPNG() output is not a PNG")
	}
}
