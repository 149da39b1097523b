package layout

import "testing"

// buildHorizontalChain creates root ← a ↔ b ↔ c with the head (a)
// anchored to the parent container, the standard chain topology.
func buildHorizontalChain(t *testing.T) (g *Graph, a, b, c *Widget) {
	t.Helper()
	g = New(1000, 800)
	a, _ = g.AddWidget("a", Rect{X: 0, Width: 100, Height: 50})
	b, _ = g.AddWidget("b", Rect{X: 200, Width: 100, Height: 50})
	c, _ = g.AddWidget("c", Rect{X: 400, Width: 100, Height: 50})

	mustConnect(t, a, AnchorLeft, g.Root().Anchor(AnchorLeft))
	mustConnect(t, a, AnchorRight, b.Anchor(AnchorLeft))
	mustConnect(t, b, AnchorLeft, a.Anchor(AnchorRight))
	mustConnect(t, b, AnchorRight, c.Anchor(AnchorLeft))
	mustConnect(t, c, AnchorLeft, b.Anchor(AnchorRight))
	mustConnect(t, c, AnchorRight, g.Root().Anchor(AnchorRight))
	return g, a, b, c
}

func mustConnect(t *testing.T, w *Widget, at AnchorType, target *Anchor) {
	t.Helper()
	if err := w.Connect(at, target, CreatorUser); err != nil {
		t.Fatalf("Connect(%s): %v", at, err)
	}
}

func TestChainHead(t *testing.T) {
	_, a, b, c := buildHorizontalChain(t)

	if got := ChainHead(c, Horizontal); got != a {
		t.Errorf("ChainHead(c) = %v, want a", got.Name())
	}
	if got := ChainHead(b, Horizontal); got != a {
		t.Errorf("ChainHead(b) = %v, want a", got.Name())
	}
	if got := ChainHead(a, Horizontal); got != a {
		t.Errorf("ChainHead(a) = %v, want a", got.Name())
	}
}

func TestChainHead_Vertical(t *testing.T) {
	g := New(1000, 800)
	a, _ := g.AddWidget("a", Rect{Y: 0, Width: 100, Height: 50})
	b, _ := g.AddWidget("b", Rect{Y: 100, Width: 100, Height: 50})

	mustConnect(t, a, AnchorTop, g.Root().Anchor(AnchorTop))
	mustConnect(t, a, AnchorBottom, b.Anchor(AnchorTop))
	mustConnect(t, b, AnchorTop, a.Anchor(AnchorBottom))

	if got := ChainHead(b, Vertical); got != a {
		t.Errorf("ChainHead(b, Vertical) = %v, want a", got.Name())
	}
}

func TestChainHead_BrokenBackLink(t *testing.T) {
	g := New(1000, 800)
	a, _ := g.AddWidget("a", Rect{Width: 100, Height: 50})
	b, _ := g.AddWidget("b", Rect{X: 200, Width: 100, Height: 50})

	// b points left at a, but a's right anchor does not point back:
	// the chain is inconsistent, so b terminates the walk.
	mustConnect(t, b, AnchorLeft, a.Anchor(AnchorRight))

	if got := ChainHead(b, Horizontal); got != b {
		t.Errorf("ChainHead(b) = %v, want b on broken chain", got.Name())
	}
}

func TestChainHead_UnconnectedWidget(t *testing.T) {
	g := New(1000, 800)
	w, _ := g.AddWidget("lone", Rect{Width: 100, Height: 50})
	if got := ChainHead(w, Horizontal); got != w {
		t.Errorf("ChainHead(lone) = %v, want the widget itself", got.Name())
	}
}

func TestChainHead_CyclicChainTerminates(t *testing.T) {
	g := New(1000, 800)
	a, _ := g.AddWidget("a", Rect{Width: 100, Height: 50})
	b, _ := g.AddWidget("b", Rect{X: 200, Width: 100, Height: 50})

	// A two-widget loop that never reaches the parent. The walk must
	// terminate instead of cycling forever.
	mustConnect(t, a, AnchorLeft, b.Anchor(AnchorRight))
	mustConnect(t, b, AnchorRight, a.Anchor(AnchorLeft))
	mustConnect(t, b, AnchorLeft, a.Anchor(AnchorRight))
	mustConnect(t, a, AnchorRight, b.Anchor(AnchorLeft))

	if got := ChainHead(a, Horizontal); got == nil {
		t.Fatal("ChainHead() on cyclic chain returned nil")
	}
}

func TestCycleChainStyle(t *testing.T) {
	_, a, _, c := buildHorizontalChain(t)

	if a.HorizontalChainStyle() != ChainSpread {
		t.Fatalf("default chain style = %v, want spread", a.HorizontalChainStyle())
	}

	// Toggling from any member mutates the head. Three cycles return to
	// the original style.
	want := []ChainStyle{ChainSpreadInside, ChainPacked, ChainSpread}
	for i, style := range want {
		head := CycleChainStyle(c, Horizontal)
		if head != a {
			t.Fatalf("cycle %d: head = %v, want a", i, head.Name())
		}
		if a.HorizontalChainStyle() != style {
			t.Errorf("cycle %d: style = %v, want %v", i, a.HorizontalChainStyle(), style)
		}
	}
}
