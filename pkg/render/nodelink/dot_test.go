package nodelink

import (
	"strings"
	"testing"

	"github.com/anchorlayer/anchorage/pkg/layout"
)

func TestToDOT_Basic(t *testing.T) {
	g := layout.New(800, 600)
	a, _ := g.AddWidget("a", layout.Rect{Width: 100, Height: 50})
	b, _ := g.AddWidget("b", layout.Rect{X: 200, Width: 100, Height: 50})
	if err := a.Connect(layout.AnchorRight, b.Anchor(layout.AnchorLeft), layout.CreatorUser); err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, "digraph constraints") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `"a"`) {
		t.Error("ToDOT() output missing widget a")
	}
	if !strings.Contains(dot, `"a" -> "b"`) {
		t.Error("ToDOT() output missing connection edge")
	}
	if !strings.Contains(dot, "right→left") {
		t.Error("ToDOT() edge missing its anchor pair label")
	}
}

func TestToDOT_SoftConnection(t *testing.T) {
	g := layout.New(800, 600)
	a, _ := g.AddWidget("a", layout.Rect{Width: 100, Height: 50})
	if err := a.Connect(layout.AnchorLeft, g.Root().Anchor(layout.AnchorLeft), layout.CreatorAuto); err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, "style=dashed") {
		t.Error("ToDOT() soft connection missing dashed style")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	g := layout.New(800, 600)
	w, _ := g.AddWidget("button", layout.Rect{X: 10, Y: 20, Width: 120, Height: 40})
	w.SetVisibility(layout.Invisible)

	dot := ToDOT(g, Options{Detailed: true})
	if !strings.Contains(dot, "10,20 120x40") {
		t.Error("ToDOT() detailed output missing frame geometry")
	}
	if !strings.Contains(dot, "invisible") {
		t.Error("ToDOT() detailed output missing visibility")
	}
}

func TestToDOT_Container(t *testing.T) {
	g := layout.New(800, 600)
	if _, err := g.AddContainer("table", layout.Rect{Width: 300, Height: 300}, true); err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, "peripheries=2") {
		t.Error("ToDOT() container missing doubled outline")
	}
	if !strings.Contains(dot, "lightblue") {
		t.Error("ToDOT() root missing fill color")
	}
}

func TestFmtLabel_Simple(t *testing.T) {
	g := layout.New(800, 600)
	w, _ := g.AddWidget("title", layout.Rect{Width: 100, Height: 50})
	if got := fmtLabel(w, false); got != "title" {
		t.Errorf("fmtLabel() simple mode = %q, want %q", got, "title")
	}
}
