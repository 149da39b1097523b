package scene

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/anchorlayer/anchorage/pkg/layout"
)

func buildGraph(t *testing.T) *layout.Graph {
	t.Helper()
	g := layout.New(800, 600)
	a, err := g.AddWidget("title", layout.Rect{X: 20, Y: 20, Width: 200, Height: 40})
	if err != nil {
		t.Fatal(err)
	}
	a.SetBaselineDistance(30)
	b, err := g.AddWidget("button", layout.Rect{X: 20, Y: 100, Width: 120, Height: 40})
	if err != nil {
		t.Fatal(err)
	}
	b.SetHorizontalBias(0.25)
	b.SetVisibility(layout.Invisible)
	b.SetHorizontalChainStyle(layout.ChainPacked)
	if err := a.Connect(layout.AnchorLeft, g.Root().Anchor(layout.AnchorLeft), layout.CreatorUser); err != nil {
		t.Fatal(err)
	}
	if err := b.Connect(layout.AnchorTop, a.Anchor(layout.AnchorBottom), layout.CreatorAuto); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestRoundTrip(t *testing.T) {
	g := buildGraph(t)
	s := FromGraph(g)

	if s.Width != 800 || s.Height != 600 {
		t.Errorf("scene size = %dx%d, want 800x600", s.Width, s.Height)
	}
	if len(s.Widgets) != 2 {
		t.Fatalf("len(Widgets) = %d, want 2", len(s.Widgets))
	}
	if len(s.Connections) != 2 {
		t.Fatalf("len(Connections) = %d, want 2", len(s.Connections))
	}

	g2, err := ToGraph(s)
	if err != nil {
		t.Fatalf("ToGraph() error: %v", err)
	}

	// Re-export must produce the identical document.
	s2 := FromGraph(g2)
	if !reflect.DeepEqual(s, s2) {
		t.Errorf("round trip diverged:\n got %+v\nwant %+v", s2, s)
	}

	b, _ := g2.Widget("button")
	if b.Visibility() != layout.Invisible {
		t.Errorf("button visibility = %v, want invisible", b.Visibility())
	}
	if b.HorizontalBias() != 0.25 {
		t.Errorf("button bias = %v, want 0.25", b.HorizontalBias())
	}
	if b.HorizontalChainStyle() != layout.ChainPacked {
		t.Errorf("button chain style = %v, want packed", b.HorizontalChainStyle())
	}
	if b.Anchor(layout.AnchorTop).Creator() != layout.CreatorAuto {
		t.Error("soft connection lost its creator tag")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	s := FromGraph(buildGraph(t))
	s.ID = NewID()
	s.Name = "login screen"

	var buf bytes.Buffer
	if err := WriteJSON(s, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if !reflect.DeepEqual(s, got) {
		t.Errorf("JSON round trip diverged:\n got %+v\nwant %+v", got, s)
	}
}

func TestToGraph_Containers(t *testing.T) {
	s := Scene{
		Width: 800, Height: 600,
		Widgets: []Widget{
			{Name: "table", X: 10, Y: 10, Width: 300, Height: 300, Container: true, HandlesInternal: true},
			{Name: "cell", Parent: "table", X: 20, Y: 20, Width: 50, Height: 50},
		},
	}
	g, err := ToGraph(s)
	if err != nil {
		t.Fatalf("ToGraph() error: %v", err)
	}
	table, _ := g.Widget("table")
	if !table.HandlesInternalConstraints() {
		t.Error("table does not handle internal constraints")
	}
	cell, _ := g.Widget("cell")
	if cell.Parent() != table {
		t.Error("cell not parented to table")
	}
}

func TestToGraph_Errors(t *testing.T) {
	tests := []struct {
		name    string
		scene   Scene
		wantErr error
	}{
		{
			name: "unknown parent",
			scene: Scene{Width: 100, Height: 100, Widgets: []Widget{
				{Name: "a", Parent: "missing", Width: 10, Height: 10},
			}},
			wantErr: ErrUnknownWidget,
		},
		{
			name: "unknown connection widget",
			scene: Scene{Width: 100, Height: 100, Connections: []Connection{
				{From: "ghost", FromAnchor: "left", To: "root", ToAnchor: "left"},
			}},
			wantErr: ErrUnknownWidget,
		},
		{
			name: "unknown anchor",
			scene: Scene{Width: 100, Height: 100,
				Widgets: []Widget{{Name: "a", Width: 10, Height: 10}},
				Connections: []Connection{
					{From: "a", FromAnchor: "middle", To: "root", ToAnchor: "left"},
				}},
			wantErr: ErrUnknownAnchor,
		},
		{
			name: "illegal connection",
			scene: Scene{Width: 100, Height: 100,
				Widgets: []Widget{{Name: "a", Width: 10, Height: 10}},
				Connections: []Connection{
					{From: "a", FromAnchor: "left", To: "root", ToAnchor: "top"},
				}},
			wantErr: layout.ErrIncompatibleAnchors,
		},
		{
			name: "duplicate widget",
			scene: Scene{Width: 100, Height: 100, Widgets: []Widget{
				{Name: "a", Width: 10, Height: 10},
				{Name: "a", Width: 10, Height: 10},
			}},
			wantErr: layout.ErrDuplicateWidgetName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToGraph(tt.scene)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ToGraph() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
