package layout

import (
	"errors"
	"testing"
)

func TestAddWidget(t *testing.T) {
	g := New(1000, 800)

	w, err := g.AddWidget("button", Rect{X: 100, Y: 100, Width: 200, Height: 50})
	if err != nil {
		t.Fatalf("AddWidget() error: %v", err)
	}
	if w.Parent() != g.Root() {
		t.Error("AddWidget() should parent to root")
	}
	if g.WidgetCount() != 2 {
		t.Errorf("WidgetCount() = %d, want 2", g.WidgetCount())
	}
	if got, ok := g.Widget("button"); !ok || got != w {
		t.Error("Widget(\"button\") should return the added widget")
	}
}

func TestAddWidget_EmptyName(t *testing.T) {
	g := New(1000, 800)
	if _, err := g.AddWidget("", Rect{}); !errors.Is(err, ErrInvalidWidgetName) {
		t.Errorf("AddWidget(\"\") error = %v, want ErrInvalidWidgetName", err)
	}
}

func TestAddWidget_DuplicateName(t *testing.T) {
	g := New(1000, 800)
	if _, err := g.AddWidget("a", Rect{}); err != nil {
		t.Fatalf("AddWidget() error: %v", err)
	}
	if _, err := g.AddWidget("a", Rect{}); !errors.Is(err, ErrDuplicateWidgetName) {
		t.Errorf("duplicate AddWidget() error = %v, want ErrDuplicateWidgetName", err)
	}
}

func TestAddWidgetIn_UnknownParent(t *testing.T) {
	g := New(1000, 800)
	other := New(10, 10)
	if _, err := g.AddWidgetIn(other.Root(), "a", Rect{}); !errors.Is(err, ErrUnknownParent) {
		t.Errorf("AddWidgetIn(foreign root) error = %v, want ErrUnknownParent", err)
	}
	if _, err := g.AddWidgetIn(nil, "a", Rect{}); !errors.Is(err, ErrUnknownParent) {
		t.Errorf("AddWidgetIn(nil) error = %v, want ErrUnknownParent", err)
	}
}

func TestAddContainer(t *testing.T) {
	g := New(1000, 800)
	c, err := g.AddContainer("table", Rect{Width: 400, Height: 300}, true)
	if err != nil {
		t.Fatalf("AddContainer() error: %v", err)
	}
	if !c.IsContainer() {
		t.Error("AddContainer() widget should be a container")
	}
	if !c.HandlesInternalConstraints() {
		t.Error("container should handle internal constraints")
	}
}

func TestWidgetAt(t *testing.T) {
	g := New(1000, 800)
	a, _ := g.AddWidget("a", Rect{X: 0, Y: 0, Width: 100, Height: 100})
	b, _ := g.AddWidget("b", Rect{X: 50, Y: 50, Width: 100, Height: 100})

	tests := []struct {
		name string
		x, y int
		want *Widget
	}{
		{"inside a only", 10, 10, a},
		{"overlap prefers topmost", 75, 75, b},
		{"inside b only", 120, 120, b},
		{"outside all", 500, 500, nil},
	}
	for _, tt := range tests {
		if got := g.WidgetAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: WidgetAt(%d, %d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestWidgetAt_SkipsGone(t *testing.T) {
	g := New(1000, 800)
	w, _ := g.AddWidget("a", Rect{Width: 100, Height: 100})
	w.SetVisibility(Gone)
	if got := g.WidgetAt(10, 10); got != nil {
		t.Errorf("WidgetAt() = %v, want nil for gone widget", got)
	}
}
