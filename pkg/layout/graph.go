package layout

import "errors"

var (
	// ErrInvalidWidgetName is returned by [Graph.AddWidget] when the name
	// is empty. All widgets must have non-empty names.
	ErrInvalidWidgetName = errors.New("widget name must not be empty")

	// ErrDuplicateWidgetName is returned by [Graph.AddWidget] when a widget
	// with the same name already exists. Names are unique per graph.
	ErrDuplicateWidgetName = errors.New("duplicate widget name")

	// ErrUnknownParent is returned by [Graph.AddWidgetIn] when the parent
	// container does not belong to this graph.
	ErrUnknownParent = errors.New("unknown parent container")
)

// Graph owns the widgets and anchors of one constraint layout. Widgets
// form a tree rooted at a constraint container; the root is created by
// [New]. Use New to create a valid graph; the zero value is not usable.
type Graph struct {
	root    *Widget
	widgets map[string]*Widget
	order   []*Widget // insertion order, root first
}

// RootName is the name of the implicit root container.
const RootName = "root"

// New creates a graph whose root container spans the given size.
func New(width, height int) *Graph {
	g := &Graph{widgets: make(map[string]*Widget)}
	root := newWidget(g, RootName, Rect{Width: width, Height: height})
	root.container = true
	g.root = root
	g.widgets[RootName] = root
	g.order = append(g.order, root)
	return g
}

// Root returns the root container widget.
func (g *Graph) Root() *Widget { return g.root }

// AddWidget creates a plain widget parented to the root container.
func (g *Graph) AddWidget(name string, frame Rect) (*Widget, error) {
	return g.AddWidgetIn(g.root, name, frame)
}

// AddWidgetIn creates a plain widget inside the given parent container.
func (g *Graph) AddWidgetIn(parent *Widget, name string, frame Rect) (*Widget, error) {
	if name == "" {
		return nil, ErrInvalidWidgetName
	}
	if _, exists := g.widgets[name]; exists {
		return nil, ErrDuplicateWidgetName
	}
	if parent == nil || parent.graph != g {
		return nil, ErrUnknownParent
	}
	w := newWidget(g, name, frame)
	w.parent = parent
	g.widgets[name] = w
	g.order = append(g.order, w)
	return w, nil
}

// AddContainer creates a container widget parented to the root. Pass
// handlesInternal to mark containers that lay out their own children.
func (g *Graph) AddContainer(name string, frame Rect, handlesInternal bool) (*Widget, error) {
	return g.AddContainerIn(g.root, name, frame, handlesInternal)
}

// AddContainerIn creates a container widget inside the given parent.
func (g *Graph) AddContainerIn(parent *Widget, name string, frame Rect, handlesInternal bool) (*Widget, error) {
	w, err := g.AddWidgetIn(parent, name, frame)
	if err != nil {
		return nil, err
	}
	w.container = true
	w.handlesInternal = handlesInternal
	return w, nil
}

// Widget returns the widget with the given name and true, or nil and
// false if not found.
func (g *Graph) Widget(name string) (*Widget, bool) {
	w, ok := g.widgets[name]
	return w, ok
}

// Widgets returns all widgets in insertion order, root first. The slice
// holds the graph's own widget pointers; do not reorder it.
func (g *Graph) Widgets() []*Widget { return g.order }

// WidgetCount returns the number of widgets, including the root.
func (g *Graph) WidgetCount() int { return len(g.order) }

// WidgetAt returns the topmost non-root widget whose frame contains the
// model-space point (x, y), or nil. Later-added widgets win, matching
// paint order.
func (g *Graph) WidgetAt(x, y int) *Widget {
	for i := len(g.order) - 1; i >= 1; i-- {
		w := g.order[i]
		if w.visibility == Gone {
			continue
		}
		if w.frame.Contains(x, y) {
			return w
		}
	}
	return nil
}
