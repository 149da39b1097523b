package blueprint

import (
	"fmt"
	"io"
	"time"

	"github.com/fogleman/gg"

	"github.com/anchorlayer/anchorage/pkg/layout"
)

// Editor composes the decorators of one constraint graph into full
// canvas frames and routes selection, hover and click events to them.
// It is single-goroutine by design: all calls must come from the host's
// event loop.
type Editor struct {
	graph   *layout.Graph
	palette *Palette
	icons   *Icons
	now     func() time.Time

	stateModel StateModel
	decorators map[*layout.Widget]*Decorator

	selectedWidget *layout.Widget
	selectedAnchor *layout.Anchor
	hovered        *layout.Widget
	hoveredAction  Action
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithPalette overrides the default blueprint palette.
func WithPalette(p *Palette) EditorOption {
	return func(e *Editor) { e.palette = p }
}

// WithIcons sets the action button icons.
func WithIcons(icons *Icons) EditorOption {
	return func(e *Editor) { e.icons = icons }
}

// WithClock overrides the animation clock. Tests use this to advance
// time deterministically.
func WithClock(now func() time.Time) EditorOption {
	return func(e *Editor) { e.now = now }
}

// WithStateModel sets the persistence callback wired into every
// decorator.
func WithStateModel(m StateModel) EditorOption {
	return func(e *Editor) { e.stateModel = m }
}

// NewEditor creates an editor over the graph with the blueprint palette.
func NewEditor(graph *layout.Graph, opts ...EditorOption) *Editor {
	e := &Editor{
		graph:      graph,
		palette:    BlueprintPalette(),
		now:        time.Now,
		decorators: make(map[*layout.Widget]*Decorator),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Graph returns the underlying constraint graph.
func (e *Editor) Graph() *layout.Graph { return e.graph }

// Palette returns the editor's palette.
func (e *Editor) Palette() *Palette { return e.palette }

// Decorator returns the decorator for the widget, creating it on first
// use.
func (e *Editor) Decorator(w *layout.Widget) *Decorator {
	if d, ok := e.decorators[w]; ok {
		return d
	}
	d := NewDecorator(w, e.palette, e.icons, e.now)
	d.SetStateModel(e.stateModel)
	e.decorators[w] = d
	return d
}

// Select makes the widget the global selection, deselecting any
// previous one. Pass nil to clear the selection. The selected widget
// shows its resize handles.
func (e *Editor) Select(w *layout.Widget) {
	if e.selectedWidget == w {
		return
	}
	if e.selectedWidget != nil {
		prev := e.Decorator(e.selectedWidget)
		prev.SetSelected(false)
		prev.SetShowResizeHandles(false)
	}
	e.selectedWidget = w
	e.selectedAnchor = nil
	if w != nil {
		d := e.Decorator(w)
		d.SetSelected(true)
		d.SetShowResizeHandles(true)
	}
}

// SelectedWidget returns the globally selected widget, or nil.
func (e *Editor) SelectedWidget() *layout.Widget { return e.selectedWidget }

// SelectAnchor makes the anchor the global anchor selection, used while
// the user drags a new connection.
func (e *Editor) SelectAnchor(a *layout.Anchor) { e.selectedAnchor = a }

// SelectedAnchor returns the globally selected anchor, or nil.
func (e *Editor) SelectedAnchor() *layout.Anchor { return e.selectedAnchor }

// HoverAt routes a pointer-motion event at device coordinates. It
// updates widget hover looks and action tooltip timers, and returns the
// widget under the pointer, or nil.
func (e *Editor) HoverAt(x, y float64, vt *ViewTransform) *layout.Widget {
	if e.selectedWidget != nil {
		action := e.Decorator(e.selectedWidget).ActionAt(x, y)
		if action != e.hoveredAction {
			if e.hoveredAction != nil {
				e.hoveredAction.Hover(false)
			}
			if action != nil {
				action.Hover(true)
			}
			e.hoveredAction = action
		} else if action != nil {
			action.Hover(true)
		}
	}

	w := e.graph.WidgetAt(vt.ModelX(x), vt.ModelY(y))
	if w != e.hovered {
		if e.hovered != nil {
			d := e.Decorator(e.hovered)
			d.Hover(false)
			if e.hovered != e.selectedWidget {
				d.SetLook(LookNormal)
			}
		}
		e.hovered = w
	}
	if w != nil {
		d := e.Decorator(w)
		d.Hover(true)
		if w != e.selectedWidget {
			d.SetLook(LookHighlighted)
		}
	}
	return w
}

// Click routes a pointer-press event at device coordinates. A hit on a
// visible action button clicks it and keeps the current selection;
// otherwise the widget under the pointer (or nil) becomes the
// selection. Returns the selected widget after the event.
func (e *Editor) Click(x, y float64, vt *ViewTransform) *layout.Widget {
	if e.selectedWidget != nil {
		if action := e.Decorator(e.selectedWidget).ActionAt(x, y); action != nil {
			action.Click()
			return e.selectedWidget
		}
	}
	e.Select(e.graph.WidgetAt(vt.ModelX(x), vt.ModelY(y)))
	return e.selectedWidget
}

// Paint draws the whole scene: canvas background, then every widget in
// graph order with the selected widget last. It reports whether any
// widget is still animating, in which case the host must schedule
// another frame.
func (e *Editor) Paint(dc *gg.Context, vt *ViewTransform, cfg Config) bool {
	dc.SetColor(e.palette.Background)
	dc.Clear()

	animating := false
	for _, w := range e.graph.Widgets() {
		if w == e.selectedWidget {
			continue
		}
		d := e.Decorator(w)
		d.UpdateAnchorPolicy(cfg, e.selectedWidget, e.selectedAnchor)
		if d.Paint(vt, dc, cfg) {
			animating = true
		}
	}
	if e.selectedWidget != nil {
		if e.Decorator(e.selectedWidget).Paint(vt, dc, cfg) {
			animating = true
		}
	}
	return animating
}

// RenderPNG paints one frame at the given scale onto a fresh canvas
// sized to the root container and writes it as PNG.
func (e *Editor) RenderPNG(w io.Writer, scale float64, cfg Config) error {
	if scale <= 0 {
		scale = 1
	}
	root := e.graph.Root().Frame()
	dc := gg.NewContext(int(float64(root.Width)*scale), int(float64(root.Height)*scale))
	vt := NewViewTransform(scale, 0, 0)
	e.Paint(dc, vt, cfg)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return nil
}
