package scene

import (
	"errors"
	"fmt"

	"github.com/anchorlayer/anchorage/pkg/layout"
)

var (
	// ErrUnknownWidget is returned by [ToGraph] when a connection or
	// parent references a widget name the scene does not define.
	ErrUnknownWidget = errors.New("unknown widget name")

	// ErrUnknownAnchor is returned by [ToGraph] when an anchor name is
	// not one of the six anchor types.
	ErrUnknownAnchor = errors.New("unknown anchor type")
)

var anchorFromString = map[string]layout.AnchorType{
	AnchorLeft:     layout.AnchorLeft,
	AnchorTop:      layout.AnchorTop,
	AnchorRight:    layout.AnchorRight,
	AnchorBottom:   layout.AnchorBottom,
	AnchorBaseline: layout.AnchorBaseline,
	AnchorCenter:   layout.AnchorCenter,
}

var visibilityFromString = map[string]layout.Visibility{
	VisibilityVisible:   layout.Visible,
	VisibilityInvisible: layout.Invisible,
	VisibilityGone:      layout.Gone,
}

var chainStyleFromString = map[string]layout.ChainStyle{
	ChainSpread:       layout.ChainSpread,
	ChainSpreadInside: layout.ChainSpreadInside,
	ChainPacked:       layout.ChainPacked,
}

var chainStyleToString = map[layout.ChainStyle]string{
	layout.ChainSpread:       ChainSpread,
	layout.ChainSpreadInside: ChainSpreadInside,
	layout.ChainPacked:       ChainPacked,
}

// FromGraph converts a constraint graph to its serialization format.
// Widgets keep their insertion order, which guarantees parents precede
// their children on re-import; the root container contributes only the
// scene dimensions.
func FromGraph(g *layout.Graph) Scene {
	s := Scene{
		Width:  g.Root().Frame().Width,
		Height: g.Root().Frame().Height,
	}

	for _, w := range g.Widgets() {
		if w.IsRoot() {
			continue
		}
		s.Widgets = append(s.Widgets, widgetFromLayout(w))
		for _, a := range w.Anchors() {
			if !a.IsConnected() {
				continue
			}
			s.Connections = append(s.Connections, connectionFromAnchor(a))
		}
	}
	return s
}

func widgetFromLayout(w *layout.Widget) Widget {
	f := w.Frame()
	out := Widget{
		Name:            w.Name(),
		X:               f.X,
		Y:               f.Y,
		Width:           f.Width,
		Height:          f.Height,
		Container:       w.IsContainer(),
		HandlesInternal: w.HandlesInternalConstraints(),
		Baseline:        w.BaselineDistance(),
	}
	if p := w.Parent(); p != nil && !p.IsRoot() {
		out.Parent = p.Name()
	}
	if w.Visibility() != layout.Visible {
		out.Visibility = w.Visibility().String()
	}
	if b := w.HorizontalBias(); b != 0.5 {
		out.HorizontalBias = &b
	}
	if b := w.VerticalBias(); b != 0.5 {
		out.VerticalBias = &b
	}
	if s := w.HorizontalChainStyle(); s != layout.ChainSpread {
		out.HorizontalChainStyle = chainStyleToString[s]
	}
	if s := w.VerticalChainStyle(); s != layout.ChainSpread {
		out.VerticalChainStyle = chainStyleToString[s]
	}
	return out
}

func connectionFromAnchor(a *layout.Anchor) Connection {
	c := Connection{
		From:       a.Owner().Name(),
		FromAnchor: a.Type().String(),
		To:         a.Target().Owner().Name(),
		ToAnchor:   a.Target().Type().String(),
	}
	if a.Creator() == layout.CreatorAuto {
		c.Creator = CreatorAuto
	}
	return c
}

// ToGraph converts a scene to a constraint graph. Widgets are created
// before connections, so forward references between widgets are fine;
// a parent must be declared before its children.
func ToGraph(s Scene) (*layout.Graph, error) {
	g := layout.New(s.Width, s.Height)

	for _, sw := range s.Widgets {
		parent := g.Root()
		if sw.Parent != "" {
			p, ok := g.Widget(sw.Parent)
			if !ok {
				return nil, fmt.Errorf("widget %s: parent %q: %w", sw.Name, sw.Parent, ErrUnknownWidget)
			}
			parent = p
		}
		frame := layout.Rect{X: sw.X, Y: sw.Y, Width: sw.Width, Height: sw.Height}
		var w *layout.Widget
		var err error
		if sw.Container {
			w, err = g.AddContainerIn(parent, sw.Name, frame, sw.HandlesInternal)
		} else {
			w, err = g.AddWidgetIn(parent, sw.Name, frame)
		}
		if err != nil {
			return nil, fmt.Errorf("widget %s: %w", sw.Name, err)
		}
		if err := applyWidget(w, sw); err != nil {
			return nil, fmt.Errorf("widget %s: %w", sw.Name, err)
		}
	}

	for _, c := range s.Connections {
		if err := applyConnection(g, c); err != nil {
			return nil, fmt.Errorf("connection %s.%s → %s.%s: %w",
				c.From, c.FromAnchor, c.To, c.ToAnchor, err)
		}
	}
	return g, nil
}

func applyWidget(w *layout.Widget, sw Widget) error {
	if sw.Visibility != "" {
		v, ok := visibilityFromString[sw.Visibility]
		if !ok {
			return fmt.Errorf("visibility %q is not valid", sw.Visibility)
		}
		w.SetVisibility(v)
	}
	w.SetBaselineDistance(sw.Baseline)
	if sw.HorizontalBias != nil {
		w.SetHorizontalBias(*sw.HorizontalBias)
	}
	if sw.VerticalBias != nil {
		w.SetVerticalBias(*sw.VerticalBias)
	}
	if sw.HorizontalChainStyle != "" {
		s, ok := chainStyleFromString[sw.HorizontalChainStyle]
		if !ok {
			return fmt.Errorf("chain style %q is not valid", sw.HorizontalChainStyle)
		}
		w.SetHorizontalChainStyle(s)
	}
	if sw.VerticalChainStyle != "" {
		s, ok := chainStyleFromString[sw.VerticalChainStyle]
		if !ok {
			return fmt.Errorf("chain style %q is not valid", sw.VerticalChainStyle)
		}
		w.SetVerticalChainStyle(s)
	}
	return nil
}

func applyConnection(g *layout.Graph, c Connection) error {
	from, ok := g.Widget(c.From)
	if !ok {
		return fmt.Errorf("%q: %w", c.From, ErrUnknownWidget)
	}
	to, ok := g.Widget(c.To)
	if !ok {
		return fmt.Errorf("%q: %w", c.To, ErrUnknownWidget)
	}
	fromType, ok := anchorFromString[c.FromAnchor]
	if !ok {
		return fmt.Errorf("%q: %w", c.FromAnchor, ErrUnknownAnchor)
	}
	toType, ok := anchorFromString[c.ToAnchor]
	if !ok {
		return fmt.Errorf("%q: %w", c.ToAnchor, ErrUnknownAnchor)
	}
	creator := layout.CreatorUser
	if c.Creator == CreatorAuto {
		creator = layout.CreatorAuto
	}
	return from.Connect(fromType, to.Anchor(toType), creator)
}
