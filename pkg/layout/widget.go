package layout

// Visibility is the tri-state display mode of a widget.
type Visibility int

const (
	// Visible widgets are drawn normally.
	Visible Visibility = iota
	// Invisible widgets keep their bounds but draw with dashed strokes
	// and reduced alpha.
	Invisible
	// Gone widgets are skipped entirely: no anchors, no constraints.
	Gone
)

// String returns the lowercase name of the visibility state.
func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	}
	return "unknown"
}

// ChainStyle selects how a chain distributes its member widgets.
type ChainStyle int

const (
	// ChainSpread distributes widgets evenly, including the end gaps.
	ChainSpread ChainStyle = iota
	// ChainSpreadInside distributes evenly but pins the chain ends.
	ChainSpreadInside
	// ChainPacked packs the widgets together, positioned by the head bias.
	ChainPacked
)

// chainCycle is the fixed toggle order: spread → spread_inside → packed → spread.
var chainCycle = [3]ChainStyle{ChainSpreadInside, ChainPacked, ChainSpread}

// Next returns the chain style that follows s in the toggle cycle.
func (s ChainStyle) Next() ChainStyle {
	if s < 0 || int(s) >= len(chainCycle) {
		return ChainSpread
	}
	return chainCycle[s]
}

// String returns the lowercase name of the chain style.
func (s ChainStyle) String() string {
	switch s {
	case ChainSpread:
		return "spread"
	case ChainSpreadInside:
		return "spread_inside"
	case ChainPacked:
		return "packed"
	}
	return "unknown"
}

// Rect is a widget's draw rectangle in model coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Widget is a rectangular node in the constraint graph. Widgets are owned
// by their Graph; create them with [Graph.AddWidget] or
// [Graph.AddContainer]. The zero value is not usable.
//
// All transient interaction state (selection, hover, animation) lives on
// the widget's decorator, not here.
type Widget struct {
	graph  *Graph
	name   string
	parent *Widget

	frame      Rect
	visibility Visibility

	// container widgets may host children; those that handle their
	// internal constraints themselves (e.g. table-like containers)
	// suppress anchor display on their children.
	container       bool
	handlesInternal bool

	baselineDistance int
	horizontalBias   float64
	verticalBias     float64

	horizontalChainStyle ChainStyle
	verticalChainStyle   ChainStyle

	anchors [numAnchorTypes]*Anchor
}

func newWidget(g *Graph, name string, frame Rect) *Widget {
	w := &Widget{
		graph:          g,
		name:           name,
		frame:          frame,
		horizontalBias: 0.5,
		verticalBias:   0.5,
	}
	for t := AnchorType(0); t < numAnchorTypes; t++ {
		w.anchors[t] = &Anchor{owner: w, typ: t}
	}
	return w
}

// Name returns the widget's unique name within its graph.
func (w *Widget) Name() string { return w.name }

// Parent returns the widget's parent container, or nil for the root.
func (w *Widget) Parent() *Widget { return w.parent }

// Frame returns the widget's draw rectangle in model coordinates.
func (w *Widget) Frame() Rect { return w.frame }

// SetFrame moves and resizes the widget.
func (w *Widget) SetFrame(r Rect) { w.frame = r }

// Visibility returns the widget's tri-state visibility.
func (w *Widget) Visibility() Visibility { return w.visibility }

// SetVisibility updates the widget's tri-state visibility.
func (w *Widget) SetVisibility(v Visibility) { w.visibility = v }

// IsRoot reports whether the widget is its graph's root container.
func (w *Widget) IsRoot() bool { return w.graph != nil && w.graph.root == w }

// IsContainer reports whether the widget may host children.
func (w *Widget) IsContainer() bool { return w.container }

// HandlesInternalConstraints reports whether this container lays out its
// children itself, making their anchors irrelevant for display.
func (w *Widget) HandlesInternalConstraints() bool { return w.container && w.handlesInternal }

// SetHandlesInternalConstraints marks a container as managing its
// children's constraints internally.
func (w *Widget) SetHandlesInternalConstraints(v bool) { w.handlesInternal = v }

// BaselineDistance returns the text baseline offset from the widget top,
// or 0 when the widget has no baseline.
func (w *Widget) BaselineDistance() int { return w.baselineDistance }

// SetBaselineDistance sets the text baseline offset from the widget top.
func (w *Widget) SetBaselineDistance(d int) { w.baselineDistance = d }

// HasBaseline reports whether the widget exposes a baseline anchor.
func (w *Widget) HasBaseline() bool { return w.baselineDistance > 0 }

// HorizontalBias returns the 0–1 weighting between two opposing
// horizontal connections (0.5 is centered).
func (w *Widget) HorizontalBias() float64 { return w.horizontalBias }

// SetHorizontalBias sets the horizontal bias weighting.
func (w *Widget) SetHorizontalBias(b float64) { w.horizontalBias = b }

// VerticalBias returns the 0–1 weighting between two opposing vertical
// connections.
func (w *Widget) VerticalBias() float64 { return w.verticalBias }

// SetVerticalBias sets the vertical bias weighting.
func (w *Widget) SetVerticalBias(b float64) { w.verticalBias = b }

// HorizontalChainStyle returns the distribution style of the horizontal
// chain headed by this widget.
func (w *Widget) HorizontalChainStyle() ChainStyle { return w.horizontalChainStyle }

// SetHorizontalChainStyle sets the horizontal chain distribution style.
func (w *Widget) SetHorizontalChainStyle(s ChainStyle) { w.horizontalChainStyle = s }

// VerticalChainStyle returns the distribution style of the vertical chain
// headed by this widget.
func (w *Widget) VerticalChainStyle() ChainStyle { return w.verticalChainStyle }

// SetVerticalChainStyle sets the vertical chain distribution style.
func (w *Widget) SetVerticalChainStyle(s ChainStyle) { w.verticalChainStyle = s }

// Anchor returns the anchor of the given type, or nil for an unknown type.
func (w *Widget) Anchor(t AnchorType) *Anchor {
	if t < 0 || t >= numAnchorTypes {
		return nil
	}
	return w.anchors[t]
}

// Anchors returns the widget's five side anchors (baseline, left, top,
// right, bottom) in drawing order. The center anchor is excluded; it has
// no edge position.
func (w *Widget) Anchors() []*Anchor {
	out := make([]*Anchor, 0, len(SideAnchorTypes))
	for _, t := range SideAnchorTypes {
		out = append(out, w.anchors[t])
	}
	return out
}

// Connect connects the anchor of type t to the target anchor, tagged with
// the given creator. Returns ErrNilTarget, ErrSelfConnection, or
// ErrIncompatibleAnchors when the connection is not legal.
func (w *Widget) Connect(t AnchorType, target *Anchor, creator Creator) error {
	if target == nil {
		return ErrNilTarget
	}
	if target.owner == w {
		return ErrSelfConnection
	}
	a := w.Anchor(t)
	if a == nil || !compatibleAnchors(t, target.typ) {
		return ErrIncompatibleAnchors
	}
	if t == AnchorBaseline && !w.HasBaseline() {
		return ErrIncompatibleAnchors
	}
	a.target = target
	a.creator = creator
	return nil
}

// ResetAllConstraints disconnects every anchor on the widget.
func (w *Widget) ResetAllConstraints() {
	for _, a := range w.anchors {
		a.Reset()
	}
}

// SetConnectionCreator re-tags every connected anchor with the given
// creator. Used by the lock action.
func (w *Widget) SetConnectionCreator(c Creator) {
	for _, a := range w.anchors {
		if a.IsConnected() {
			a.creator = c
		}
	}
}

// HasConnections reports whether any anchor on the widget is connected.
func (w *Widget) HasConnections() bool {
	for _, a := range w.anchors {
		if a.IsConnected() {
			return true
		}
	}
	return false
}

// InHorizontalChain reports whether the widget participates in a
// horizontal chain: one of its horizontal anchors is mutually connected
// with a neighbor (the neighbor's anchor targets back).
func (w *Widget) InHorizontalChain() bool {
	return w.inChain(AnchorLeft) || w.inChain(AnchorRight)
}

// InVerticalChain reports whether the widget participates in a vertical
// chain.
func (w *Widget) InVerticalChain() bool {
	return w.inChain(AnchorTop) || w.inChain(AnchorBottom)
}

func (w *Widget) inChain(t AnchorType) bool {
	a := w.anchors[t]
	return a.target != nil && a.target.target == a
}

// BaselineY returns the y coordinate of the widget's baseline in model
// coordinates.
func (w *Widget) BaselineY() int { return w.frame.Y + w.baselineDistance }

// AnchorX returns the x coordinate of the given anchor in model
// coordinates: the matching edge for side anchors, the center otherwise.
func (w *Widget) AnchorX(t AnchorType) int {
	switch t {
	case AnchorLeft:
		return w.frame.X
	case AnchorRight:
		return w.frame.Right()
	default:
		return w.frame.X + w.frame.Width/2
	}
}

// AnchorY returns the y coordinate of the given anchor in model
// coordinates.
func (w *Widget) AnchorY(t AnchorType) int {
	switch t {
	case AnchorTop:
		return w.frame.Y
	case AnchorBottom:
		return w.frame.Bottom()
	case AnchorBaseline:
		return w.BaselineY()
	default:
		return w.frame.Y + w.frame.Height/2
	}
}
