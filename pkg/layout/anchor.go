package layout

import "errors"

var (
	// ErrNilTarget is returned by [Widget.Connect] when the target anchor is nil.
	ErrNilTarget = errors.New("target anchor must not be nil")

	// ErrSelfConnection is returned by [Widget.Connect] when an anchor would
	// target an anchor on its own widget.
	ErrSelfConnection = errors.New("anchor cannot target its own widget")

	// ErrIncompatibleAnchors is returned by [Widget.Connect] when the two
	// anchor types cannot legally connect (e.g. left to top, or baseline to
	// anything but another baseline).
	ErrIncompatibleAnchors = errors.New("incompatible anchor types")
)

// AnchorType identifies one of the typed connection points on a widget.
type AnchorType int

// Anchor types in drawing order. Center is a conceptual anchor used for
// centering connections; it has no fixed edge position.
const (
	AnchorLeft AnchorType = iota
	AnchorTop
	AnchorRight
	AnchorBottom
	AnchorBaseline
	AnchorCenter

	numAnchorTypes
)

// String returns the lowercase name of the anchor type.
func (t AnchorType) String() string {
	switch t {
	case AnchorLeft:
		return "left"
	case AnchorTop:
		return "top"
	case AnchorRight:
		return "right"
	case AnchorBottom:
		return "bottom"
	case AnchorBaseline:
		return "baseline"
	case AnchorCenter:
		return "center"
	}
	return "unknown"
}

// IsVertical reports whether the anchor type constrains the vertical axis
// (top, bottom, baseline).
func (t AnchorType) IsVertical() bool {
	return t == AnchorTop || t == AnchorBottom || t == AnchorBaseline
}

// IsHorizontal reports whether the anchor type constrains the horizontal
// axis (left, right).
func (t AnchorType) IsHorizontal() bool {
	return t == AnchorLeft || t == AnchorRight
}

// SideAnchorTypes lists the five concrete anchor types in the fixed order
// used by connection checks and constraint drawing: baseline first, then
// left, top, right, bottom.
var SideAnchorTypes = [5]AnchorType{
	AnchorBaseline, AnchorLeft, AnchorTop, AnchorRight, AnchorBottom,
}

// Creator records who authored a connection.
type Creator int

const (
	// CreatorUser marks a connection explicitly authored by the user.
	CreatorUser Creator = iota
	// CreatorAuto marks a soft connection inferred by tooling. Soft
	// connections are drawn with a distinct color and stroke, and can be
	// locked into user connections.
	CreatorAuto
)

// String returns "user" or "auto".
func (c Creator) String() string {
	if c == CreatorAuto {
		return "auto"
	}
	return "user"
}

// Anchor is a typed connection point on a widget. An anchor belongs to
// exactly one widget and may target exactly one anchor on another widget.
// The relation is stored owner → target and queried unidirectionally;
// mutual connections (a targets b and b targets a) form chains.
type Anchor struct {
	owner   *Widget
	typ     AnchorType
	target  *Anchor
	creator Creator
}

// Owner returns the widget this anchor belongs to.
func (a *Anchor) Owner() *Widget { return a.owner }

// Type returns the anchor's type.
func (a *Anchor) Type() AnchorType { return a.typ }

// Target returns the anchor this anchor is connected to, or nil.
func (a *Anchor) Target() *Anchor { return a.target }

// IsConnected reports whether the anchor targets another anchor.
func (a *Anchor) IsConnected() bool { return a != nil && a.target != nil }

// Creator returns who authored the current connection. Meaningless when
// the anchor is not connected.
func (a *Anchor) Creator() Creator { return a.creator }

// SetCreator re-tags the connection's author. Used by the lock action to
// promote soft connections to user connections and back.
func (a *Anchor) SetCreator(c Creator) { a.creator = c }

// Reset disconnects the anchor and clears its creator tag.
func (a *Anchor) Reset() {
	a.target = nil
	a.creator = CreatorUser
}

// ConnectionAllowed reports whether this anchor may legally connect to
// some anchor of the given widget: the widget must not be the anchor's
// owner, and must carry at least one compatible anchor type. Baseline
// targets additionally require the candidate widget to have a baseline.
func (a *Anchor) ConnectionAllowed(w *Widget) bool {
	if w == nil || w == a.owner {
		return false
	}
	if a.typ == AnchorBaseline && !w.HasBaseline() {
		return false
	}
	for _, t := range SideAnchorTypes {
		if compatibleAnchors(a.typ, t) {
			return true
		}
	}
	return a.typ == AnchorCenter
}

// compatibleAnchors reports whether a connection from type from to type to
// is legal. Same-axis side anchors connect freely; baseline connects only
// to baseline; center connects to center or to any side anchor.
func compatibleAnchors(from, to AnchorType) bool {
	switch from {
	case AnchorBaseline:
		return to == AnchorBaseline
	case AnchorCenter:
		return true
	case AnchorLeft, AnchorRight:
		return to == AnchorLeft || to == AnchorRight || to == AnchorCenter
	case AnchorTop, AnchorBottom:
		return to == AnchorTop || to == AnchorBottom || to == AnchorCenter
	}
	return false
}
