package blueprint

import (
	"strings"

	"github.com/anchorlayer/anchorage/pkg/layout"
)

// DisplayFlag is one bit of an anchor display policy.
type DisplayFlag uint16

const (
	// DisplayNone marks a policy that shows no anchors on its own. It can
	// coexist with directional flags; its presence gates whether connected
	// anchors are added implicitly during the anchor pass.
	DisplayNone DisplayFlag = 1 << iota
	// DisplayAll shows every anchor.
	DisplayAll
	// DisplayLeft, DisplayRight, DisplayTop and DisplayBottom show a
	// single side anchor.
	DisplayLeft
	DisplayRight
	DisplayTop
	DisplayBottom
	// DisplayHorizontal and DisplayVertical show both anchors of an axis.
	DisplayHorizontal
	DisplayVertical
	// DisplayConnected shows connected anchors only.
	DisplayConnected
	// DisplaySelected marks the policy of the selected widget.
	DisplaySelected
	// DisplayCenter shows the center anchor.
	DisplayCenter
	// DisplayBaseline shows the baseline anchor.
	DisplayBaseline
)

var displayFlagNames = []struct {
	flag DisplayFlag
	name string
}{
	{DisplayNone, "none"},
	{DisplayAll, "all"},
	{DisplayLeft, "left"},
	{DisplayRight, "right"},
	{DisplayTop, "top"},
	{DisplayBottom, "bottom"},
	{DisplayHorizontal, "horizontal"},
	{DisplayVertical, "vertical"},
	{DisplayConnected, "connected"},
	{DisplaySelected, "selected"},
	{DisplayCenter, "center"},
	{DisplayBaseline, "baseline"},
}

// DisplaySet is a set of display flags. Policies are always rebuilt from
// scratch by the policy functions, never patched incrementally.
type DisplaySet uint16

// NewDisplaySet builds a set from the given flags.
func NewDisplaySet(flags ...DisplayFlag) DisplaySet {
	var s DisplaySet
	for _, f := range flags {
		s |= DisplaySet(f)
	}
	return s
}

// Has reports whether the set contains the flag.
func (s DisplaySet) Has(f DisplayFlag) bool { return s&DisplaySet(f) != 0 }

// With returns the set with the flag added.
func (s DisplaySet) With(f DisplayFlag) DisplaySet { return s | DisplaySet(f) }

// String returns the contained flag names, sorted by flag order.
func (s DisplaySet) String() string {
	var names []string
	for _, d := range displayFlagNames {
		if s.Has(d.flag) {
			names = append(names, d.name)
		}
	}
	if names == nil {
		return "{}"
	}
	return "{" + strings.Join(names, ",") + "}"
}

// SelectedAnchorPolicy computes the anchor display policy for the
// selected widget. Anchors show in full only when the parent is a true
// constraint container; containers that handle their internal
// constraints suppress them. Hidden resize handles override everything:
// only connected anchors show.
func SelectedAnchorPolicy(w *layout.Widget, showResizeHandles bool) DisplaySet {
	set := NewDisplaySet(DisplayAll, DisplaySelected)
	parent := w.Parent()
	if parent == nil || !parent.IsContainer() || parent.HandlesInternalConstraints() {
		set = NewDisplaySet(DisplayNone)
	}
	if !showResizeHandles {
		set = NewDisplaySet(DisplayConnected)
	}
	return set
}

// UnselectedAnchorPolicy computes the anchor display policy for a widget
// that is not selected, given the globally selected widget and anchor
// (either may be nil).
//
// The stages apply in a fixed order and later stages override earlier
// ones. The default is none. The show-all-constraints flag adds connected
// anchors when the parent does not handle constraints internally. A
// connection from the selected widget landing on this widget resets the
// set (unless show-all is active) and adds the flag for each landing
// anchor's type. A selected anchor for which this widget is a legal
// target adds its axis flag. A highlighted look overrides everything:
// connected anchors only.
func UnselectedAnchorPolicy(w *layout.Widget, look Look, cfg Config,
	selectedWidget *layout.Widget, selectedAnchor *layout.Anchor) DisplaySet {

	set := NewDisplaySet(DisplayNone)

	if cfg.ShowAllConstraints {
		parent := w.Parent()
		if parent == nil {
			set = set.With(DisplayConnected)
		} else if parent.IsContainer() && !parent.HandlesInternalConstraints() {
			set = set.With(DisplayConnected)
		}
	}

	if selectedWidget != nil && selectedWidget != w {
		if !cfg.ShowAllConstraints {
			set = NewDisplaySet(DisplayNone)
		}
		for _, t := range []layout.AnchorType{
			layout.AnchorLeft, layout.AnchorTop,
			layout.AnchorRight, layout.AnchorBottom,
			layout.AnchorBaseline,
		} {
			if landing := connectionLanding(selectedWidget, t, w); landing != nil {
				set = set.With(landingFlag(landing.Type()))
			}
		}
	}

	if selectedAnchor != nil && selectedAnchor.ConnectionAllowed(w) {
		switch {
		case selectedAnchor.Type() == layout.AnchorBaseline:
			set = set.With(DisplayBaseline)
		case selectedAnchor.Type() == layout.AnchorCenter:
			set = set.With(DisplayVertical).With(DisplayHorizontal)
			if w == selectedAnchor.Owner().Parent() {
				set = set.With(DisplayCenter)
			}
		case selectedAnchor.Type().IsVertical():
			set = set.With(DisplayVertical)
		default:
			set = set.With(DisplayHorizontal)
		}
	}

	if look == LookHighlighted {
		set = NewDisplaySet(DisplayConnected)
	}
	return set
}

// connectionLanding returns the anchor on w that the selected widget's
// anchor of type t is connected to, or nil when there is no such
// connection.
func connectionLanding(selected *layout.Widget, t layout.AnchorType, w *layout.Widget) *layout.Anchor {
	a := selected.Anchor(t)
	if a.IsConnected() && a.Target().Owner() == w {
		return a.Target()
	}
	return nil
}

// landingFlag maps the type of a landing anchor to its display flag.
func landingFlag(t layout.AnchorType) DisplayFlag {
	switch t {
	case layout.AnchorLeft:
		return DisplayLeft
	case layout.AnchorTop:
		return DisplayTop
	case layout.AnchorRight:
		return DisplayRight
	case layout.AnchorBottom:
		return DisplayBottom
	case layout.AnchorBaseline:
		return DisplayBaseline
	}
	return 0
}
