package layout

// Axis selects the horizontal or vertical constraint axis.
type Axis int

const (
	// Horizontal chains link widgets left to right.
	Horizontal Axis = iota
	// Vertical chains link widgets top to bottom.
	Vertical
)

// String returns the lowercase name of the axis.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ChainHead walks backward from w along the given axis and returns the
// head of its chain.
//
// The walk follows the LEFT (resp. TOP) anchor to each predecessor. A
// widget is the head when its predecessor is the parent container, or
// when the link back is broken: the predecessor's RIGHT (resp. BOTTOM)
// anchor does not target the current widget. Malformed graphs — missing
// links or cycles that never reach the parent — terminate at the current
// widget rather than looping; chain traversal is a liveness safeguard,
// not a validator.
func ChainHead(w *Widget, axis Axis) *Widget {
	back, far := AnchorLeft, AnchorRight
	if axis == Vertical {
		back, far = AnchorTop, AnchorBottom
	}

	seen := map[*Widget]bool{w: true}
	cur := w
	for {
		var pred *Widget
		if a := cur.Anchor(back); a.IsConnected() {
			pred = a.Target().Owner()
		}
		if pred == nil || pred == w.Parent() {
			return cur
		}
		fa := pred.Anchor(far)
		if !fa.IsConnected() || fa.Target().Owner() != cur {
			return cur
		}
		if seen[pred] {
			return cur
		}
		seen[pred] = true
		cur = pred
	}
}

// CycleChainStyle finds the head of w's chain on the given axis and
// advances that head's chain style one step through the fixed cycle
// spread_inside → packed → spread. It returns the head whose style
// changed. Callers persist the mutation through their state model.
func CycleChainStyle(w *Widget, axis Axis) *Widget {
	head := ChainHead(w, axis)
	if head == nil {
		return nil
	}
	if axis == Horizontal {
		head.SetHorizontalChainStyle(head.HorizontalChainStyle().Next())
	} else {
		head.SetVerticalChainStyle(head.VerticalChainStyle().Next())
	}
	return head
}
