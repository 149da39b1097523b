package blueprint

// Config carries the rendering flags that apply to every widget in a
// frame. It replaces per-process globals: the value is immutable from
// the decorators' point of view and threaded through each paint call.
type Config struct {
	// ShowAllConstraints draws constraint lines and connected anchors on
	// every widget, not just the selected or highlighted one.
	ShowAllConstraints bool

	// ShowTextUI draws textual widget annotations instead of the
	// background fill, approximating the rendered UI with text.
	ShowTextUI bool
}
