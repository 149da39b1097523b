package blueprint

// ViewTransform converts model coordinates to device pixels. The model
// space is the constraint graph's coordinate system; the device space is
// the gg canvas, scaled and panned by the host view.
type ViewTransform struct {
	scale  float64
	dx, dy float64 // pan offset in device pixels
}

// NewViewTransform creates a transform with the given zoom scale and pan
// offset in device pixels.
func NewViewTransform(scale, dx, dy float64) *ViewTransform {
	if scale <= 0 {
		scale = 1
	}
	return &ViewTransform{scale: scale, dx: dx, dy: dy}
}

// Scale returns the current zoom scale.
func (t *ViewTransform) Scale() float64 { return t.scale }

// X converts a model x coordinate to device pixels.
func (t *ViewTransform) X(x int) float64 { return float64(x)*t.scale + t.dx }

// Y converts a model y coordinate to device pixels.
func (t *ViewTransform) Y(y int) float64 { return float64(y)*t.scale + t.dy }

// Dim converts a model dimension to device pixels.
func (t *ViewTransform) Dim(d int) float64 { return float64(d) * t.scale }

// ModelX converts a device x coordinate back to model space.
func (t *ViewTransform) ModelX(x float64) int { return int((x - t.dx) / t.scale) }

// ModelY converts a device y coordinate back to model space.
func (t *ViewTransform) ModelY(y float64) int { return int((y - t.dy) / t.scale) }
