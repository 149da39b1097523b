package blueprint

import (
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Look is the coarse visual state of a decorated widget, driving which
// palette entry each theme resolves to.
type Look int

const (
	// LookNormal is the resting state.
	LookNormal Look = iota
	// LookSubdued de-emphasizes widgets unrelated to the current focus.
	LookSubdued
	// LookHighlighted marks the widget currently under the mouse.
	LookHighlighted
	// LookSelected marks the selected widget.
	LookSelected
)

// String returns the lowercase name of the look.
func (l Look) String() string {
	switch l {
	case LookNormal:
		return "normal"
	case LookSubdued:
		return "subdued"
	case LookHighlighted:
		return "highlighted"
	case LookSelected:
		return "selected"
	}
	return "unknown"
}

// lookFadeDuration is how long a theme cross-fades when its look changes.
const lookFadeDuration = 250 * time.Millisecond

// Theme resolves one visual attribute (background, frame, text or
// constraints) to a concrete color for the current look. Look changes
// cross-fade rather than snap: Color blends from the previous color while
// the fade animation runs, so the caller must keep repainting while
// [Theme.IsAnimating] reports true.
type Theme struct {
	subdued     color.Color
	normal      color.Color
	highlighted color.Color
	selected    color.Color

	look Look
	from color.Color
	fade *AnimationProgress
}

// NewTheme creates a theme from its four per-look colors, starting at
// [LookNormal]. A nil clock defaults to time.Now.
func NewTheme(subdued, normal, highlighted, selected color.Color, now func() time.Time) *Theme {
	return &Theme{
		subdued:     subdued,
		normal:      normal,
		highlighted: highlighted,
		selected:    selected,
		look:        LookNormal,
		from:        normal,
		fade:        NewAnimationProgress(0, lookFadeDuration, now),
	}
}

// Look returns the look the theme currently resolves to.
func (t *Theme) Look() Look { return t.look }

// SetLook switches the theme to a new look, starting a cross-fade from
// the color displayed at the moment of the switch. Setting the current
// look is a no-op.
func (t *Theme) SetLook(look Look) {
	if look == t.look {
		return
	}
	t.from = t.Color()
	t.look = look
	t.fade.Start()
}

// IsAnimating reports whether a look cross-fade is still in progress.
func (t *Theme) IsAnimating() bool { return t.fade.IsRunning() }

// Color returns the theme's current color: the target look color, or a
// blend from the previous color while a cross-fade is running.
func (t *Theme) Color() color.Color {
	target := t.lookColor(t.look)
	if !t.fade.IsRunning() {
		return target
	}
	return blend(t.from, target, t.fade.Progress())
}

func (t *Theme) lookColor(look Look) color.Color {
	switch look {
	case LookSubdued:
		return t.subdued
	case LookHighlighted:
		return t.highlighted
	case LookSelected:
		return t.selected
	}
	return t.normal
}

// blend interpolates between two colors in RGB space, p in [0, 1].
func blend(from, to color.Color, p float64) color.Color {
	cf, okf := colorful.MakeColor(from)
	ct, okt := colorful.MakeColor(to)
	if !okf || !okt {
		return to
	}
	return cf.BlendRgb(ct, p).Clamped()
}

// UpdateBrightness scales a color's brightness in HSV space by the given
// factor, clamping at full brightness. Used to derive the gradient
// highlight from the background color.
func UpdateBrightness(c color.Color, factor float64) color.Color {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	h, s, v := cc.Hsv()
	v *= factor
	if v > 1 {
		v = 1
	}
	return colorful.Hsv(h, s, v).Clamped()
}

// withAlpha returns the color with its alpha channel replaced.
func withAlpha(c color.Color, alpha uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
