package blueprint

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/anchorlayer/anchorage/pkg/fonts"
)

// Drawing constants in device pixels.
const (
	anchorRadius     = 3.5
	resizeHandleSize = 6
	anchorGap        = 6

	actionSize   = 22
	actionCorner = 8
	actionMargin = 4

	tooltipPadding = 5
	tooltipOffset  = 14
)

var (
	fontOnce sync.Once
	infoFont font.Face
)

// infoFace returns the shared label font face. A parse failure leaves
// the face nil and text drawing degrades to the gg default face.
func infoFace() font.Face {
	fontOnce.Do(func() {
		infoFont, _ = fonts.Mono(12)
	})
	return infoFont
}

// setDashed switches the context to the dashed stroke used for invisible
// widgets and soft connections.
func setDashed(dc *gg.Context) { dc.SetDash(4, 4) }

// setSolid restores the solid stroke.
func setSolid(dc *gg.Context) { dc.SetDash() }

// drawAnchorMarker draws one anchor: a filled dot when connected, an
// outlined circle otherwise.
func drawAnchorMarker(dc *gg.Context, x, y float64, connected bool, c color.Color) {
	dc.SetColor(c)
	dc.DrawCircle(x, y, anchorRadius)
	if connected {
		dc.Fill()
		return
	}
	dc.SetLineWidth(1)
	dc.Stroke()
}

// drawResizeHandle draws one square corner handle centered on (x, y).
func drawResizeHandle(dc *gg.Context, x, y float64, c color.Color) {
	s := float64(resizeHandleSize)
	dc.SetColor(c)
	dc.DrawRectangle(x-s/2, y-s/2, s, s)
	dc.Fill()
}

// drawBaselineMarker draws the baseline as a horizontal line across the
// widget at the baseline height.
func drawBaselineMarker(dc *gg.Context, x, y, width float64, c color.Color) {
	dc.SetColor(c)
	dc.SetLineWidth(1)
	dc.DrawLine(x, y, x+width, y)
	dc.Stroke()
}

// drawConnection draws a constraint line between two anchor positions,
// with a small arrowhead at the target end.
func drawConnection(dc *gg.Context, x1, y1, x2, y2 float64, c color.Color, dashed bool) {
	dc.SetColor(c)
	if dashed {
		setDashed(dc)
	}
	dc.SetLineWidth(1)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
	if dashed {
		setSolid(dc)
	}
	drawArrowHead(dc, x1, y1, x2, y2, c)
}

// drawArrowHead draws a small triangle at (x2, y2) pointing away from
// (x1, y1).
func drawArrowHead(dc *gg.Context, x1, y1, x2, y2 float64, c color.Color) {
	const size = 5.0
	dx, dy := x2-x1, y2-y1
	dist := dx*dx + dy*dy
	if dist == 0 {
		return
	}
	// Axis-aligned arrowheads are enough: constraints connect parallel
	// edges, so pick the dominant direction.
	var ax, ay float64
	if abs(dx) > abs(dy) {
		ax = sign(dx)
	} else {
		ay = sign(dy)
	}
	dc.SetColor(c)
	dc.MoveTo(x2, y2)
	dc.LineTo(x2-ax*size-ay*size, y2-ay*size-ax*size)
	dc.LineTo(x2-ax*size+ay*size, y2-ay*size+ax*size)
	dc.ClosePath()
	dc.Fill()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// drawRoundRectText draws a single-line label in a rounded bubble
// centered on (cx, cy). Used for bias percentages and the size
// indicator.
func drawRoundRectText(dc *gg.Context, text string, cx, cy float64, bg, fg color.Color) {
	if face := infoFace(); face != nil {
		dc.SetFontFace(face)
	}
	w, h := dc.MeasureString(text)
	bw := w + 2*tooltipPadding
	bh := h + 2*tooltipPadding
	dc.SetColor(bg)
	dc.DrawRoundedRectangle(cx-bw/2, cy-bh/2, bw, bh, 4)
	dc.Fill()
	dc.SetColor(fg)
	dc.DrawStringAnchored(text, cx, cy, 0.5, 0.35)
}

// drawTooltip draws a multi-line hint bubble above (x, y).
func drawTooltip(dc *gg.Context, p *Palette, lines []string, x, y float64) {
	if len(lines) == 0 {
		return
	}
	if face := infoFace(); face != nil {
		dc.SetFontFace(face)
	}
	var maxW, lineH float64
	for _, line := range lines {
		w, h := dc.MeasureString(line)
		if w > maxW {
			maxW = w
		}
		if h > lineH {
			lineH = h
		}
	}
	lineH += 4
	bw := maxW + 2*tooltipPadding
	bh := lineH*float64(len(lines)) + 2*tooltipPadding
	bx := x - bw/2
	by := y - bh - tooltipOffset
	if bx < 0 {
		bx = 0
	}
	if by < 0 {
		by = y + tooltipOffset
	}
	dc.SetColor(p.TooltipBackground)
	dc.DrawRoundedRectangle(bx, by, bw, bh, 4)
	dc.Fill()
	dc.SetColor(p.TooltipText)
	for i, line := range lines {
		dc.DrawStringAnchored(line, bx+tooltipPadding, by+tooltipPadding+lineH*float64(i)+lineH/2, 0, 0.35)
	}
}

// FormatPercent renders a bias percentage for display at one end of a
// biased connection. The begin side shows the percentage itself, the far
// side its complement; the four canonical quarter and third values render
// as vulgar fractions.
func FormatPercent(percent int, begin bool) string {
	v := percent
	if !begin {
		v = 100 - percent
	}
	switch v {
	case 25:
		return "1/4"
	case 33:
		return "1/3"
	case 66:
		return "2/3"
	case 75:
		return "3/4"
	}
	return fmt.Sprintf("%d%%", v)
}
