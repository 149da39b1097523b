package blueprint

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the full color set for one rendering style. Decorators
// derive their per-attribute [Theme] values from it; the remaining
// entries are used directly by the paint passes.
type Palette struct {
	// Background, per look.
	SubduedBackground     color.Color
	Background            color.Color
	HighlightedBackground color.Color
	SelectedBackground    color.Color

	// Widget frames, per look.
	SubduedFrames     color.Color
	Frames            color.Color
	HighlightedFrames color.Color
	SelectedFrames    color.Color

	// Text, per look (highlighted text reuses the normal color).
	SubduedText  color.Color
	Text         color.Color
	SelectedText color.Color

	// Constraint lines and anchor markers, per look.
	SubduedConstraints     color.Color
	Constraints            color.Color
	HighlightedConstraints color.Color
	SelectedConstraints    color.Color

	// SoftConstraint colors auto-inferred connections; they are also
	// drawn with a dashed stroke.
	SoftConstraint color.Color

	TooltipBackground color.Color
	TooltipText       color.Color

	ActionBackground         color.Color
	ActionSelectedBackground color.Color

	// DrawBackground gates the widget background pass entirely.
	DrawBackground bool
	// DrawWidgetInfos replaces the background fill with textual widget
	// annotations.
	DrawWidgetInfos bool
}

// BlueprintPalette returns the default blueprint-style palette: light
// strokes over a dark blue canvas.
func BlueprintPalette() *Palette {
	blue := color.NRGBA{R: 0x17, G: 0x3A, B: 0x63, A: 0xFF}
	line := color.NRGBA{R: 0xB2, G: 0xCC, B: 0xEE, A: 0xFF}
	return &Palette{
		SubduedBackground:     color.NRGBA{R: 0x10, G: 0x2B, B: 0x4A, A: 0xFF},
		Background:            blue,
		HighlightedBackground: color.NRGBA{R: 0x1E, G: 0x49, B: 0x7C, A: 0xFF},
		SelectedBackground:    color.NRGBA{R: 0x25, G: 0x58, B: 0x94, A: 0xFF},

		SubduedFrames:     color.NRGBA{R: 0x5E, G: 0x7C, B: 0xA3, A: 0xFF},
		Frames:            line,
		HighlightedFrames: color.NRGBA{R: 0xD8, G: 0xE6, B: 0xF8, A: 0xFF},
		SelectedFrames:    color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},

		SubduedText:  color.NRGBA{R: 0x7A, G: 0x93, B: 0xB5, A: 0xFF},
		Text:         line,
		SelectedText: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},

		SubduedConstraints:     color.NRGBA{R: 0x4E, G: 0x6C, B: 0x93, A: 0xFF},
		Constraints:            line,
		HighlightedConstraints: color.NRGBA{R: 0xE4, G: 0xEE, B: 0xFB, A: 0xFF},
		SelectedConstraints:    color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},

		SoftConstraint: color.NRGBA{R: 0x6F, G: 0xA8, B: 0x6F, A: 0xFF},

		TooltipBackground: color.NRGBA{R: 0xF2, G: 0xF2, B: 0xD0, A: 0xFF},
		TooltipText:       color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF},

		ActionBackground:         color.NRGBA{R: 0x2A, G: 0x52, B: 0x85, A: 0xFF},
		ActionSelectedBackground: color.NRGBA{R: 0x3E, G: 0x71, B: 0xB0, A: 0xFF},

		DrawBackground:  true,
		DrawWidgetInfos: false,
	}
}

// paletteFile is the TOML schema for palette overrides. Every field is
// optional; unset colors keep their blueprint defaults.
type paletteFile struct {
	Background struct {
		Subdued     string `toml:"subdued"`
		Normal      string `toml:"normal"`
		Highlighted string `toml:"highlighted"`
		Selected    string `toml:"selected"`
	} `toml:"background"`
	Frames struct {
		Subdued     string `toml:"subdued"`
		Normal      string `toml:"normal"`
		Highlighted string `toml:"highlighted"`
		Selected    string `toml:"selected"`
	} `toml:"frames"`
	Text struct {
		Subdued  string `toml:"subdued"`
		Normal   string `toml:"normal"`
		Selected string `toml:"selected"`
	} `toml:"text"`
	Constraints struct {
		Subdued     string `toml:"subdued"`
		Normal      string `toml:"normal"`
		Highlighted string `toml:"highlighted"`
		Selected    string `toml:"selected"`
		Soft        string `toml:"soft"`
	} `toml:"constraints"`
	Tooltip struct {
		Background string `toml:"background"`
		Text       string `toml:"text"`
	} `toml:"tooltip"`
	Actions struct {
		Background string `toml:"background"`
		Selected   string `toml:"selected"`
	} `toml:"actions"`
	DrawBackground  *bool `toml:"draw_background"`
	DrawWidgetInfos *bool `toml:"draw_widget_infos"`
}

// LoadPalette reads a TOML palette file and overlays it on the blueprint
// defaults. Colors are hex strings ("#RRGGBB").
func LoadPalette(path string) (*Palette, error) {
	var file paletteFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("loading palette %q: %w", path, err)
	}

	p := BlueprintPalette()
	fields := []struct {
		hex string
		dst *color.Color
	}{
		{file.Background.Subdued, &p.SubduedBackground},
		{file.Background.Normal, &p.Background},
		{file.Background.Highlighted, &p.HighlightedBackground},
		{file.Background.Selected, &p.SelectedBackground},
		{file.Frames.Subdued, &p.SubduedFrames},
		{file.Frames.Normal, &p.Frames},
		{file.Frames.Highlighted, &p.HighlightedFrames},
		{file.Frames.Selected, &p.SelectedFrames},
		{file.Text.Subdued, &p.SubduedText},
		{file.Text.Normal, &p.Text},
		{file.Text.Selected, &p.SelectedText},
		{file.Constraints.Subdued, &p.SubduedConstraints},
		{file.Constraints.Normal, &p.Constraints},
		{file.Constraints.Highlighted, &p.HighlightedConstraints},
		{file.Constraints.Selected, &p.SelectedConstraints},
		{file.Constraints.Soft, &p.SoftConstraint},
		{file.Tooltip.Background, &p.TooltipBackground},
		{file.Tooltip.Text, &p.TooltipText},
		{file.Actions.Background, &p.ActionBackground},
		{file.Actions.Selected, &p.ActionSelectedBackground},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return nil, fmt.Errorf("loading palette %q: bad color %q: %w", path, f.hex, err)
		}
		*f.dst = c
	}
	if file.DrawBackground != nil {
		p.DrawBackground = *file.DrawBackground
	}
	if file.DrawWidgetInfos != nil {
		p.DrawWidgetInfos = *file.DrawWidgetInfos
	}
	return p, nil
}
