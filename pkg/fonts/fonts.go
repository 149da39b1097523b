// Package fonts provides the typefaces used by the renderers.
//
// The Go Mono typeface ships with golang.org/x/image, so no font files
// need to be embedded or located on disk at runtime.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	parseOnce sync.Once
	mono      *truetype.Font
	parseErr  error

	mu    sync.Mutex
	faces = map[float64]font.Face{}
)

// Mono returns a fixed-width face at the given point size. The typeface
// is parsed once and faces are cached per size, so callers may invoke
// this on every draw without paying for parsing or rasterizer setup.
func Mono(size float64) (font.Face, error) {
	parseOnce.Do(func() {
		mono, parseErr = truetype.Parse(gomono.TTF)
	})
	if parseErr != nil {
		return nil, fmt.Errorf("parsing Go Mono: %w", parseErr)
	}

	mu.Lock()
	defer mu.Unlock()
	if face, ok := faces[size]; ok {
		return face, nil
	}
	face := truetype.NewFace(mono, &truetype.Options{Size: size})
	faces[size] = face
	return face, nil
}

// FontFamily is the font-family name matching the embedded typeface,
// for renderers that emit text as markup rather than rasterizing it.
const FontFamily = "Go Mono"
