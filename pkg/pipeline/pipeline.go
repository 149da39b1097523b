// Package pipeline orchestrates cached scene rendering.
//
// A Runner ties together scene-to-graph conversion, the blueprint and
// node-link renderers, and the artifact cache, so the CLI and the
// preview server share one render path. Artifacts are keyed by the
// scene's content hash plus the render options, which makes stale
// cache entries impossible: editing a scene changes its hash and
// therefore its keys.
package pipeline

import (
	"time"

	"github.com/anchorlayer/anchorage/pkg/errors"
)

// DefaultTTL bounds how long rendered artifacts stay cached. Content
// hashing already guarantees freshness; the TTL only caps storage for
// scenes that are no longer edited.
const DefaultTTL = time.Hour

// FrameOptions controls a blueprint frame render.
type FrameOptions struct {
	// Scale is the device pixel scale factor. Zero means 1.
	Scale float64

	// ShowAllConstraints renders constraints of unselected widgets.
	ShowAllConstraints bool

	// ShowTextUI renders widget names inside their frames.
	ShowTextUI bool

	// Selected names the widget to render as selected. Empty renders
	// with no selection.
	Selected string
}

// Validate checks the options and fills in defaults.
func (o *FrameOptions) Validate() error {
	if o.Scale == 0 {
		o.Scale = 1
	}
	return errors.ValidateRenderScale(o.Scale)
}

// DiagramOptions controls a constraint-diagram render.
type DiagramOptions struct {
	// Format selects the output: dot, svg, or png.
	Format string

	// Detailed adds geometry and visibility to node labels.
	Detailed bool
}

// Validate checks the options.
func (o *DiagramOptions) Validate() error {
	return errors.ValidateDiagramFormat(o.Format)
}

// Result holds a rendered artifact and how it was produced.
type Result struct {
	// Data is the rendered artifact (PNG, SVG, or DOT bytes).
	Data []byte

	// SceneHash is the content hash of the rendered scene.
	SceneHash string

	// CacheHit reports whether the artifact came from the cache.
	CacheHit bool

	// Duration is the render time. Zero on a cache hit.
	Duration time.Duration
}
