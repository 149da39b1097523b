package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/anchorlayer/anchorage/pkg/cache"
	"github.com/anchorlayer/anchorage/pkg/errors"
	"github.com/anchorlayer/anchorage/pkg/observability"
	"github.com/anchorlayer/anchorage/pkg/render/blueprint"
	"github.com/anchorlayer/anchorage/pkg/render/nodelink"
	"github.com/anchorlayer/anchorage/pkg/scene"
)

// Runner renders scenes through the artifact cache.
type Runner struct {
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger

	// TTL bounds cache entry lifetime. Defaults to DefaultTTL.
	TTL time.Duration
}

// NewRunner creates a Runner. A nil cache disables caching, a nil keyer
// falls back to the default key scheme, and a nil logger falls back to
// the package default.
func NewRunner(c cache.Cache, k cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if k == nil {
		k = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{cache: c, keyer: k, logger: logger, TTL: DefaultTTL}
}

// RenderFrame renders a scene as a blueprint PNG frame, serving from
// the cache when the scene and options match a previous render.
func (r *Runner) RenderFrame(ctx context.Context, sc scene.Scene, opts FrameOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	hash, err := sceneHash(sc)
	if err != nil {
		return nil, err
	}
	key := r.keyer.FrameKey(hash, cache.FrameKeyOpts{
		Scale:              opts.Scale,
		ShowAllConstraints: opts.ShowAllConstraints,
		ShowTextUI:         opts.ShowTextUI,
		Selected:           opts.Selected,
	})

	if data, ok := r.lookup(ctx, key, "frame"); ok {
		return &Result{Data: data, SceneHash: hash, CacheHit: true}, nil
	}

	start := time.Now()
	observability.Render().OnFrameStart(ctx, sc.ID)
	data, err := renderFrame(sc, opts)
	elapsed := time.Since(start)
	observability.Render().OnFrameComplete(ctx, sc.ID, len(data), elapsed, err)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, data, "frame")
	return &Result{Data: data, SceneHash: hash, Duration: elapsed}, nil
}

// RenderDiagram renders a scene's constraint graph as a node-link
// diagram in the requested format.
func (r *Runner) RenderDiagram(ctx context.Context, sc scene.Scene, opts DiagramOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	hash, err := sceneHash(sc)
	if err != nil {
		return nil, err
	}
	key := r.keyer.DiagramKey(hash, cache.DiagramKeyOpts{
		Format:   opts.Format,
		Detailed: opts.Detailed,
	})

	if data, ok := r.lookup(ctx, key, "diagram"); ok {
		return &Result{Data: data, SceneHash: hash, CacheHit: true}, nil
	}

	start := time.Now()
	observability.Render().OnDiagramStart(ctx, sc.ID, opts.Format)
	data, err := renderDiagram(sc, opts)
	elapsed := time.Since(start)
	observability.Render().OnDiagramComplete(ctx, sc.ID, opts.Format, elapsed, err)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, data, "diagram")
	return &Result{Data: data, SceneHash: hash, Duration: elapsed}, nil
}

// lookup checks the cache for key, reporting the hit or miss.
func (r *Runner) lookup(ctx context.Context, key, kind string) ([]byte, bool) {
	data, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("cache lookup", "kind", kind, "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, kind)
	return data, true
}

// store writes a rendered artifact to the cache. Failures are logged
// and swallowed: a broken cache degrades to rendering every request.
func (r *Runner) store(ctx context.Context, key string, data []byte, kind string) {
	if err := r.cache.Set(ctx, key, data, r.TTL); err != nil {
		r.logger.Warn("cache store", "kind", kind, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}

// renderFrame builds the constraint graph and paints a single frame.
func renderFrame(sc scene.Scene, opts FrameOptions) ([]byte, error) {
	g, err := scene.ToGraph(sc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "building constraint graph")
	}

	editor := blueprint.NewEditor(g)
	if opts.Selected != "" {
		w, ok := g.Widget(opts.Selected)
		if !ok {
			return nil, errors.New(errors.ErrCodeWidgetNotFound, "unknown widget: %s", opts.Selected)
		}
		editor.Select(w)
	}

	cfg := blueprint.Config{
		ShowAllConstraints: opts.ShowAllConstraints,
		ShowTextUI:         opts.ShowTextUI,
	}
	var buf bytes.Buffer
	if err := editor.RenderPNG(&buf, opts.Scale, cfg); err != nil {
		return nil, fmt.Errorf("rendering frame: %w", err)
	}
	return buf.Bytes(), nil
}

// renderDiagram converts the constraint graph to DOT and, for svg and
// png, lays it out with Graphviz.
func renderDiagram(sc scene.Scene, opts DiagramOptions) ([]byte, error) {
	g, err := scene.ToGraph(sc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "building constraint graph")
	}

	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed})
	switch opts.Format {
	case "dot":
		return []byte(dot), nil
	case "png":
		return nodelink.RenderPNG(dot)
	default:
		return nodelink.RenderSVG(dot)
	}
}

// sceneHash computes the content hash that keys a scene's rendered
// artifacts.
func sceneHash(sc scene.Scene) (string, error) {
	data, err := json.Marshal(sc)
	if err != nil {
		return "", fmt.Errorf("hashing scene: %w", err)
	}
	return cache.Hash(data), nil
}
