package pipeline

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/anchorlayer/anchorage/pkg/cache"
	"github.com/anchorlayer/anchorage/pkg/errors"
	"github.com/anchorlayer/anchorage/pkg/scene"
)

func testScene() scene.Scene {
	return scene.Scene{
		ID:     "pipeline-fixture",
		Width:  400,
		Height: 300,
		Widgets: []scene.Widget{
			{Name: "title", X: 40, Y: 30, Width: 160, Height: 40},
			{Name: "button", X: 40, Y: 100, Width: 120, Height: 48},
		},
		Connections: []scene.Connection{
			{From: "button", FromAnchor: scene.AnchorTop, To: "title", ToAnchor: scene.AnchorBottom, Creator: scene.CreatorUser},
		},
	}
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(fc, nil, log.New(io.Discard))
}

func TestRunnerFrameCache(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	sc := testScene()

	first, err := r.RenderFrame(ctx, sc, FrameOptions{Scale: 1})
	if err != nil {
		t.Fatalf("RenderFrame() error: %v", err)
	}
	if first.CacheHit {
		t.Error("first render should not be a cache hit")
	}
	if !bytes.HasPrefix(first.Data, []byte("\x89PNG")) {
		t.Error("frame is not a PNG")
	}

	second, err := r.RenderFrame(ctx, sc, FrameOptions{Scale: 1})
	if err != nil {
		t.Fatalf("RenderFrame() error: %v", err)
	}
	if !second.CacheHit {
		t.Error("second render should be a cache hit")
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Error("cached frame differs from rendered frame")
	}
	if first.SceneHash != second.SceneHash {
		t.Errorf("scene hash changed: %s vs %s", first.SceneHash, second.SceneHash)
	}
}

func TestRunnerFrameOptionsKeySeparately(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	sc := testScene()

	if _, err := r.RenderFrame(ctx, sc, FrameOptions{Scale: 1}); err != nil {
		t.Fatal(err)
	}

	// Different options must not reuse the previous artifact.
	res, err := r.RenderFrame(ctx, sc, FrameOptions{Scale: 1, ShowTextUI: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheHit {
		t.Error("changed options should miss the cache")
	}
}

func TestRunnerFrameValidation(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	sc := testScene()

	_, err := r.RenderFrame(ctx, sc, FrameOptions{Scale: -1})
	if !errors.Is(err, errors.ErrCodeInvalidScale) {
		t.Errorf("negative scale error = %v, want INVALID_SCALE", err)
	}

	_, err = r.RenderFrame(ctx, sc, FrameOptions{Selected: "ghost"})
	if !errors.Is(err, errors.ErrCodeWidgetNotFound) {
		t.Errorf("unknown widget error = %v, want WIDGET_NOT_FOUND", err)
	}
}

func TestRunnerFrameDefaultScale(t *testing.T) {
	opts := FrameOptions{}
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if opts.Scale != 1 {
		t.Errorf("default scale = %g, want 1", opts.Scale)
	}
}

func TestRunnerDiagramDOT(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	sc := testScene()

	first, err := r.RenderDiagram(ctx, sc, DiagramOptions{Format: "dot"})
	if err != nil {
		t.Fatalf("RenderDiagram() error: %v", err)
	}
	dot := string(first.Data)
	if !strings.Contains(dot, "digraph constraints") {
		t.Error("DOT output missing digraph declaration")
	}
	if !strings.Contains(dot, `"button" -> "title"`) {
		t.Error("DOT output missing connection edge")
	}

	second, err := r.RenderDiagram(ctx, sc, DiagramOptions{Format: "dot"})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second diagram render should be a cache hit")
	}
}

func TestRunnerDiagramFormatValidation(t *testing.T) {
	r := newTestRunner(t)

	_, err := r.RenderDiagram(context.Background(), testScene(), DiagramOptions{Format: "pdf"})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestRunnerNilDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.TTL != DefaultTTL {
		t.Errorf("TTL = %v, want %v", r.TTL, DefaultTTL)
	}

	// A nil cache degrades to rendering every call.
	res, err := r.RenderFrame(context.Background(), testScene(), FrameOptions{})
	if err != nil {
		t.Fatalf("RenderFrame() error: %v", err)
	}
	if res.CacheHit {
		t.Error("null cache should never hit")
	}
}
