package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/anchorlayer/anchorage/pkg/scene"
)

func writeTestScene(t *testing.T) string {
	t.Helper()
	sc := scene.Scene{
		Name:   "fixture",
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
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := scene.ExportFile(sc, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRender(t *testing.T) {
	input := writeTestScene(t)
	output := filepath.Join(filepath.Dir(input), "out.png")

	opts := renderOpts{output: output, scale: 1, selected: "button"}
	if err := runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG file")
	}
}

func TestRunRenderDefaultOutput(t *testing.T) {
	input := writeTestScene(t)

	opts := renderOpts{scale: 1}
	if err := runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	want := filepath.Join(filepath.Dir(input), "fixture.png")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("default output %s missing: %v", want, err)
	}
}

func TestRunRenderUnknownWidget(t *testing.T) {
	input := writeTestScene(t)

	opts := renderOpts{scale: 1, selected: "ghost"}
	if err := runRender(context.Background(), input, &opts); err == nil {
		t.Error("runRender() with unknown selected widget should fail")
	}
}

func TestRunRenderMissingFile(t *testing.T) {
	opts := renderOpts{scale: 1}
	if err := runRender(context.Background(), "does-not-exist.json", &opts); err == nil {
		t.Error("runRender() with missing input should fail")
	}
}
