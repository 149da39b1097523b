package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anchorlayer/anchorage/pkg/render/blueprint"
	"github.com/anchorlayer/anchorage/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output PNG path (default: input with .png extension)
	scale    float64 // render scale factor
	showAll  bool    // show constraints of unselected widgets
	showText bool    // render widget names inside frames
	selected string  // widget to render as selected
	palette  string  // palette TOML file overriding the blueprint colors
	icons    string  // directory with action icon PNGs
}

// renderCommand creates the render command for generating blueprint
// frames from scene files.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: 1}

	cmd := &cobra.Command{
		Use:   "render [scene.json]",
		Short: "Render a scene as a blueprint PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.scale <= 0 {
				return fmt.Errorf("invalid scale: %v (must be positive)", opts.scale)
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG file (default: input name with .png)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "render scale factor")
	cmd.Flags().BoolVar(&opts.showAll, "all", false, "show constraints of unselected widgets")
	cmd.Flags().BoolVar(&opts.showText, "text", false, "render widget names inside frames")
	cmd.Flags().StringVar(&opts.selected, "selected", "", "widget to render as selected")
	cmd.Flags().StringVar(&opts.palette, "palette", "", "palette TOML file")
	cmd.Flags().StringVar(&opts.icons, "icons", "", "directory with action icon PNGs")

	return cmd
}

// runRender loads the scene, builds the constraint graph, and paints a
// single blueprint frame to the output file.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	sc, err := scene.ImportFile(input)
	if err != nil {
		return err
	}
	g, err := scene.ToGraph(sc)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded scene: %d widgets, %d connections", len(sc.Widgets), len(sc.Connections))

	editorOpts, err := buildEditorOpts(opts)
	if err != nil {
		return err
	}
	editor := blueprint.NewEditor(g, editorOpts...)
	if opts.selected != "" {
		w, ok := g.Widget(opts.selected)
		if !ok {
			return fmt.Errorf("unknown widget: %s", opts.selected)
		}
		editor.Select(w)
	}

	cfg := blueprint.Config{
		ShowAllConstraints: opts.showAll,
		ShowTextUI:         opts.showText,
	}
	var buf bytes.Buffer
	if err := editor.RenderPNG(&buf, opts.scale, cfg); err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	prog.done(fmt.Sprintf("Rendered %s", outputPath))
	printSuccess("Rendered blueprint frame")
	printFile(outputPath)
	printStats(len(sc.Widgets), len(sc.Connections), false)
	printNewline()
	printNextStep("Render the constraint diagram", fmt.Sprintf("%s graph %s", appName, input))
	return nil
}

// buildEditorOpts converts the palette and icon flags into editor
// options.
func buildEditorOpts(opts *renderOpts) ([]blueprint.EditorOption, error) {
	var editorOpts []blueprint.EditorOption
	if opts.palette != "" {
		p, err := blueprint.LoadPalette(opts.palette)
		if err != nil {
			return nil, err
		}
		editorOpts = append(editorOpts, blueprint.WithPalette(p))
	}
	if opts.icons != "" {
		editorOpts = append(editorOpts, blueprint.WithIcons(blueprint.LoadIcons(opts.icons)))
	}
	return editorOpts, nil
}
