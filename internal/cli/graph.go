package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/anchorlayer/anchorage/pkg/errors"
	"github.com/anchorlayer/anchorage/pkg/pipeline"
	"github.com/anchorlayer/anchorage/pkg/scene"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string // output file path (default: input with format extension)
	format   string // output format: dot, svg, png
	detailed bool   // include frame geometry and visibility in labels
	noCache  bool   // bypass the rendered-diagram cache
}

// graphCommand creates the graph command for rendering a scene's
// constraint graph as a node-link diagram.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "graph [scene.json]",
		Short: "Render a scene's constraint graph as a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGraphFormat(opts.format); err != nil {
				return err
			}
			return runGraph(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include geometry and visibility in labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the diagram cache")

	return cmd
}

// validateGraphFormat checks that the format is dot, svg, or png.
func validateGraphFormat(f string) error {
	return apperrors.ValidateDiagramFormat(f)
}

// runGraph converts the scene to DOT and renders the requested format.
func runGraph(ctx context.Context, input string, opts *graphOpts) error {
	logger := loggerFromContext(ctx)

	sc, err := scene.ImportFile(input)
	if err != nil {
		return err
	}

	diagramCache, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer diagramCache.Close()
	runner := pipeline.NewRunner(diagramCache, nil, logger)

	diagOpts := pipeline.DiagramOptions{Format: opts.format, Detailed: opts.detailed}

	var res *pipeline.Result
	if opts.format == "dot" {
		res, err = runner.RenderDiagram(ctx, sc, diagOpts)
		if err != nil {
			return err
		}
	} else {
		// Graphviz layout can take a while on dense scenes.
		spin := newSpinnerWithContext(ctx, "Laying out diagram")
		spin.Start()
		res, err = runner.RenderDiagram(ctx, sc, diagOpts)
		if err != nil {
			spin.StopWithError("Diagram layout failed")
			return err
		}
		spin.Stop()
	}

	if res.CacheHit {
		logger.Debugf("Diagram served from cache (scene %s)", res.SceneHash[:12])
	} else {
		logger.Debugf("Generated %s: %d bytes in %s", opts.format, len(res.Data), res.Duration)
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, res.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	printSuccess("Rendered constraint diagram")
	printFile(outputPath)
	return nil
}
