package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/anchorlayer/anchorage/pkg/layout"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes frame geometry and visibility in widget labels.
	// When false, only the widget name is shown.
	Detailed bool
}

// ToDOT converts a constraint graph to Graphviz DOT format. The
// resulting DOT string can be rendered using [RenderSVG] or
// [RenderPNG].
//
// Soft (auto-inferred) connections are rendered as dashed grey edges;
// containers get a doubled outline.
func ToDOT(g *layout.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph constraints {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, w := range g.Widgets() {
		label := fmtLabel(w, opts.Detailed)
		attrs := fmtAttrs(w, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", w.Name(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, w := range g.Widgets() {
		for _, a := range w.Anchors() {
			if !a.IsConnected() {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n",
				w.Name(), a.Target().Owner().Name(),
				strings.Join(edgeAttrs(a), ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(w *layout.Widget, detailed bool) string {
	if !detailed {
		return w.Name()
	}
	f := w.Frame()
	parts := []string{fmt.Sprintf("%d,%d %dx%d", f.X, f.Y, f.Width, f.Height)}
	if w.Visibility() != layout.Visible {
		parts = append(parts, w.Visibility().String())
	}
	if w.InHorizontalChain() {
		parts = append(parts, "h-chain: "+w.HorizontalChainStyle().String())
	}
	if w.InVerticalChain() {
		parts = append(parts, "v-chain: "+w.VerticalChainStyle().String())
	}
	return w.Name() + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(w *layout.Widget, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if w.IsRoot() {
		attrs = append(attrs, "fillcolor=lightblue")
	} else if w.IsContainer() {
		attrs = append(attrs, "peripheries=2")
	}
	if w.Visibility() == layout.Gone {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

func edgeAttrs(a *layout.Anchor) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", a.Type().String()+"→"+a.Target().Type().String()),
		"fontsize=10",
	}
	if a.Creator() == layout.CreatorAuto {
		attrs = append(attrs, "style=dashed", "color=grey", "fontcolor=grey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
