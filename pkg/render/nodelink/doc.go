// Package nodelink renders constraint graphs as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz,
// where widgets appear as boxes and anchor connections as arrows. It's
// an alternative to the blueprint canvas for inspecting the constraint
// topology itself: which anchors target which, where chains run, and
// which connections are soft.
//
// # Usage
//
// Convert a graph to DOT format, then render it:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot)
//
// # DOT Format
//
// [ToDOT] produces Graphviz DOT source that can be rendered directly
// via [RenderSVG] or [RenderPNG], saved and processed with external
// Graphviz tools, or customized before rendering. Containers render
// with a doubled outline, soft connections as dashed grey edges, and
// each edge is labeled with its anchor pair.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process
// rendering.
package nodelink
