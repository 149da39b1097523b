// Package render provides visualization rendering for constraint
// graphs.
//
// # Overview
//
// This package contains the renderers that turn a constraint graph into
// visual output:
//
//   - Blueprint editor frames (in [blueprint] subpackage)
//   - Node-link constraint diagrams (in [nodelink] subpackage)
//
// # Blueprint Frames
//
// The [blueprint] subpackage paints the editor view: widget frames with
// anchor markers, constraint lines, resize handles, and widget action
// buttons, layered the way an interactive editor composes them. Anchor
// marker visibility follows a per-widget policy driven by selection,
// hover, and an animation progress timer.
//
//	editor := blueprint.NewEditor(g)
//	editor.RenderPNG(w, 2.0, blueprint.Config{ShowAllConstraints: true})
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the constraint graph as a directed
// graph using Graphviz. Widgets appear as boxes; connections appear as
// arrows labeled with anchors and margins.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [blueprint]: github.com/anchorlayer/anchorage/pkg/render/blueprint
// [nodelink]: github.com/anchorlayer/anchorage/pkg/render/nodelink
package render
