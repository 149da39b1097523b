// Package layout implements the constraint-graph model for Anchorage.
//
// A [Graph] owns a tree of rectangular [Widget] nodes rooted at a
// container. Widgets connect to each other through typed [Anchor] points
// (left, top, right, bottom, baseline, center). Connections are stored
// owner → target; two widgets that target each other's opposing anchors
// form a chain, which is laid out under one of three [ChainStyle]
// distribution modes.
//
// The package is purely a model: it knows nothing about rendering or
// interaction. The blueprint decorator (pkg/render/blueprint) annotates
// this model for drawing, and pkg/scene serializes it.
//
// Graph and its widgets are not safe for concurrent use without external
// synchronization; the editor mutates them on a single UI goroutine.
package layout
