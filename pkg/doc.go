// Package pkg provides the core libraries for Anchorage constraint
// layout editing and rendering.
//
// # Overview
//
// Anchorage turns scene documents (widget frames plus anchor-to-anchor
// constraint connections) into blueprint-style editor frames and
// node-link constraint diagrams. The pkg directory is organized into:
//
//  1. [layout] - Constraint graph domain logic (widgets, anchors,
//     connections, chains)
//  2. [scene] - JSON scene documents and graph conversion
//  3. [render] - Visualization (blueprint frames, node-link diagrams)
//  4. [pipeline] - Cached render orchestration shared by CLI and server
//  5. [cache] - Artifact cache backends and key derivation
//
// # Architecture
//
// The typical data flow through Anchorage:
//
//	Scene document (JSON)
//	         ↓
//	    [scene] package (parse + validate)
//	         ↓
//	    [layout] package (constraint graph: widgets, anchors, chains)
//	         ↓
//	    [render/blueprint] or [render/nodelink]
//	         ↓
//	    PNG/SVG/DOT output
//
// # Quick Start
//
// Load a scene and render a blueprint frame:
//
//	import (
//	    "os"
//	    "github.com/anchorlayer/anchorage/pkg/scene"
//	    "github.com/anchorlayer/anchorage/pkg/render/blueprint"
//	)
//
//	sc, _ := scene.ImportFile("login.json")
//	g, _ := scene.ToGraph(sc)
//
//	editor := blueprint.NewEditor(g)
//	if w, ok := g.Widget("button"); ok {
//	    editor.Select(w)
//	}
//
//	f, _ := os.Create("login.png")
//	defer f.Close()
//	editor.RenderPNG(f, 1, blueprint.Config{ShowTextUI: true})
//
// # Main Packages
//
// [layout] - The constraint graph: widgets with frames, anchors on each
// side plus baseline and center, connections with margins and bias,
// chain detection and chain-style cycling.
//
// [scene] - JSON scene documents, conversion to and from the constraint
// graph, and file import/export.
//
// [render/blueprint] - The editor frame renderer: widget frames, anchor
// markers driven by the visibility policy engine, constraint lines,
// resize handles, and widget action buttons.
//
// [render/nodelink] - Constraint diagrams as directed graphs using
// Graphviz.
//
// [pipeline] - Cached render orchestration. Artifacts are keyed by
// scene content hash plus render options.
//
// [cache] - File, Redis, and null cache backends with content-hash key
// derivation and retry support.
//
// [errors] - Structured error codes shared by the CLI and the API.
//
// [observability] - Hook interfaces for render, cache, and store
// instrumentation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//
// [layout]: https://pkg.go.dev/github.com/anchorlayer/anchorage/pkg/layout
// [scene]: https://pkg.go.dev/github.com/anchorlayer/anchorage/pkg/scene
// [render]: https://pkg.go.dev/github.com/anchorlayer/anchorage/pkg/render
// [render/blueprint]: https://pkg.go.dev/github.com/anchorlayer/anchorage/pkg/render/blueprint
// [render/nodelink]: https://pkg.go.dev/github.com/anchorlayer/anchorage/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/anchorlayer/anchorage/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/anchorlayer/anchorage/pkg/cache
// [errors]: https://pkg.go.dev/github.com/anchorlayer/anchorage/pkg/errors
// [observability]: https://pkg.go.dev/github.com/anchorlayer/anchorage/pkg/observability
package pkg
