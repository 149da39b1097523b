// Package blueprint renders an interactive constraint-layout editor view.
//
// Each widget in a [layout.Graph] gets a [Decorator] holding its transient
// interaction state: selection, hover, anchor display policy, animation
// timers, and the widget's action buttons. An [Editor] owns one decorator
// per widget and composes them into full canvas frames, painted onto a
// fogleman/gg raster context through a [ViewTransform].
//
// Rendering is poll-driven and single-goroutine: nothing here spawns
// timers or goroutines. [Editor.Paint] returns true while any animation
// is still running, and the host loop keeps repainting at its frame rate
// until it returns false.
//
// # Overview of a frame
//
// For every widget, in graph order (selected widget last):
//
//  1. background fill with a gradient highlight (skipped for containers)
//  2. frame, resize handles, and size indicator
//  3. anchor markers, per the anchor display policy
//  4. constraint lines (baseline, left, top, right, bottom), soft
//     connections in a distinct stroke, plus bias percentage labels
//  5. action buttons below the widget (lock, delete constraints,
//     toggle chain style)
package blueprint
