// Package scene is the canonical serialization format for constraint
// layouts. A [Scene] captures one constraint graph (widgets, anchor
// connections, chain styles) plus document identity, and is used for
// files, API responses and storage.
//
// The format is human-readable and designed for round-trip fidelity:
// import → edit → export → re-import produces identical results.
package scene
