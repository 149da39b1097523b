package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadJSON decodes a scene document from r.
//
// The input must be a JSON object with scene dimensions, a "widgets"
// array and an optional "connections" array:
//
//	{
//	  "width": 800, "height": 600,
//	  "widgets": [{"name": "button", "x": 10, "y": 10, "width": 120, "height": 40}],
//	  "connections": [{"from": "button", "from_anchor": "left",
//	                   "to": "root", "to_anchor": "left"}]
//	}
//
// ReadJSON validates only the JSON structure; use [ToGraph] to validate
// the constraint semantics. ReadJSON does not close r.
func ReadJSON(r io.Reader) (Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Scene{}, fmt.Errorf("decode: %w", err)
	}
	return s, nil
}

// WriteJSON encodes a scene as indented JSON and writes it to w. The
// output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(s Scene, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ImportFile reads a scene JSON file and converts it to a constraint
// graph. The error wraps the underlying cause with the file path.
func ImportFile(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	s, err := ReadJSON(f)
	if err != nil {
		return Scene{}, fmt.Errorf("import %s: %w", path, err)
	}
	return s, nil
}

// ExportFile writes a scene to a JSON file at path.
func ExportFile(s Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(s, f)
}
