package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateSceneID validates a scene identifier for safety and correctness.
// Scene IDs name files on disk and documents in the store, so the rules
// are intentionally conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
//
// Generated IDs are UUIDs and always pass; the checks exist for IDs
// arriving over the API.
func ValidateSceneID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidSceneID, "scene ID cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidSceneID, "scene ID too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSceneID, "scene ID contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidSceneID, "scene ID contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// widgetNameRegex matches valid widget names: an identifier-style head
// followed by letters, digits, underscores, dots, or dashes.
var widgetNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidateWidgetName validates a widget name from a scene document.
func ValidateWidgetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidScene, "widget name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidScene, "widget name too long (max 256 characters)")
	}

	if !widgetNameRegex.MatchString(name) {
		return New(ErrCodeInvalidScene, "invalid widget name: %q", name)
	}

	return nil
}

// diagramFormats are the output formats the diagram renderer supports.
var diagramFormats = map[string]bool{
	"dot": true,
	"svg": true,
	"png": true,
}

// ValidateDiagramFormat validates a constraint-diagram output format.
func ValidateDiagramFormat(format string) error {
	if !diagramFormats[format] {
		return New(ErrCodeInvalidFormat, "unsupported diagram format: %q (expected dot, svg, or png)", format)
	}
	return nil
}

// MaxRenderScale bounds the frame render scale. A request-supplied scale
// multiplies the allocated image dimensions, so an unbounded value would
// let a single request exhaust memory.
const MaxRenderScale = 8.0

// ValidateRenderScale validates a frame render scale factor.
func ValidateRenderScale(scale float64) error {
	if scale <= 0 {
		return New(ErrCodeInvalidScale, "render scale must be positive, got %g", scale)
	}
	if scale > MaxRenderScale {
		return New(ErrCodeInvalidScale, "render scale too large: %g (max %g)", scale, MaxRenderScale)
	}
	return nil
}
