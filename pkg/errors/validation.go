package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// classNameRegex matches a single safe CSS-style class name.
var classNameRegex = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidateClassName validates a class name destined for the overlay node.
// Class names end up written verbatim into host documents, so the rules
// are intentionally conservative:
//   - No empty names
//   - No whitespace or control characters
//   - CSS identifier syntax only
//   - Maximum length of 128 characters
func ValidateClassName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidClass, "class name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidClass, "class name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidClass, "class name contains invalid characters")
		}
	}

	if !classNameRegex.MatchString(name) {
		return New(ErrCodeInvalidClass, "invalid class name: %q", name)
	}

	return nil
}

// ValidateClassList validates a list of overlay class names.
func ValidateClassList(classes []string) error {
	for _, c := range classes {
		if err := ValidateClassName(c); err != nil {
			return err
		}
	}
	return nil
}

// hexColorRegex matches 3- and 6-digit hex color specs.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColorSpec validates a series-entry color. Colors are written
// into style attributes, so only hex specs and simple keyword names are
// accepted.
func ValidateColorSpec(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}

	if hexColorRegex.MatchString(color) {
		return nil
	}

	// Keyword colors: letters only (red, steelblue, ...).
	for _, r := range color {
		if !unicode.IsLetter(r) {
			return New(ErrCodeInvalidColor, "invalid color spec: %q", color)
		}
	}
	if len(color) > 32 {
		return New(ErrCodeInvalidColor, "color keyword too long: %q", color)
	}

	return nil
}

// ValidateScenarioPath validates a scenario file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateScenarioPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidScenario, "scenario path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidScenario, "scenario path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidScenario, "scenario path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidScenario, "scenario path cannot contain path traversal sequences (..)")
	}

	return nil
}
