package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// ValidatePath validates an input document path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "path too long (max 500 characters)")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}
	return nil
}

// ValidateExtension checks that path ends in one of the allowed extensions.
// Extensions are compared case-insensitively and without the leading dot.
func ValidateExtension(path string, allowed ...string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if slices.Contains(allowed, ext) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported file type %q (must be one of %s)",
		filepath.Ext(path), strings.Join(allowed, ", "))
}

// ValidateFormats checks that every requested output format is allowed.
func ValidateFormats(formats []string, allowed ...string) error {
	for _, f := range formats {
		if !slices.Contains(allowed, f) {
			return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)",
				f, strings.Join(allowed, ", "))
		}
	}
	return nil
}
