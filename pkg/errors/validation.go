package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateOutputPath validates the path a rendered image is written to.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
//   - Extension must be .png (case-insensitive)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path is a directory: %s", path)
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".png" {
		return New(ErrCodeInvalidPath, "unsupported output format %q (only .png is supported)", ext)
	}

	return nil
}

// ValidateTileSize checks that a tile size is a positive number of pixels.
func ValidateTileSize(size int) error {
	if size <= 0 {
		return New(ErrCodeInvalidSize, "tile size must be positive, got %d", size)
	}
	return nil
}
