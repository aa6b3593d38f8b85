package errors

import (
	"strings"
	"unicode"
)

// maxStemLength bounds output file stems taken from definition files.
const maxStemLength = 128

// ValidateFileStem checks that a diagram's output file stem is a plain
// basename. Stems come from user definition files and are joined with the
// output directory, so anything that could escape it is rejected.
func ValidateFileStem(stem string) error {
	if stem == "" {
		return New(ErrCodeInvalidName, "output file name cannot be empty")
	}
	if len(stem) > maxStemLength {
		return New(ErrCodeInvalidName, "output file name too long (max %d characters)", maxStemLength)
	}
	for _, r := range stem {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "output file name contains control characters")
		}
	}
	if stem == "." || stem == ".." {
		return New(ErrCodeInvalidName, "invalid output file name: %q", stem)
	}
	for _, pattern := range []string{"/", "\\", "\x00"} {
		if strings.Contains(stem, pattern) {
			return New(ErrCodeInvalidName, "output file name contains invalid characters: %q", pattern)
		}
	}
	return nil
}
