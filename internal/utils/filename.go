package utils

import (
	"path/filepath"
	"strings"
)

// SanitizeFileName removes characters that are unsafe in Content-Disposition
// filenames or on common file systems, and enforces the given extension.
func SanitizeFileName(name string, ext string) string {
	invalidChars := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", "\r", "\n"}
	sanitized := name
	for _, char := range invalidChars {
		sanitized = strings.ReplaceAll(sanitized, char, "_")
	}
	sanitized = strings.TrimSpace(sanitized)
	if sanitized == "" {
		sanitized = "download"
	}

	if ext != "" && !strings.HasSuffix(strings.ToLower(sanitized), ext) {
		sanitized = strings.TrimSuffix(sanitized, filepath.Ext(sanitized))
		sanitized += ext
	}

	// Limit filename length
	if len(sanitized) > 200 {
		e := filepath.Ext(sanitized)
		base := sanitized[:200-len(e)]
		sanitized = base + e
	}

	return sanitized
}
