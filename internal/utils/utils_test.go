package utils

import (
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		ext      string
		expected string
	}{
		{
			name:     "Clean name",
			input:    "My Video",
			ext:      ".mp4",
			expected: "My Video.mp4",
		},
		{
			name:     "Path separators replaced",
			input:    "a/b\\c",
			ext:      ".mp4",
			expected: "a_b_c.mp4",
		},
		{
			name:     "Quotes and angle brackets replaced",
			input:    `say "hi" <now>`,
			ext:      ".m4a",
			expected: "say _hi_ _now_.m4a",
		},
		{
			name:     "Existing extension kept",
			input:    "clip.mp4",
			ext:      ".mp4",
			expected: "clip.mp4",
		},
		{
			name:     "Wrong extension swapped",
			input:    "clip.avi",
			ext:      ".mp4",
			expected: "clip.mp4",
		},
		{
			name:     "Empty name gets a default",
			input:    "",
			ext:      ".mp4",
			expected: "download.mp4",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeFileName(tc.input, tc.ext); got != tc.expected {
				t.Errorf("SanitizeFileName(%q, %q) = %q, expected %q", tc.input, tc.ext, got, tc.expected)
			}
		})
	}
}

func TestSanitizeFileNameLength(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := SanitizeFileName(long, ".mp4")
	if len(got) > 200 {
		t.Errorf("Expected filename capped at 200 characters, got %d", len(got))
	}
	if !strings.HasSuffix(got, ".mp4") {
		t.Errorf("Expected the extension to survive truncation: %q", got)
	}
}

func TestGenerateIDs(t *testing.T) {
	correlationID := GenerateCorrelationID()
	if correlationID == "" {
		t.Error("Expected non-empty correlation ID")
	}

	requestID := GenerateRequestID()
	if requestID == "" {
		t.Error("Expected non-empty request ID")
	}

	// Check that IDs are different
	if correlationID == requestID {
		t.Error("Correlation ID and request ID should be different")
	}
}
