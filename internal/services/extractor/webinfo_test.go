package extractor

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const sampleWatchPage = `<!DOCTYPE html>
<html>
<head>
<title>Test Video - YouTube</title>
<meta property="og:title" content="Test Video">
<meta property="og:description" content="A description">
<meta property="og:image" content="https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg">
<link itemprop="name" content="Test Channel">
</head>
<body></body>
</html>`

func TestParseWatchPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sampleWatchPage))
	if err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}

	info := parseWatchPage(doc, "dQw4w9WgXcQ")

	if info.ID != "dQw4w9WgXcQ" {
		t.Errorf("Expected ID dQw4w9WgXcQ, got %q", info.ID)
	}
	if info.Title != "Test Video" {
		t.Errorf("Expected title 'Test Video', got %q", info.Title)
	}
	if info.Description != "A description" {
		t.Errorf("Expected description, got %q", info.Description)
	}
	if info.ThumbnailURL != "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg" {
		t.Errorf("Unexpected thumbnail: %q", info.ThumbnailURL)
	}
	if info.Channel != "Test Channel" {
		t.Errorf("Expected channel 'Test Channel', got %q", info.Channel)
	}
}

func TestParseWatchPageTitleFallback(t *testing.T) {
	page := `<html><head><title>Fallback Title - YouTube</title></head><body></body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}

	info := parseWatchPage(doc, "dQw4w9WgXcQ")
	if info.Title != "Fallback Title" {
		t.Errorf("Expected title tag fallback, got %q", info.Title)
	}
}
