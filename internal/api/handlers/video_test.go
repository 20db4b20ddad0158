package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytgrab/internal/cache"
	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/models"
	"github.com/denisAlshanov/ytgrab/internal/services/alternatives"
	"github.com/denisAlshanov/ytgrab/internal/services/extractor"
	"github.com/denisAlshanov/ytgrab/internal/services/video"
)

type stubSource struct {
	info      *models.VideoInfo
	err       error
	directErr error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) GetVideoInfo(ctx context.Context, videoID string) (*models.VideoInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.info, nil
}

func (s *stubSource) GetDirectURL(ctx context.Context, videoID string, kind models.MediaKind, quality string) (*models.DirectURL, error) {
	if s.directErr != nil {
		return nil, s.directErr
	}
	return &models.DirectURL{
		URL:      "https://example.com/media.mp4",
		MimeType: "video/mp4",
		Source:   "stub",
	}, nil
}

func newTestRouter(t *testing.T, source extractor.Source) (*gin.Engine, *cache.Cache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := cache.New(time.Minute)
	cfg := &config.CacheConfig{
		InfoTTL:       time.Minute,
		DirectURLTTL:  30 * time.Second,
		SweepInterval: time.Minute,
	}
	service := video.NewService(extractor.NewChain(source), c, cfg)
	handler := NewVideoHandler(service, alternatives.NewRegistry(nil), &config.ExtractorConfig{
		StreamTimeout:   time.Minute,
		StreamBufferLen: 32 * 1024,
	})

	engine := gin.New()
	engine.GET("/info", handler.Info)
	engine.GET("/stream", handler.Stream)
	engine.GET("/direct", handler.Direct)
	engine.GET("/alternatives", handler.Alternatives)

	return engine, c
}

func doRequest(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestInfoMissingID(t *testing.T) {
	engine, c := newTestRouter(t, &stubSource{})
	defer c.Close()

	w := doRequest(engine, "/info")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["error"] == nil {
		t.Error("Expected an error envelope")
	}
}

func TestInfoInvalidID(t *testing.T) {
	engine, c := newTestRouter(t, &stubSource{})
	defer c.Close()

	w := doRequest(engine, "/info?id=short")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestInfoSuccess(t *testing.T) {
	source := &stubSource{info: &models.VideoInfo{
		ID:      "dQw4w9WgXcQ",
		Title:   "Test Video",
		Channel: "Test Channel",
		Source:  "stub",
	}}
	engine, c := newTestRouter(t, source)
	defer c.Close()

	w := doRequest(engine, "/info?id=dQw4w9WgXcQ")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body models.VideoInfoResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Title != "Test Video" {
		t.Errorf("Unexpected title: %q", body.Title)
	}
	if body.Cached {
		t.Error("First fetch should not be cached")
	}
}

func TestInfoAcceptsURL(t *testing.T) {
	source := &stubSource{info: &models.VideoInfo{ID: "dQw4w9WgXcQ", Source: "stub"}}
	engine, c := newTestRouter(t, source)
	defer c.Close()

	w := doRequest(engine, "/info?url=https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3DdQw4w9WgXcQ")
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for URL input, got %d: %s", w.Code, w.Body.String())
	}
}

func TestInfoVideoNotFound(t *testing.T) {
	engine, c := newTestRouter(t, &stubSource{err: extractor.ErrVideoNotFound, directErr: extractor.ErrVideoNotFound})
	defer c.Close()

	w := doRequest(engine, "/info?id=dQw4w9WgXcQ")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestDirectSuccess(t *testing.T) {
	engine, c := newTestRouter(t, &stubSource{info: &models.VideoInfo{ID: "dQw4w9WgXcQ"}})
	defer c.Close()

	w := doRequest(engine, "/direct?id=dQw4w9WgXcQ")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body models.DirectURLResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.DirectURL != "https://example.com/media.mp4" {
		t.Errorf("Unexpected URL: %q", body.DirectURL)
	}
}

func TestDirectRedirect(t *testing.T) {
	engine, c := newTestRouter(t, &stubSource{info: &models.VideoInfo{ID: "dQw4w9WgXcQ"}})
	defer c.Close()

	w := doRequest(engine, "/direct?id=dQw4w9WgXcQ&redirect=true")
	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "https://example.com/media.mp4" {
		t.Errorf("Unexpected redirect target: %q", loc)
	}
}

func TestStreamRedirectsToDirectURL(t *testing.T) {
	// The stub cannot stream, so the handler falls back to the resolved
	// direct URL
	engine, c := newTestRouter(t, &stubSource{info: &models.VideoInfo{ID: "dQw4w9WgXcQ"}})
	defer c.Close()

	w := doRequest(engine, "/stream?id=dQw4w9WgXcQ")
	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "https://example.com/media.mp4" {
		t.Errorf("Unexpected redirect target: %q", loc)
	}
}

func TestStreamRedirectsToConverterWhenAllElseFails(t *testing.T) {
	source := &stubSource{
		err:       context.DeadlineExceeded,
		directErr: context.DeadlineExceeded,
	}
	engine, c := newTestRouter(t, source)
	defer c.Close()

	w := doRequest(engine, "/stream?id=dQw4w9WgXcQ")
	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc == "" {
		t.Error("Expected a converter redirect target")
	}
}

func TestAlternatives(t *testing.T) {
	engine, c := newTestRouter(t, &stubSource{})
	defer c.Close()

	w := doRequest(engine, "/alternatives?id=dQw4w9WgXcQ")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body models.AlternativesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("Unexpected video ID: %q", body.VideoID)
	}
	if len(body.Alternatives) == 0 {
		t.Error("Expected at least one alternative link")
	}
}
