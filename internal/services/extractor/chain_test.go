package extractor

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/denisAlshanov/ytgrab/internal/models"
)

type fakeSource struct {
	name      string
	info      *models.VideoInfo
	err       error
	streamErr error
	calls     int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) GetVideoInfo(ctx context.Context, videoID string) (*models.VideoInfo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func (f *fakeSource) OpenStream(ctx context.Context, videoID string, kind models.MediaKind, quality string) (io.ReadCloser, *models.StreamInfo, error) {
	f.calls++
	if f.streamErr != nil {
		return nil, nil, f.streamErr
	}
	return io.NopCloser(strings.NewReader("data")), &models.StreamInfo{
		FileName: "test.mp4",
		MimeType: "video/mp4",
		Source:   f.name,
	}, nil
}

func TestChainFallsBackOnFailure(t *testing.T) {
	first := &fakeSource{name: "first", err: errors.New("boom")}
	second := &fakeSource{name: "second", info: &models.VideoInfo{ID: "dQw4w9WgXcQ", Title: "ok", Source: "second"}}
	chain := NewChain(first, second)

	info, err := chain.GetVideoInfo(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if info.Source != "second" {
		t.Errorf("Expected second source to answer, got %q", info.Source)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Errorf("Expected one call each, got %d and %d", first.calls, second.calls)
	}
}

func TestChainStopsOnFirstSuccess(t *testing.T) {
	first := &fakeSource{name: "first", info: &models.VideoInfo{ID: "dQw4w9WgXcQ", Source: "first"}}
	second := &fakeSource{name: "second"}
	chain := NewChain(first, second)

	if _, err := chain.GetVideoInfo(context.Background(), "dQw4w9WgXcQ"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if second.calls != 0 {
		t.Error("Second source should not be consulted after a success")
	}
}

func TestChainStopsOnVideoNotFound(t *testing.T) {
	first := &fakeSource{name: "first", err: ErrVideoNotFound}
	second := &fakeSource{name: "second", info: &models.VideoInfo{}}
	chain := NewChain(first, second)

	_, err := chain.GetVideoInfo(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("Expected ErrVideoNotFound, got %v", err)
	}
	if second.calls != 0 {
		t.Error("A definitive not-found must not fall through to later sources")
	}
}

func TestChainSkipsUnavailableSources(t *testing.T) {
	first := &fakeSource{name: "first", err: ErrSourceUnavailable}
	second := &fakeSource{name: "second", info: &models.VideoInfo{Source: "second"}}
	chain := NewChain(first, second)

	info, err := chain.GetVideoInfo(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if info.Source != "second" {
		t.Errorf("Expected second source, got %q", info.Source)
	}
}

func TestChainExhaustedError(t *testing.T) {
	first := &fakeSource{name: "first", err: errors.New("network down")}
	second := &fakeSource{name: "second", err: errors.New("parse failed")}
	chain := NewChain(first, second)

	_, err := chain.GetVideoInfo(context.Background(), "dQw4w9WgXcQ")
	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Expected ExhaustedError, got %v", err)
	}
	if len(exhausted.Attempts) != 2 {
		t.Errorf("Expected 2 recorded attempts, got %d", len(exhausted.Attempts))
	}
	if exhausted.Attempts["first"] != "network down" {
		t.Errorf("Unexpected attempt record: %q", exhausted.Attempts["first"])
	}
	if !strings.Contains(exhausted.Error(), "dQw4w9WgXcQ") {
		t.Errorf("Error message should name the video: %s", exhausted.Error())
	}
}

func TestChainOpenStreamSkipsMetadataOnlySources(t *testing.T) {
	streamer := &fakeSource{name: "streamer"}
	chain := NewChain(metadataOnly{name: "meta"}, streamer)

	reader, info, err := chain.OpenStream(context.Background(), "dQw4w9WgXcQ", models.MediaKindVideo, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer reader.Close()

	if info.Source != "streamer" {
		t.Errorf("Expected stream from streamer, got %q", info.Source)
	}
}

func TestChainOpenStreamExhausted(t *testing.T) {
	streamer := &fakeSource{name: "streamer", streamErr: errors.New("cipher")}
	chain := NewChain(streamer)

	_, _, err := chain.OpenStream(context.Background(), "dQw4w9WgXcQ", models.MediaKindVideo, "")
	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Expected ExhaustedError, got %v", err)
	}
}

type metadataOnly struct {
	name string
}

func (m metadataOnly) Name() string { return m.name }

func (m metadataOnly) GetVideoInfo(ctx context.Context, videoID string) (*models.VideoInfo, error) {
	return &models.VideoInfo{ID: videoID, Source: m.name}, nil
}
