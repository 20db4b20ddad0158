package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/denisAlshanov/ytgrab/internal/models"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

// Chain tries each configured source in order until one succeeds. A source
// that reports ErrSourceUnavailable is skipped silently; ErrVideoNotFound
// stops the walk because every later source would fail the same way.
type Chain struct {
	sources []Source
}

func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// SourceNames lists the configured sources in fallback order.
func (c *Chain) SourceNames() []string {
	names := make([]string, 0, len(c.sources))
	for _, s := range c.sources {
		names = append(names, s.Name())
	}
	return names
}

// ExhaustedError reports that every source in the chain failed, keyed by
// source name.
type ExhaustedError struct {
	VideoID  string
	Attempts map[string]string
}

func (e *ExhaustedError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for name, msg := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %s", name, msg))
	}
	return fmt.Sprintf("all sources failed for %s (%s)", e.VideoID, strings.Join(parts, "; "))
}

func (c *Chain) GetVideoInfo(ctx context.Context, videoID string) (*models.VideoInfo, error) {
	attempts := make(map[string]string)
	for _, source := range c.sources {
		info, err := source.GetVideoInfo(ctx, videoID)
		if err == nil {
			return info, nil
		}
		if errors.Is(err, ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		if errors.Is(err, ErrSourceUnavailable) {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		attempts[source.Name()] = err.Error()
		utils.LogWarn(ctx, "Video info source failed, trying next", utils.Fields{
			"source":   source.Name(),
			"video_id": videoID,
			"error":    err.Error(),
		})
	}
	return nil, &ExhaustedError{VideoID: videoID, Attempts: attempts}
}

func (c *Chain) OpenStream(ctx context.Context, videoID string, kind models.MediaKind, quality string) (io.ReadCloser, *models.StreamInfo, error) {
	attempts := make(map[string]string)
	for _, source := range c.sources {
		streamer, ok := source.(StreamSource)
		if !ok {
			continue
		}
		reader, info, err := streamer.OpenStream(ctx, videoID, kind, quality)
		if err == nil {
			return reader, info, nil
		}
		if errors.Is(err, ErrVideoNotFound) {
			return nil, nil, ErrVideoNotFound
		}
		if errors.Is(err, ErrSourceUnavailable) {
			continue
		}
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		attempts[source.Name()] = err.Error()
		utils.LogWarn(ctx, "Stream source failed, trying next", utils.Fields{
			"source":   source.Name(),
			"video_id": videoID,
			"error":    err.Error(),
		})
	}
	return nil, nil, &ExhaustedError{VideoID: videoID, Attempts: attempts}
}

func (c *Chain) GetDirectURL(ctx context.Context, videoID string, kind models.MediaKind, quality string) (*models.DirectURL, error) {
	attempts := make(map[string]string)
	for _, source := range c.sources {
		resolver, ok := source.(DirectURLSource)
		if !ok {
			continue
		}
		direct, err := resolver.GetDirectURL(ctx, videoID, kind, quality)
		if err == nil {
			return direct, nil
		}
		if errors.Is(err, ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		if errors.Is(err, ErrSourceUnavailable) {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		attempts[source.Name()] = err.Error()
		utils.LogWarn(ctx, "Direct URL source failed, trying next", utils.Fields{
			"source":   source.Name(),
			"video_id": videoID,
			"error":    err.Error(),
		})
	}
	return nil, &ExhaustedError{VideoID: videoID, Attempts: attempts}
}
