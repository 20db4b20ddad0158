package video

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/denisAlshanov/ytgrab/internal/cache"
	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/models"
	"github.com/denisAlshanov/ytgrab/internal/services/extractor"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

// Service ties the source chain to the cache. Metadata lookups are
// cache-aside and deduplicated so a burst of requests for the same video
// produces a single upstream fetch.
type Service struct {
	chain *extractor.Chain
	cache *cache.Cache
	cfg   *config.CacheConfig
	group singleflight.Group
}

func NewService(chain *extractor.Chain, c *cache.Cache, cfg *config.CacheConfig) *Service {
	return &Service{
		chain: chain,
		cache: c,
		cfg:   cfg,
	}
}

// GetVideoInfo returns metadata for the video, preferring the cache.
func (s *Service) GetVideoInfo(ctx context.Context, videoID string) (*models.VideoInfoResponse, error) {
	if value, storedAt, ok := s.cache.Get(videoID); ok {
		if info, ok := value.(*models.VideoInfo); ok {
			utils.LogDebug(ctx, "Video info cache hit", utils.Fields{"video_id": videoID})
			return &models.VideoInfoResponse{
				VideoInfo: *info,
				Cached:    true,
				FetchedAt: storedAt,
			}, nil
		}
	}

	// The flight serves every deduplicated waiter, so it must not die with
	// the first caller; sources bound their own work with timeouts.
	flightCtx := context.WithoutCancel(ctx)
	result, err, _ := s.group.Do(videoID, func() (interface{}, error) {
		info, err := s.chain.GetVideoInfo(flightCtx, videoID)
		if err != nil {
			return nil, err
		}
		s.cache.Set(videoID, info, s.cfg.InfoTTL)
		return info, nil
	})
	if err != nil {
		return nil, err
	}

	info := result.(*models.VideoInfo)
	return &models.VideoInfoResponse{
		VideoInfo: *info,
		Cached:    false,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// OpenStream opens a byte stream for the requested track. Streams are never
// cached; the chain is consulted every time.
func (s *Service) OpenStream(ctx context.Context, videoID string, kind models.MediaKind, quality string) (io.ReadCloser, *models.StreamInfo, error) {
	return s.chain.OpenStream(ctx, videoID, kind, quality)
}

// GetDirectURL resolves a direct media URL, caching it briefly. Resolved
// URLs carry signed expiry parameters upstream, so the TTL stays short.
func (s *Service) GetDirectURL(ctx context.Context, videoID string, kind models.MediaKind, quality string) (*models.DirectURLResponse, error) {
	key := directURLKey(videoID, kind, quality)
	if value, storedAt, ok := s.cache.Get(key); ok {
		if direct, ok := value.(*models.DirectURL); ok {
			utils.LogDebug(ctx, "Direct URL cache hit", utils.Fields{"video_id": videoID})
			return s.directResponse(videoID, direct, storedAt), nil
		}
	}

	flightCtx := context.WithoutCancel(ctx)
	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		direct, err := s.chain.GetDirectURL(flightCtx, videoID, kind, quality)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, direct, s.cfg.DirectURLTTL)
		return direct, nil
	})
	if err != nil {
		return nil, err
	}

	return s.directResponse(videoID, result.(*models.DirectURL), time.Now().UTC()), nil
}

// StreamTitle fetches the video title for download file naming, tolerating
// metadata failures.
func (s *Service) StreamTitle(ctx context.Context, videoID string) string {
	resp, err := s.GetVideoInfo(ctx, videoID)
	if err != nil || resp.Title == "" {
		return videoID
	}
	return resp.Title
}

func (s *Service) directResponse(videoID string, direct *models.DirectURL, storedAt time.Time) *models.DirectURLResponse {
	return &models.DirectURLResponse{
		VideoID:     videoID,
		DirectURL:   direct.URL,
		MimeType:    direct.MimeType,
		Quality:     direct.Quality,
		Source:      direct.Source,
		ExpiresHint: storedAt.Add(s.cfg.DirectURLTTL),
	}
}

func directURLKey(videoID string, kind models.MediaKind, quality string) string {
	return fmt.Sprintf("direct:%s:%s:%s", videoID, kind, quality)
}
