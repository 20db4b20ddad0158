package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"

	"github.com/denisAlshanov/ytgrab/internal/models"
)

// LibrarySource is the primary extraction source, backed by the
// kkdai/youtube client.
type LibrarySource struct {
	client     *youtube.Client
	httpClient *http.Client
}

func NewLibrarySource(httpTimeout time.Duration) *LibrarySource {
	httpClient := &http.Client{
		Timeout: httpTimeout,
	}

	ytClient := &youtube.Client{
		HTTPClient: httpClient,
	}

	return &LibrarySource{
		client:     ytClient,
		httpClient: httpClient,
	}
}

func (s *LibrarySource) Name() string {
	return "library"
}

// GetVideoInfo retrieves video metadata including the full format list.
func (s *LibrarySource) GetVideoInfo(ctx context.Context, videoID string) (*models.VideoInfo, error) {
	video, err := s.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get video info: %w", err)
	}

	info := &models.VideoInfo{
		ID:          video.ID,
		Title:       video.Title,
		Description: video.Description,
		Duration:    video.Duration.String(),
		Channel:     video.Author,
		Formats:     mapFormats(video.Formats),
		Source:      s.Name(),
	}

	if len(video.Thumbnails) > 0 {
		info.ThumbnailURL = video.Thumbnails[0].URL
	}

	return info, nil
}

// OpenStream opens a byte stream for the selected track.
func (s *LibrarySource) OpenStream(ctx context.Context, videoID string, kind models.MediaKind, quality string) (io.ReadCloser, *models.StreamInfo, error) {
	video, format, err := s.resolveFormat(ctx, videoID, kind, quality)
	if err != nil {
		return nil, nil, err
	}

	stream, size, err := s.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get stream: %w", err)
	}

	if size == 0 {
		size = format.ContentLength
	}

	return stream, &models.StreamInfo{
		FileName:      streamFileName(video.Title, kind),
		MimeType:      mimeOf(format),
		ContentLength: size,
		Source:        s.Name(),
	}, nil
}

// GetDirectURL resolves the googlevideo URL of the selected format. The
// deciphered URL comes straight from the client, so it carries the same
// server-side expiry as any player URL.
func (s *LibrarySource) GetDirectURL(ctx context.Context, videoID string, kind models.MediaKind, quality string) (*models.DirectURL, error) {
	video, format, err := s.resolveFormat(ctx, videoID, kind, quality)
	if err != nil {
		return nil, err
	}

	url, err := s.client.GetStreamURLContext(ctx, video, format)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream URL: %w", err)
	}

	return &models.DirectURL{
		URL:      url,
		MimeType: mimeOf(format),
		Quality:  format.QualityLabel,
		Source:   s.Name(),
	}, nil
}

func (s *LibrarySource) resolveFormat(ctx context.Context, videoID string, kind models.MediaKind, quality string) (*youtube.Video, *youtube.Format, error) {
	video, err := s.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get video: %w", err)
	}

	var format *youtube.Format
	switch kind {
	case models.MediaKindAudio:
		format = bestAudioFormat(video.Formats)
	default:
		format = bestProgressiveFormat(video.Formats, quality)
	}
	if format == nil {
		return nil, nil, fmt.Errorf("no suitable %s format found", kind)
	}

	return video, format, nil
}

// bestProgressiveFormat selects a format that carries both video and audio,
// preferring mp4 and matching the requested height when one is given.
func bestProgressiveFormat(formats youtube.FormatList, preferredQuality string) *youtube.Format {
	var bestFormat *youtube.Format
	var bestQuality int
	targetQuality := parseQuality(preferredQuality)

	for i := range formats {
		format := &formats[i]
		if format.MimeType == "" || !strings.Contains(format.MimeType, "video") {
			continue
		}
		// Progressive only: separate tracks would need merging
		if format.AudioChannels == 0 {
			continue
		}
		if !strings.Contains(format.MimeType, "mp4") {
			continue
		}

		quality := parseQuality(format.QualityLabel)

		if targetQuality > 0 {
			if quality == targetQuality {
				return format
			}
			if bestFormat == nil || abs(quality-targetQuality) < abs(bestQuality-targetQuality) {
				bestFormat = format
				bestQuality = quality
			}
		} else {
			if bestFormat == nil || quality > bestQuality {
				bestFormat = format
				bestQuality = quality
			}
		}
	}

	// Fallback to any progressive format if no mp4 found
	if bestFormat == nil {
		for i := range formats {
			format := &formats[i]
			if format.MimeType != "" && strings.Contains(format.MimeType, "video") && format.AudioChannels > 0 {
				return format
			}
		}
	}

	return bestFormat
}

// bestAudioFormat selects the highest-bitrate audio-only format, preferring
// mp4/m4a containers.
func bestAudioFormat(formats youtube.FormatList) *youtube.Format {
	var bestFormat *youtube.Format
	var bestBitrate int

	for i := range formats {
		format := &formats[i]
		if format.MimeType == "" || !strings.Contains(format.MimeType, "audio") {
			continue
		}
		if strings.Contains(format.MimeType, "mp4") || strings.Contains(format.MimeType, "m4a") {
			if bestFormat == nil || format.Bitrate > bestBitrate {
				bestFormat = format
				bestBitrate = format.Bitrate
			}
		}
	}

	if bestFormat == nil {
		for i := range formats {
			format := &formats[i]
			if format.MimeType != "" && strings.Contains(format.MimeType, "audio") {
				if bestFormat == nil || format.Bitrate > bestBitrate {
					bestFormat = format
					bestBitrate = format.Bitrate
				}
			}
		}
	}

	return bestFormat
}

func mapFormats(formats youtube.FormatList) []models.Format {
	out := make([]models.Format, 0, len(formats))
	for i := range formats {
		f := &formats[i]
		out = append(out, models.Format{
			Itag:          f.ItagNo,
			MimeType:      f.MimeType,
			Quality:       f.QualityLabel,
			Bitrate:       f.Bitrate,
			AudioChannels: f.AudioChannels,
			ContentLength: f.ContentLength,
			HasVideo:      strings.Contains(f.MimeType, "video"),
			HasAudio:      f.AudioChannels > 0 || strings.Contains(f.MimeType, "audio"),
		})
	}
	return out
}

func mimeOf(format *youtube.Format) string {
	mime := format.MimeType
	if idx := strings.Index(mime, ";"); idx > 0 {
		mime = mime[:idx]
	}
	return mime
}

func streamFileName(title string, kind models.MediaKind) string {
	if kind == models.MediaKindAudio {
		return title + ".m4a"
	}
	return title + ".mp4"
}
