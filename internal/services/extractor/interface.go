package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/denisAlshanov/ytgrab/internal/models"
)

// ErrVideoNotFound marks a definitive upstream answer that the video does
// not exist. The fallback chain stops on it instead of trying further
// sources.
var ErrVideoNotFound = errors.New("video not found")

// ErrSourceUnavailable marks a source that cannot run in this environment
// (for example a missing yt-dlp binary). The chain skips it silently.
var ErrSourceUnavailable = errors.New("source unavailable")

// Source resolves video metadata.
type Source interface {
	Name() string
	GetVideoInfo(ctx context.Context, videoID string) (*models.VideoInfo, error)
}

// StreamSource can additionally open a byte stream for a video.
type StreamSource interface {
	Source
	OpenStream(ctx context.Context, videoID string, kind models.MediaKind, quality string) (io.ReadCloser, *models.StreamInfo, error)
}

// DirectURLSource can additionally resolve a direct media URL.
type DirectURLSource interface {
	Source
	GetDirectURL(ctx context.Context, videoID string, kind models.MediaKind, quality string) (*models.DirectURL, error)
}

var (
	videoIDPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	videoURLPattern = regexp.MustCompile(`^https?://(?:www\.|m\.)?(?:youtube\.com/(?:watch\?(?:.*&)?v=|embed/|shorts/|v/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
)

// IsVideoURL checks if the provided string is a recognizable YouTube URL.
func IsVideoURL(url string) bool {
	return videoURLPattern.MatchString(url)
}

// ParseVideoID extracts the 11-character video ID from a YouTube URL, or
// accepts a bare ID.
func ParseVideoID(input string) (string, error) {
	if videoIDPattern.MatchString(input) {
		return input, nil
	}
	matches := videoURLPattern.FindStringSubmatch(input)
	if len(matches) > 1 {
		return matches[1], nil
	}
	return "", fmt.Errorf("could not extract video ID from %q", input)
}

// WatchURL builds the canonical watch-page URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

var qualityDigits = regexp.MustCompile(`(\d+)`)

// parseQuality extracts the numeric height from a quality label
// (e.g. "720p" -> 720). "best" and unknown labels yield 0.
func parseQuality(quality string) int {
	matches := qualityDigits.FindStringSubmatch(quality)
	if len(matches) > 1 {
		if q, err := strconv.Atoi(matches[1]); err == nil {
			return q
		}
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
