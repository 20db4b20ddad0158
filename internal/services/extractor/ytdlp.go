package extractor

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/denisAlshanov/ytgrab/internal/models"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

// YtdlpSource shells out to the yt-dlp tool. It is the second source in the
// chain and the only one that can stream videos the library client cannot
// decipher.
type YtdlpSource struct {
	path    string
	timeout time.Duration
}

func NewYtdlpSource(path string, timeout time.Duration) *YtdlpSource {
	return &YtdlpSource{
		path:    path,
		timeout: timeout,
	}
}

func (s *YtdlpSource) Name() string {
	return "ytdlp"
}

// Available reports whether the yt-dlp binary can be found.
func (s *YtdlpSource) Available() bool {
	_, err := exec.LookPath(s.path)
	return err == nil
}

type ytdlpFormat struct {
	FormatID string  `json:"format_id"`
	ACodec   string  `json:"acodec"`
	VCodec   string  `json:"vcodec"`
	Ext      string  `json:"ext"`
	Protocol string  `json:"protocol"`
	URL      string  `json:"url"`
	ABR      float64 `json:"abr"`
	TBR      float64 `json:"tbr"`
	Height   int     `json:"height"`
	Filesize int64   `json:"filesize"`
}

type ytdlpInfo struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Uploader  string        `json:"uploader"`
	Duration  float64       `json:"duration"`
	Thumbnail string        `json:"thumbnail"`
	Formats   []ytdlpFormat `json:"formats"`
}

// GetVideoInfo runs a metadata-only dump and normalizes it.
func (s *YtdlpSource) GetVideoInfo(ctx context.Context, videoID string) (*models.VideoInfo, error) {
	dump, err := s.dump(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return parseDump(dump, s.Name())
}

// GetDirectURL picks the best playable format from the dump and returns its
// URL without downloading anything.
func (s *YtdlpSource) GetDirectURL(ctx context.Context, videoID string, kind models.MediaKind, quality string) (*models.DirectURL, error) {
	dump, err := s.dump(ctx, videoID)
	if err != nil {
		return nil, err
	}

	var info ytdlpInfo
	if err := json.Unmarshal(dump, &info); err != nil {
		return nil, fmt.Errorf("yt-dlp metadata parse error: %w", err)
	}

	best := selectFormat(info.Formats, kind, quality)
	if best == nil {
		return nil, fmt.Errorf("no usable %s formats found", kind)
	}

	return &models.DirectURL{
		URL:      best.URL,
		MimeType: mimeForExt(best.Ext, kind),
		Quality:  qualityLabel(best),
		Source:   s.Name(),
	}, nil
}

// OpenStream pipes yt-dlp stdout into the caller. Closing the returned
// reader kills the process; cancelling ctx does the same.
func (s *YtdlpSource) OpenStream(ctx context.Context, videoID string, kind models.MediaKind, quality string) (io.ReadCloser, *models.StreamInfo, error) {
	if !s.Available() {
		return nil, nil, ErrSourceUnavailable
	}

	selector := formatSelector(kind, quality)
	cmd := exec.CommandContext(ctx, s.path,
		"-f", selector,
		"--no-warnings",
		"--no-playlist",
		"-o", "-",
		WatchURL(videoID),
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open yt-dlp stdout: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("failed to start yt-dlp: %w", err)
	}

	reader := &processStream{
		buf:    bufio.NewReader(stdout),
		pipe:   stdout,
		cmd:    cmd,
		stderr: &stderr,
	}

	// Wait for the first byte. A process that exits without producing any
	// output is a failed extraction, not an empty stream, and the chain must
	// see the error to move on.
	if _, err := reader.buf.Peek(1); err != nil {
		reader.Close()
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(msg, "Video unavailable") {
			return nil, nil, ErrVideoNotFound
		}
		return nil, nil, fmt.Errorf("yt-dlp produced no media: %v | %s", err, msg)
	}

	// Title is not known without a second metadata call; use the video ID.
	ext := ".mp4"
	mime := "video/mp4"
	if kind == models.MediaKindAudio {
		ext = ".m4a"
		mime = "audio/mp4"
	}

	return reader, &models.StreamInfo{
		FileName: videoID + ext,
		MimeType: mime,
		Source:   s.Name(),
	}, nil
}

func (s *YtdlpSource) dump(ctx context.Context, videoID string) ([]byte, error) {
	if !s.Available() {
		return nil, ErrSourceUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.path, "-J", "--no-warnings", "--skip-download", WatchURL(videoID))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(msg, "Video unavailable") {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("yt-dlp metadata error: %v | %s", err, msg)
	}

	return stdout.Bytes(), nil
}

func parseDump(dump []byte, sourceName string) (*models.VideoInfo, error) {
	var info ytdlpInfo
	if err := json.Unmarshal(dump, &info); err != nil {
		return nil, fmt.Errorf("yt-dlp metadata parse error: %w", err)
	}

	formats := make([]models.Format, 0, len(info.Formats))
	for _, f := range info.Formats {
		hasVideo := f.VCodec != "none" && f.VCodec != ""
		hasAudio := f.ACodec != "none" && f.ACodec != ""
		kind := models.MediaKindVideo
		if !hasVideo {
			kind = models.MediaKindAudio
		}
		audioChannels := 0
		if hasAudio {
			audioChannels = 2
		}
		formats = append(formats, models.Format{
			MimeType:      mimeForExt(f.Ext, kind),
			Quality:       qualityLabel(&f),
			Bitrate:       int(f.TBR * 1000),
			AudioChannels: audioChannels,
			ContentLength: f.Filesize,
			HasVideo:      hasVideo,
			HasAudio:      hasAudio,
		})
	}

	return &models.VideoInfo{
		ID:           info.ID,
		Title:        info.Title,
		Duration:     (time.Duration(info.Duration) * time.Second).String(),
		Channel:      info.Uploader,
		ThumbnailURL: info.Thumbnail,
		Formats:      formats,
		Source:       sourceName,
	}, nil
}

// selectFormat ranks the dumped formats for the requested track and quality
// and returns the best candidate.
func selectFormat(formats []ytdlpFormat, kind models.MediaKind, quality string) *ytdlpFormat {
	target := parseQuality(quality)

	candidates := make([]ytdlpFormat, 0, len(formats))
	for _, f := range formats {
		if f.URL == "" {
			continue
		}
		hasVideo := f.VCodec != "none" && f.VCodec != ""
		hasAudio := f.ACodec != "none" && f.ACodec != ""
		switch kind {
		case models.MediaKindAudio:
			if !hasVideo && hasAudio {
				candidates = append(candidates, f)
			}
		default:
			if hasVideo && hasAudio {
				candidates = append(candidates, f)
			}
		}
	}
	if len(candidates) == 0 && kind == models.MediaKindAudio {
		// No audio-only track; allow progressive streams
		for _, f := range formats {
			if f.URL != "" && f.ACodec != "none" && f.ACodec != "" {
				candidates = append(candidates, f)
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		si := scoreFormat(&candidates[i], target)
		sj := scoreFormat(&candidates[j], target)
		if si == sj {
			return candidates[i].ABR > candidates[j].ABR
		}
		return si > sj
	})

	return &candidates[0]
}

// scoreFormat assigns a preference score: container first, then protocol,
// then bitrate, with a penalty for missing the requested height.
func scoreFormat(f *ytdlpFormat, targetHeight int) int {
	score := 0
	switch strings.ToLower(f.Ext) {
	case "m4a", "mp4":
		score += 100
	case "webm":
		score += 90
	case "ogg", "opus":
		score += 85
	default:
		score += 60
	}

	p := strings.ToLower(f.Protocol)
	switch {
	case strings.HasPrefix(p, "https"):
		score += 30
	case strings.HasPrefix(p, "http"):
		score += 25
	case strings.Contains(p, "m3u8") || strings.Contains(p, "hls"):
		score += 20
	case strings.Contains(p, "dash"):
		score += 15
	}

	// Bitrate breaks ties within a container class without overriding it
	if f.ABR > 0 {
		score += int(f.ABR / 20)
	} else if f.TBR > 0 {
		score += int(f.TBR / 40)
	}

	if targetHeight > 0 && f.Height > 0 {
		score -= abs(f.Height - targetHeight)
	}

	return score
}

func formatSelector(kind models.MediaKind, quality string) string {
	if kind == models.MediaKindAudio {
		return "bestaudio[ext=m4a]/bestaudio"
	}
	if h := parseQuality(quality); h > 0 {
		return fmt.Sprintf("best[ext=mp4][height<=%d]/best[height<=%d]/best", h, h)
	}
	return "best[ext=mp4]/best"
}

func qualityLabel(f *ytdlpFormat) string {
	if f.Height > 0 {
		return fmt.Sprintf("%dp", f.Height)
	}
	if f.ABR > 0 {
		return fmt.Sprintf("%dkbps", int(f.ABR))
	}
	return ""
}

func mimeForExt(ext string, kind models.MediaKind) string {
	switch strings.ToLower(ext) {
	case "mp4":
		if kind == models.MediaKindAudio {
			return "audio/mp4"
		}
		return "video/mp4"
	case "m4a":
		return "audio/mp4"
	case "webm":
		if kind == models.MediaKindAudio {
			return "audio/webm"
		}
		return "video/webm"
	case "opus", "ogg":
		return "audio/ogg"
	case "mp3":
		return "audio/mpeg"
	case "3gp":
		return "video/3gpp"
	default:
		if kind == models.MediaKindAudio {
			return "audio/mp4"
		}
		return "video/mp4"
	}
}

// processStream couples a pipe with its process so Close reaps yt-dlp.
type processStream struct {
	buf    *bufio.Reader
	pipe   io.ReadCloser
	cmd    *exec.Cmd
	stderr *bytes.Buffer
}

func (p *processStream) Read(b []byte) (int, error) {
	return p.buf.Read(b)
}

func (p *processStream) Close() error {
	p.pipe.Close()
	if p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}
	err := p.cmd.Wait()
	if err != nil && p.stderr.Len() > 0 {
		utils.LogDebug(context.Background(), "yt-dlp exited", utils.Fields{
			"stderr": strings.TrimSpace(p.stderr.String()),
		})
	}
	return nil
}
