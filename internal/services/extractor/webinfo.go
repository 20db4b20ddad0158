package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/denisAlshanov/ytgrab/internal/models"
)

const (
	oembedEndpoint = "https://www.youtube.com/oembed"
	scraperUA      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// WebSource recovers basic metadata without any extraction library. It asks
// the oEmbed endpoint first and falls back to scraping the watch page's
// OpenGraph tags. It cannot stream and carries no format list, so it sits
// last in the chain.
type WebSource struct {
	httpClient *http.Client
}

func NewWebSource(timeout time.Duration) *WebSource {
	return &WebSource{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *WebSource) Name() string {
	return "web"
}

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func (s *WebSource) GetVideoInfo(ctx context.Context, videoID string) (*models.VideoInfo, error) {
	info, err := s.fromOembed(ctx, videoID)
	if err == ErrVideoNotFound {
		return nil, err
	}
	if err == nil {
		return info, nil
	}
	return s.fromWatchPage(ctx, videoID)
}

func (s *WebSource) fromOembed(ctx context.Context, videoID string) (*models.VideoInfo, error) {
	endpoint := fmt.Sprintf("%s?url=%s&format=json", oembedEndpoint, url.QueryEscape(WatchURL(videoID)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oembed request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusBadRequest:
		// oEmbed answers 400/404 for ids it has never seen
		return nil, ErrVideoNotFound
	default:
		return nil, fmt.Errorf("oembed returned status %d", resp.StatusCode)
	}

	var body oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("oembed decode failed: %w", err)
	}

	return &models.VideoInfo{
		ID:           videoID,
		Title:        body.Title,
		Channel:      body.AuthorName,
		ThumbnailURL: body.ThumbnailURL,
		Source:       s.Name(),
	}, nil
}

func (s *WebSource) fromWatchPage(ctx context.Context, videoID string) (*models.VideoInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, WatchURL(videoID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", scraperUA)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("watch page request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("watch page parse failed: %w", err)
	}

	info := parseWatchPage(doc, videoID)
	if info.Title == "" {
		return nil, fmt.Errorf("watch page has no og:title for %s", videoID)
	}
	info.Source = s.Name()
	return info, nil
}

func parseWatchPage(doc *goquery.Document, videoID string) *models.VideoInfo {
	info := &models.VideoInfo{ID: videoID}

	meta := func(property string) string {
		val, _ := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).Attr("content")
		if val == "" {
			val, _ = doc.Find(fmt.Sprintf(`meta[name=%q]`, property)).Attr("content")
		}
		return strings.TrimSpace(val)
	}

	info.Title = meta("og:title")
	info.Description = meta("og:description")
	info.ThumbnailURL = meta("og:image")
	if info.Title == "" {
		info.Title = strings.TrimSuffix(strings.TrimSpace(doc.Find("title").Text()), " - YouTube")
	}

	doc.Find(`link[itemprop="name"]`).Each(func(_ int, sel *goquery.Selection) {
		if name, ok := sel.Attr("content"); ok && info.Channel == "" {
			info.Channel = name
		}
	})

	return info
}
