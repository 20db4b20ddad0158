package alternatives

import (
	"fmt"
	"net/url"

	"github.com/denisAlshanov/ytgrab/internal/models"
)

// provider is a third-party converter site that accepts a video reference in
// its URL. The link templates take the video ID or full watch URL.
type provider struct {
	service  string
	kind     string
	template string
	fullURL  bool
}

var knownProviders = []provider{
	{service: "ssyoutube", kind: "video", template: "https://ssyoutube.com/watch?v=%s"},
	{service: "y2mate", kind: "video", template: "https://www.y2mate.com/youtube/%s"},
	{service: "loader.to", kind: "audio", template: "https://loader.to/api/button/?url=%s&f=mp3", fullURL: true},
	{service: "savetube", kind: "video", template: "https://savetube.me/en/youtube-downloader?url=%s", fullURL: true},
	{service: "yt1s", kind: "video", template: "https://yt1s.com/youtube-to-mp4/en?q=%s", fullURL: true},
}

// Registry holds the converter services enabled by configuration, in
// preference order.
type Registry struct {
	providers []provider
}

// NewRegistry enables the named services. Unknown names are ignored; an
// empty or fully-unknown list enables everything.
func NewRegistry(services []string) *Registry {
	if len(services) == 0 {
		return &Registry{providers: knownProviders}
	}

	enabled := make([]provider, 0, len(services))
	for _, name := range services {
		for _, p := range knownProviders {
			if p.service == name {
				enabled = append(enabled, p)
				break
			}
		}
	}
	if len(enabled) == 0 {
		enabled = knownProviders
	}
	return &Registry{providers: enabled}
}

// Links builds per-video URLs for every enabled converter service.
func (r *Registry) Links(videoID string) []models.AlternativeLink {
	watchURL := "https://www.youtube.com/watch?v=" + videoID

	links := make([]models.AlternativeLink, 0, len(r.providers))
	for _, p := range r.providers {
		ref := videoID
		if p.fullURL {
			ref = url.QueryEscape(watchURL)
		}
		links = append(links, models.AlternativeLink{
			Service: p.service,
			URL:     fmt.Sprintf(p.template, ref),
			Kind:    p.kind,
		})
	}
	return links
}

// First returns the redirect target used when no source can produce media
// directly.
func (r *Registry) First(videoID string) string {
	return r.Links(videoID)[0].URL
}
