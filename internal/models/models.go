package models

import (
	"time"
)

// VideoInfo is the normalized metadata record produced by any extraction
// source and stored in the cache.
type VideoInfo struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Channel      string   `json:"channel"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
	Formats      []Format `json:"formats,omitempty"`
	Source       string   `json:"source"`
}

// Format describes one downloadable representation of a video.
type Format struct {
	Itag          int    `json:"itag,omitempty"`
	MimeType      string `json:"mime_type"`
	Quality       string `json:"quality,omitempty"`
	Bitrate       int    `json:"bitrate,omitempty"`
	AudioChannels int    `json:"audio_channels,omitempty"`
	ContentLength int64  `json:"content_length,omitempty"`
	HasVideo      bool   `json:"has_video"`
	HasAudio      bool   `json:"has_audio"`
}

// MediaKind selects which track a download request wants.
type MediaKind string

const (
	MediaKindVideo MediaKind = "video"
	MediaKindAudio MediaKind = "audio"
)

// StreamInfo accompanies an opened byte stream.
type StreamInfo struct {
	FileName      string
	MimeType      string
	ContentLength int64
	Source        string
}

// DirectURL is a resolved googlevideo (or equivalent) media URL.
type DirectURL struct {
	URL      string `json:"direct_url"`
	MimeType string `json:"mime_type,omitempty"`
	Quality  string `json:"quality,omitempty"`
	Source   string `json:"source"`
}

type DirectURLResponse struct {
	VideoID     string    `json:"video_id"`
	DirectURL   string    `json:"direct_url"`
	MimeType    string    `json:"mime_type,omitempty"`
	Quality     string    `json:"quality,omitempty"`
	Source      string    `json:"source"`
	ExpiresHint time.Time `json:"expires_hint"`
}

type VideoInfoResponse struct {
	VideoInfo
	Cached    bool      `json:"cached"`
	FetchedAt time.Time `json:"fetched_at"`
}

type AlternativeLink struct {
	Service string `json:"service"`
	URL     string `json:"url"`
	Kind    string `json:"kind"`
}

type AlternativesResponse struct {
	VideoID      string            `json:"video_id"`
	Alternatives []AlternativeLink `json:"alternatives"`
}
