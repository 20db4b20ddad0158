package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/models"
	"github.com/denisAlshanov/ytgrab/internal/services/alternatives"
	"github.com/denisAlshanov/ytgrab/internal/services/extractor"
	"github.com/denisAlshanov/ytgrab/internal/services/video"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

type VideoHandler struct {
	service      *video.Service
	alternatives *alternatives.Registry
	cfg          *config.ExtractorConfig
}

func NewVideoHandler(service *video.Service, registry *alternatives.Registry, cfg *config.ExtractorConfig) *VideoHandler {
	return &VideoHandler{
		service:      service,
		alternatives: registry,
		cfg:          cfg,
	}
}

// Info godoc
// @Summary Get video metadata
// @Description Fetch title, duration, channel, thumbnail and available formats for a video
// @Tags video
// @Produce json
// @Param id query string false "Video ID"
// @Param url query string false "Video URL (alternative to id)"
// @Success 200 {object} models.VideoInfoResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/video/info [get]
func (h *VideoHandler) Info(c *gin.Context) {
	ctx := c.Request.Context()

	videoID, appErr := videoIDFromRequest(c)
	if appErr != nil {
		h.errorResponse(c, appErr)
		return
	}

	info, err := h.service.GetVideoInfo(ctx, videoID)
	if err != nil {
		utils.LogError(ctx, "Failed to fetch video info", err, utils.Fields{
			"video_id": videoID,
		})
		h.errorResponse(c, mapExtractionError(err, videoID))
		return
	}

	c.JSON(http.StatusOK, info)
}

// Download godoc
// @Summary Download video or audio
// @Description Stream the media file as an attachment
// @Tags video
// @Produce octet-stream
// @Param id query string false "Video ID"
// @Param url query string false "Video URL (alternative to id)"
// @Param format query string false "Track to download: video or audio" default(video)
// @Param quality query string false "Preferred quality, e.g. 720p"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/video/download [get]
func (h *VideoHandler) Download(c *gin.Context) {
	h.streamMedia(c, "attachment", false)
}

// Stream godoc
// @Summary Stream video or audio
// @Description Stream the media inline; falls back to a redirect when no source can produce bytes
// @Tags video
// @Produce octet-stream
// @Param id query string false "Video ID"
// @Param url query string false "Video URL (alternative to id)"
// @Param format query string false "Track to stream: video or audio" default(video)
// @Param quality query string false "Preferred quality, e.g. 720p"
// @Success 200 {file} binary
// @Success 302 {string} string "Redirect to a direct URL or converter service"
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/video/stream [get]
func (h *VideoHandler) Stream(c *gin.Context) {
	h.streamMedia(c, "inline", true)
}

// Direct godoc
// @Summary Resolve a direct media URL
// @Description Return the upstream media URL without proxying bytes; pass redirect=true for a 302
// @Tags video
// @Produce json
// @Param id query string false "Video ID"
// @Param url query string false "Video URL (alternative to id)"
// @Param format query string false "Track to resolve: video or audio" default(video)
// @Param quality query string false "Preferred quality, e.g. 720p"
// @Param redirect query bool false "Respond with a 302 to the resolved URL"
// @Success 200 {object} models.DirectURLResponse
// @Success 302 {string} string "Redirect to the resolved URL"
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/video/direct [get]
func (h *VideoHandler) Direct(c *gin.Context) {
	ctx := c.Request.Context()

	videoID, appErr := videoIDFromRequest(c)
	if appErr != nil {
		h.errorResponse(c, appErr)
		return
	}
	kind, quality := mediaSelection(c)

	direct, err := h.service.GetDirectURL(ctx, videoID, kind, quality)
	if err != nil {
		utils.LogError(ctx, "Failed to resolve direct URL", err, utils.Fields{
			"video_id": videoID,
		})
		if isExhausted(err) {
			h.errorResponse(c, utils.NewNoDirectURLError(videoID))
			return
		}
		h.errorResponse(c, mapExtractionError(err, videoID))
		return
	}

	if c.Query("redirect") == "true" {
		c.Redirect(http.StatusFound, direct.DirectURL)
		return
	}

	c.JSON(http.StatusOK, direct)
}

// Alternatives godoc
// @Summary List third-party download links
// @Description Build per-video links for external converter services
// @Tags video
// @Produce json
// @Param id query string false "Video ID"
// @Param url query string false "Video URL (alternative to id)"
// @Success 200 {object} models.AlternativesResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/video/alternatives [get]
func (h *VideoHandler) Alternatives(c *gin.Context) {
	videoID, appErr := videoIDFromRequest(c)
	if appErr != nil {
		h.errorResponse(c, appErr)
		return
	}

	c.JSON(http.StatusOK, models.AlternativesResponse{
		VideoID:      videoID,
		Alternatives: h.alternatives.Links(videoID),
	})
}

// streamMedia pipes media bytes to the client. With redirectFallback set, a
// chain failure turns into a 302 to a direct URL or converter site instead
// of an error payload.
func (h *VideoHandler) streamMedia(c *gin.Context, disposition string, redirectFallback bool) {
	ctx := c.Request.Context()
	if h.cfg.StreamTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.StreamTimeout)
		defer cancel()
	}

	videoID, appErr := videoIDFromRequest(c)
	if appErr != nil {
		h.errorResponse(c, appErr)
		return
	}
	kind, quality := mediaSelection(c)

	reader, info, err := h.service.OpenStream(ctx, videoID, kind, quality)
	if err != nil {
		if errors.Is(err, extractor.ErrVideoNotFound) {
			h.errorResponse(c, utils.NewVideoNotFoundError(videoID))
			return
		}

		if !redirectFallback {
			utils.LogError(ctx, "Failed to open download stream", err, utils.Fields{
				"video_id": videoID,
			})
			h.errorResponse(c, utils.NewStreamError(err))
			return
		}

		utils.LogWarn(ctx, "No source could stream, redirecting", utils.Fields{
			"video_id": videoID,
			"error":    err.Error(),
		})

		// Last resort: send the client to a converter site
		if direct, derr := h.service.GetDirectURL(ctx, videoID, kind, quality); derr == nil {
			c.Redirect(http.StatusFound, direct.DirectURL)
			return
		}
		c.Redirect(http.StatusFound, h.alternatives.First(videoID))
		return
	}
	defer reader.Close()

	fileName := info.FileName
	if fileName == "" {
		fileName = h.service.StreamTitle(ctx, videoID)
	}
	fileName = utils.SanitizeFileName(fileName, extForMime(info.MimeType))

	c.Header("Content-Type", info.MimeType)
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=\"%s\"", disposition, fileName))
	if info.ContentLength > 0 {
		c.Header("Content-Length", strconv.FormatInt(info.ContentLength, 10))
	}
	c.Header("Accept-Ranges", "bytes")

	var buf []byte
	if h.cfg.StreamBufferLen > 0 {
		buf = make([]byte, h.cfg.StreamBufferLen)
	}
	written, err := io.CopyBuffer(c.Writer, reader, buf)
	if err != nil {
		// Headers are out; nothing to do but log
		utils.LogError(ctx, "Stream interrupted", err, utils.Fields{
			"video_id":      videoID,
			"bytes_written": written,
		})
		return
	}

	utils.LogInfo(ctx, "Successfully streamed media", utils.Fields{
		"video_id":      videoID,
		"bytes_written": written,
		"file_name":     fileName,
		"source":        info.Source,
	})
}

// videoIDFromRequest extracts and validates the video reference from the id,
// url or v query parameters.
func videoIDFromRequest(c *gin.Context) (string, *utils.AppError) {
	input := c.Query("id")
	if input == "" {
		input = c.Query("url")
	}
	if input == "" {
		input = c.Query("v")
	}
	if input == "" {
		return "", utils.NewValidationError("Missing video reference", map[string]interface{}{
			"hint": "pass ?id=<video id> or ?url=<video url>",
		})
	}

	videoID, err := extractor.ParseVideoID(input)
	if err != nil {
		return "", utils.NewInvalidVideoIDError(input)
	}
	return videoID, nil
}

func mediaSelection(c *gin.Context) (models.MediaKind, string) {
	kind := models.MediaKindVideo
	if c.Query("format") == "audio" {
		kind = models.MediaKindAudio
	}
	return kind, c.Query("quality")
}

func mapExtractionError(err error, videoID string) *utils.AppError {
	if errors.Is(err, extractor.ErrVideoNotFound) {
		return utils.NewVideoNotFoundError(videoID)
	}

	var exhausted *extractor.ExhaustedError
	if errors.As(err, &exhausted) {
		attempts := make(map[string]interface{}, len(exhausted.Attempts))
		for name, msg := range exhausted.Attempts {
			attempts[name] = msg
		}
		return utils.NewAllSourcesFailedError(videoID, attempts)
	}

	return utils.NewExtractionFailedError(err)
}

func isExhausted(err error) bool {
	var exhausted *extractor.ExhaustedError
	return errors.As(err, &exhausted)
}

func extForMime(mime string) string {
	switch mime {
	case "audio/mp4":
		return ".m4a"
	case "audio/webm":
		return ".webm"
	case "audio/ogg":
		return ".ogg"
	case "audio/mpeg":
		return ".mp3"
	case "video/webm":
		return ".webm"
	case "video/3gpp":
		return ".3gp"
	default:
		return ".mp4"
	}
}

func (h *VideoHandler) errorResponse(c *gin.Context, err *utils.AppError) {
	c.JSON(err.StatusCode, gin.H{
		"error":      err,
		"request_id": c.GetString("request_id"),
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}
