package utils

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeInvalidVideoID    ErrorCode = "INVALID_VIDEO_ID"
	ErrorCodeVideoNotFound     ErrorCode = "VIDEO_NOT_FOUND"
	ErrorCodeExtractionFailed  ErrorCode = "EXTRACTION_FAILED"
	ErrorCodeAllSourcesFailed  ErrorCode = "ALL_SOURCES_FAILED"
	ErrorCodeNoDirectURL       ErrorCode = "NO_DIRECT_URL"
	ErrorCodeStreamFailed      ErrorCode = "STREAM_FAILED"
	ErrorCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrorCodeInternalError     ErrorCode = "INTERNAL_ERROR"
	ErrorCodeValidationError   ErrorCode = "VALIDATION_ERROR"
)

type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func NewErrorWithDetails(code ErrorCode, message string, statusCode int, details map[string]interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Common error constructors
func NewValidationError(message string, details map[string]interface{}) *AppError {
	return NewErrorWithDetails(ErrorCodeValidationError, message, http.StatusBadRequest, details)
}

func NewInvalidVideoIDError(input string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeInvalidVideoID,
		"The provided value is not a valid YouTube URL or video ID",
		http.StatusBadRequest,
		map[string]interface{}{
			"expected_format": "https://www.youtube.com/watch?v=VIDEO_ID or an 11-character video ID",
			"provided":        input,
		},
	)
}

func NewVideoNotFoundError(videoID string) *AppError {
	return NewError(
		ErrorCodeVideoNotFound,
		fmt.Sprintf("Video %s does not exist or is unavailable", videoID),
		http.StatusNotFound,
	)
}

func NewAllSourcesFailedError(videoID string, attempts map[string]interface{}) *AppError {
	return NewErrorWithDetails(
		ErrorCodeAllSourcesFailed,
		"All extraction sources failed for this video",
		http.StatusInternalServerError,
		attempts,
	)
}

func NewNoDirectURLError(videoID string) *AppError {
	return NewError(
		ErrorCodeNoDirectURL,
		fmt.Sprintf("No direct media URL could be resolved for video %s", videoID),
		http.StatusInternalServerError,
	)
}

func NewExtractionFailedError(err error) *AppError {
	return NewErrorWithDetails(
		ErrorCodeExtractionFailed,
		"Extraction failed before any source could answer",
		http.StatusInternalServerError,
		map[string]interface{}{"reason": err.Error()},
	)
}

func NewStreamError(err error) *AppError {
	return NewErrorWithDetails(
		ErrorCodeStreamFailed,
		"Failed to open a media stream",
		http.StatusInternalServerError,
		map[string]interface{}{"reason": err.Error()},
	)
}

func NewRateLimitError() *AppError {
	return NewError(
		ErrorCodeRateLimitExceeded,
		"Too many requests",
		http.StatusTooManyRequests,
	)
}

func NewInternalError() *AppError {
	return NewError(
		ErrorCodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}
