package core

import (
	"errors"
	"fmt"
)

// ProviderError represents an error returned by a provider with full context.
type ProviderError struct {
	Provider  string
	Status    int
	RequestID string
	Code      string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("%s: %s (status=%d, code=%s, request_id=%s)",
			e.Provider, e.Message, e.Status, e.Code, e.RequestID)
	}
	return fmt.Sprintf("%s: %s (status=%d, code=%s)",
		e.Provider, e.Message, e.Status, e.Code)
}

// Unwrap returns the underlying error for error chaining.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Sentinel errors for classification.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
	ErrDecode       = errors.New("decode error")
	ErrNotSupported = errors.New("operation not supported")
)

// Operation-level sentinels for the video generation lifecycle.
var (
	// ErrOperationFailed indicates the remote job reached a terminal state
	// with an operation-level error attached.
	ErrOperationFailed = errors.New("operation failed")

	// ErrPollTimeout indicates the poll policy's deadline or attempt budget
	// was exhausted before the operation completed.
	ErrPollTimeout = errors.New("poll timeout")

	// ErrNoVideoResult indicates the operation completed without any
	// generated videos in its result.
	ErrNoVideoResult = errors.New("no video in result")

	// ErrUnexpectedPayload indicates a video download returned something
	// other than raw video bytes (for example a JSON error envelope served
	// with a 200 status).
	ErrUnexpectedPayload = errors.New("unexpected download payload")
)

// Validation errors with actionable guidance.
var (
	ErrModelRequired  = errors.New("model required: set VideoGenerateRequest.Model, e.g., \"veo-3.1-generate-preview\"")
	ErrPromptRequired = errors.New("prompt required: set VideoGenerateRequest.Prompt to a non-empty string")
)
