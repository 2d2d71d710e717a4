package gemini

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/petal-labs/reel/core"
	"github.com/petal-labs/reel/providers/internal/normalize"
)

// normalizeError converts an HTTP error response to a ProviderError with the
// appropriate sentinel.
func normalizeError(status int, body []byte) error {
	// Parse error response if possible
	var errResp geminiErrorResponse
	_ = json.Unmarshal(body, &errResp)

	message := errResp.Error.Message
	if message == "" {
		message = http.StatusText(status)
	}

	code := errResp.Error.Status
	if code == "" {
		code = "unknown_error"
	}

	return normalize.ProviderError("gemini", status, "", code, message,
		normalize.SentinelForStatus(status))
}

// newNetworkError creates a ProviderError for network-related failures.
func newNetworkError(err error) error {
	return normalize.NetworkError("gemini", err)
}

// newDecodeError creates a ProviderError for JSON decode failures.
func newDecodeError(err error) error {
	return normalize.DecodeError("gemini", err)
}

// newPollTimeoutError reports an exhausted poll budget for an operation.
func newPollTimeoutError(name string, attempts int) error {
	return &core.ProviderError{
		Provider: "gemini",
		Code:     "poll_timeout",
		Message:  fmt.Sprintf("operation %s not done after %d polls", name, attempts),
		Err:      core.ErrPollTimeout,
	}
}

// newUnexpectedPayloadError reports a download that did not return raw video
// bytes. The observed content type is preserved for diagnostics.
func newUnexpectedPayloadError(contentType string) error {
	return &core.ProviderError{
		Provider: "gemini",
		Code:     "unexpected_payload",
		Message:  fmt.Sprintf("download returned %q, not video bytes", contentType),
		Err:      core.ErrUnexpectedPayload,
	}
}
