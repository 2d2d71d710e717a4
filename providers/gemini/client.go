package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/petal-labs/reel/core"
)

// GenerateVideos submits a video generation request and returns the handle
// for the resulting long-running operation.
func (p *Gemini) GenerateVideos(ctx context.Context, req *core.VideoGenerateRequest) (*core.VideoOperation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	gemReq := mapVideoRequest(req)

	body, err := json.Marshal(gemReq)
	if err != nil {
		return nil, newDecodeError(err)
	}

	// Model is in the URL path
	url := fmt.Sprintf("%s/v1beta/models/%s:predictLongRunning", p.config.BaseURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, newNetworkError(err)
	}

	for key, values := range p.buildHeaders() {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := p.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, normalizeError(resp.StatusCode, respBody)
	}

	var op geminiOperation
	if err := json.Unmarshal(respBody, &op); err != nil {
		return nil, newDecodeError(err)
	}

	return mapOperation(&op, req.Model), nil
}

// GetOperation re-fetches the current state of a long-running operation.
func (p *Gemini) GetOperation(ctx context.Context, op *core.VideoOperation) (*core.VideoOperation, error) {
	if op == nil || op.Name == "" {
		return nil, fmt.Errorf("operation name required")
	}

	url := p.config.BaseURL + "/v1beta/" + op.Name

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newNetworkError(err)
	}

	httpReq.Header.Set("x-goog-api-key", p.config.APIKey.Expose())

	resp, err := p.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, normalizeError(resp.StatusCode, respBody)
	}

	var fetched geminiOperation
	if err := json.Unmarshal(respBody, &fetched); err != nil {
		return nil, newDecodeError(err)
	}

	return mapOperation(&fetched, op.Model), nil
}

// WaitForOperation polls the operation per the policy until the remote job
// reports done. The wait stops on the first done observation regardless of
// whether a result or an error is attached; inspecting the terminal state is
// the caller's concern. A nil policy falls back to core.DefaultPollPolicy.
func (p *Gemini) WaitForOperation(ctx context.Context, op *core.VideoOperation, policy core.PollPolicy) (*core.VideoOperation, error) {
	if policy == nil {
		policy = core.DefaultPollPolicy()
	}

	current := op
	start := time.Now()

	for attempt := 0; !current.Done; attempt++ {
		delay, ok := policy.NextDelay(attempt, time.Since(start))
		if !ok {
			return current, newPollTimeoutError(current.Name, attempt)
		}

		select {
		case <-ctx.Done():
			return current, ctx.Err()
		case <-time.After(delay):
		}

		next, err := p.GetOperation(ctx, current)
		if err != nil {
			return current, err
		}
		current = next
	}

	return current, nil
}

// DownloadVideo fetches the raw bytes for a generated video. The video URI
// may be absolute or relative to the API base URL. A payload that is not raw
// video bytes (e.g. a JSON envelope served with status 200) is rejected with
// core.ErrUnexpectedPayload rather than handed to the caller as video data.
func (p *Gemini) DownloadVideo(ctx context.Context, video *core.GeneratedVideo) (*core.VideoPayload, error) {
	if video == nil || video.URI == "" {
		return nil, fmt.Errorf("video URI required")
	}

	target := video.URI
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = p.config.BaseURL + "/v1beta/" + strings.TrimLeft(video.URI, "/")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, newNetworkError(err)
	}

	httpReq.Header.Set("x-goog-api-key", p.config.APIKey.Expose())

	resp, err := p.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, normalizeError(resp.StatusCode, data)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isVideoPayload(contentType) {
		return nil, newUnexpectedPayloadError(contentType)
	}

	return &core.VideoPayload{Data: data, ContentType: contentType}, nil
}

// isVideoPayload reports whether a download Content-Type plausibly carries
// raw video bytes. An empty header is accepted; the download endpoint omits
// it for some file types.
func isVideoPayload(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}

	switch {
	case mediaType == "":
		return true
	case strings.HasPrefix(mediaType, "video/"):
		return true
	case mediaType == "application/octet-stream":
		return true
	default:
		return false
	}
}
