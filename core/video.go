package core

import (
	"context"
	"fmt"
)

// ReferenceRole tags how a reference image steers generation.
type ReferenceRole string

const (
	// ReferenceRoleAsset marks an image whose subject should appear in the
	// generated video.
	ReferenceRoleAsset ReferenceRole = "asset"
	// ReferenceRoleStyle marks an image that only contributes visual style.
	ReferenceRoleStyle ReferenceRole = "style"
)

// ReferenceImage is an image supplied with a generation request to steer
// visual content or style.
type ReferenceImage struct {
	// Data holds the raw image bytes.
	Data []byte
	// MIMEType is the image MIME type (e.g., "image/png").
	MIMEType string
	// Role tags how the image is used. Defaults to ReferenceRoleAsset.
	Role ReferenceRole
}

// VideoParams holds optional generation parameters. Zero values are omitted
// from the request so the provider applies its own defaults.
type VideoParams struct {
	// AspectRatio is the output aspect ratio (e.g., "16:9").
	AspectRatio string
	// NegativePrompt describes content to avoid.
	NegativePrompt string
	// SampleCount is the number of videos to generate (provider default 1).
	SampleCount int
}

// VideoGenerateRequest represents a request to generate videos.
type VideoGenerateRequest struct {
	Model           ModelID
	Prompt          string
	ReferenceImages []ReferenceImage
	Params          *VideoParams
}

// Validate checks the request for required fields.
func (r *VideoGenerateRequest) Validate() error {
	if r.Model == "" {
		return ErrModelRequired
	}
	if r.Prompt == "" {
		return ErrPromptRequired
	}
	return nil
}

// GeneratedVideo is an opaque remote handle for one generated video. The
// bytes must be explicitly downloaded via VideoGenerator.DownloadVideo.
type GeneratedVideo struct {
	// URI locates the video on the provider (absolute URL or API-relative
	// resource path).
	URI string
	// MIMEType is the reported video MIME type, if any.
	MIMEType string
}

// OperationError carries an operation-level failure reported by the remote
// service, as opposed to a transport failure reaching it.
type OperationError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
	}
	return e.Message
}

// Unwrap ties operation errors to the ErrOperationFailed sentinel.
func (e *OperationError) Unwrap() error {
	return ErrOperationFailed
}

// VideoOperation is the handle for a remote asynchronous generation job.
// It is re-fetched by polling; Done is the completion flag.
type VideoOperation struct {
	// Name is the remote operation resource name.
	Name string
	// Model records the model the operation was submitted against.
	Model ModelID
	// Done reports whether the remote job reached a terminal state.
	Done bool
	// Videos holds the generated videos once Done is true. May be empty
	// even on a successful completion.
	Videos []GeneratedVideo
	// Error holds the operation-level error, if the job failed remotely.
	Error *OperationError
}

// State reports the terminal state of a done operation.
// For an operation that is not done it returns StatePolling.
func (op *VideoOperation) State() OperationState {
	switch {
	case !op.Done:
		return StatePolling
	case op.Error != nil:
		return StateErrored
	case len(op.Videos) > 0:
		return StateCompleted
	default:
		return StateCompletedEmpty
	}
}

// OperationState enumerates the observable states of a VideoOperation.
type OperationState string

const (
	StatePolling        OperationState = "polling"
	StateCompleted      OperationState = "completed"
	StateCompletedEmpty OperationState = "completed_empty"
	StateErrored        OperationState = "errored"
)

// VideoPayload is the result of downloading a GeneratedVideo.
type VideoPayload struct {
	// Data holds the raw video bytes.
	Data []byte
	// ContentType is the Content-Type reported by the download endpoint.
	ContentType string
}

// VideoGenerator is implemented by providers that can run asynchronous
// video-generation jobs.
type VideoGenerator interface {
	// GenerateVideos submits a generation request and returns the
	// operation handle for the remote job.
	GenerateVideos(ctx context.Context, req *VideoGenerateRequest) (*VideoOperation, error)

	// GetOperation re-fetches the current state of an operation.
	GetOperation(ctx context.Context, op *VideoOperation) (*VideoOperation, error)

	// WaitForOperation polls the operation per the policy until it is done,
	// the policy budget is exhausted, or the context is cancelled.
	WaitForOperation(ctx context.Context, op *VideoOperation, policy PollPolicy) (*VideoOperation, error)

	// DownloadVideo fetches the raw bytes for a generated video.
	DownloadVideo(ctx context.Context, video *GeneratedVideo) (*VideoPayload, error)
}
