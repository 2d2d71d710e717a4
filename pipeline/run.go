package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/petal-labs/reel/core"
)

// ErrNoAssets indicates that none of the configured asset paths exist, so
// the run aborted before any API call.
var ErrNoAssets = errors.New("no reference assets found")

// Config describes one pipeline run.
type Config struct {
	// AssetPaths are the candidate reference image paths, in the order
	// they should be sent.
	AssetPaths []string

	// OutputPath is where the downloaded video is written.
	OutputPath string

	// Prompt overrides DefaultPrompt when non-empty.
	Prompt string

	// Model selects the generation model.
	Model core.ModelID

	// Poll bounds the wait for the remote operation. Zero values take the
	// poll defaults (10s interval, 30m deadline).
	Poll core.PollConfig
}

// Result summarizes a completed run.
type Result struct {
	// RunID identifies this run in logs and diagnostics.
	RunID string

	// OperationName is the remote operation resource name.
	OperationName string

	// State is the terminal state the operation was observed in.
	State core.OperationState

	// OutputPath is set when a video was written to disk.
	OutputPath string

	// BytesWritten is the size of the persisted video.
	BytesWritten int
}

// Runner drives the pipeline against a video generation backend.
type Runner struct {
	gen    core.VideoGenerator
	logger zerolog.Logger
}

// NewRunner creates a Runner. Any core.VideoGenerator works; tests use an
// in-memory fake.
func NewRunner(gen core.VideoGenerator, logger zerolog.Logger) *Runner {
	return &Runner{gen: gen, logger: logger}
}

// Run executes the pipeline end to end: locate assets, load them, submit the
// generation request, wait for the operation and persist the first generated
// video. A run that produces no video returns an error alongside the partial
// Result so callers can report the terminal state.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	runID := uuid.NewString()
	logger := r.logger.With().Str("run_id", runID).Logger()
	result := &Result{RunID: runID}

	logger.Info().Int("candidates", len(cfg.AssetPaths)).Msg("locating reference assets")
	paths := LocateAssets(logger, cfg.AssetPaths)
	if len(paths) == 0 {
		logger.Error().Msg("no assets found, aborting before submission")
		return result, ErrNoAssets
	}
	logger.Info().Int("found", len(paths)).Msg("assets located")

	refs := LoadReferenceImages(logger, paths)
	req := BuildRequest(cfg.Model, cfg.Prompt, refs)

	logger.Info().
		Str("model", string(req.Model)).
		Int("reference_images", len(refs)).
		Msg("submitting generation request")

	op, err := r.gen.GenerateVideos(ctx, req)
	if err != nil {
		return result, fmt.Errorf("submit generation request: %w", err)
	}
	result.OperationName = op.Name
	logger.Info().Str("operation", op.Name).Msg("operation started, waiting for completion")

	policy := &loggingPolicy{
		inner:  core.NewPollPolicy(cfg.Poll),
		logger: logger,
	}
	op, err = r.gen.WaitForOperation(ctx, op, policy)
	if op != nil {
		result.State = op.State()
	}
	if err != nil {
		return result, fmt.Errorf("wait for operation: %w", err)
	}

	switch op.State() {
	case core.StateErrored:
		logger.Error().
			Int("code", op.Error.Code).
			Str("message", op.Error.Message).
			Msg("operation failed remotely")
		return result, fmt.Errorf("operation %s: %w", op.Name, op.Error)

	case core.StateCompletedEmpty:
		logger.Warn().Str("operation", op.Name).Msg("operation completed without videos")
		return result, fmt.Errorf("operation %s: %w", op.Name, core.ErrNoVideoResult)
	}

	video := op.Videos[0]
	logger.Info().Str("uri", video.URI).Msg("downloading generated video")

	payload, err := r.gen.DownloadVideo(ctx, &video)
	if err != nil {
		if errors.Is(err, core.ErrUnexpectedPayload) {
			logger.Error().Err(err).Msg("download did not return video bytes, nothing written")
		}
		return result, fmt.Errorf("download video: %w", err)
	}

	if err := SaveVideo(cfg.OutputPath, payload.Data); err != nil {
		return result, err
	}
	result.OutputPath = cfg.OutputPath
	result.BytesWritten = len(payload.Data)

	logger.Info().
		Str("path", cfg.OutputPath).
		Int("bytes", len(payload.Data)).
		Msg("video saved")
	return result, nil
}

// loggingPolicy wraps a poll policy to emit a debug record per poll tick.
type loggingPolicy struct {
	inner  core.PollPolicy
	logger zerolog.Logger
}

func (p *loggingPolicy) NextDelay(attempt int, elapsed time.Duration) (time.Duration, bool) {
	delay, ok := p.inner.NextDelay(attempt, elapsed)
	if ok {
		p.logger.Debug().
			Int("attempt", attempt+1).
			Dur("elapsed", elapsed).
			Msg("waiting for operation")
	}
	return delay, ok
}
