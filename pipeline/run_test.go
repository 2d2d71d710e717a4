package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/petal-labs/reel/core"
)

// fakeGenerator scripts a backend for Runner tests. Its WaitForOperation
// consults the poll policy the way a real provider does, minus the sleeps.
type fakeGenerator struct {
	generateCalls int
	downloadCalls int
	lastRequest   *core.VideoGenerateRequest

	// pollsUntilDone is how many polls the operation stays pending for.
	pollsUntilDone int

	// terminal is the operation state once done.
	terminal core.VideoOperation

	downloadPayload *core.VideoPayload
	downloadErr     error
}

func (f *fakeGenerator) GenerateVideos(ctx context.Context, req *core.VideoGenerateRequest) (*core.VideoOperation, error) {
	f.generateCalls++
	f.lastRequest = req
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &core.VideoOperation{Name: "operations/fake-op", Model: req.Model}, nil
}

func (f *fakeGenerator) GetOperation(ctx context.Context, op *core.VideoOperation) (*core.VideoOperation, error) {
	return op, nil
}

func (f *fakeGenerator) WaitForOperation(ctx context.Context, op *core.VideoOperation, policy core.PollPolicy) (*core.VideoOperation, error) {
	if policy == nil {
		policy = core.DefaultPollPolicy()
	}
	current := op
	for attempt := 0; !current.Done; attempt++ {
		if _, ok := policy.NextDelay(attempt, time.Duration(attempt)*time.Second); !ok {
			return current, &core.ProviderError{
				Provider: "fake",
				Code:     "poll_timeout",
				Message:  "poll budget exhausted",
				Err:      core.ErrPollTimeout,
			}
		}
		if attempt+1 >= f.pollsUntilDone {
			done := f.terminal
			done.Name = current.Name
			done.Model = current.Model
			done.Done = true
			current = &done
		}
	}
	return current, nil
}

func (f *fakeGenerator) DownloadVideo(ctx context.Context, video *core.GeneratedVideo) (*core.VideoPayload, error) {
	f.downloadCalls++
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return f.downloadPayload, nil
}

var _ core.VideoGenerator = (*fakeGenerator)(nil)

func writeAssets(t *testing.T, names ...string) (dir string, paths []string) {
	t.Helper()
	dir = t.TempDir()
	for _, name := range names {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(name+"-bytes"), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	return dir, paths
}

func TestRunSuccess(t *testing.T) {
	dir, paths := writeAssets(t, "archer.png", "knight.png")
	output := filepath.Join(dir, "out", "ad.mp4")

	fake := &fakeGenerator{
		pollsUntilDone: 3,
		terminal: core.VideoOperation{
			Videos: []core.GeneratedVideo{{URI: "files/vid-1", MIMEType: "video/mp4"}},
		},
		downloadPayload: &core.VideoPayload{Data: []byte("mp4-bytes"), ContentType: "video/mp4"},
	}

	runner := NewRunner(fake, zerolog.Nop())
	result, err := runner.Run(context.Background(), Config{
		AssetPaths: append(paths, filepath.Join(dir, "missing.png")),
		OutputPath: output,
		Model:      "veo-3.1-generate-preview",
		Poll:       core.PollConfig{Interval: time.Second, Deadline: time.Hour},
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.State != core.StateCompleted {
		t.Errorf("State = %q, want completed", result.State)
	}
	if result.OutputPath != output || result.BytesWritten != len("mp4-bytes") {
		t.Errorf("OutputPath/BytesWritten = %q/%d", result.OutputPath, result.BytesWritten)
	}
	if result.RunID == "" {
		t.Error("RunID is empty")
	}

	written, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != "mp4-bytes" {
		t.Errorf("written bytes = %q, want downloaded payload verbatim", written)
	}

	// Missing asset is dropped; survivors keep order; prompt defaults.
	req := fake.lastRequest
	if len(req.ReferenceImages) != 2 {
		t.Fatalf("len(ReferenceImages) = %d, want 2", len(req.ReferenceImages))
	}
	if string(req.ReferenceImages[0].Data) != "archer.png-bytes" {
		t.Error("reference images are not in asset order")
	}
	if req.Prompt != DefaultPrompt {
		t.Error("Prompt did not default to DefaultPrompt")
	}
}

func TestRunOverwritesExistingOutput(t *testing.T) {
	dir, paths := writeAssets(t, "mage.png")
	output := filepath.Join(dir, "ad.mp4")
	if err := os.WriteFile(output, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	fake := &fakeGenerator{
		pollsUntilDone:  1,
		terminal:        core.VideoOperation{Videos: []core.GeneratedVideo{{URI: "files/vid-1"}}},
		downloadPayload: &core.VideoPayload{Data: []byte("fresh"), ContentType: "video/mp4"},
	}

	_, err := NewRunner(fake, zerolog.Nop()).Run(context.Background(), Config{
		AssetPaths: paths,
		OutputPath: output,
		Model:      "veo-3.1-generate-preview",
	})
	if err != nil {
		t.Fatal(err)
	}

	written, _ := os.ReadFile(output)
	if string(written) != "fresh" {
		t.Errorf("output = %q, want previous contents overwritten", written)
	}
}

func TestRunNoAssetsAbortsBeforeSubmission(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeGenerator{}

	_, err := NewRunner(fake, zerolog.Nop()).Run(context.Background(), Config{
		AssetPaths: []string{filepath.Join(dir, "nope.png")},
		OutputPath: filepath.Join(dir, "ad.mp4"),
		Model:      "veo-3.1-generate-preview",
	})
	if !errors.Is(err, ErrNoAssets) {
		t.Fatalf("error = %v, want ErrNoAssets", err)
	}
	if fake.generateCalls != 0 {
		t.Errorf("generateCalls = %d, want 0", fake.generateCalls)
	}
}

func TestRunEmptyResult(t *testing.T) {
	dir, paths := writeAssets(t, "archer.png")
	output := filepath.Join(dir, "ad.mp4")

	fake := &fakeGenerator{pollsUntilDone: 1}

	result, err := NewRunner(fake, zerolog.Nop()).Run(context.Background(), Config{
		AssetPaths: paths,
		OutputPath: output,
		Model:      "veo-3.1-generate-preview",
	})
	if !errors.Is(err, core.ErrNoVideoResult) {
		t.Fatalf("error = %v, want ErrNoVideoResult", err)
	}
	if result.State != core.StateCompletedEmpty {
		t.Errorf("State = %q, want completed_empty", result.State)
	}
	if fake.downloadCalls != 0 {
		t.Errorf("downloadCalls = %d, want 0", fake.downloadCalls)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("output file exists, want none written")
	}
}

func TestRunOperationError(t *testing.T) {
	dir, paths := writeAssets(t, "archer.png")
	output := filepath.Join(dir, "ad.mp4")

	fake := &fakeGenerator{
		pollsUntilDone: 1,
		terminal: core.VideoOperation{
			Error: &core.OperationError{Code: 13, Message: "internal error"},
		},
	}

	result, err := NewRunner(fake, zerolog.Nop()).Run(context.Background(), Config{
		AssetPaths: paths,
		OutputPath: output,
		Model:      "veo-3.1-generate-preview",
	})
	if !errors.Is(err, core.ErrOperationFailed) {
		t.Fatalf("error = %v, want ErrOperationFailed", err)
	}
	if result.State != core.StateErrored {
		t.Errorf("State = %q, want errored", result.State)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("output file exists, want none written")
	}
}

func TestRunUnexpectedPayload(t *testing.T) {
	dir, paths := writeAssets(t, "archer.png")
	output := filepath.Join(dir, "ad.mp4")

	fake := &fakeGenerator{
		pollsUntilDone: 1,
		terminal: core.VideoOperation{
			Videos: []core.GeneratedVideo{{URI: "files/vid-1"}},
		},
		downloadErr: &core.ProviderError{
			Provider: "fake",
			Code:     "unexpected_payload",
			Message:  `download returned "application/json", not video bytes`,
			Err:      core.ErrUnexpectedPayload,
		},
	}

	_, err := NewRunner(fake, zerolog.Nop()).Run(context.Background(), Config{
		AssetPaths: paths,
		OutputPath: output,
		Model:      "veo-3.1-generate-preview",
	})
	if !errors.Is(err, core.ErrUnexpectedPayload) {
		t.Fatalf("error = %v, want ErrUnexpectedPayload", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("output file exists, want none written")
	}
}

func TestRunPollBudgetExhausted(t *testing.T) {
	dir, paths := writeAssets(t, "archer.png")

	fake := &fakeGenerator{pollsUntilDone: 100}

	_, err := NewRunner(fake, zerolog.Nop()).Run(context.Background(), Config{
		AssetPaths: paths,
		OutputPath: filepath.Join(dir, "ad.mp4"),
		Model:      "veo-3.1-generate-preview",
		Poll:       core.PollConfig{Interval: time.Second, MaxAttempts: 3, Deadline: time.Hour},
	})
	if !errors.Is(err, core.ErrPollTimeout) {
		t.Fatalf("error = %v, want ErrPollTimeout", err)
	}
}
