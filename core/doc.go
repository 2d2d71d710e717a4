// Package core provides the Reel SDK types for asynchronous video generation.
//
// The core package defines the provider-agnostic abstractions: a
// [VideoGenerateRequest] carrying a prompt and reference images, a
// [VideoOperation] handle for the remote long-running job, and the
// [VideoGenerator] interface that providers implement.
//
// # Provider Interface
//
// All providers implement the [Provider] interface for discovery and the
// [VideoGenerator] interface for the actual work:
//
//	type VideoGenerator interface {
//	    GenerateVideos(ctx context.Context, req *VideoGenerateRequest) (*VideoOperation, error)
//	    GetOperation(ctx context.Context, op *VideoOperation) (*VideoOperation, error)
//	    WaitForOperation(ctx context.Context, op *VideoOperation, policy PollPolicy) (*VideoOperation, error)
//	    DownloadVideo(ctx context.Context, video *GeneratedVideo) (*VideoPayload, error)
//	}
//
// Providers SHOULD be safe for concurrent use.
//
// # Operation Lifecycle
//
// A remote job moves through Submitted -> Polling -> one of three terminal
// states: completed with videos, completed without videos, or errored. The
// Done flag is authoritative: polling stops on the first done observation
// regardless of whether a result or an error is attached.
//
// # Polling
//
// WaitForOperation re-fetches the operation at a fixed interval governed by a
// [PollPolicy]. Unlike a naive sleep loop, the policy bounds the wait with a
// deadline and a maximum attempt count, and the context cancels it early:
//
//	policy := core.DefaultPollPolicy()
//	op, err := provider.WaitForOperation(ctx, op, policy)
//
// # Errors
//
// Provider failures are returned as [*ProviderError] values wrapping sentinel
// errors such as [ErrUnauthorized] or [ErrServer], so callers can classify
// failures with errors.Is without parsing message text.
package core
