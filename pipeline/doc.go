// Package pipeline implements the promo-ad generation pipeline: locate local
// reference assets, load them, submit a video generation request, wait for
// the remote operation, download the result and persist it to disk.
//
// The pipeline is driven through a Runner, which accepts any
// core.VideoGenerator. Stages are exposed as plain functions so callers can
// recompose them.
package pipeline
