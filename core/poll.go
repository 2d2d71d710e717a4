package core

import "time"

// PollPolicy determines how an operation is polled until completion.
type PollPolicy interface {
	// NextDelay returns the delay before the next poll and whether polling
	// should continue. If ok is false the wait gives up with ErrPollTimeout.
	// attempt starts at 0 for the first poll after submission. elapsed is
	// the time since polling began.
	NextDelay(attempt int, elapsed time.Duration) (delay time.Duration, ok bool)
}

// PollConfig configures polling behavior.
type PollConfig struct {
	Interval    time.Duration // Delay between polls (default: 10s)
	MaxAttempts int           // Maximum number of polls, 0 means no attempt cap
	Deadline    time.Duration // Total time budget (default: 30m)
}

// DefaultPollPolicy returns a poll policy with sensible defaults:
// a fixed 10 second interval bounded by a 30 minute deadline.
func DefaultPollPolicy() PollPolicy {
	return NewPollPolicy(PollConfig{
		Interval: 10 * time.Second,
		Deadline: 30 * time.Minute,
	})
}

// NewPollPolicy creates a fixed-interval poll policy with the given
// configuration. The interval is constant; there is deliberately no backoff
// because generation jobs have a fairly predictable duration and the status
// endpoint is cheap.
func NewPollPolicy(cfg PollConfig) PollPolicy {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Second
	}
	if cfg.Deadline <= 0 {
		cfg.Deadline = 30 * time.Minute
	}
	return &fixedInterval{cfg: cfg}
}

type fixedInterval struct {
	cfg PollConfig
}

func (f *fixedInterval) NextDelay(attempt int, elapsed time.Duration) (time.Duration, bool) {
	if f.cfg.MaxAttempts > 0 && attempt >= f.cfg.MaxAttempts {
		return 0, false
	}
	// The upcoming sleep must also fit inside the deadline.
	if elapsed+f.cfg.Interval > f.cfg.Deadline {
		return 0, false
	}
	return f.cfg.Interval, true
}
