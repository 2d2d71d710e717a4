package core

import (
	"testing"
	"time"
)

func TestPollPolicyFixedInterval(t *testing.T) {
	policy := NewPollPolicy(PollConfig{
		Interval: 5 * time.Second,
		Deadline: time.Hour,
	})

	// The interval must stay constant across attempts (no backoff).
	for attempt := 0; attempt < 10; attempt++ {
		delay, ok := policy.NextDelay(attempt, time.Duration(attempt)*5*time.Second)
		if !ok {
			t.Fatalf("NextDelay(attempt=%d) ok = false, want true", attempt)
		}
		if delay != 5*time.Second {
			t.Errorf("NextDelay(attempt=%d) = %v, want 5s", attempt, delay)
		}
	}
}

func TestPollPolicyMaxAttempts(t *testing.T) {
	policy := NewPollPolicy(PollConfig{
		Interval:    time.Second,
		MaxAttempts: 3,
		Deadline:    time.Hour,
	})

	for attempt := 0; attempt < 3; attempt++ {
		if _, ok := policy.NextDelay(attempt, 0); !ok {
			t.Fatalf("NextDelay(attempt=%d) ok = false, want true", attempt)
		}
	}

	if _, ok := policy.NextDelay(3, 0); ok {
		t.Error("NextDelay(attempt=3) ok = true, want false after attempt cap")
	}
}

func TestPollPolicyDeadline(t *testing.T) {
	policy := NewPollPolicy(PollConfig{
		Interval: 10 * time.Second,
		Deadline: 25 * time.Second,
	})

	if _, ok := policy.NextDelay(0, 0); !ok {
		t.Error("NextDelay(elapsed=0) ok = false, want true")
	}
	if _, ok := policy.NextDelay(1, 10*time.Second); !ok {
		t.Error("NextDelay(elapsed=10s) ok = false, want true")
	}

	// 20s elapsed + 10s interval exceeds the 25s deadline.
	if _, ok := policy.NextDelay(2, 20*time.Second); ok {
		t.Error("NextDelay(elapsed=20s) ok = true, want false past deadline")
	}
}

func TestPollPolicyDefaults(t *testing.T) {
	policy := NewPollPolicy(PollConfig{})

	delay, ok := policy.NextDelay(0, 0)
	if !ok {
		t.Fatal("NextDelay() ok = false, want true")
	}
	if delay != 10*time.Second {
		t.Errorf("default interval = %v, want 10s", delay)
	}
}

func TestDefaultPollPolicy(t *testing.T) {
	policy := DefaultPollPolicy()

	delay, ok := policy.NextDelay(0, 0)
	if !ok {
		t.Fatal("NextDelay() ok = false, want true")
	}
	if delay != 10*time.Second {
		t.Errorf("interval = %v, want 10s", delay)
	}

	// The default wait is bounded.
	if _, ok := policy.NextDelay(1, 31*time.Minute); ok {
		t.Error("NextDelay(elapsed=31m) ok = true, want false past default deadline")
	}
}
