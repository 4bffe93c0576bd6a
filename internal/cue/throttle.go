package cue

import (
	"sync"
	"time"
)

// throttle enforces a minimum interval between successive cues. Unlike a
// blocking limiter it never waits: callers that arrive too early are told to
// skip.
type throttle struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{now: time.Now}
	}
	return &throttle{interval: interval, now: time.Now}
}

func (t *throttle) allow() bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}
