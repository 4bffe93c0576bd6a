// Package cue provides the best-effort feedback played when the gallery
// advances. A cue never blocks its caller and never reports failure.
package cue

import (
	"io"
	"sync"
	"time"

	"github.com/atomicstack/lookbook/internal/logging/events"
)

// Cue is a fire-and-forget feedback capability.
type Cue interface {
	Play()
}

// Nop is the default cue: it does nothing.
type Nop struct{}

func (Nop) Play() {}

const bel = "\a"

// DefaultBellInterval keeps rapid advances from turning into a buzz.
const DefaultBellInterval = 120 * time.Millisecond

// Bell rings the terminal bell on a background writer.
type Bell struct {
	out      io.Writer
	reqs     chan struct{}
	done     chan struct{}
	throttle *throttle

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewBell starts the writer goroutine. A nil writer yields a bell that drops
// every request.
func NewBell(out io.Writer, minInterval time.Duration) *Bell {
	b := &Bell{
		out:      out,
		reqs:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		throttle: newThrottle(minInterval),
	}
	if out != nil {
		b.wg.Add(1)
		go b.loop()
	}
	return b
}

// Play queues a bell without waiting.
func (b *Bell) Play() {
	if b == nil || b.out == nil {
		return
	}
	select {
	case <-b.done:
		return
	default:
	}
	if !b.throttle.allow() {
		events.Cue.Dropped("throttled")
		return
	}
	select {
	case b.reqs <- struct{}{}:
	default:
		events.Cue.Dropped("busy")
	}
}

// Close stops the writer goroutine and waits for it to exit.
func (b *Bell) Close() {
	if b == nil {
		return
	}
	b.closeOnce.Do(func() {
		close(b.done)
	})
	b.wg.Wait()
}

func (b *Bell) loop() {
	defer b.wg.Done()
	for {
		select {
		case <-b.done:
			return
		case <-b.reqs:
			b.ring()
		}
	}
}

func (b *Bell) ring() {
	defer func() {
		if r := recover(); r != nil {
			events.Cue.Dropped("panic")
		}
	}()
	if _, err := io.WriteString(b.out, bel); err != nil {
		events.Cue.Error(err)
	}
}
