// Package timer implements the focus countdown.
package timer

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultSeconds is a 25 minute focus block.
const DefaultSeconds = 25 * 60

// State is a snapshot of a Timer.
type State struct {
	Remaining int
	Running   bool
}

// Timer counts down whole seconds. It is not safe for concurrent use; the shell
// drives it from a single update loop.
type Timer struct {
	duration  int
	remaining int
	running   bool
}

// New returns a paused timer of seconds length. Non-positive values select DefaultSeconds.
func New(seconds int) *Timer {
	if seconds <= 0 {
		seconds = DefaultSeconds
	}
	return &Timer{duration: seconds, remaining: seconds}
}

// Start resumes the countdown. A finished timer does not start.
func (t *Timer) Start() {
	if t.remaining > 0 {
		t.running = true
	}
}

// Pause stops the countdown.
func (t *Timer) Pause() {
	t.running = false
}

// Toggle flips between running and paused and reports the new running state.
func (t *Timer) Toggle() bool {
	if t.running {
		t.Pause()
	} else {
		t.Start()
	}
	return t.running
}

// Reset pauses and restores the full duration.
func (t *Timer) Reset() {
	t.running = false
	t.remaining = t.duration
}

// Tick advances one second while running. It reports whether the countdown
// finished on this tick.
func (t *Timer) Tick() bool {
	if !t.running {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.running = false
		return true
	}
	return false
}

// Remaining returns the seconds left.
func (t *Timer) Remaining() int { return t.remaining }

// Running reports whether the countdown is active.
func (t *Timer) Running() bool { return t.running }

// Duration returns the full length in seconds.
func (t *Timer) Duration() int { return t.duration }

// State returns a snapshot.
func (t *Timer) State() State {
	return State{Remaining: t.remaining, Running: t.running}
}

// Format renders the remaining time as m:ss.
func (t *Timer) Format() string {
	return Format(t.remaining)
}

// Format renders seconds as m:ss.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Ticker calls a function on a fixed interval until stopped.
type Ticker struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Start begins calling fn every interval. fn returning false stops the ticker.
// Starting a running ticker restarts it.
func (k *Ticker) Start(ctx context.Context, interval time.Duration, fn func() bool) {
	k.Stop()
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	k.mu.Lock()
	k.cancel = cancel
	k.done = done
	k.mu.Unlock()

	go func() {
		defer close(done)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if !fn() {
					return
				}
			}
		}
	}()
}

// Stop cancels the ticker and waits for its goroutine to exit.
func (k *Ticker) Stop() {
	k.mu.Lock()
	cancel, done := k.cancel, k.done
	k.cancel, k.done = nil, nil
	k.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Done returns a channel closed when the current run ends, or nil when idle.
func (k *Ticker) Done() <-chan struct{} {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.done
}
