package clock

import "time"

// Timer is a polled countdown. It never fires on its own; callers ask
// Expired on every tick. A zero duration makes it a stopwatch.
type Timer struct {
	clock    Clock
	duration time.Duration
	start    time.Time
	started  bool
}

// NewTimer creates a stopped timer of length d.
func NewTimer(c Clock, d time.Duration) *Timer {
	return &Timer{clock: c, duration: d}
}

// NewStopwatch creates a stopped timer that never expires.
func NewStopwatch(c Clock) *Timer {
	return NewTimer(c, 0)
}

// Start arms the timer. Calling Start on a running timer does nothing.
func (t *Timer) Start() {
	if t.started {
		return
	}
	t.start = t.clock.Now()
	t.started = true
}

// Restart re-arms the timer from now.
func (t *Timer) Restart() {
	t.started = false
	t.Start()
}

// Reset stops the timer.
func (t *Timer) Reset() {
	t.started = false
	t.start = time.Time{}
}

func (t *Timer) Started() bool {
	return t.started
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed is the time since Start, or zero when stopped.
func (t *Timer) Elapsed() time.Duration {
	if !t.started {
		return 0
	}
	return t.clock.Now().Sub(t.start)
}

// Expired reports whether a running countdown has reached its duration.
func (t *Timer) Expired() bool {
	return t.started && t.duration > 0 && t.Elapsed() >= t.duration
}

// Seconds is the elapsed time in whole seconds.
func (t *Timer) Seconds() int {
	return int(t.Elapsed() / time.Second)
}

// Remaining is the countdown shown to the player: the duration in seconds
// minus the whole seconds elapsed, never below zero.
func (t *Timer) Remaining() int {
	r := int(t.duration/time.Second) - t.Seconds()
	if r < 0 {
		return 0
	}
	return r
}
