// Package calibration captures the player's arms-up and arms-down poses and
// derives the shoulder-height mapping used during play.
package calibration

import (
	"errors"
	"log"
	"time"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/clock"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose"
)

// Phase is the calibration state.
type Phase int

const (
	AwaitUp Phase = iota
	AwaitDown
	Done
)

func (p Phase) String() string {
	switch p {
	case AwaitUp:
		return "AWAIT_UP"
	case AwaitDown:
		return "AWAIT_DOWN"
	case Done:
		return "DONE"
	}
	return "UNKNOWN"
}

// Sample is the upper body captured at the end of a phase.
type Sample struct {
	Phase     Phase
	Shoulders [2]pose.Keypoint
	Elbows    [2]pose.Keypoint
}

// Calibrator is a two-phase timed state machine. Each phase waits for its
// timer, then captures the current frame. A frame without shoulders and
// elbows re-arms the same phase.
type Calibrator struct {
	phase Phase
	timer *clock.Timer

	up      *Sample
	down    *Sample
	mapping pose.Mapping

	// Rejected counts captures discarded for a degenerate mapping.
	Rejected int
}

// New creates a calibrator whose phases last d each.
func New(c clock.Clock, d time.Duration) *Calibrator {
	return &Calibrator{
		phase: AwaitUp,
		timer: clock.NewTimer(c, d),
	}
}

// Tick advances the state machine with this tick's frame. A nil frame counts
// as a missing body.
func (c *Calibrator) Tick(frame pose.Frame) Phase {
	if c.phase == Done {
		return c.phase
	}

	c.timer.Start()
	if !c.timer.Expired() {
		return c.phase
	}

	sample, ok := capture(c.phase, frame)
	if !ok {
		c.timer.Restart()
		return c.phase
	}

	switch c.phase {
	case AwaitUp:
		c.up = &sample
		c.phase = AwaitDown
		c.timer.Restart()
	case AwaitDown:
		m, err := pose.NewMapping(pose.MeanY(c.up.Shoulders), pose.MeanY(sample.Shoulders))
		if err != nil {
			if errors.Is(err, pose.ErrDegenerateMapping) {
				log.Printf("Warning: calibration down pose matches up pose, retrying")
			}
			c.Rejected++
			c.timer.Restart()
			return c.phase
		}
		c.down = &sample
		c.mapping = m
		c.phase = Done
		c.timer.Reset()
	}
	return c.phase
}

func capture(phase Phase, frame pose.Frame) (Sample, bool) {
	if !frame.HasUpperBody() {
		return Sample{}, false
	}
	shoulders, _ := frame.Shoulders()
	elbows, _ := frame.Elbows()
	return Sample{Phase: phase, Shoulders: shoulders, Elbows: elbows}, true
}

func (c *Calibrator) Phase() Phase {
	return c.phase
}

// Done reports whether the mapping is ready.
func (c *Calibrator) Done() bool {
	return c.phase == Done
}

// Mapping is valid once Done is true.
func (c *Calibrator) Mapping() (pose.Mapping, bool) {
	return c.mapping, c.phase == Done
}

// Samples returns the captured up and down poses; nil until captured.
func (c *Calibrator) Samples() (up, down *Sample) {
	return c.up, c.down
}

// Prompt is the instruction shown for the current phase.
func (c *Calibrator) Prompt() string {
	switch c.phase {
	case AwaitUp:
		return "UP!"
	case AwaitDown:
		return "DOWN!"
	}
	return ""
}

// Remaining is the countdown in whole seconds for the current phase.
func (c *Calibrator) Remaining() int {
	if c.phase == Done {
		return 0
	}
	if !c.timer.Started() {
		return int(c.timer.Duration() / time.Second)
	}
	return c.timer.Remaining()
}

// Reset returns to AwaitUp and forgets every capture.
func (c *Calibrator) Reset() {
	c.phase = AwaitUp
	c.timer.Reset()
	c.up = nil
	c.down = nil
	c.mapping = pose.Mapping{}
	c.Rejected = 0
}
