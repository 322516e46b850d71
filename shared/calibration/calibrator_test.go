package calibration

import (
	"testing"
	"time"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/clock"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose"
)

const phase = 3 * time.Second

func newTestCalibrator() (*Calibrator, *clock.Mock) {
	m := clock.NewMock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return New(m, phase), m
}

func TestCalibratorHappyPath(t *testing.T) {
	c, m := newTestCalibrator()
	up := pose.StaticFrame(100, 60)
	down := pose.StaticFrame(200, 240)

	if got := c.Tick(up); got != AwaitUp {
		t.Fatalf("phase = %v, want AWAIT_UP", got)
	}
	if c.Prompt() != "UP!" {
		t.Errorf("prompt = %q, want UP!", c.Prompt())
	}

	m.Advance(phase)
	if got := c.Tick(up); got != AwaitDown {
		t.Fatalf("phase = %v, want AWAIT_DOWN", got)
	}
	if c.Prompt() != "DOWN!" {
		t.Errorf("prompt = %q, want DOWN!", c.Prompt())
	}

	m.Advance(phase - time.Millisecond)
	if got := c.Tick(down); got != AwaitDown {
		t.Fatalf("down captured early: %v", got)
	}
	m.Advance(time.Millisecond)
	if got := c.Tick(down); got != Done {
		t.Fatalf("phase = %v, want DONE", got)
	}

	mapping, ok := c.Mapping()
	if !ok {
		t.Fatal("mapping not ready")
	}
	if mapping.MeanUpY != 100 || mapping.MeanDownY != 200 {
		t.Errorf("mapping = %+v, want up 100 down 200", mapping)
	}

	upS, downS := c.Samples()
	if upS == nil || downS == nil {
		t.Fatal("samples missing")
	}
	if upS.Elbows[0].Y != 60 || downS.Elbows[1].Y != 240 {
		t.Errorf("elbows not captured: up %+v down %+v", upS.Elbows, downS.Elbows)
	}
	if c.Prompt() != "" {
		t.Errorf("prompt after done = %q", c.Prompt())
	}
}

func TestCalibratorRearmsOnMissingBody(t *testing.T) {
	c, m := newTestCalibrator()

	c.Tick(nil)
	m.Advance(phase)
	if got := c.Tick(pose.Frame{}); got != AwaitUp {
		t.Fatalf("phase = %v, want AWAIT_UP after empty frame", got)
	}
	if got := c.Remaining(); got != 3 {
		t.Errorf("Remaining after re-arm = %d, want 3", got)
	}

	// Shoulders only: elbows are still required.
	partial := pose.Frame{
		{ID: pose.LeftShoulder, Y: 10},
		{ID: pose.RightShoulder, Y: 10},
	}
	m.Advance(phase)
	if got := c.Tick(partial); got != AwaitUp {
		t.Fatalf("phase = %v, want AWAIT_UP after partial body", got)
	}

	m.Advance(phase)
	if got := c.Tick(pose.StaticFrame(10, 5)); got != AwaitDown {
		t.Fatalf("phase = %v, want AWAIT_DOWN", got)
	}
}

func TestCalibratorRetriesDegenerateDown(t *testing.T) {
	c, m := newTestCalibrator()
	same := pose.StaticFrame(150, 100)

	c.Tick(same)
	m.Advance(phase)
	c.Tick(same)
	m.Advance(phase)
	if got := c.Tick(same); got != AwaitDown {
		t.Fatalf("phase = %v, want AWAIT_DOWN after degenerate capture", got)
	}
	if c.Rejected != 1 {
		t.Errorf("Rejected = %d, want 1", c.Rejected)
	}
	if _, down := c.Samples(); down != nil {
		t.Error("degenerate down sample should be discarded")
	}

	m.Advance(phase)
	if got := c.Tick(pose.StaticFrame(250, 300)); got != Done {
		t.Fatalf("phase = %v, want DONE", got)
	}
}

func TestCalibratorReset(t *testing.T) {
	c, m := newTestCalibrator()
	c.Tick(pose.StaticFrame(100, 60))
	m.Advance(phase)
	c.Tick(pose.StaticFrame(100, 60))
	m.Advance(phase)
	c.Tick(pose.StaticFrame(200, 240))
	if !c.Done() {
		t.Fatal("expected DONE")
	}

	c.Reset()
	if c.Phase() != AwaitUp {
		t.Errorf("phase = %v, want AWAIT_UP", c.Phase())
	}
	if up, down := c.Samples(); up != nil || down != nil {
		t.Error("samples not cleared")
	}
	if _, ok := c.Mapping(); ok {
		t.Error("mapping should be unavailable after reset")
	}
	if got := c.Remaining(); got != 3 {
		t.Errorf("Remaining = %d, want 3", got)
	}
}

func TestDoneIsTerminal(t *testing.T) {
	c, m := newTestCalibrator()
	c.Tick(pose.StaticFrame(100, 60))
	m.Advance(phase)
	c.Tick(pose.StaticFrame(100, 60))
	m.Advance(phase)
	c.Tick(pose.StaticFrame(200, 240))

	m.Advance(time.Hour)
	if got := c.Tick(nil); got != Done {
		t.Errorf("phase = %v, want DONE", got)
	}
}
