package pose

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFrameLookup(t *testing.T) {
	f := StaticFrame(100, 140)
	s, ok := f.Shoulders()
	if !ok {
		t.Fatal("expected shoulders")
	}
	if s[0].ID != LeftShoulder || s[1].ID != RightShoulder {
		t.Errorf("got ids %d,%d, want %d,%d", s[0].ID, s[1].ID, LeftShoulder, RightShoulder)
	}
	if !f.HasUpperBody() {
		t.Error("expected full upper body")
	}
	if got := MeanY(s); got != 100 {
		t.Errorf("MeanY = %v, want 100", got)
	}

	var empty Frame
	if _, ok := empty.Shoulders(); ok {
		t.Error("empty frame must not report shoulders")
	}
	if empty.HasUpperBody() {
		t.Error("empty frame must not report a body")
	}
}

func TestFrameFindInIndexOrder(t *testing.T) {
	f := make(Frame, 33)
	for i := range f {
		f[i] = Keypoint{ID: i, X: i, Y: i * 2}
	}
	kp, ok := f.Find(RightElbow)
	if !ok || kp.Y != RightElbow*2 {
		t.Errorf("Find(RightElbow) = %+v %v", kp, ok)
	}
}

func TestNewMappingRejectsDegenerate(t *testing.T) {
	if _, err := NewMapping(120, 120); !errors.Is(err, ErrDegenerateMapping) {
		t.Fatalf("err = %v, want ErrDegenerateMapping", err)
	}
}

func TestMappingLinearity(t *testing.T) {
	m, err := NewMapping(0, 100)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		y, want float64
	}{
		{50, 0},
		{0, 1},
		{100, -1},
		{150, -1},
		{-50, 1},
		{25, 0.5},
	}
	for _, tt := range tests {
		if got := m.Percentage(tt.y); got != tt.want {
			t.Errorf("Percentage(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

// scriptSensor returns its frames in order, then ErrNotReady.
type scriptSensor struct {
	frames []Frame
	errs   []error
	reads  int
}

func (s *scriptSensor) Sample() (Frame, error) {
	i := s.reads
	s.reads++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i >= len(s.frames) {
		return nil, ErrNotReady
	}
	return s.frames[i], nil
}

func shoulderFrame(y int) Frame {
	return StaticFrame(y, y+40)
}

func TestSignalThrottledEndToEnd(t *testing.T) {
	src := &scriptSensor{frames: []Frame{
		shoulderFrame(200), shoulderFrame(100), shoulderFrame(200), shoulderFrame(100),
	}}
	sig := NewSignal(src, 3)
	m, err := NewMapping(200, 100)
	if err != nil {
		t.Fatal(err)
	}
	sig.Calibrate(m)

	want := []float64{1, -1, 1, -1}
	var got []float64
	for tick := 0; tick < 12; tick++ {
		p := sig.Next()
		if tick%3 == 0 {
			got = append(got, p)
		} else if p != got[len(got)-1] {
			t.Fatalf("tick %d: value changed between samples: %v", tick, p)
		}
	}
	if src.reads != 4 {
		t.Fatalf("sensor reads = %d, want 4", src.reads)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSignalHoldsOnSensorFailure(t *testing.T) {
	src := &scriptSensor{
		frames: []Frame{shoulderFrame(0), nil, nil},
		errs:   []error{nil, ErrEmptyFrame, ErrNotReady},
	}
	sig := NewSignal(src, 1)
	m, _ := NewMapping(0, 100)
	sig.Calibrate(m)

	if got := sig.Next(); got != 1 {
		t.Fatalf("first = %v, want 1", got)
	}
	if got := sig.Next(); got != 1 {
		t.Errorf("after empty frame = %v, want held 1", got)
	}
	if got := sig.Next(); got != 1 {
		t.Errorf("after not-ready = %v, want held 1", got)
	}
}

func TestSignalNoBodyDecaysToZero(t *testing.T) {
	src := &scriptSensor{frames: []Frame{shoulderFrame(0), {}}}
	sig := NewSignal(src, 1)
	m, _ := NewMapping(0, 100)
	sig.Calibrate(m)

	sig.Next()
	if got := sig.Next(); got != 0 {
		t.Errorf("no body = %v, want 0", got)
	}
}

func TestSignalUncalibratedIsZero(t *testing.T) {
	sig := NewSignal(&scriptSensor{frames: []Frame{shoulderFrame(10)}}, 1)
	if got := sig.Next(); got != 0 {
		t.Errorf("uncalibrated = %v, want 0", got)
	}
	sig.Reset()
	if sig.Calibrated() || sig.Frame() != nil {
		t.Error("Reset should clear mapping and frame")
	}
}

func TestSampleReportsFailure(t *testing.T) {
	sig := NewSignal(SensorFunc(func() (Frame, error) { return nil, ErrNotReady }), 3)
	if f, ok := sig.Sample(); ok || f != nil {
		t.Errorf("Sample = %v, %v; want nil, false", f, ok)
	}
}

func TestReplaySensor(t *testing.T) {
	rec := &Recording{FPS: 30, Frames: []Frame{shoulderFrame(1), shoulderFrame(2)}}
	r := NewReplaySensor(rec, false)
	for i := 1; i <= 2; i++ {
		f, err := r.Sample()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if s, _ := f.Shoulders(); s[0].Y != i {
			t.Errorf("frame %d shoulder y = %d", i, s[0].Y)
		}
	}
	if !r.Done() {
		t.Error("expected Done after last frame")
	}
	if _, err := r.Sample(); !errors.Is(err, ErrNotReady) {
		t.Errorf("after end err = %v, want ErrNotReady", err)
	}

	looped := NewReplaySensor(rec, true)
	for i := 0; i < 5; i++ {
		if _, err := looped.Sample(); err != nil {
			t.Fatalf("looping replay failed at %d: %v", i, err)
		}
	}
	if looped.Done() {
		t.Error("looping replay is never done")
	}
}

func TestRecorderRoundTrip(t *testing.T) {
	src := &scriptSensor{
		frames: []Frame{shoulderFrame(5), nil, {}},
		errs:   []error{nil, ErrEmptyFrame, nil},
	}
	r := NewRecorder(src, 30)
	for i := 0; i < 3; i++ {
		_, _ = r.Sample()
	}
	rec := r.Recording()
	if len(rec.Frames) != 3 || len(rec.Failed) != 1 || rec.Failed[0] != 1 {
		t.Fatalf("recorded frames=%d failed=%v, want 3 frames and failed [1]", len(rec.Frames), rec.Failed)
	}

	path := filepath.Join(t.TempDir(), "session.json")
	if err := rec.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadRecording(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.FPS != 30 || len(loaded.Frames) != 3 {
		t.Fatalf("loaded fps=%d frames=%d", loaded.FPS, len(loaded.Frames))
	}

	// The replay fails on the same read the live session did.
	replay := NewReplaySensor(loaded, false)
	f, err := replay.Sample()
	if err != nil || !f.HasUpperBody() {
		t.Fatalf("read 0 = %v, %v; want a body", f, err)
	}
	if _, err := replay.Sample(); !errors.Is(err, ErrNotReady) {
		t.Errorf("read 1 err = %v, want ErrNotReady", err)
	}
	f, err = replay.Sample()
	if err != nil || len(f) != 0 {
		t.Errorf("read 2 = %v, %v; want an empty frame", f, err)
	}
	if !replay.Done() {
		t.Error("expected Done after the last read")
	}
}

func TestLoadRecordingMissing(t *testing.T) {
	if _, err := LoadRecording(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error")
	}
}

func TestAsyncSensorLatestFrameWins(t *testing.T) {
	var n int
	src := SensorFunc(func() (Frame, error) {
		n++
		return shoulderFrame(n), nil
	})
	a := NewAsyncSensor(src, time.Millisecond)

	if _, err := a.Sample(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("before Run err = %v, want ErrNotReady", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	var last int
	for last < 3 {
		select {
		case <-deadline:
			t.Fatal("async sensor produced no frames")
		default:
		}
		if f, err := a.Sample(); err == nil {
			s, _ := f.Shoulders()
			if s[0].Y < last {
				t.Fatalf("went backwards: %d after %d", s[0].Y, last)
			}
			last = s[0].Y
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
}

func TestAsyncSensorReportsLaterFailure(t *testing.T) {
	unplugged := errors.New("camera unplugged")
	var mu sync.Mutex
	reads := 0
	src := SensorFunc(func() (Frame, error) {
		mu.Lock()
		defer mu.Unlock()
		reads++
		if reads == 1 {
			return shoulderFrame(100), nil
		}
		return nil, unplugged
	})
	a := NewAsyncSensor(src, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		n := reads
		mu.Unlock()
		if n >= 3 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("producer stalled")
		default:
		}
		time.Sleep(time.Millisecond)
	}

	f, err := a.Sample()
	if !errors.Is(err, unplugged) || f != nil {
		t.Fatalf("Sample = %v, %v; want nil, %v", f, err, unplugged)
	}
}
