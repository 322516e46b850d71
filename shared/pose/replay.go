package pose

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Recording is a captured pose session. Frames holds one entry per sensor
// read; Failed lists the indices of reads that returned an error.
type Recording struct {
	FPS    int     `json:"fps"`
	Frames []Frame `json:"frames"`
	Failed []int   `json:"failed,omitempty"`
}

// LoadRecording reads a recording written by Save.
func LoadRecording(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse recording %s: %w", path, err)
	}
	return &rec, nil
}

// Save writes the recording as JSON.
func (r *Recording) Save(path string) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write recording: %w", err)
	}
	return nil
}

// ReplaySensor plays back a recording one frame per Sample.
type ReplaySensor struct {
	rec    *Recording
	failed map[int]bool
	pos    int
	loop   bool
}

// NewReplaySensor plays rec once, or forever when loop is set.
func NewReplaySensor(rec *Recording, loop bool) *ReplaySensor {
	failed := make(map[int]bool, len(rec.Failed))
	for _, i := range rec.Failed {
		failed[i] = true
	}
	return &ReplaySensor{rec: rec, failed: failed, loop: loop}
}

func (r *ReplaySensor) Sample() (Frame, error) {
	if len(r.rec.Frames) == 0 {
		return nil, ErrNotReady
	}
	if r.pos >= len(r.rec.Frames) {
		if !r.loop {
			return nil, ErrNotReady
		}
		r.pos = 0
	}
	i := r.pos
	r.pos++
	if r.failed[i] {
		return nil, ErrNotReady
	}
	return r.rec.Frames[i], nil
}

// Done reports whether a non-looping replay has run out of frames.
func (r *ReplaySensor) Done() bool {
	return !r.loop && r.pos >= len(r.rec.Frames)
}

// Position is the index of the next frame.
func (r *ReplaySensor) Position() int {
	return r.pos
}

// Recorder passes frames through from another sensor and keeps a copy of
// every read. Failed reads are kept as placeholders so a replay stays in step.
type Recorder struct {
	src Sensor

	mu  sync.Mutex
	rec Recording
}

// NewRecorder wraps src; fps is stored in the recording header.
func NewRecorder(src Sensor, fps int) *Recorder {
	return &Recorder{src: src, rec: Recording{FPS: fps}}
}

func (r *Recorder) Sample() (Frame, error) {
	f, err := r.src.Sample()
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.rec.Failed = append(r.rec.Failed, len(r.rec.Frames))
		r.rec.Frames = append(r.rec.Frames, nil)
		return f, err
	}
	cp := make(Frame, len(f))
	copy(cp, f)
	r.rec.Frames = append(r.rec.Frames, cp)
	return f, nil
}

// Recording returns a snapshot of what was captured so far.
func (r *Recorder) Recording() *Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	frames := make([]Frame, len(r.rec.Frames))
	copy(frames, r.rec.Frames)
	var failed []int
	if len(r.rec.Failed) > 0 {
		failed = make([]int, len(r.rec.Failed))
		copy(failed, r.rec.Failed)
	}
	return &Recording{FPS: r.rec.FPS, Frames: frames, Failed: failed}
}
