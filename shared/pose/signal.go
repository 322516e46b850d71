package pose

import "log"

// Signal reads a sensor and converts the latest shoulders into a movement
// percentage, sampling the sensor at most once every few calls to Next.
type Signal struct {
	sensor Sensor
	every  int

	counter    int
	frame      Frame
	mapping    Mapping
	calibrated bool
	held       float64
	failing    bool
}

// NewSignal wraps a sensor. every is the throttle period of Next.
func NewSignal(s Sensor, every int) *Signal {
	if every < 1 {
		every = 1
	}
	// Start primed so the first Next reads immediately.
	return &Signal{sensor: s, every: every, counter: every - 1}
}

// Sample reads the sensor once. Transient failures return false and leave the
// previous frame in place; the caller treats that as no change.
func (s *Signal) Sample() (Frame, bool) {
	f, err := s.sensor.Sample()
	if err != nil {
		if !s.failing {
			log.Printf("Warning: pose sensor unavailable: %v", err)
			s.failing = true
		}
		return nil, false
	}
	if s.failing {
		log.Printf("pose sensor recovered")
		s.failing = false
	}
	s.frame = f
	return f, true
}

// Frame is the last successfully read frame.
func (s *Signal) Frame() Frame {
	return s.frame
}

// Calibrate installs the mapping used by MovementPercentage.
func (s *Signal) Calibrate(m Mapping) {
	s.mapping = m
	s.calibrated = true
}

func (s *Signal) Calibrated() bool {
	return s.calibrated
}

func (s *Signal) Mapping() Mapping {
	return s.mapping
}

// MovementPercentage converts the last frame. No shoulders or no mapping
// yields 0.
func (s *Signal) MovementPercentage() float64 {
	if !s.calibrated {
		return 0
	}
	shoulders, ok := s.frame.Shoulders()
	if !ok {
		return 0
	}
	return s.mapping.Percentage(MeanY(shoulders))
}

// Next returns the throttled movement percentage. Only every Nth call reads
// the sensor; the rest, and failed reads, repeat the held value.
func (s *Signal) Next() float64 {
	s.counter++
	if s.counter < s.every {
		return s.held
	}
	s.counter = 0
	if _, ok := s.Sample(); !ok {
		return s.held
	}
	s.held = s.MovementPercentage()
	return s.held
}

// Reset forgets the frame, mapping and held value.
func (s *Signal) Reset() {
	s.counter = s.every - 1
	s.frame = nil
	s.mapping = Mapping{}
	s.calibrated = false
	s.held = 0
}
