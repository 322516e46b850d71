package pose

import "errors"

var (
	// ErrNotReady means the sensor has no frame to give yet.
	ErrNotReady = errors.New("pose: sensor not ready")
	// ErrEmptyFrame means the capture device returned an empty image.
	ErrEmptyFrame = errors.New("pose: empty frame")
)

// Sensor produces one landmark frame per call. Implementations return
// ErrNotReady or ErrEmptyFrame for transient failures; a successful read with
// no body detected returns an empty Frame and a nil error.
type Sensor interface {
	Sample() (Frame, error)
}

// SensorFunc adapts a function to the Sensor interface.
type SensorFunc func() (Frame, error)

func (f SensorFunc) Sample() (Frame, error) {
	return f()
}

// StaticFrame builds a frame with both shoulders at shoulderY and both elbows
// at elbowY. Keyboard and test sensors use it to fake a body.
func StaticFrame(shoulderY, elbowY int) Frame {
	return Frame{
		{ID: LeftShoulder, X: 260, Y: shoulderY},
		{ID: RightShoulder, X: 380, Y: shoulderY},
		{ID: LeftElbow, X: 220, Y: elbowY},
		{ID: RightElbow, X: 420, Y: elbowY},
	}
}
