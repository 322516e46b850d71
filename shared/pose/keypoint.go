// Package pose turns body landmark frames from a sensor into a normalized
// vertical movement signal.
package pose

// Landmark indices read from every frame. The detector numbers the body the
// same way for every sensor, so these are contract constants.
const (
	LeftShoulder  = 11
	RightShoulder = 12
	LeftElbow     = 13
	RightElbow    = 14
)

// Keypoint is one detected landmark in sensor pixel coordinates.
type Keypoint struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// Frame is every keypoint detected in one sensor read. An empty frame means
// no body was found.
type Frame []Keypoint

// Find returns the keypoint with the given landmark id.
func (f Frame) Find(id int) (Keypoint, bool) {
	// Detectors that report the full body emit landmarks in id order.
	if id >= 0 && id < len(f) && f[id].ID == id {
		return f[id], true
	}
	for _, kp := range f {
		if kp.ID == id {
			return kp, true
		}
	}
	return Keypoint{}, false
}

func (f Frame) pair(a, b int) ([2]Keypoint, bool) {
	left, ok := f.Find(a)
	if !ok {
		return [2]Keypoint{}, false
	}
	right, ok := f.Find(b)
	if !ok {
		return [2]Keypoint{}, false
	}
	return [2]Keypoint{left, right}, true
}

// Shoulders returns the left and right shoulder.
func (f Frame) Shoulders() ([2]Keypoint, bool) {
	return f.pair(LeftShoulder, RightShoulder)
}

// Elbows returns the left and right elbow.
func (f Frame) Elbows() ([2]Keypoint, bool) {
	return f.pair(LeftElbow, RightElbow)
}

// HasUpperBody reports whether both shoulders and both elbows are present.
func (f Frame) HasUpperBody() bool {
	_, s := f.Shoulders()
	_, e := f.Elbows()
	return s && e
}

// MeanY is the average height of a keypoint pair.
func MeanY(p [2]Keypoint) float64 {
	return float64(p[0].Y+p[1].Y) / 2
}
