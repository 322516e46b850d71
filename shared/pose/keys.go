package pose

// KeyState is the held state of the keys that drive a KeySensor.
type KeyState struct {
	Up     bool
	Down   bool
	Hidden bool
}

// KeyPose places the fake body a KeySensor reports.
type KeyPose struct {
	UpShoulderY   int
	RestShoulderY int
	DownShoulderY int
	ElbowOffset   int
	// Step is how far the shoulders travel per sample toward the target pose.
	Step int
}

// KeySensor fakes a body from held keys so the game can be played without a
// camera. The shoulders ease toward the up, rest or down height.
type KeySensor struct {
	poll      func() KeyState
	pose      KeyPose
	shoulderY int
}

// NewKeySensor starts the body at rest.
func NewKeySensor(pose KeyPose, poll func() KeyState) *KeySensor {
	if pose.Step <= 0 {
		pose.Step = 1
	}
	return &KeySensor{
		poll:      poll,
		pose:      pose,
		shoulderY: pose.RestShoulderY,
	}
}

// Sample reports an empty frame while the body is hidden.
func (k *KeySensor) Sample() (Frame, error) {
	st := k.poll()
	if st.Hidden {
		return Frame{}, nil
	}

	target := k.pose.RestShoulderY
	switch {
	case st.Up && !st.Down:
		target = k.pose.UpShoulderY
	case st.Down && !st.Up:
		target = k.pose.DownShoulderY
	}

	switch {
	case k.shoulderY < target:
		k.shoulderY = min(k.shoulderY+k.pose.Step, target)
	case k.shoulderY > target:
		k.shoulderY = max(k.shoulderY-k.pose.Step, target)
	}

	return StaticFrame(k.shoulderY, k.shoulderY+k.pose.ElbowOffset), nil
}

// ShoulderY is the current fake shoulder height.
func (k *KeySensor) ShoulderY() int {
	return k.shoulderY
}
