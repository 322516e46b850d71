package systems

import (
	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewKeyboardSensor fakes a body from the pose up/down and hide bindings.
func NewKeyboardSensor() *pose.KeySensor {
	kp := cfg.KeyboardPose
	return pose.NewKeySensor(pose.KeyPose{
		UpShoulderY:   kp.UpShoulderY,
		RestShoulderY: kp.RestShoulderY,
		DownShoulderY: kp.DownShoulderY,
		ElbowOffset:   kp.ElbowOffset,
		Step:          kp.Step,
	}, pollPoseKeys)
}

func pollPoseKeys() pose.KeyState {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	up, down, _ := getAnalogStickState(gamepadIDs)
	return pose.KeyState{
		Up:     up || actionHeld(cfg.ActionPoseUp),
		Down:   down || actionHeld(cfg.ActionPoseDown),
		Hidden: actionHeld(cfg.ActionHideBody),
	}
}

// actionHeld reads a binding directly, outside the per-scene input buffer.
func actionHeld(id cfg.ActionID) bool {
	binding := cfg.Input.Bindings[id]
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}
