package components

import (
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/calibration"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CalibrationData drives the calibration screen animation.
type CalibrationData struct {
	*calibration.Calibrator
	Pulse     *gween.Tween
	Scale     float32 // Current prompt scale from the pulse
	LastPhase calibration.Phase
	LastCount int // Countdown value the pulse was started for
}

var Calibration = donburi.NewComponentType[CalibrationData]()
