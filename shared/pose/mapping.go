package pose

import (
	"errors"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gamemath"
)

// ErrDegenerateMapping is returned when the up and down calibration heights
// coincide and no slope can be derived.
var ErrDegenerateMapping = errors.New("pose: calibration up and down heights are equal")

// Mapping converts a shoulder height into a movement percentage in [-1, 1].
// The up pose maps to +1 and the down pose to -1.
type Mapping struct {
	MeanUpY   float64
	MeanDownY float64
}

// NewMapping validates the calibration heights.
func NewMapping(meanUpY, meanDownY float64) (Mapping, error) {
	if meanUpY == meanDownY {
		return Mapping{}, ErrDegenerateMapping
	}
	return Mapping{MeanUpY: meanUpY, MeanDownY: meanDownY}, nil
}

// Percentage maps a mean shoulder height onto [-1, 1].
func (m Mapping) Percentage(meanY float64) float64 {
	span := m.MeanDownY - m.MeanUpY
	if span == 0 {
		return 0
	}
	return gamemath.Clamp(-2*(meanY-m.MeanUpY)/span+1, -1, 1)
}
