// Package matchloop runs one match: calibration, then scrolling play until
// the player hits an obstacle, then the score is recorded.
package matchloop

import (
	"image"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gameconfig"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gamemath"
	"github.com/google/uuid"
)

// Context is the per-match state passed to every step.
type Context struct {
	ID         uuid.UUID
	Player     string
	Difficulty gameconfig.Difficulty
	Viewport   image.Point
	State      gameconfig.GameState

	// Score is the survived time in whole seconds, set on game over.
	Score int
	// Err holds a score store failure that ended the match.
	Err error
}

// NewContext prepares a match for player at difficulty d.
func NewContext(player string, d gameconfig.Difficulty, viewport image.Point) *Context {
	return &Context{
		ID:         uuid.New(),
		Player:     player,
		Difficulty: d,
		Viewport:   viewport,
		State:      gameconfig.StateCalibrating,
	}
}

// Player is the avatar. Its screen position never changes; the world scrolls
// around it.
type Player struct {
	Pos      gamemath.Vec
	Radius   float64
	Velocity gamemath.Vec
}
