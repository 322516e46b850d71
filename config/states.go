package config

import "github.com/Mehmet-Adil/Muscle-Survivors/shared/gameconfig"

// Type aliases so client code can keep using config.Difficulty etc.
type Difficulty = gameconfig.Difficulty
type GameState = gameconfig.GameState

// Re-export difficulty tiers.
const (
	Easy   = gameconfig.Easy
	Normal = gameconfig.Normal
	Hard   = gameconfig.Hard
)

// Re-export game state constants.
const (
	StateSignIn      = gameconfig.StateSignIn
	StateMainMenu    = gameconfig.StateMainMenu
	StateCalibrating = gameconfig.StateCalibrating
	StatePlaying     = gameconfig.StatePlaying
	StateGameOver    = gameconfig.StateGameOver
)

// Re-export the tier list (same reference, no copy).
var Difficulties = gameconfig.Difficulties
