// Package gameconfig defines the headless game tuning shared by the ebiten
// client and the replay tool. It must have zero dependencies on ebiten or any
// graphics library so cmd/replay stays headless.
package gameconfig

import (
	"fmt"
	"strings"
)

// Difficulty selects the obstacle spawn density for a match.
type Difficulty string

const (
	Easy   Difficulty = "EASY"
	Normal Difficulty = "NORMAL"
	Hard   Difficulty = "HARD"
)

// Difficulties lists the tiers in menu and leaderboard order.
var Difficulties = []Difficulty{Easy, Normal, Hard}

// SpawnDensity maps a difficulty to the fraction of the vertical span that
// may be filled by a single spawned column.
var SpawnDensity = map[Difficulty]float64{
	Easy:   0.1,
	Normal: 0.25,
	Hard:   0.4,
}

// ParseDifficulty accepts any casing of a known tier.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := SpawnDensity[d]; !ok {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// Density returns the spawn density of d, falling back to Normal.
func (d Difficulty) Density() float64 {
	if v, ok := SpawnDensity[d]; ok {
		return v
	}
	return SpawnDensity[Normal]
}

func (d Difficulty) String() string {
	return string(d)
}

// GameState identifies which screen the game is on.
type GameState int

const (
	StateSignIn GameState = iota
	StateMainMenu
	StateCalibrating
	StatePlaying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateSignIn:
		return "SIGN_IN"
	case StateMainMenu:
		return "MAIN_MENU"
	case StateCalibrating:
		return "CALIBRATING"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}
