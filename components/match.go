package components

import (
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/matchloop"
	"github.com/yohamta/donburi"
)

// MatchData links the ECS world to the running match.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Loop    *matchloop.Loop
	Context *matchloop.Context
	// Ended is set once the game-over transition has been issued.
	Ended bool
}

var Match = donburi.NewComponentType[MatchData]()
