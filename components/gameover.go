package components

import (
	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/yohamta/donburi"
)

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the current state of the game over menu
type GameOverData struct {
	SelectedOption GameOverOption
	Score          int
	Difficulty     cfg.Difficulty
	Err            string // Score store failure, shown under the score
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()
