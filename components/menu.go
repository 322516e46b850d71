package components

import (
	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scores"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuEasy MainMenuOption = iota
	MainMenuNormal
	MainMenuHard
	MainMenuLogOut
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int              // Current selection index in VisibleOptions
	VisibleOptions []MainMenuOption // Options to display
	Player         string
	Leaderboards   map[cfg.Difficulty][]scores.HighScore
	LoadError      string // Set when the leaderboards could not be read
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
