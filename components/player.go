package components

import (
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/matchloop"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	*matchloop.Player
}

var Player = donburi.NewComponentType[PlayerData]()
