package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	World  = donburi.NewTag().SetName("World")
	Match  = donburi.NewTag().SetName("Match")
)
