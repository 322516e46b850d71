package factory

import (
	"github.com/Mehmet-Adil/Muscle-Survivors/archetypes"
	"github.com/Mehmet-Adil/Muscle-Survivors/components"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/matchloop"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton for a started ctx.
func CreateMatch(ecs *ecs.ECS, loop *matchloop.Loop, ctx *matchloop.Context) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)

	components.Match.SetValue(match, components.MatchData{
		Loop:    loop,
		Context: ctx,
	})
	components.Calibration.SetValue(match, components.CalibrationData{
		Calibrator: loop.Calibrator,
		Scale:      1,
		LastCount:  -1,
	})

	return match
}

// CreateWorld spawns the entity carrying the grid and the obstacle field.
func CreateWorld(ecs *ecs.ECS, loop *matchloop.Loop) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)
	components.Grid.SetValue(world, components.GridData{Grid: loop.Grid})
	components.Field.SetValue(world, components.FieldData{Field: loop.Field})
	return world
}

// CreatePlayer spawns the avatar.
func CreatePlayer(ecs *ecs.ECS, loop *matchloop.Loop) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{Player: loop.Player})
	return player
}
