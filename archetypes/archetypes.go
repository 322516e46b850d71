package archetypes

import (
	"github.com/Mehmet-Adil/Muscle-Survivors/components"
	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Match = newArchetype(
		tags.Match,
		components.Match,
		components.Calibration,
	)
	World = newArchetype(
		tags.World,
		components.Grid,
		components.Field,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
