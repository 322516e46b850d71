package systems

import (
	"github.com/Mehmet-Adil/Muscle-Survivors/components"
	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/matchloop"
	"github.com/yohamta/donburi/ecs"
)

// getMatch returns the running match, if any.
func getMatch(e *ecs.ECS) (*components.MatchData, bool) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Match.Get(entry), true
}

// UpdateCalibration feeds the sensor into the calibrator until the mapping
// is ready, then starts play.
func UpdateCalibration(e *ecs.ECS) {
	match, ok := getMatch(e)
	if !ok || match.Ended {
		return
	}
	match.Loop.UpdateCalibration(match.Context)
}

// UpdateMovement turns the throttled pose signal into player velocity.
func UpdateMovement(e *ecs.ECS) {
	match, ok := getMatch(e)
	if !ok || match.Ended {
		return
	}
	match.Loop.UpdateMovement(match.Context)
}

// UpdateScroll slides the grid past the player.
func UpdateScroll(e *ecs.ECS) {
	match, ok := getMatch(e)
	if !ok || match.Ended {
		return
	}
	match.Loop.UpdateScroll(match.Context)
}

// UpdateObstacles spawns ahead of the player and culls behind.
func UpdateObstacles(e *ecs.ECS) {
	match, ok := getMatch(e)
	if !ok || match.Ended {
		return
	}
	match.Loop.UpdateObstacles(match.Context)
}

// NewUpdateCollisions ends the match on contact and hands the result to the
// game over scene. Back leaves for the menu without recording anything.
func NewUpdateCollisions(sceneChanger SceneChanger, createGameOverScene func(*matchloop.Context) interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		match, ok := getMatch(e)
		if !ok || match.Ended {
			return
		}

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			match.Ended = true
			match.Loop.ToMenu(match.Context)
			sceneChanger.ChangeScene(createMenuScene())
			return
		}

		if !match.Loop.CheckCollision(match.Context) {
			return
		}
		match.Ended = true
		sceneChanger.ChangeScene(createGameOverScene(match.Context))
	}
}
