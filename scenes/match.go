package scenes

import (
	"image"
	"image/color"
	"sync"

	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/matchloop"
	"github.com/Mehmet-Adil/Muscle-Survivors/systems"
	"github.com/Mehmet-Adil/Muscle-Survivors/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MatchScene runs calibration and then one match until the player is hit.
type MatchScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	previous     *matchloop.Context
	once         sync.Once
}

func NewMatchScene(sc SceneChanger, sess *Session) *MatchScene {
	return &MatchScene{sceneChanger: sc, session: sess}
}

// NewRematchScene replays the finished match prev under a new id.
func NewRematchScene(sc SceneChanger, sess *Session, prev *matchloop.Context) *MatchScene {
	return &MatchScene{sceneChanger: sc, session: sess, previous: prev}
}

func (ms *MatchScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MatchScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	loop := ms.session.Loop()
	ctx := ms.previous
	if ctx == nil {
		ctx = matchloop.NewContext(ms.session.Player, ms.session.Difficulty, image.Pt(cfg.C.Width, cfg.C.Height))
		loop.Start(ctx)
	} else {
		loop.Restart(ctx)
	}

	factory.CreateMatch(ms.ecs, loop, ctx)
	factory.CreateWorld(ms.ecs, loop)
	factory.CreatePlayer(ms.ecs, loop)

	createGameOverScene := func(ctx *matchloop.Context) interface{} {
		return NewGameOverScene(ms.sceneChanger, ms.session, ctx)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(ms.sceneChanger, ms.session)
	}

	// Input first, then the loop steps in their fixed order
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateCalibration)
	ms.ecs.AddSystem(systems.UpdateCalibrationPulse)
	ms.ecs.AddSystem(systems.UpdateMovement)
	ms.ecs.AddSystem(systems.UpdateScroll)
	ms.ecs.AddSystem(systems.UpdateObstacles)
	ms.ecs.AddSystem(systems.NewUpdateCollisions(ms.sceneChanger, createGameOverScene, createMenuScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawGrid)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawObstacles)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawCalibration)
	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
}
