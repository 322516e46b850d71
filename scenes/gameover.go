package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/matchloop"
	"github.com/Mehmet-Adil/Muscle-Survivors/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	result       *matchloop.Context
	once         sync.Once
}

// NewGameOverScene creates a new game over scene for a finished match
func NewGameOverScene(sc SceneChanger, sess *Session, result *matchloop.Context) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, session: sess, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createMatchScene := func() interface{} {
		return NewRematchScene(gs.sceneChanger, gs.session, gs.result)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger, gs.session)
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createMatchScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.SetGameOverResult(gs.ecs, gs.result)
}
