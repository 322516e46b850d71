package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, sess *Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: sess}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createMatchScene := func(d cfg.Difficulty) interface{} {
		ms.session.Difficulty = d
		return NewMatchScene(ms.sceneChanger, ms.session)
	}
	createSignInScene := func() interface{} {
		ms.session.LogOut()
		return NewSignInScene(ms.sceneChanger, ms.session)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createMatchScene, createSignInScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	menu := systems.GetOrCreateMenu(ms.ecs)
	menu.Player = ms.session.Player
	systems.SelectDifficulty(ms.ecs, ms.session.Difficulty)
	systems.LoadLeaderboards(ms.ecs, ms.session.Scores)
}
