package systems

import (
	"fmt"

	"github.com/Mehmet-Adil/Muscle-Survivors/components"
	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/fonts"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/matchloop"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createMatchScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createMatchScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// SetGameOverResult copies the finished match into the game over screen.
func SetGameOverResult(e *ecs.ECS, ctx *matchloop.Context) {
	gameOver := GetOrCreateGameOver(e)
	gameOver.Score = ctx.Score
	gameOver.Difficulty = ctx.Difficulty
	gameOver.Err = ""
	if ctx.Err != nil {
		gameOver.Err = "Your score could not be saved."
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	drawCentered(screen, "GAME OVER!", fonts.Title, width, cfg.GameOver.TitleY, cfg.GameOver.TitleColor)

	summary := fmt.Sprintf("You survived %ds on %s", gameOver.Score, gameOver.Difficulty)
	drawCentered(screen, summary, fonts.Bold, width, cfg.GameOver.ScoreY, cfg.White)
	if gameOver.Err != "" {
		drawCentered(screen, gameOver.Err, fonts.Regular, width, cfg.GameOver.ScoreY+cfg.GameOver.MenuItemHeight, cfg.GameOver.ErrorColor)
	}

	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}
		drawCentered(screen, option, fonts.Bold, width, y+cfg.GameOver.MenuItemHeight, textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
