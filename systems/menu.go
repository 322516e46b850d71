package systems

import (
	"fmt"
	"image/color"

	"github.com/Mehmet-Adil/Muscle-Survivors/components"
	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/fonts"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scores"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createMatchScene func(cfg.Difficulty) interface{}, createSignInScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch option := menu.VisibleOptions[menu.SelectedIndex]; option {
			case components.MainMenuEasy, components.MainMenuNormal, components.MainMenuHard:
				d := optionDifficulty(option)
				SaveLastSession(menu.Player, d)
				sceneChanger.ChangeScene(createMatchScene(d))
			case components.MainMenuLogOut:
				sceneChanger.ChangeScene(createSignInScene())
			case components.MainMenuExit:
				RequestQuit()
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createSignInScene())
		}
	}
}

// LoadLeaderboards refreshes the top scores shown for every difficulty.
func LoadLeaderboards(e *ecs.ECS, store scores.Store) {
	menu := GetOrCreateMenu(e)
	menu.Leaderboards = make(map[cfg.Difficulty][]scores.HighScore, len(cfg.Difficulties))
	menu.LoadError = ""
	if store == nil {
		return
	}
	for _, d := range cfg.Difficulties {
		top, err := store.HighScores(d, cfg.Menu.LeaderboardSize)
		if err != nil {
			menu.LoadError = "Could not load the leaderboards."
			continue
		}
		menu.Leaderboards[d] = top
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	drawCentered(screen, cfg.Menu.Title, fonts.Title, width, cfg.Menu.TitleY, cfg.Menu.TitleColor)
	if menu.Player != "" {
		greeting := fmt.Sprintf("Hello, %s!", menu.Player)
		drawCentered(screen, greeting, fonts.Regular, width, cfg.Menu.GreetingY, cfg.Menu.TextColorSelected)
	}

	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, getOptionLabel(option), fonts.Bold, width, y+cfg.Menu.MenuItemHeight, textColor)
	}

	drawLeaderboards(screen, menu, width)

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	drawCentered(screen, hint, fonts.Small, width, height-12, cfg.Menu.TextColorNormal)
}

func drawLeaderboards(screen *ebiten.Image, menu *components.MenuData, width float64) {
	if menu.LoadError != "" {
		drawCentered(screen, menu.LoadError, fonts.Regular, width, cfg.Menu.LeaderboardY-40, cfg.GameOver.ErrorColor)
	}

	colWidth := width / float64(len(cfg.Difficulties))
	face := fonts.Regular.Get()
	for i, d := range cfg.Difficulties {
		cx := colWidth*float64(i) + colWidth/2
		y := cfg.Menu.LeaderboardY

		header := string(d)
		text.Draw(screen, header, fonts.Bold.Get(), int(cx)-fonts.Width(fonts.Bold, header)/2, int(y), cfg.Menu.TitleColor)

		for rank := 0; rank < cfg.Menu.LeaderboardSize; rank++ {
			y += cfg.Menu.MenuItemHeight
			row := fmt.Sprintf("%d. ---", rank+1)
			if top := menu.Leaderboards[d]; rank < len(top) {
				row = fmt.Sprintf("%d. %s  %ds", rank+1, top[rank].Name, top[rank].Score)
			}
			text.Draw(screen, row, face, int(cx)-fonts.Width(fonts.Regular, row)/2, int(y), cfg.White)
		}
	}
}

// drawCentered draws s horizontally centered with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, f fonts.FontName, width, y float64, clr color.Color) {
	x := int((width - float64(fonts.Width(f, s))) / 2)
	text.Draw(screen, s, f.Get(), x, int(y), clr)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Circle: Log out"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   B: Log out"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Log out   F11: Fullscreen"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuEasy:
		return string(cfg.Easy)
	case components.MainMenuNormal:
		return string(cfg.Normal)
	case components.MainMenuHard:
		return string(cfg.Hard)
	case components.MainMenuLogOut:
		return "Log out"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

func optionDifficulty(option components.MainMenuOption) cfg.Difficulty {
	switch option {
	case components.MainMenuEasy:
		return cfg.Easy
	case components.MainMenuHard:
		return cfg.Hard
	}
	return cfg.Normal
}

func difficultyOption(d cfg.Difficulty) components.MainMenuOption {
	switch d {
	case cfg.Easy:
		return components.MainMenuEasy
	case cfg.Hard:
		return components.MainMenuHard
	}
	return components.MainMenuNormal
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		visibleOptions := []components.MainMenuOption{
			components.MainMenuEasy,
			components.MainMenuNormal,
			components.MainMenuHard,
			components.MainMenuLogOut,
			components.MainMenuExit,
		}

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex:  0,
			VisibleOptions: visibleOptions,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

// SelectDifficulty moves the cursor onto difficulty d.
func SelectDifficulty(e *ecs.ECS, d cfg.Difficulty) {
	menu := GetOrCreateMenu(e)
	want := difficultyOption(d)
	for i, option := range menu.VisibleOptions {
		if option == want {
			menu.SelectedIndex = i
			return
		}
	}
}
