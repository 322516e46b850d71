package config

import (
	"image/color"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gameconfig"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	GreetingY         float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	LeaderboardY      float64
	LeaderboardSize   int
	Title             string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ErrorColor        color.RGBA
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// CalibrateConfig styles the calibration screen
type CalibrateConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	PromptColor     color.RGBA
	CountdownColor  color.RGBA
	KeypointColor   color.RGBA
	Title           string
	TitleY          float64
	PromptY         float64
	CountdownY      float64
	// PulseScale is how much the prompt grows at the peak of each second.
	PulseScale float64
	// Preview is the size of the live keypoint preview box.
	PreviewWidth   float64
	PreviewHeight  float64
	KeypointRadius float32
	// Source is the sensor frame size the preview is scaled from.
	SourceWidth  float64
	SourceHeight float64
}

// WorldConfig styles the scrolling field
type WorldConfig struct {
	BackgroundColor color.RGBA
	GridColor       color.RGBA
	GridWidth       float32
	PlayerColor     color.RGBA
	ObstacleBorder  color.RGBA
}

// HUDConfig contains in-match text overlay values
type HUDConfig struct {
	TextColor   color.RGBA
	ShadowColor color.RGBA
	Margin      float64
	LineHeight  float64
}

// SignInConfig contains sign-in screen messages
type SignInConfig struct {
	Title          string
	MissingFields  string
	WrongPassword  string
	StorageProblem string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipSignIn bool   // Skip sign-in and go directly to the menu
	Player     string // Player name used when skipping sign-in
	ShowGrid   bool
}

// Global configuration instances
var C *Config
var Tuning gameconfig.Tuning
var Menu MenuConfig
var GameOver GameOverConfig
var Calibrate CalibrateConfig
var World WorldConfig
var HUD HUDConfig
var SignIn SignInConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Navy         = color.RGBA{R: 20, G: 20, B: 30, A: 255}
)

// ApplyTuning installs headless tuning and resizes the logical screen to
// match its viewport.
func ApplyTuning(t gameconfig.Tuning) {
	Tuning = t
	C.Width = t.Viewport.Width
	C.Height = t.Viewport.Height
	C.TPS = t.TPS
}

func init() {
	C = &Config{}
	ApplyTuning(gameconfig.Default())

	Menu = MenuConfig{
		BackgroundColor:   Navy,
		TitleColor:        BrightYellow,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            110,
		GreetingY:         160,
		MenuStartY:        210,
		MenuItemHeight:    28,
		MenuItemGap:       12,
		LeaderboardY:      520,
		LeaderboardSize:   3,
		Title:             "MUSCLE SURVIVORS",
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		ErrorColor:        Orange,
		TitleY:            200,
		ScoreY:            270,
		MenuStartY:        360,
		MenuItemHeight:    28,
		MenuItemGap:       12,
		MenuOptions:       []string{"PLAY AGAIN!", "MAIN MENU!"},
	}

	Calibrate = CalibrateConfig{
		BackgroundColor: Navy,
		TitleColor:      White,
		PromptColor:     BrightYellow,
		CountdownColor:  LightBlue,
		KeypointColor:   LightGreen,
		Title:           "CALIBRATION",
		TitleY:          120,
		PromptY:         300,
		CountdownY:      420,
		PulseScale:      0.35,
		PreviewWidth:    320,
		PreviewHeight:   240,
		KeypointRadius:  6,
		SourceWidth:     640,
		SourceHeight:    480,
	}

	World = WorldConfig{
		BackgroundColor: color.RGBA{R: 15, G: 15, B: 25, A: 255},
		GridColor:       color.RGBA{R: 50, G: 50, B: 80, A: 255},
		GridWidth:       1,
		PlayerColor:     LightGreen,
		ObstacleBorder:  color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}

	HUD = HUDConfig{
		TextColor:   White,
		ShadowColor: BlackOverlay,
		Margin:      16,
		LineHeight:  26,
	}

	SignIn = SignInConfig{
		Title:          "MUSCLE SURVIVORS",
		MissingFields:  "Please fill in ALL of the fields!",
		WrongPassword:  "Account already EXISTS! WRONG PASSWORD!",
		StorageProblem: "Could not reach the account store.",
	}
}
