package gameconfig

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// ViewportConfig is the logical screen size in pixels.
type ViewportConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// GridConfig controls tile size and how far past the viewport lines extend.
type GridConfig struct {
	// TilesPerScreenHeight derives the square tile size from the viewport height.
	TilesPerScreenHeight int     `toml:"tiles_per_screen_height"`
	OuterMargin          float64 `toml:"outer_margin"`
}

// MovementConfig holds per-tick scroll rates in pixels.
type MovementConfig struct {
	Speed        float64 `toml:"speed"`
	SlidingSpeed float64 `toml:"sliding_speed"`
	// SampleEvery throttles sensor reads to one every N ticks.
	SampleEvery int `toml:"sample_every"`
}

// CalibrationConfig holds the length of each calibration phase.
type CalibrationConfig struct {
	PhaseSeconds float64 `toml:"phase_seconds"`
}

// ObstacleConfig controls the spawn window around the player.
type ObstacleConfig struct {
	// WindowViewports is how many viewports away from the player obstacles
	// may exist before they are culled.
	WindowViewports int `toml:"window_viewports"`
}

// PlayerConfig places the avatar on screen.
type PlayerConfig struct {
	ScreenX float64 `toml:"screen_x"`
	// RadiusScale is applied to half the tile height.
	RadiusScale float64 `toml:"radius_scale"`
}

// Tuning is every headless knob of a match.
type Tuning struct {
	TPS         int               `toml:"tps"`
	Viewport    ViewportConfig    `toml:"viewport"`
	Grid        GridConfig        `toml:"grid"`
	Movement    MovementConfig    `toml:"movement"`
	Calibration CalibrationConfig `toml:"calibration"`
	Obstacles   ObstacleConfig    `toml:"obstacles"`
	Player      PlayerConfig      `toml:"player"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		TPS: 60,
		Viewport: ViewportConfig{
			Width:  1280,
			Height: 720,
		},
		Grid: GridConfig{
			TilesPerScreenHeight: 10,
			OuterMargin:          1.0,
		},
		Movement: MovementConfig{
			Speed:        10,
			SlidingSpeed: 5,
			SampleEvery:  3,
		},
		Calibration: CalibrationConfig{
			PhaseSeconds: 3,
		},
		Obstacles: ObstacleConfig{
			WindowViewports: 3,
		},
		Player: PlayerConfig{
			ScreenX:     125,
			RadiusScale: 0.6,
		},
	}
}

// TileSize returns the square tile edge in pixels.
func (t Tuning) TileSize() int {
	n := t.Grid.TilesPerScreenHeight
	if n <= 0 {
		n = 10
	}
	size := t.Viewport.Height / n
	if size < 1 {
		size = 1
	}
	return size
}

// Validate reports the first setting that would make a match unplayable.
func (t Tuning) Validate() error {
	switch {
	case t.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", t.TPS)
	case t.Viewport.Width <= 0 || t.Viewport.Height <= 0:
		return fmt.Errorf("viewport must be positive, got %dx%d", t.Viewport.Width, t.Viewport.Height)
	case t.Grid.OuterMargin < 0:
		return fmt.Errorf("grid outer_margin must not be negative, got %v", t.Grid.OuterMargin)
	case t.Movement.SampleEvery <= 0:
		return fmt.Errorf("movement sample_every must be positive, got %d", t.Movement.SampleEvery)
	case t.Calibration.PhaseSeconds <= 0:
		return fmt.Errorf("calibration phase_seconds must be positive, got %v", t.Calibration.PhaseSeconds)
	case t.Obstacles.WindowViewports <= 0:
		return fmt.Errorf("obstacles window_viewports must be positive, got %d", t.Obstacles.WindowViewports)
	}
	return nil
}

// Load decodes a TOML file over the defaults. A missing path returns the
// defaults unchanged.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: tuning file %s not found, using defaults", path)
			return Default(), nil
		}
		return Default(), fmt.Errorf("decode %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("Warning: unknown tuning key %q in %s", key.String(), path)
	}
	if err := t.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
