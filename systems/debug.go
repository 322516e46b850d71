package systems

import (
	"fmt"
	"image/color"

	"github.com/Mehmet-Adil/Muscle-Survivors/components"
	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the player's tile and prints grid counters.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowGrid {
		return
	}
	match, ok := getMatch(ecs)
	if !ok {
		return
	}
	loop := match.Loop

	tile := loop.PlayerTile()
	w, h := loop.Grid.TileSize()
	p := loop.Grid.TileToPixel(tile.X, tile.Y)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(w), float32(h), 2, color.RGBA{0, 255, 255, 255}, false)

	r := loop.Player.Radius
	vector.StrokeRect(screen,
		float32(loop.Player.Pos.X-r), float32(loop.Player.Pos.Y-r),
		float32(2*r), float32(2*r), 1, color.RGBA{0, 0, 255, 255}, false)

	off := loop.Grid.Offset()
	info := fmt.Sprintf("lines=%d obstacles=%d columns=%d shift=(%.0f, %.0f) %s",
		loop.Grid.LineCount(), loop.Field.Len(), len(loop.Field.Summoned()), off.X, off.Y, match.Context.ID)
	height := screen.Bounds().Dy()
	text.Draw(screen, info, fonts.Small.Get(), 8, height-8, cfg.White)

	if entry, ok := components.Calibration.First(ecs.World); ok {
		cal := components.Calibration.Get(entry)
		text.Draw(screen, "calibration: "+cal.Phase().String(), fonts.Small.Get(), 8, height-26, cfg.White)
	}
}
