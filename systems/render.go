package systems

import (
	"github.com/Mehmet-Adil/Muscle-Survivors/components"
	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/obstacles"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawBackground clears the screen to the world color.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.World.BackgroundColor)
}

// DrawGrid draws the recycled grid lines shifted by the sub-tile remainder.
func DrawGrid(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Grid.First(ecs.World)
	if !ok {
		return
	}
	grid := components.Grid.Get(entry)
	off := grid.DrawOffset()
	ox, oy := float32(off.X), float32(off.Y)

	for _, l := range grid.Verticals() {
		vector.StrokeLine(screen,
			float32(l.Start.X)+ox, float32(l.Start.Y)+oy,
			float32(l.End.X)+ox, float32(l.End.Y)+oy,
			cfg.World.GridWidth, cfg.World.GridColor, false)
	}
	for _, l := range grid.Horizontals() {
		vector.StrokeLine(screen,
			float32(l.Start.X)+ox, float32(l.Start.Y)+oy,
			float32(l.End.X)+ox, float32(l.End.Y)+oy,
			cfg.World.GridWidth, cfg.World.GridColor, false)
	}
}

// DrawObstacles fills every on-screen obstacle tile.
func DrawObstacles(ecs *ecs.ECS, screen *ebiten.Image) {
	gridEntry, ok := components.Grid.First(ecs.World)
	if !ok {
		return
	}
	grid := components.Grid.Get(gridEntry)
	field := components.Field.Get(gridEntry)

	w, h := grid.TileSize()
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	field.Each(func(o *obstacles.Obstacle) {
		p := grid.TileToPixel(o.Pos.X, o.Pos.Y)
		// Viewport culling
		if p.X+float64(w) < 0 || p.X > float64(width) || p.Y+float64(h) < 0 || p.Y > float64(height) {
			return
		}
		vector.FillRect(screen, float32(p.X), float32(p.Y), float32(w), float32(h), o.Color, false)
		vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(w), float32(h), 2, cfg.World.ObstacleBorder, false)
	})
}

// DrawPlayer draws the avatar at its fixed screen position.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	vector.DrawFilledCircle(screen,
		float32(player.Pos.X), float32(player.Pos.Y), float32(player.Radius),
		cfg.World.PlayerColor, true)
}
