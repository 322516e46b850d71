package systems

import (
	"fmt"

	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the survived time and the player's tile in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	match, ok := getMatch(ecs)
	if !ok || match.Context.State != cfg.StatePlaying {
		return
	}

	tile := match.Loop.PlayerTile()
	lines := []string{
		fmt.Sprintf("Time Survived: %ds", match.Loop.Elapsed()),
		fmt.Sprintf("Position: %d, %d", tile.X, -tile.Y),
	}

	face := fonts.Bold.Get()
	x := int(cfg.HUD.Margin)
	for i, line := range lines {
		y := int(cfg.HUD.Margin + float64(i+1)*cfg.HUD.LineHeight)
		text.Draw(screen, line, face, x+2, y+2, cfg.HUD.ShadowColor)
		text.Draw(screen, line, face, x, y, cfg.HUD.TextColor)
	}
}
