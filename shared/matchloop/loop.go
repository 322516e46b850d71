package matchloop

import (
	"fmt"
	"image"
	"log"
	"math/rand/v2"
	"time"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/calibration"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/clock"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gameconfig"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gamemath"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/obstacles"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scores"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scrollgrid"
	"github.com/google/uuid"
)

// Deps are the collaborators of a Loop.
type Deps struct {
	Tuning gameconfig.Tuning
	Sensor pose.Sensor
	Store  scores.Store
	Clock  clock.Clock
	// Rand seeds obstacle placement; nil uses a random seed.
	Rand *rand.Rand
}

// Loop owns the grid, the obstacle field, the calibrator and the movement
// signal of one player, and advances them one tick at a time.
type Loop struct {
	Grid       *scrollgrid.Grid
	Field      *obstacles.Field
	Calibrator *calibration.Calibrator
	Signal     *pose.Signal
	Player     *Player

	tuning   gameconfig.Tuning
	store    scores.Store
	survival *clock.Timer
}

// New builds a loop. Start must be called before the first Tick.
func New(deps Deps) *Loop {
	t := deps.Tuning
	c := deps.Clock
	if c == nil {
		c = clock.Real()
	}
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	tile := t.TileSize()
	grid := scrollgrid.New(scrollgrid.Config{
		TileWidth:      tile,
		TileHeight:     tile,
		ViewportWidth:  t.Viewport.Width,
		ViewportHeight: t.Viewport.Height,
		OuterMargin:    t.Grid.OuterMargin,
	})
	field := obstacles.NewField(grid, obstacles.Config{
		WindowViewports: t.Obstacles.WindowViewports,
		Density:         gameconfig.Normal.Density(),
	}, rng)

	phase := time.Duration(t.Calibration.PhaseSeconds * float64(time.Second))

	return &Loop{
		Grid:       grid,
		Field:      field,
		Calibrator: calibration.New(c, phase),
		Signal:     pose.NewSignal(deps.Sensor, t.Movement.SampleEvery),
		Player: &Player{
			Pos:    gamemath.Vec{X: t.Player.ScreenX, Y: float64(t.Viewport.Height) / 2},
			Radius: float64(tile) / 2 * t.Player.RadiusScale,
		},
		tuning:   t,
		store:    deps.Store,
		survival: clock.NewStopwatch(c),
	}
}

// Start resets every component and enters calibration for ctx.
func (l *Loop) Start(ctx *Context) {
	l.Grid.Reset()
	l.Field.Reset()
	l.Field.SetDensity(ctx.Difficulty.Density())
	l.Calibrator.Reset()
	l.Signal.Reset()
	l.Player.Velocity = gamemath.Vec{}
	l.survival.Reset()

	ctx.State = gameconfig.StateCalibrating
	ctx.Score = 0
	ctx.Err = nil
	if ctx.Viewport == (image.Point{}) {
		ctx.Viewport = image.Pt(l.tuning.Viewport.Width, l.tuning.Viewport.Height)
	}
	log.Printf("match %s: %s calibrating on %s", ctx.ID, ctx.Player, ctx.Difficulty)
}

// Restart begins a fresh match with a new id for the same player.
func (l *Loop) Restart(ctx *Context) {
	ctx.ID = uuid.New()
	l.Start(ctx)
}

// ToMenu leaves the match.
func (l *Loop) ToMenu(ctx *Context) {
	ctx.State = gameconfig.StateMainMenu
}

// UpdateCalibration feeds this tick's frame to the calibrator and starts play
// once the mapping is ready.
func (l *Loop) UpdateCalibration(ctx *Context) {
	if ctx.State != gameconfig.StateCalibrating {
		return
	}
	frame, _ := l.Signal.Sample()
	if l.Calibrator.Tick(frame) != calibration.Done {
		return
	}
	m, _ := l.Calibrator.Mapping()
	l.Signal.Calibrate(m)
	l.survival.Restart()
	ctx.State = gameconfig.StatePlaying
	log.Printf("match %s: calibrated up=%.1f down=%.1f", ctx.ID, m.MeanUpY, m.MeanDownY)
}

// UpdateMovement converts the throttled movement percentage into velocity.
func (l *Loop) UpdateMovement(ctx *Context) {
	if ctx.State != gameconfig.StatePlaying {
		return
	}
	p := l.Signal.Next()
	l.Player.Velocity = gamemath.Vec{Y: l.tuning.Movement.Speed * p}
}

// UpdateScroll slides the world left at the fixed rate plus the player's
// vertical velocity.
func (l *Loop) UpdateScroll(ctx *Context) {
	if ctx.State != gameconfig.StatePlaying {
		return
	}
	slide := gamemath.Vec{X: -l.tuning.Movement.SlidingSpeed}
	l.Grid.Shift(slide.Add(l.Player.Velocity))
}

// PlayerTile is the local tile under the player.
func (l *Loop) PlayerTile() obstacles.TilePos {
	x, y := l.Grid.PixelToTileLocal(l.Player.Pos)
	return obstacles.TilePos{X: x, Y: y}
}

// UpdateObstacles spawns ahead of the player and culls behind.
func (l *Loop) UpdateObstacles(ctx *Context) {
	if ctx.State != gameconfig.StatePlaying {
		return
	}
	pos := l.PlayerTile()
	l.Field.Spawn(pos)
	l.Field.Cull(pos)
}

// CheckCollision ends the match on contact and records the score. It
// reports whether the match ended this tick.
func (l *Loop) CheckCollision(ctx *Context) bool {
	if ctx.State != gameconfig.StatePlaying {
		return false
	}
	if !l.Field.Collides(l.Player.Pos, l.Player.Radius) {
		return false
	}

	ctx.Score = l.survival.Seconds()
	ctx.State = gameconfig.StateGameOver
	l.Player.Velocity = gamemath.Vec{}
	log.Printf("match %s: %s survived %ds on %s", ctx.ID, ctx.Player, ctx.Score, ctx.Difficulty)

	if l.store == nil {
		return true
	}
	if err := l.store.InsertScore(ctx.Player, ctx.Difficulty, ctx.Score); err != nil {
		ctx.Err = fmt.Errorf("record score: %w", err)
		log.Printf("Warning: match %s: %v", ctx.ID, ctx.Err)
	}
	return true
}

// Tick runs every step in order.
func (l *Loop) Tick(ctx *Context) {
	l.UpdateCalibration(ctx)
	l.UpdateMovement(ctx)
	l.UpdateScroll(ctx)
	l.UpdateObstacles(ctx)
	l.CheckCollision(ctx)
}

// Elapsed is the survived time so far in whole seconds.
func (l *Loop) Elapsed() int {
	return l.survival.Seconds()
}

// Tuning returns the settings the loop was built with.
func (l *Loop) Tuning() gameconfig.Tuning {
	return l.tuning
}
