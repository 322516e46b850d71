package matchloop

import (
	"errors"
	"image"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/clock"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gameconfig"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/obstacles"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scores"
)

const tick = time.Second / 60

type fakeSensor struct {
	frame pose.Frame
	err   error
	reads int
}

func (f *fakeSensor) Sample() (pose.Frame, error) {
	f.reads++
	return f.frame, f.err
}

type failingStore struct{ err error }

func (f failingStore) InsertScore(string, gameconfig.Difficulty, int) error { return f.err }
func (f failingStore) HighScores(gameconfig.Difficulty, int) ([]scores.HighScore, error) {
	return nil, nil
}

type harness struct {
	loop   *Loop
	ctx    *Context
	clock  *clock.Mock
	sensor *fakeSensor
}

func newHarness(t *testing.T, store scores.Store) *harness {
	t.Helper()
	clk := clock.NewMock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := &fakeSensor{}
	l := New(Deps{
		Tuning: gameconfig.Default(),
		Sensor: s,
		Store:  store,
		Clock:  clk,
		Rand:   rand.New(rand.NewPCG(1, 2)),
	})
	ctx := NewContext("tester", gameconfig.Normal, image.Pt(1280, 720))
	l.Start(ctx)
	return &harness{loop: l, ctx: ctx, clock: clk, sensor: s}
}

// calibrate walks the calibrator through both phases with up=200, down=100.
func (h *harness) calibrate(t *testing.T) {
	t.Helper()
	h.sensor.frame = pose.StaticFrame(200, 160)
	h.loop.UpdateCalibration(h.ctx)
	h.clock.Advance(3 * time.Second)
	h.loop.UpdateCalibration(h.ctx)

	h.sensor.frame = pose.StaticFrame(100, 140)
	h.clock.Advance(3 * time.Second)
	h.loop.UpdateCalibration(h.ctx)

	if h.ctx.State != gameconfig.StatePlaying {
		t.Fatalf("state = %v after calibration, want PLAYING", h.ctx.State)
	}
}

func TestStartsCalibrating(t *testing.T) {
	h := newHarness(t, nil)
	if h.ctx.State != gameconfig.StateCalibrating {
		t.Fatalf("state = %v, want CALIBRATING", h.ctx.State)
	}
	if got := h.loop.Field.Density(); got != 0.25 {
		t.Errorf("density = %v, want 0.25", got)
	}
	if got := h.loop.Player.Radius; got < 21.59 || got > 21.61 {
		t.Errorf("radius = %v, want 21.6", got)
	}

	// No scrolling or spawning before calibration completes.
	for i := 0; i < 10; i++ {
		h.loop.Tick(h.ctx)
	}
	if h.loop.Grid.Offset().X != 0 || h.loop.Field.Len() != 0 {
		t.Errorf("world moved during calibration: offset %v, obstacles %d", h.loop.Grid.Offset(), h.loop.Field.Len())
	}
}

func TestMovementFromShoulders(t *testing.T) {
	h := newHarness(t, nil)
	h.calibrate(t)

	heights := []int{200, 100, 200, 100}
	want := []float64{10, -10, 10, -10}
	startY := h.loop.Grid.Offset().Y

	for i := 0; i < 12; i++ {
		if i%3 == 0 {
			h.sensor.frame = pose.StaticFrame(heights[i/3], heights[i/3]+40)
		}
		h.loop.UpdateMovement(h.ctx)
		if got := h.loop.Player.Velocity.Y; got != want[i/3] {
			t.Fatalf("tick %d velocity = %v, want %v", i, got, want[i/3])
		}
		h.loop.UpdateScroll(h.ctx)
	}

	if got := h.loop.Grid.Offset().Y - startY; got != 0 {
		t.Errorf("net vertical shift = %v, want 0", got)
	}
	if got := h.loop.Grid.Offset().X; got != -60 {
		t.Errorf("horizontal shift = %v, want -60", got)
	}
}

func playUntilOver(t *testing.T, h *harness, maxTicks int) int {
	t.Helper()
	for i := 1; i <= maxTicks; i++ {
		h.clock.Advance(tick)
		h.loop.Tick(h.ctx)
		if h.ctx.State == gameconfig.StateGameOver {
			return i
		}
	}
	t.Fatalf("no collision within %d ticks", maxTicks)
	return 0
}

func placeAhead(h *harness, columns int) {
	p := h.loop.PlayerTile()
	h.loop.Field.Place(obstacles.TilePos{X: p.X + columns, Y: p.Y})
}

func TestCollisionRecordsScore(t *testing.T) {
	store := scores.NewKVStore(scores.NewMemoryKV())
	h := newHarness(t, store)
	h.calibrate(t)
	h.sensor.frame = pose.StaticFrame(150, 190)
	placeAhead(h, 12)

	ticks := playUntilOver(t, h, 1000)
	if ticks != 158 {
		t.Errorf("collided after %d ticks, want 158", ticks)
	}
	if h.ctx.Score != 2 {
		t.Errorf("score = %d, want 2", h.ctx.Score)
	}
	if h.ctx.Err != nil {
		t.Errorf("unexpected error: %v", h.ctx.Err)
	}

	top, err := store.HighScores(gameconfig.Normal, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0] != (scores.HighScore{Name: "tester", Score: 2}) {
		t.Errorf("HighScores = %v, want [{tester 2}]", top)
	}

	// Game over freezes the world.
	off := h.loop.Grid.Offset()
	h.loop.Tick(h.ctx)
	if h.loop.Grid.Offset() != off {
		t.Error("world kept scrolling after game over")
	}
}

func TestStoreFailureEndsMatchWithError(t *testing.T) {
	boom := errors.New("store offline")
	h := newHarness(t, failingStore{err: boom})
	h.calibrate(t)
	h.sensor.frame = pose.StaticFrame(150, 190)
	placeAhead(h, 2)

	playUntilOver(t, h, 500)
	if !errors.Is(h.ctx.Err, boom) {
		t.Fatalf("ctx.Err = %v, want wrapped %v", h.ctx.Err, boom)
	}
	if h.ctx.State != gameconfig.StateGameOver {
		t.Errorf("state = %v, want GAME_OVER", h.ctx.State)
	}
}

func TestSensorOutageHoldsVelocity(t *testing.T) {
	h := newHarness(t, nil)
	h.calibrate(t)

	h.sensor.frame = pose.StaticFrame(200, 240)
	h.loop.UpdateMovement(h.ctx)
	if h.loop.Player.Velocity.Y != 10 {
		t.Fatalf("velocity = %v, want 10", h.loop.Player.Velocity.Y)
	}
	h.sensor.err = pose.ErrNotReady
	for i := 0; i < 9; i++ {
		h.loop.UpdateMovement(h.ctx)
		if h.loop.Player.Velocity.Y != 10 {
			t.Fatalf("tick %d velocity = %v, want held 10", i, h.loop.Player.Velocity.Y)
		}
	}
}

func TestRestartAndMenu(t *testing.T) {
	h := newHarness(t, nil)
	h.calibrate(t)
	h.sensor.frame = pose.StaticFrame(150, 190)
	placeAhead(h, 2)
	playUntilOver(t, h, 500)

	firstID := h.ctx.ID
	player, difficulty := h.ctx.Player, h.ctx.Difficulty
	h.ctx.Err = errors.New("store down")
	h.loop.Restart(h.ctx)
	if h.ctx.Player != player || h.ctx.Difficulty != difficulty {
		t.Errorf("restart changed the match owner: %s on %s", h.ctx.Player, h.ctx.Difficulty)
	}
	if h.ctx.Score != 0 || h.ctx.Err != nil {
		t.Errorf("restart kept score=%d err=%v", h.ctx.Score, h.ctx.Err)
	}
	if h.ctx.State != gameconfig.StateCalibrating {
		t.Errorf("state = %v, want CALIBRATING", h.ctx.State)
	}
	if h.ctx.ID == firstID {
		t.Error("restart should assign a new match id")
	}
	if h.loop.Field.Len() != 0 || h.loop.Grid.Offset().X != 0 {
		t.Error("restart should clear the world")
	}
	if h.loop.Calibrator.Done() || h.loop.Signal.Calibrated() {
		t.Error("restart should require a fresh calibration")
	}

	h.loop.ToMenu(h.ctx)
	if h.ctx.State != gameconfig.StateMainMenu {
		t.Errorf("state = %v, want MAIN_MENU", h.ctx.State)
	}
}
