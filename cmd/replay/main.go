// Command replay runs a recorded session through the match loop without a
// window and reports how long the player survived.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"math/rand/v2"
	"time"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/clock"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gameconfig"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/matchloop"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scores"
	"github.com/cheggaaa/pb/v3"
)

func main() {
	recordingPath := flag.String("recording", "", "Recording to replay (required)")
	configPath := flag.String("config", "", "Tuning file (TOML)")
	difficulty := flag.String("difficulty", "NORMAL", "EASY, NORMAL or HARD")
	seed := flag.Uint64("seed", 1, "Obstacle placement seed")
	player := flag.String("player", "replay", "Name the score is recorded under")
	submit := flag.Bool("submit", false, "Insert the score into the local leaderboard")
	maxTicks := flag.Int("max-ticks", 0, "Stop after this many ticks (0 = until the recording ends)")
	flag.Parse()

	if *recordingPath == "" {
		log.Fatalf("-recording is required")
	}

	tuning := gameconfig.Default()
	if *configPath != "" {
		t, err := gameconfig.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning = t
	}

	d, err := gameconfig.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatalf("Invalid difficulty: %v", err)
	}

	rec, err := pose.LoadRecording(*recordingPath)
	if err != nil {
		log.Fatalf("Failed to load recording: %v", err)
	}
	sensor := pose.NewReplaySensor(rec, false)

	var store scores.Store = scores.NewKVStore(scores.NewMemoryKV())
	if *submit {
		m, err := scores.OpenGData("muscle-survivors")
		if err != nil {
			log.Fatalf("Failed to open leaderboard: %v", err)
		}
		store = scores.NewKVStore(m)
	}

	mock := clock.NewMock(time.Unix(0, 0))
	loop := matchloop.New(matchloop.Deps{
		Tuning: tuning,
		Sensor: sensor,
		Store:  store,
		Clock:  mock,
		Rand:   rand.New(rand.NewPCG(*seed, *seed)),
	})
	ctx := matchloop.NewContext(*player, d, image.Pt(tuning.Viewport.Width, tuning.Viewport.Height))
	loop.Start(ctx)

	limit := *maxTicks
	if limit <= 0 {
		// Calibration reads every tick, play reads every SampleEvery ticks.
		limit = len(rec.Frames) * max(tuning.Movement.SampleEvery, 1)
	}

	step := time.Second / time.Duration(tuning.TPS)
	bar := pb.StartNew(limit)
	ticks := 0
	for ticks < limit && ctx.State != gameconfig.StateGameOver {
		mock.Advance(step)
		loop.Tick(ctx)
		ticks++
		bar.Increment()
		if sensor.Done() && ctx.State == gameconfig.StateCalibrating {
			break
		}
	}
	bar.Finish()

	survived := loop.Elapsed()
	if ctx.State == gameconfig.StateGameOver {
		survived = ctx.Score
	}
	fmt.Printf("match:     %s\n", ctx.ID)
	fmt.Printf("state:     %s\n", ctx.State)
	fmt.Printf("survived:  %ds\n", survived)
	fmt.Printf("ticks:     %d\n", ticks)
	fmt.Printf("frames:    %d/%d\n", sensor.Position(), len(rec.Frames))
	fmt.Printf("obstacles: %d\n", loop.Field.Len())
	fmt.Printf("lines:     %d\n", loop.Grid.LineCount())
	if ctx.Err != nil {
		log.Fatalf("Score not recorded: %v", ctx.Err)
	}
}
