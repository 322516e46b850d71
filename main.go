package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"strconv"
	"time"

	"github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/fonts"
	"github.com/Mehmet-Adil/Muscle-Survivors/scenes"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gameconfig"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose"
	"github.com/Mehmet-Adil/Muscle-Survivors/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(sess *scenes.Session) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipSignIn && sess.Player != "" {
		g.scene = scenes.NewMenuScene(g, sess)
	} else {
		g.scene = scenes.NewSignInScene(g, sess)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if systems.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	config.LoadEnv()

	defaultCamera, _ := strconv.Atoi(config.EnvOr(config.EnvCamera, "0"))
	configPath := flag.String("config", config.EnvOr(config.EnvConfigPath, "muscle-survivors.toml"), "Tuning file (TOML); missing file uses defaults")
	sensorKind := flag.String("sensor", config.EnvOr(config.EnvSensor, "keyboard"), "Pose source: keyboard, camera or replay")
	replayPath := flag.String("replay", "", "Recording played back by -sensor replay")
	recordPath := flag.String("record", "", "Write every frame the sensor produces to this file on exit")
	cameraID := flag.Int("camera", defaultCamera, "Camera device index for -sensor camera")
	modelPath := flag.String("model", config.EnvOr(config.EnvModel, ""), "Pose network weights for -sensor camera")
	netConfig := flag.String("netconfig", "", "Pose network description (prototxt) for -sensor camera")
	player := flag.String("player", config.EnvOr(config.EnvPlayer, ""), "Skip sign-in and play as this name")
	showGrid := flag.Bool("debug-grid", false, "Draw the player tile and grid counters")
	flag.Parse()

	tuning, err := gameconfig.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	config.ApplyTuning(tuning)
	config.Debug.ShowGrid = *showGrid

	ebiten.SetWindowTitle("Muscle Survivors")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()
	systems.ApplySavedSettingsGlobal(saved)

	ctx, cancel := context.WithCancel(context.Background())

	sensor, closeSensor, err := openSensor(ctx, *sensorKind, sensorOptions{
		replay:    *replayPath,
		camera:    *cameraID,
		model:     *modelPath,
		netConfig: *netConfig,
	})
	if err != nil {
		log.Fatalf("Failed to open %s sensor: %v", *sensorKind, err)
	}
	defer func() {
		cancel()
		closeSensor()
	}()

	var recorder *pose.Recorder
	if *recordPath != "" {
		recorder = pose.NewRecorder(sensor, config.C.TPS)
		sensor = recorder
	}

	store, accounts := systems.OpenStores()
	sess := &scenes.Session{
		Difficulty: config.Normal,
		Scores:     store,
		Accounts:   accounts,
		Sensor:     sensor,
	}
	if saved != nil {
		if d, err := gameconfig.ParseDifficulty(string(saved.Difficulty)); err == nil {
			sess.Difficulty = d
		}
	}
	if *player != "" {
		config.Debug.SkipSignIn = true
		config.Debug.Player = *player
		sess.Player = *player
	}

	runErr := ebiten.RunGame(NewGame(sess))

	if recorder != nil {
		if err := recorder.Recording().Save(*recordPath); err != nil {
			log.Printf("Warning: Could not save recording: %v", err)
		} else {
			log.Printf("Saved %d frames to %s", len(recorder.Recording().Frames), *recordPath)
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

type sensorOptions struct {
	replay    string
	camera    int
	model     string
	netConfig string
}

// openSensor builds the pose source named by kind. The returned func
// releases it.
func openSensor(ctx context.Context, kind string, opts sensorOptions) (pose.Sensor, func(), error) {
	switch kind {
	case "keyboard":
		return systems.NewKeyboardSensor(), func() {}, nil

	case "replay":
		if opts.replay == "" {
			return nil, nil, errors.New("-sensor replay needs -replay")
		}
		rec, err := pose.LoadRecording(opts.replay)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Replaying %d frames from %s", len(rec.Frames), opts.replay)
		return pose.NewReplaySensor(rec, true), func() {}, nil

	case "camera":
		cam, closeCam, err := openCamera(opts.camera, opts.model, opts.netConfig)
		if err != nil {
			return nil, nil, err
		}
		async := pose.NewAsyncSensor(cam, time.Second/30)
		go func() {
			if err := async.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("Warning: camera sensor stopped: %v", err)
			}
		}()
		return async, closeCam, nil
	}
	return nil, nil, fmt.Errorf("unknown sensor %q", kind)
}
