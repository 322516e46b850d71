package scenes

import (
	"errors"
	"log"
	"strings"
	"sync"

	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scores"
	"github.com/Mehmet-Adil/Muscle-Survivors/systems"
	"github.com/Mehmet-Adil/Muscle-Survivors/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SignInScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	signInUI     *ui.SignInUI
	once         sync.Once
	shouldLeave  bool

	mu        sync.Mutex
	checked   bool
	checkErr  error
	checkName string
	created   bool
}

func NewSignInScene(sc SceneChanger, sess *Session) *SignInScene {
	return &SignInScene{sceneChanger: sc, session: sess}
}

func (s *SignInScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.signInUI.Update()

	if s.shouldLeave {
		systems.RequestQuit()
		return
	}

	// Apply the account check on the main goroutine
	s.mu.Lock()
	if !s.checked {
		s.mu.Unlock()
		return
	}
	name, created, err := s.checkName, s.created, s.checkErr
	s.checked = false
	s.mu.Unlock()

	s.signInUI.SetBusy(false)
	if err != nil {
		s.signInUI.SetStatus(signInMessage(err))
		s.signInUI.ClearPassword()
		return
	}

	if created {
		log.Printf("registered player %s", name)
	}
	s.session.Player = name
	systems.SaveLastSession(name, s.session.Difficulty)
	s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger, s.session))
}

func (s *SignInScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Navy)

	if s.ecsWorld == nil {
		return
	}

	s.signInUI.UI.Draw(screen)
}

func (s *SignInScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())
	s.ecsWorld.AddSystem(systems.UpdateInput)

	last := systems.CurrentSettings().LastPlayer
	s.signInUI = ui.NewSignInUI(
		cfg.SignIn.Title,
		last,
		func(name, password string) { s.onSubmit(name, password) },
		func() { s.shouldLeave = true },
	)
}

func (s *SignInScene) onSubmit(name, password string) {
	if s.session.Accounts == nil {
		s.signInUI.SetStatus(cfg.SignIn.StorageProblem)
		return
	}

	name = strings.TrimSpace(name)
	s.signInUI.SetStatus("")
	s.signInUI.SetBusy(true)

	// Password hashing is slow enough to stall a frame
	go func() {
		created, err := s.session.Accounts.SignIn(name, password)
		s.mu.Lock()
		s.checkName = name
		s.created = created
		s.checkErr = err
		s.checked = true
		s.mu.Unlock()
	}()
}

func signInMessage(err error) string {
	switch {
	case errors.Is(err, scores.ErrEmptyCredentials):
		return cfg.SignIn.MissingFields
	case errors.Is(err, scores.ErrRejected):
		return cfg.SignIn.WrongPassword
	}
	log.Printf("Warning: sign in failed: %v", err)
	return cfg.SignIn.StorageProblem
}
