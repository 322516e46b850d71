package scenes

import (
	"math/rand/v2"

	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/clock"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/matchloop"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scores"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is what survives scene changes: the signed-in player, the chosen
// difficulty and the long-lived collaborators every match shares.
type Session struct {
	Player     string
	Difficulty cfg.Difficulty

	Scores   scores.Store
	Accounts *scores.Accounts
	Sensor   pose.Sensor
	Clock    clock.Clock
	// Rand drives obstacle placement; nil seeds randomly.
	Rand *rand.Rand

	loop *matchloop.Loop
}

// Loop returns the match loop, building it on first use.
func (s *Session) Loop() *matchloop.Loop {
	if s.loop == nil {
		s.loop = matchloop.New(matchloop.Deps{
			Tuning: cfg.Tuning,
			Sensor: s.Sensor,
			Store:  s.Scores,
			Clock:  s.Clock,
			Rand:   s.Rand,
		})
	}
	return s.loop
}

// LogOut forgets the player.
func (s *Session) LogOut() {
	s.Player = ""
}
