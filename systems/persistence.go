package systems

import (
	"log"

	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/profile"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scores"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "muscle-survivors"

// SavedSettings represents the settings data stored on disk
type SavedSettings = profile.Settings

var dataKV scores.KV
var current SavedSettings

// InitPersistence opens the per-user data directory. When it cannot be
// opened the game keeps running on an in-memory store.
func InitPersistence() error {
	m, err := scores.OpenGData(appName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		dataKV = scores.NewMemoryKV()
		return err
	}
	dataKV = m
	return nil
}

func getKV() scores.KV {
	if dataKV == nil {
		dataKV = scores.NewMemoryKV()
	}
	return dataKV
}

// OpenStores returns the leaderboard and the account registry backed by the
// persistence store.
func OpenStores() (*scores.KVStore, *scores.Accounts) {
	kv := getKV()
	return scores.NewKVStore(kv), scores.NewAccounts(kv, 0)
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	settings, err := profile.Load(getKV())
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, err
	}
	if settings == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}
	current = *settings
	return settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if err := profile.Save(getKV(), s); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	current = *s
	return nil
}

// CurrentSettings returns the last loaded or saved settings.
func CurrentSettings() SavedSettings {
	return current
}

// SaveLastSession remembers who played last and on which difficulty.
func SaveLastSession(player string, d cfg.Difficulty) {
	s := current
	s.LastPlayer = player
	s.Difficulty = d
	_ = SaveSettings(&s)
}

// ToggleFullscreen flips fullscreen and persists the choice.
func ToggleFullscreen() {
	s := current
	s.Fullscreen = !ebiten.IsFullscreen()
	ebiten.SetFullscreen(s.Fullscreen)
	_ = SaveSettings(&s)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during initial game startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	w := profile.StartupWindow(cfg.Tuning, saved)
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetFullscreen(w.Fullscreen)
}
