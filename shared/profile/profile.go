// Package profile stores the per-user preferences restored at startup.
package profile

import (
	"encoding/json"
	"fmt"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gameconfig"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scores"
)

const settingsKey = "settings"

// Settings represents the settings data stored on disk
type Settings struct {
	LastPlayer string                `json:"lastPlayer"`
	Difficulty gameconfig.Difficulty `json:"difficulty"`
	Fullscreen bool                  `json:"fullscreen"`
}

// Window is the window configuration to open with.
type Window struct {
	Width      int
	Height     int
	Fullscreen bool
}

// StartupWindow sizes the window from the tuned viewport. Saved settings only
// restore fullscreen.
func StartupWindow(t gameconfig.Tuning, saved *Settings) Window {
	w := Window{Width: t.Viewport.Width, Height: t.Viewport.Height}
	if saved != nil {
		w.Fullscreen = saved.Fullscreen
	}
	return w
}

// Load reads the settings. It returns nil, nil when nothing was saved yet.
func Load(kv scores.KV) (*Settings, error) {
	data, err := kv.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &s, nil
}

// Save writes the settings.
func Save(kv scores.KV, s *Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := kv.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
