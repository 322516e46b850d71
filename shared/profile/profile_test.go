package profile

import (
	"testing"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gameconfig"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scores"
)

func TestLoadNothingSaved(t *testing.T) {
	s, err := Load(scores.NewMemoryKV())
	if err != nil || s != nil {
		t.Fatalf("Load = %v, %v; want nil, nil", s, err)
	}
}

func TestSaveLoad(t *testing.T) {
	kv := scores.NewMemoryKV()
	in := &Settings{LastPlayer: "ana", Difficulty: gameconfig.Hard, Fullscreen: true}
	if err := Save(kv, in); err != nil {
		t.Fatal(err)
	}
	out, err := Load(kv)
	if err != nil {
		t.Fatal(err)
	}
	if *out != *in {
		t.Errorf("loaded %+v, want %+v", *out, *in)
	}
}

func TestStartupWindowFollowsViewport(t *testing.T) {
	// Documents written by older builds carry a resolution index.
	kv := scores.NewMemoryKV()
	if err := kv.SaveItem(settingsKey, []byte(`{"lastPlayer":"ana","resolutionIndex":0}`)); err != nil {
		t.Fatal(err)
	}
	saved, err := Load(kv)
	if err != nil {
		t.Fatal(err)
	}

	tuning := gameconfig.Default()
	tuning.Viewport.Width = 800
	tuning.Viewport.Height = 600

	tests := []struct {
		name  string
		saved *Settings
		want  Window
	}{
		{"no settings", nil, Window{Width: 800, Height: 600}},
		{"legacy settings", saved, Window{Width: 800, Height: 600}},
		{"fullscreen", &Settings{Fullscreen: true}, Window{Width: 800, Height: 600, Fullscreen: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartupWindow(tuning, tt.saved); got != tt.want {
				t.Errorf("StartupWindow = %+v, want %+v", got, tt.want)
			}
		})
	}
}
