package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		modify func(*Settings)
	}{
		{"empty object", `{}`, func(*Settings) {}},
		{"overrides", `{"points": 1000, "point_alpha": 0.5, "vsync": false, "rotation_rates": [1, 2, 3]}`, func(s *Settings) {
			s.Points = 1000
			s.PointAlpha = 0.5
			s.VSync = false
			s.RotationRates = [3]float64{1, 2, 3}
		}},
		{"invalid values fall back", `{"points": -5, "fade_out_percent": 3, "texture_size": 4, "point_size": 0}`, func(*Settings) {}},
		{"not json", `points = 5`, func(*Settings) {}},
		{"wrong type", `{"points": "many"}`, func(*Settings) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := Default()
			tt.modify(want)
			if diff := cmp.Diff(want, Parse([]byte(tt.data))); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseWarnsUnknownKeys(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	Parse([]byte(`{"points": 10, "colour_speed": 4}`))

	var found bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "Unrecognised setting key 'colour_speed' in settings file" {
			found = true
		}
	}
	if !found {
		t.Error("no warning for unknown key")
	}
}

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("defaults not written: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s, again); diff != "" {
		t.Errorf("reloaded settings differ (-want +got):\n%s", diff)
	}
}

func TestFlameConfigValid(t *testing.T) {
	s := Default()
	s.Points = 42
	s.FadeOutPercent = 0.3

	cfg := s.Flame()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Points != 42 || cfg.FadeOutPercent != 0.3 {
		t.Errorf("settings not carried over: %+v", cfg)
	}
}
