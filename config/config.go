package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/stewi1014/glflame/flame"
)

type Settings struct {
	Points         int        `json:"points"`
	TextureSize    int        `json:"texture_size"`
	PointSize      float32    `json:"point_size"`
	PointAlpha     float32    `json:"point_alpha"`
	FadeInMs       float64    `json:"fade_in_ms"`
	FadeOutMs      float64    `json:"fade_out_ms"`
	FadeOutPercent float64    `json:"fade_out_percent"`
	ColourRate     float64    `json:"colour_rate"`
	RotationRates  [3]float64 `json:"rotation_rates"`
	DriftRates     [3]float64 `json:"drift_rates"`
	Seed           uint64     `json:"seed"`
	VSync          bool       `json:"vsync"`
	Workers        int        `json:"workers"`
}

func Default() *Settings {
	cfg := flame.DefaultConfig()
	return &Settings{
		Points:         cfg.Points,
		TextureSize:    1024,
		PointSize:      2,
		PointAlpha:     0.1,
		FadeInMs:       cfg.FadeInMs,
		FadeOutMs:      cfg.FadeOutMs,
		FadeOutPercent: cfg.FadeOutPercent,
		ColourRate:     cfg.ColourRate,
		RotationRates:  cfg.RotationRates,
		DriftRates:     cfg.DriftRates,
		VSync:          true,
	}
}

// Flame returns the animation described by s on the default baseline.
func (s *Settings) Flame() flame.Config {
	cfg := flame.DefaultConfig()
	cfg.Points = s.Points
	cfg.FadeInMs = s.FadeInMs
	cfg.FadeOutMs = s.FadeOutMs
	cfg.FadeOutPercent = s.FadeOutPercent
	cfg.ColourRate = s.ColourRate
	cfg.RotationRates = s.RotationRates
	cfg.DriftRates = s.DriftRates
	return cfg
}

func GetPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "glflame")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

// Load reads settings from path, writing the defaults there if it does not
// exist. An empty path means GetPath.
func Load(path string) (*Settings, error) {
	if path == "" {
		var err error
		path, err = GetPath()
		if err != nil {
			return nil, err
		}
	}

	defaults := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Infof("Creating default settings file at %s", path)
			if err := createDefaultSettings(path, defaults); err != nil {
				logrus.Warnf("Failed to create default settings file: %v", err)
			}
			return defaults, nil
		}
		return nil, err
	}

	return Parse(data), nil
}

// Parse decodes data over the defaults. Problems are logged and fall back to
// defaults rather than failing.
func Parse(data []byte) *Settings {
	defaults := Default()

	// Check for unrecognised keys
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		logrus.Warnf("Invalid settings file, using defaults: %v", err)
		return defaults
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range raw {
		if !knownKeys[key] {
			logrus.Warnf("Unrecognised setting key '%s' in settings file", key)
		}
	}

	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		logrus.Warnf("Invalid settings file, using defaults: %v", err)
		return defaults
	}

	settings.validate(defaults)
	return settings
}

func (s *Settings) validate(defaults *Settings) {
	if s.Points <= 0 {
		logrus.Warnf("Invalid points value %d, must be positive, using default %d", s.Points, defaults.Points)
		s.Points = defaults.Points
	}
	if s.TextureSize < 16 || s.TextureSize > 8192 {
		logrus.Warnf("Invalid texture_size value %d, must be between 16 and 8192, using default %d", s.TextureSize, defaults.TextureSize)
		s.TextureSize = defaults.TextureSize
	}
	if s.PointSize <= 0 {
		logrus.Warnf("Invalid point_size value %.2f, must be positive, using default %.2f", s.PointSize, defaults.PointSize)
		s.PointSize = defaults.PointSize
	}
	if s.PointAlpha <= 0 || s.PointAlpha > 1 {
		logrus.Warnf("Invalid point_alpha value %.2f, must be in (0, 1], using default %.2f", s.PointAlpha, defaults.PointAlpha)
		s.PointAlpha = defaults.PointAlpha
	}
	if s.FadeInMs < 0 {
		logrus.Warnf("Invalid fade_in_ms value %.0f, must not be negative, using default %.0f", s.FadeInMs, defaults.FadeInMs)
		s.FadeInMs = defaults.FadeInMs
	}
	if s.FadeOutMs <= 0 {
		logrus.Warnf("Invalid fade_out_ms value %.0f, must be positive, using default %.0f", s.FadeOutMs, defaults.FadeOutMs)
		s.FadeOutMs = defaults.FadeOutMs
	}
	if s.FadeOutPercent < 0 || s.FadeOutPercent > 1 {
		logrus.Warnf("Invalid fade_out_percent value %.2f, must be between 0.0 and 1.0, using default %.2f", s.FadeOutPercent, defaults.FadeOutPercent)
		s.FadeOutPercent = defaults.FadeOutPercent
	}
	if s.Workers < 0 {
		logrus.Warnf("Invalid workers value %d, must not be negative, using default %d", s.Workers, defaults.Workers)
		s.Workers = defaults.Workers
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
