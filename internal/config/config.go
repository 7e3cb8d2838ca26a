package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seedloom/seedloom/core/seed"
)

// Parameter bounds. Every numeric setting is clamped on load and on wizard
// mutation so renderers can trust the ranges each frame.
const (
	MinTempo = 40
	MaxTempo = 220

	MinHarmony = 3
	MaxHarmony = 12

	MinResponsiveness = 0
	MaxResponsiveness = 100
)

// Settings is the shared mutable configuration: selected seed, tempo,
// harmony count and responsiveness, plus ambient app settings. Exactly one
// instance exists; the Parameter Wizard mutates it and every renderer
// re-reads it each frame instead of caching values.
type Settings struct {
	Seed           seed.ID `yaml:"seed"`
	Tempo          int     `yaml:"tempo"`          // BPM
	Harmony        int     `yaml:"harmony"`        // symmetry arms / helix strands
	Responsiveness int     `yaml:"responsiveness"` // 0..100 %

	WindowW  int    `yaml:"window_width"`
	WindowH  int    `yaml:"window_height"`
	LogLevel string `yaml:"log_level"`

	LessonID     string `yaml:"lesson_id"`
	StudentAlias string `yaml:"student_alias"`
}

// Defaults returns the settings used when no config file is present.
func Defaults() *Settings {
	return &Settings{
		Seed:           seed.Default().ID,
		Tempo:          96,
		Harmony:        6,
		Responsiveness: 60,
		WindowW:        1024,
		WindowH:        720,
		LogLevel:       "info",
		LessonID:       "seedloom-intro",
		StudentAlias:   "student",
	}
}

// Load reads a YAML settings file over the defaults. A missing path is not
// an error; a malformed file is.
func Load(path string) (*Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	s.Clamp()
	return s, nil
}

// Clamp forces every field into its valid range.
func (s *Settings) Clamp() {
	if _, ok := seed.Lookup(s.Seed); !ok {
		s.Seed = seed.Default().ID
	}
	s.Tempo = clampInt(s.Tempo, MinTempo, MaxTempo)
	s.Harmony = clampInt(s.Harmony, MinHarmony, MaxHarmony)
	s.Responsiveness = clampInt(s.Responsiveness, MinResponsiveness, MaxResponsiveness)
	if s.WindowW < 320 {
		s.WindowW = 320
	}
	if s.WindowH < 240 {
		s.WindowH = 240
	}
}

// ActiveSeed resolves the selected seed, falling back to the default.
func (s *Settings) ActiveSeed() seed.Seed {
	if sd, ok := seed.Lookup(s.Seed); ok {
		return sd
	}
	return seed.Default()
}

// Responsive converts the responsiveness percentage to a 0..1 factor.
func (s *Settings) Responsive() float64 {
	return float64(clampInt(s.Responsiveness, MinResponsiveness, MaxResponsiveness)) / 100
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
