package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the per-session knobs a front end may override from a YAML file.
type Settings struct {
	Seed          int64   `yaml:"seed"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	StartingCash  float64 `yaml:"starting_cash"`
	StartingStone float64 `yaml:"starting_stone"`
	Rocks         int     `yaml:"rocks"`
	GoldOres      int     `yaml:"gold_ores"`
	// IdleSpawns lets spawn zones produce stragglers between waves.
	IdleSpawns bool `yaml:"idle_spawns"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Width:         GridWidth,
		Height:        GridHeight,
		StartingCash:  StartingCash,
		StartingStone: StartingStone,
		Rocks:         5,
		GoldOres:      3,
		IdleSpawns:    true,
	}
}

// Load reads settings from path on top of Default.
func Load(path string) (Settings, error) {
	s := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return s, fmt.Errorf("invalid grid size %dx%d", s.Width, s.Height)
	}
	return s, nil
}
