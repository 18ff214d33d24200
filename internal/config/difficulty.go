package config

import (
	"fmt"
	"time"
)

// DifficultyPreset is a named game speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetIntervals maps presets to the delay between play ticks.
var presetIntervals = map[DifficultyPreset]time.Duration{
	DifficultyEasy:   150 * time.Millisecond,
	DifficultyNormal: 100 * time.Millisecond,
	DifficultyHard:   70 * time.Millisecond,
}

// ParseDifficulty converts a CLI value into a preset. The empty string keeps
// the configured interval and is returned as "".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := DifficultyPreset(s)
	if _, ok := presetIntervals[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyPreset overrides the play interval with the preset's speed.
// An empty preset leaves the configuration unchanged.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if d, ok := presetIntervals[preset]; ok {
		cfg.Game.PlayInterval = d
	}
}
