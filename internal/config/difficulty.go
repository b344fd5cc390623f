package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyClassic DifficultyPreset = "classic" // Keep the configured game speed
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset.
// An empty string selects DifficultyClassic.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyClassic, nil
	case DifficultyClassic, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyClassic, fmt.Errorf("unknown difficulty %q (want classic, easy, normal or hard)", s)
	}
}

// SpeedForPreset returns the game speed a preset forces, or 0 when the
// configured speed is kept.
func SpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 7
	default:
		return 0
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if speed := SpeedForPreset(preset); speed > 0 {
		cfg.Physics.GameSpeed = speed
	}
}
