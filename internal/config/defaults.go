package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			GameSpeed:  5,
			JumpHeight: 120,
			JumpSpeed:  8,
			Gravity:    5,
		},
		Player: RunnerPlayer{
			X:           20,
			GroundY:     190,
			Size:        100,
			HitboxInset: 20,
			Image:       "player",
		},
		Obstacle: RunnerObstacle{
			Size:         40,
			GroundMargin: 5,
			SpawnRange:   500,
			Image:        "obstacle",
		},
		Layers: []LayerConfig{
			{Image: "layer3", Y: 30, Height: 120, Factor: 0.2},
			{Image: "layer2", Y: 170, Height: 120, Factor: 0.6},
			{Image: "layer1", Y: 180, Height: 100, Factor: 0.8},
			{Image: "ground", Y: 252, Height: 48, Factor: 1},
		},
		Score: ScoreConfig{
			Interval:     100 * time.Millisecond,
			TickOnSplash: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
