package platform

import (
	"context"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// Configurable is implemented by games that accept a live config swap.
type Configurable interface {
	Configure(cfg config.RunnerConfig)
}

// Configured is implemented by games that expose their active config.
type Configured interface {
	Config() config.RunnerConfig
}

// ActiveConfig returns the config game is running with, or the defaults
// when the game does not expose one.
func ActiveConfig(game any) config.RunnerConfig {
	if c, ok := game.(Configured); ok {
		return c.Config()
	}
	return config.DefaultRunnerConfig()
}

// WatchConfig watches path and hands every valid config, with preset
// applied, to onChange. It blocks until ctx is cancelled.
func WatchConfig(ctx context.Context, path string, preset config.DifficultyPreset, onChange func(config.RunnerConfig), onError func(error)) error {
	return config.Watch(ctx, path, func(cfg config.RunnerConfig) {
		config.ApplyRunnerPreset(&cfg, preset)
		onChange(cfg)
	}, onError)
}
