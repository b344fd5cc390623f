// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the runner.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains all configuration for the runner game.
// The drawing surface is fixed at 500x300 and is not configurable.
type RunnerConfig struct {
	Physics  RunnerPhysics  `yaml:"physics"`
	Player   RunnerPlayer   `yaml:"player"`
	Obstacle RunnerObstacle `yaml:"obstacle"`
	Layers   []LayerConfig  `yaml:"layers"` // Back to front
	Score    ScoreConfig    `yaml:"score"`
}

// RunnerPhysics defines per-frame motion steps in canvas units.
type RunnerPhysics struct {
	GameSpeed  float64 `yaml:"game_speed"`  // Global scroll speed
	JumpHeight float64 `yaml:"jump_height"` // Apex distance above ground_y
	JumpSpeed  float64 `yaml:"jump_speed"`  // Ascend step
	Gravity    float64 `yaml:"gravity"`     // Descend step
}

// RunnerPlayer defines the player sprite and hitbox.
type RunnerPlayer struct {
	X           float64 `yaml:"x"`
	GroundY     float64 `yaml:"ground_y"`
	Size        float64 `yaml:"size"`
	HitboxInset float64 `yaml:"hitbox_inset"` // Horizontal margin ignored by collisions
	Image       string  `yaml:"image"`
}

// RunnerObstacle defines the single recycled obstacle.
type RunnerObstacle struct {
	Size         float64 `yaml:"size"`
	GroundMargin float64 `yaml:"ground_margin"` // Gap between obstacle bottom and canvas bottom
	SpawnRange   float64 `yaml:"spawn_range"`   // Width of the random spawn window right of the canvas
	Image        string  `yaml:"image"`
}

// LayerConfig defines one parallax background layer.
type LayerConfig struct {
	Image  string  `yaml:"image"`
	Y      float64 `yaml:"y"`
	Height float64 `yaml:"height"`
	Factor float64 `yaml:"factor"` // Fraction of game_speed this layer scrolls at
}

// ScoreConfig defines the score ticker.
type ScoreConfig struct {
	Interval     time.Duration `yaml:"interval"`
	TickOnSplash bool          `yaml:"tick_on_splash"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that sizes, speeds and intervals are usable.
// All problems are reported together.
func (c RunnerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("physics.game_speed", c.Physics.GameSpeed)
	positive("physics.jump_height", c.Physics.JumpHeight)
	positive("physics.jump_speed", c.Physics.JumpSpeed)
	positive("physics.gravity", c.Physics.Gravity)
	positive("player.size", c.Player.Size)
	positive("obstacle.size", c.Obstacle.Size)

	if c.Player.HitboxInset < 0 || 2*c.Player.HitboxInset >= c.Player.Size {
		errs = append(errs, fmt.Errorf("%w: player.hitbox_inset %v must be in [0, size/2)", ErrInvalidConfig, c.Player.HitboxInset))
	}
	if c.Physics.JumpHeight > c.Player.GroundY {
		errs = append(errs, fmt.Errorf("%w: physics.jump_height %v lifts the player off the canvas", ErrInvalidConfig, c.Physics.JumpHeight))
	}
	if c.Obstacle.SpawnRange < 0 {
		errs = append(errs, fmt.Errorf("%w: obstacle.spawn_range must not be negative", ErrInvalidConfig))
	}
	if c.Score.Interval <= 0 {
		errs = append(errs, fmt.Errorf("%w: score.interval must be positive", ErrInvalidConfig))
	}
	for i, l := range c.Layers {
		if l.Height <= 0 || l.Factor < 0 {
			errs = append(errs, fmt.Errorf("%w: layers[%d] needs positive height and non-negative factor", ErrInvalidConfig, i))
		}
	}

	return errors.Join(errs...)
}
