package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform/window"
	"github.com/vovakirdan/dino-runner/internal/registry"
)

var (
	flagAssets string
	flagScale  float64
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a 500x300 window and play. The game defaults to the runner.

Images are read from --assets as <image>.png (player.png, obstacle.png,
ground.png, layer1.png, layer2.png, layer3.png by default). Missing files
are replaced with generated placeholders.

Controls:
  S          - Start a run from the splash screen
  Space      - Jump
  Q/Esc      - Quit

Examples:
  runner window
  runner window --assets ./assets --scale 2
  runner window --difficulty hard --debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with PNG images")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'runner list' to see available games", gameID)
	}
	if err := loadConfig(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	preset, _ := config.ParsePreset(flagDifficulty)
	logger.Info("starting", "game", gameID, "fps", flagFPS, "seed", flagSeed, "difficulty", preset)

	if err := window.Run(game, cfg, window.Options{
		Logger:    logger,
		AssetsDir: flagAssets,
		WatchPath: watchPath(logger),
		Preset:    preset,
		Scale:     flagScale,
	}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
