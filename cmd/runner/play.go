package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/registry"
)

var flagScreenshotDir string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to the runner.

Controls:
  S          - Start a run from the splash screen
  Space      - Jump
  Ctrl+S     - Save a text screenshot
  ?          - Toggle the key help
  Q/Esc      - Quit

Difficulty options:
  classic - Keep the configured game speed
  easy    - Game speed 4
  normal  - Game speed 5
  hard    - Game speed 7

Logs are discarded unless --log-file is set, since the game owns the terminal.

Examples:
  runner play
  runner play --difficulty easy
  runner play --seed 42
  runner play --config ./my-runner.yaml --watch --log-file runner.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "", "Directory for Ctrl+S screenshots (default ~/.arcade/screenshots)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'runner list' to see available games", gameID)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs a terminal, try 'runner window'")
	}
	if err := loadConfig(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil)
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

	if err := tui.Run(game, cfg, tui.Options{
		Logger:        logger,
		WatchPath:     watchPath(logger),
		Preset:        preset,
		ScreenshotDir: flagScreenshotDir,
	}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
