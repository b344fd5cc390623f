// runner is a side-scrolling dinosaur runner for the terminal and the desktop.
//
// Usage:
//
//	runner play [game]     - Play in the terminal (default game: runner)
//	runner window [game]   - Play in a desktop window
//	runner list            - List available games
//	runner config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Custom runner config YAML
//	--difficulty <preset>  - classic, easy, normal or hard
//	--watch                - Reload the config file when it changes
//	--log-file <path>      - Write logs to a file
//	--debug                - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/games/runner"
)

const defaultGame = "runner"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Dino Runner - jump over obstacles in your terminal or a window",
	Long: `Dino Runner is a side-scrolling runner: a dinosaur jumps over an
endless stream of obstacles while the landscape scrolls behind it.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  runner play
  runner play --difficulty hard
  runner window --assets ./assets --scale 2
  runner play --config ./my-runner.yaml --watch
  runner config --default > ~/.arcade/configs/runner.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		runner.SetConfigPath(flagConfig)
		runner.SetDifficultyPreset(string(preset))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: classic, easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Logs go to --log-file when set and
// otherwise to fallback; a nil fallback discards them. The returned func
// closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "runner",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// gameArg returns the requested game id, defaulting to the runner.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}

// watchPath returns the config file to watch, or "" when watching is off or
// only the embedded default is in use.
func watchPath(logger *log.Logger) string {
	if !flagWatch {
		return ""
	}
	path := config.Locate(flagConfig)
	if path == "" {
		logger.Warn("--watch ignored: no config file found, using embedded defaults")
	}
	return path
}

// loadConfig checks that the selected config loads before a session starts.
func loadConfig() error {
	if _, err := config.LoadRunner(flagConfig); err != nil {
		return err
	}
	return nil
}
