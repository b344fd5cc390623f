package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the runner configuration as YAML after the search order and the
difficulty preset are applied.

Search order:
  --config <path>
  ~/.arcade/configs/runner.yaml
  ./configs/runner.yaml
  embedded default

Examples:
  runner config
  runner config --difficulty hard
  runner config --default > ~/.arcade/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the embedded default configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	config.ApplyRunnerPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	source := config.Locate(flagConfig)
	if source == "" {
		source = "embedded default"
	}
	fmt.Fprintf(out, "# source: %s\n# difficulty: %s\n", source, preset)
	_, err = out.Write(data)
	return err
}
