package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagFPS, flagSeed = 60, 0
	flagConfig, flagDifficulty = "", ""
	flagWatch, flagDebug, flagDefault = false, false, false
	flagLogFile = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "runner") || !strings.Contains(out, "Dino Runner") {
		t.Errorf("list output missing the runner:\n%s", out)
	}
}

func TestConfigDefault(t *testing.T) {
	out, err := execute(t, "config", "--default")
	if err != nil {
		t.Fatalf("config --default failed: %v", err)
	}
	if out != string(config.DefaultYAML()) {
		t.Errorf("config --default did not print the embedded file:\n%s", out)
	}
}

func TestConfigAppliesDifficulty(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "hard")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.Contains(out, "game_speed: 7") || !strings.Contains(out, "# difficulty: hard") {
		t.Errorf("hard preset not applied:\n%s", out)
	}
}

func TestUnknownDifficultyFails(t *testing.T) {
	if _, err := execute(t, "config", "--difficulty", "impossible"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestMissingConfigFails(t *testing.T) {
	if _, err := execute(t, "config", "--config", "/nonexistent/runner.yaml"); err == nil {
		t.Error("missing --config file should fail")
	}
}

func TestPlayUnknownGame(t *testing.T) {
	_, err := execute(t, "play", "tetris")
	if err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("expected unknown game error, got %v", err)
	}
}
