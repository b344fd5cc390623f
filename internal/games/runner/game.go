// Package runner implements a side-scrolling obstacle-dodge runner.
// The player jumps over a single recycled obstacle while four parallax
// layers scroll behind; a collision sends the session back to the splash
// screen with the score of the finished run.
package runner

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/registry"
)

// Phase is the session state.
type Phase int

const (
	PhaseSplash  Phase = iota // Initial state and after every collision
	PhaseRunning              // Gameplay
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Splash texts
const (
	SplashTitle  = "Dinosaur runner"
	IntroMessage = "'Space' to jump!"
	StartPrompt  = "Press 'S' to start the game!"
)

// Splash panel layout in canvas units
var (
	splashPanel  = core.NewRect(100, 50, 300, 150)
	splashRadius = 10.0
)

// Game implements the runner session: all entities plus score and splash
// state. Step is the only mutator.
type Game struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	background Background
	player     *Player
	obstacle   *Obstacle
	ticker     *ScoreTicker

	phase   Phase
	score   int
	message string // Splash status line

	pending *config.RunnerConfig // Config waiting for the next splash screen
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown presets fall back to the configured speed.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyClassic
	}
	difficultyPreset = p
}

// New creates a new runner instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Runner"
}

// Reset initializes the session: splash screen, score zero, fresh entities.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	config.ApplyRunnerPreset(&cfg, difficultyPreset)

	g.ResetWith(runtime, cfg)
}

// ResetWith initializes the session with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.RunnerConfig) {
	if runtime.CanvasW <= 0 || runtime.CanvasH <= 0 {
		def := core.DefaultConfig()
		runtime.CanvasW, runtime.CanvasH = def.CanvasW, def.CanvasH
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.build(cfg)

	g.phase = PhaseSplash
	g.score = 0
	g.message = IntroMessage
	g.pending = nil
}

// build creates the entities for cfg. Score and splash state are untouched.
func (g *Game) build(cfg config.RunnerConfig) {
	g.cfg = cfg
	g.background = NewBackground(cfg.Layers, g.runtime.CanvasW)
	g.player = NewPlayer(cfg)
	g.obstacle = NewObstacle(cfg, g.runtime.CanvasW, g.runtime.CanvasH, g.rng)
	g.ticker = NewScoreTicker(cfg.Score.Interval)
}

// Configure swaps in a new configuration. It takes effect immediately on the
// splash screen and otherwise when the current run ends.
func (g *Game) Configure(cfg config.RunnerConfig) {
	if g.phase == PhaseSplash {
		g.build(cfg)
		g.pending = nil
		return
	}
	g.pending = &cfg
}

// Step advances the session by one frame: input, score, background, then
// gameplay when running.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.phase {
	case PhaseSplash:
		if in.Has(core.ActionStart) {
			g.phase = PhaseRunning
			events = append(events, core.Event{Kind: core.EventRunStarted, Score: g.score})
		}
	case PhaseRunning:
		if in.Has(core.ActionJump) {
			g.player.StartJump()
		}
	}

	if fired := g.ticker.Advance(g.runtime.FrameDuration()); fired > 0 {
		if g.phase == PhaseRunning || g.cfg.Score.TickOnSplash {
			g.score += fired
		}
	}

	speed := g.cfg.Physics.GameSpeed
	g.background.Update(speed)

	if g.phase == PhaseRunning {
		if g.player.CollidesWith(g.obstacle) {
			// Entities do not move on the frame that ends the run
			events = append(events, g.endRun())
		} else {
			g.player.Advance()
			g.obstacle.Advance(speed)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// endRun freezes the score into the splash message and resets the entities.
func (g *Game) endRun() core.Event {
	final := g.score

	g.phase = PhaseSplash
	g.message = fmt.Sprintf("Score: %d points.", final)
	g.score = 0
	g.player.Reset()
	g.obstacle.Respawn()

	if g.pending != nil {
		g.build(*g.pending)
		g.pending = nil
	}

	return core.Event{Kind: core.EventRunEnded, Score: final}
}

// Render draws the current frame: sky, parallax layers, then either the
// splash panel or the player, obstacle and score.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()
	dst.Fill(core.ColorSky)
	g.background.Draw(dst)

	if g.phase == PhaseSplash {
		g.drawSplash(dst)
		return
	}

	g.player.Draw(dst)
	g.obstacle.Draw(dst)
	dst.DrawText(10, 20, 18, core.ColorAmber, fmt.Sprintf("Score: %d", g.score))
}

// drawSplash renders the info panel with the title, status line and prompt.
func (g *Game) drawSplash(dst core.Canvas) {
	dst.FillRoundRect(splashPanel, splashRadius, core.ColorForest)
	dst.DrawText(160, 90, 24, core.ColorAmber, SplashTitle)
	dst.DrawText(160, 130, 24, core.ColorAmber, g.message)
	dst.DrawText(110, 170, 24, core.ColorAmber, StartPrompt)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Running: g.phase == PhaseRunning,
		Message: g.message,
	}
}

// Phase returns the session state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Config returns the configuration currently in effect.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
