package window

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform"
	"github.com/vovakirdan/dino-runner/internal/registry"
)

// Options configures the window front end.
type Options struct {
	Logger    *log.Logger             // Nil discards log output
	AssetsDir string                  // Directory with <image>.png files, empty uses placeholders
	WatchPath string                  // Config file to hot-reload, empty disables watching
	Preset    config.DifficultyPreset // Applied to every reloaded config
	Scale     float64                 // Window size multiplier, defaults to 1
}

// Window implements ebiten.Game around a registry game. Every Update is one
// simulation step, so the tick rate is the ebiten TPS.
type Window struct {
	game    registry.Game
	config  core.RuntimeConfig
	canvas  *canvas
	assets  *assets
	logger  *log.Logger
	runs    *platform.RunLogger
	reloads chan config.RunnerConfig
	input   core.InputFrame
}

// New resets game and prepares its images.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) (*Window, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	if cfg.CanvasW <= 0 || cfg.CanvasH <= 0 {
		def := core.DefaultConfig()
		cfg.CanvasW, cfg.CanvasH = def.CanvasW, def.CanvasH
	}
	runnerCfg := platform.ActiveConfig(game)

	if opts.AssetsDir != "" && !assetsDirExists(opts.AssetsDir) {
		logger.Warn("assets directory not found, using placeholders", "dir", opts.AssetsDir)
	}
	a := newAssets(opts.AssetsDir, int(cfg.CanvasW), logger)
	a.load(runnerCfg)

	c, err := newCanvas(cfg.CanvasW, cfg.CanvasH, a.images)
	if err != nil {
		return nil, err
	}

	return &Window{
		game:    game,
		config:  cfg,
		canvas:  c,
		assets:  a,
		logger:  logger,
		runs:    platform.NewRunLogger(logger, game.ID()),
		reloads: make(chan config.RunnerConfig, 1),
		input:   core.NewInputFrame(),
	}, nil
}

// Update reads the keyboard, applies pending config reloads and steps the game.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	select {
	case cfg := <-w.reloads:
		w.applyConfig(cfg)
	default:
	}

	w.input.Clear()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.input.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		w.input.Set(core.ActionStart)
	}

	result := w.game.Step(w.input)
	w.runs.Observe(result.Events)
	return nil
}

func (w *Window) applyConfig(cfg config.RunnerConfig) {
	c, ok := w.game.(platform.Configurable)
	if !ok {
		return
	}
	w.assets.load(cfg)
	c.Configure(cfg)
	w.logger.Info("config reloaded", "game", w.game.ID(), "speed", cfg.Physics.GameSpeed)
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.dst = screen
	w.game.Render(w.canvas)
}

// Layout keeps the logical screen at the canvas size and lets ebiten scale it.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.config.CanvasW), int(w.config.CanvasH)
}

// watch forwards config reloads to Update, keeping only the newest.
func (w *Window) watch(ctx context.Context, path string, preset config.DifficultyPreset) {
	err := platform.WatchConfig(ctx, path, preset,
		func(cfg config.RunnerConfig) {
			select {
			case <-w.reloads:
			default:
			}
			w.reloads <- cfg
		},
		func(err error) {
			w.logger.Warn("config reload failed", "err", err)
		},
	)
	if err != nil {
		w.logger.Error("config watch stopped", "path", path, "err", err)
	}
}

// Run opens a window and plays game until it is closed or Escape is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	w, err := New(game, cfg, opts)
	if err != nil {
		return err
	}

	if opts.WatchPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go w.watch(ctx, opts.WatchPath, opts.Preset)
		w.logger.Info("watching config", "path", opts.WatchPath)
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	tps := w.config.TickRate
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}

	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(int(w.config.CanvasW*scale), int(w.config.CanvasH*scale))
	ebiten.SetWindowTitle(game.Title())

	w.logger.Info("window opened", "game", game.ID(), "tps", tps, "scale", scale)
	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	w.logger.Info("window closed", "game", game.ID())
	return nil
}
