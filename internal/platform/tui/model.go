package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform"
	"github.com/vovakirdan/dino-runner/internal/registry"
)

// Default terminal size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(2)

// ConfigMsg carries a reloaded configuration into the program.
type ConfigMsg struct {
	Config config.RunnerConfig
}

// ConfigErrMsg reports a config file that failed to reload.
type ConfigErrMsg struct {
	Err error
}

// Options configures the terminal front end.
type Options struct {
	Logger        *log.Logger             // Nil discards log output
	WatchPath     string                  // Config file to hot-reload, empty disables watching
	Preset        config.DifficultyPreset // Applied to every reloaded config
	ScreenshotDir string                  // Defaults to ~/.arcade/screenshots
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	canvas   *core.ScreenCanvas
	patterns map[core.ImageID]core.Pattern
	config   core.RuntimeConfig

	keys KeyMap
	help help.Model

	logger        *log.Logger
	runs          *platform.RunLogger
	screenshotDir string

	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	status     string // Last notice shown next to the key help
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".arcade", "screenshots")
		}
	}

	game.Reset(cfg)

	if cfg.CanvasW <= 0 || cfg.CanvasH <= 0 {
		def := core.DefaultConfig()
		cfg.CanvasW, cfg.CanvasH = def.CanvasW, def.CanvasH
	}
	runnerCfg := platform.ActiveConfig(game)

	screen := core.NewScreen(defaultWidth, defaultHeight-1)
	patterns := platform.Patterns(runnerCfg)

	return Model{
		game:          game,
		screen:        screen,
		canvas:        core.NewScreenCanvas(screen, cfg.CanvasW, cfg.CanvasH, patterns),
		patterns:      patterns,
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		runs:          platform.NewRunLogger(logger, game.ID()),
		screenshotDir: shotDir,
		inputFrame:    core.NewInputFrame(),
		gameState:     game.State(),
		width:         defaultWidth,
		height:        defaultHeight,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()

	case ConfigMsg:
		return m.handleConfig(msg.Config)

	case ConfigErrMsg:
		m.logger.Warn("config reload failed", "err", msg.Err)
		m.status = "config error: " + msg.Err.Error()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.runs.Observe(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleConfig swaps in a reloaded config. Patterns for new image names are
// added without dropping the old ones, since a running session keeps its
// images until the run ends.
func (m Model) handleConfig(cfg config.RunnerConfig) (tea.Model, tea.Cmd) {
	c, ok := m.game.(platform.Configurable)
	if !ok {
		m.logger.Debug("game does not support config reload", "game", m.game.ID())
		return m, nil
	}
	c.Configure(cfg)
	for id, p := range platform.Patterns(cfg) {
		m.patterns[id] = p
	}
	m.status = "config reloaded"
	m.logger.Info("config reloaded", "game", m.game.ID(), "speed", cfg.Physics.GameSpeed)
	return m, nil
}

// layout sizes the game area to the terminal minus the footer.
func (m *Model) layout() {
	h := m.height - lipgloss.Height(m.footer())
	m.screen.Resize(m.width, core.Max(h, 1))
}

func (m Model) footer() string {
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = lipgloss.JoinHorizontal(lipgloss.Top, footer, statusStyle.Render(m.status))
	}
	return footer
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.canvas)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}
	m.status = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// Run starts the Bubble Tea program for game. When opts.WatchPath is set the
// config file is watched and every valid change is sent into the program.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if opts.WatchPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			err := platform.WatchConfig(ctx, opts.WatchPath, opts.Preset,
				func(c config.RunnerConfig) {
					p.Send(ConfigMsg{Config: c})
				},
				func(err error) {
					p.Send(ConfigErrMsg{Err: err})
				},
			)
			if err != nil {
				model.logger.Error("config watch stopped", "path", opts.WatchPath, "err", err)
			}
		}()
		model.logger.Info("watching config", "path", opts.WatchPath)
	}

	_, err := p.Run()
	return err
}
