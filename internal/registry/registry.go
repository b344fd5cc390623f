// Package registry provides a registry of game factories.
// Games register themselves in init() functions, allowing the platforms
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// Game is the interface the platforms drive.
// Games contain pure logic with no external dependencies (no Bubble Tea, no ebiten).
// The platform handles input mapping, timing, and displaying the canvas.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "runner").
	// Used for CLI commands and log fields.
	ID() string

	// Title returns a human-readable name for display (e.g., "Dino Runner").
	Title() string

	// Reset initializes the game state.
	// The RuntimeConfig provides canvas dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Jump, Start).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state onto the canvas.
	Render(dst core.Canvas)

	// State returns the current game state (score, running, splash message).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// Registry maps game ids to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	titles    map[string]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		titles:    make(map[string]string),
	}
}

// Register adds a game factory. The title is read from a throwaway instance.
// Panics if a game with the same ID is already registered.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	r.factories[id] = f
	r.titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.factories))
	for id := range r.factories {
		result = append(result, GameInfo{ID: id, Title: r.titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by its ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

// defaultRegistry holds the games registered from init functions.
var defaultRegistry = New()

// Register adds a game factory to the default registry.
func Register(id string, f Factory) { defaultRegistry.Register(id, f) }

// List returns the games in the default registry.
func List() []GameInfo { return defaultRegistry.List() }

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) { return defaultRegistry.Create(id) }

// Exists checks the default registry for a game ID.
func Exists(id string) bool { return defaultRegistry.Exists(id) }
