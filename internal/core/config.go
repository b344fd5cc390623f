package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the canvas and for deterministic simulation.
type RuntimeConfig struct {
	CanvasW  float64 // Drawing surface width in canvas units
	CanvasH  float64 // Drawing surface height in canvas units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:  500,
		CanvasH:  300,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the simulated time covered by one Step.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int    // Current score counter
	Running bool   // False while the splash screen is shown
	Message string // Splash status line (hint or last-run summary)
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventRunStarted EventKind = iota + 1 // Splash -> Running
	EventRunEnded                        // Running -> Splash after a collision
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "run_started"
	case EventRunEnded:
		return "run_ended"
	default:
		return "unknown"
	}
}

// Event is emitted by Step so platforms can log or react to transitions.
type Event struct {
	Kind  EventKind
	Score int // Final score for EventRunEnded
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
