// Package platform holds pieces shared by the terminal and window front ends.
package platform

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// RunLogger logs session transitions. Every run gets its own id so the
// start and end lines of a run can be matched up.
type RunLogger struct {
	logger *log.Logger
	gameID string
	runID  string
	runs   int
}

// NewRunLogger creates a run logger. A nil logger discards everything.
func NewRunLogger(logger *log.Logger, gameID string) *RunLogger {
	return &RunLogger{logger: logger, gameID: gameID}
}

// Observe logs the events of one step.
func (r *RunLogger) Observe(events []core.Event) {
	if r == nil || r.logger == nil {
		return
	}
	for _, ev := range events {
		switch ev.Kind {
		case core.EventRunStarted:
			r.runID = uuid.NewString()
			r.runs++
			r.logger.Info("run started", "game", r.gameID, "run", r.runID, "n", r.runs, "score", ev.Score)
		case core.EventRunEnded:
			r.logger.Info("run ended", "game", r.gameID, "run", r.runID, "score", ev.Score)
			r.runID = ""
		default:
			r.logger.Debug("unhandled event", "kind", ev.Kind.String())
		}
	}
}

// RunID returns the id of the run in progress, or "" on the splash screen.
func (r *RunLogger) RunID() string {
	return r.runID
}

// Runs returns how many runs have started.
func (r *RunLogger) Runs() int {
	return r.runs
}
