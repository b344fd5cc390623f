package platform

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/core"
)

func TestRunLoggerTracksRuns(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunLogger(log.New(&buf), "runner")

	r.Observe([]core.Event{{Kind: core.EventRunStarted, Score: 3}})
	id := r.RunID()
	if id == "" {
		t.Fatal("run id should be set after a run starts")
	}

	r.Observe([]core.Event{{Kind: core.EventRunEnded, Score: 42}})
	if r.RunID() != "" {
		t.Error("run id should clear when the run ends")
	}
	if r.Runs() != 1 {
		t.Errorf("Runs() = %d, expected 1", r.Runs())
	}

	out := buf.String()
	if !strings.Contains(out, "run started") || !strings.Contains(out, "run ended") {
		t.Errorf("missing log lines:\n%s", out)
	}
	if strings.Count(out, id) != 2 {
		t.Errorf("both lines should carry run id %s:\n%s", id, out)
	}
	if !strings.Contains(out, "score=42") {
		t.Errorf("final score not logged:\n%s", out)
	}
}

func TestRunLoggerNilSafe(t *testing.T) {
	var r *RunLogger
	r.Observe([]core.Event{{Kind: core.EventRunStarted}})

	NewRunLogger(nil, "runner").Observe([]core.Event{{Kind: core.EventRunEnded}})
}
