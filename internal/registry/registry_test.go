package registry

import (
	"testing"

	"github.com/vovakirdan/dino-runner/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                           { return s.id }
func (s stubGame) Title() string                        { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)             {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(core.Canvas)                   {}
func (s stubGame) State() core.GameState                { return core.GameState{} }

func TestRegistryCreateAndList(t *testing.T) {
	r := New()
	r.Register("b", func() Game { return stubGame{"b"} })
	r.Register("a", func() Game { return stubGame{"a"} })

	list := r.List()
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("List() = %+v, expected sorted a, b", list)
	}
	if list[0].Title != "Stub a" {
		t.Errorf("title = %q, expected %q", list[0].Title, "Stub a")
	}

	g, err := r.Create("b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "b" {
		t.Errorf("created game id = %q", g.ID())
	}

	if !r.Exists("a") || r.Exists("c") {
		t.Error("Exists() returned wrong result")
	}
	if _, err := r.Create("c"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := New()
	r.Register("a", func() Game { return stubGame{"a"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	r.Register("a", func() Game { return stubGame{"a"} })
}
