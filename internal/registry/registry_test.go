package registry

import (
	"testing"

	"github.com/vovakirdan/egg-toss/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.state = core.GameState{} }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return g.state }

func register(t *testing.T, id string) {
	t.Helper()
	Register(id, func() Game { return &stubGame{id: id} })
	t.Cleanup(func() { unregister(id) })
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "zeta")
	register(t, "alpha")

	if !Exists("alpha") || Exists("missing") {
		t.Error("Exists() returned wrong result")
	}

	g, err := Create("zeta")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "zeta" {
		t.Errorf("ID() = %q, expected zeta", g.ID())
	}

	// Each call builds a fresh instance
	g2, _ := Create("zeta")
	if g == g2 {
		t.Error("Create() should not share instances")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	register(t, "zeta")
	register(t, "alpha")

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.Title != "Stub "+info.ID {
			t.Errorf("title for %s = %q", info.ID, info.Title)
		}
	}
	if len(ids) != 2 || ids[0] != "alpha" || ids[1] != "zeta" {
		t.Errorf("List() ids = %v, expected [alpha zeta]", ids)
	}
}

func TestRegisterPanics(t *testing.T) {
	register(t, "dup")

	tests := []struct {
		name string
		id   string
	}{
		{"duplicate", "dup"},
		{"empty", " "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) should panic", tc.id)
				}
			}()
			Register(tc.id, func() Game { return &stubGame{id: tc.id} })
		})
	}
}
