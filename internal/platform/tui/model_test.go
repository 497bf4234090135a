package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/egg-toss/internal/core"
	"github.com/vovakirdan/egg-toss/internal/storage"
)

// stubGame ends after overTick ticks with a fixed score.
type stubGame struct {
	state    core.GameState
	frames   []core.InputFrame
	resets   int
	resized  [2]int
	overTick int
	score    int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if g.state.GameOver {
		if in.Has(core.ActionRestart) {
			g.state = core.GameState{}
		}
		return core.StepResult{State: g.state}
	}
	g.state.Ticks++
	if g.overTick > 0 && g.state.Ticks >= g.overTick {
		g.state.GameOver = true
		g.state.Score = g.score
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub", core.ColorGreen) }
func (g *stubGame) State() core.GameState     { return g.state }
func (g *stubGame) Resize(w, h int)           { g.resized = [2]int{w, h} }

func (g *stubGame) lastFrame() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newModel(g *stubGame, opts Options) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
	m := NewModel(g, cfg, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m = update(t, m, TickMsg{})
	}
	return m
}

func TestModelHeldDirectionReachesGame(t *testing.T) {
	g := &stubGame{}
	m := newModel(g, Options{HoldTicks: 2})

	m = update(t, m, keyMsg("left"))
	m = tick(t, m, 1)
	if !g.lastFrame().Has(core.ActionLeft) {
		t.Fatal("left should be held on the first tick")
	}

	m = tick(t, m, 2)
	if g.lastFrame().Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestModelQuit(t *testing.T) {
	m := newModel(&stubGame{}, Options{})

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if v := next.View(); v != "" {
		t.Errorf("View after quit = %q, expected empty", v)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	g := &stubGame{overTick: 3, score: 7}
	m := newModel(g, Options{Store: store, Difficulty: "hard"})

	m = tick(t, m, 10)

	runs, err := store.TopRuns("stub", 0)
	if err != nil {
		t.Fatalf("TopRuns() error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Score != 7 || runs[0].Ticks != 3 || runs[0].Difficulty != "hard" {
		t.Errorf("saved run = %+v", runs[0])
	}

	res := m.Results()
	if res == nil {
		t.Fatal("results should be set after game over")
	}
	if !res.Saved || !res.NewBest || res.Best != 7 {
		t.Errorf("results = %+v", *res)
	}
	if len(res.Top) != 1 || res.Top[0].Score != 7 {
		t.Errorf("top runs = %+v, expected the saved run", res.Top)
	}
	if v := m.View(); !strings.Contains(v, "You got caught!") || !strings.Contains(v, "new best!") {
		t.Errorf("results panel missing from view:\n%s", v)
	}
}

func TestModelZeroScoreNotSaved(t *testing.T) {
	store := openStore(t)
	g := &stubGame{overTick: 2}
	m := newModel(g, Options{Store: store})

	m = tick(t, m, 5)

	if best, _ := store.HighScore("stub"); best != 0 {
		t.Errorf("zero-score run should not be stored, best = %d", best)
	}
	if res := m.Results(); res == nil || res.Saved {
		t.Errorf("results = %+v, expected unsaved summary", res)
	}
}

func TestModelRestartRecordsNextRun(t *testing.T) {
	store := openStore(t)
	g := &stubGame{overTick: 2, score: 4}
	m := newModel(g, Options{Store: store})

	m = tick(t, m, 3)
	m = update(t, m, keyMsg("r"))
	m = tick(t, m, 1)
	if m.Results() != nil {
		t.Fatal("results should clear after restart")
	}

	g.score = 2
	m = tick(t, m, 3)

	runs, _ := store.TopRuns("stub", 0)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if res := m.Results(); res == nil || res.NewBest || res.Best != 4 {
		t.Errorf("second run results = %+v, expected best 4 without new best", res)
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &stubGame{overTick: 1, score: 3}
	m := newModel(g, Options{})

	m = tick(t, m, 2)
	if res := m.Results(); res == nil || res.Best != 3 || res.Saved {
		t.Errorf("results = %+v", res)
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	g := &stubGame{}
	m := newModel(g, Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 50})
	if g.resized != [2]int{30, 50} {
		t.Errorf("Resize got %v, expected [30 50]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resize should not reset a resizable game, resets = %d", g.resets)
	}
	if m.screen.Width() != 30 || m.screen.Height() != 50 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewRendersGame(t *testing.T) {
	m := newModel(&stubGame{}, Options{})
	m = tick(t, m, 1)

	if v := m.View(); !strings.HasPrefix(v, "stub") {
		t.Errorf("View should start with the game frame, got %q", v[:min(len(v), 20)])
	}
}
