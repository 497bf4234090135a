package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egg-toss/internal/core"
	"github.com/vovakirdan/egg-toss/internal/registry"
	"github.com/vovakirdan/egg-toss/internal/storage"
)

// DefaultHoldTicks covers the gap between a key press and the terminal's
// first auto-repeat at 60 ticks per second.
const DefaultHoldTicks = 30

// Options configures a play session.
type Options struct {
	Store      *storage.Store // Optional; runs are not recorded when nil
	Logger     *log.Logger
	Difficulty string // Preset name stored with each run
	HoldTicks  int    // Ticks a direction stays held after its last press
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	input      *HeldInput
	gameState  core.GameState
	results    *RunSummary
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a model for game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = DefaultHoldTicks
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:   opts,
		config: cfg,
		keys:   NewKeyMapper(),
		input:  NewHeldInput(opts.HoldTicks),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"size", [2]int{m.config.ScreenW, m.config.ScreenH})
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Map key to action
	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action)
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can't follow a resize start over
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	// Run game simulation
	result := m.game.Step(m.input.Frame())
	m.gameState = result.State

	// Restarted: arm the next save
	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.results = nil
		m.input.Release()
	}
	// Save run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.results = m.recordRun()
		m.scoreSaved = true
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run and builds the results panel.
// Storage failures are logged and never end the session.
func (m Model) recordRun() *RunSummary {
	summary := &RunSummary{
		Score:    m.gameState.Score,
		Ticks:    m.gameState.Ticks,
		TickRate: m.config.TickRate,
		Best:     m.gameState.Score,
	}
	if m.opts.Store == nil {
		return summary
	}

	id := m.game.ID()
	prevBest, err := m.opts.Store.HighScore(id)
	if err != nil {
		m.opts.Logger.Warn("cannot read high score", "game", id, "err", err)
	}

	if m.gameState.Score > 0 {
		_, err := m.opts.Store.SaveRun(storage.Run{
			GameID:     id,
			Score:      m.gameState.Score,
			Ticks:      m.gameState.Ticks,
			Difficulty: m.opts.Difficulty,
		})
		if err != nil {
			m.opts.Logger.Warn("cannot save run", "game", id, "err", err)
		} else {
			summary.Saved = true
		}
	}

	top, err := m.opts.Store.TopRuns(id, resultsTopRuns)
	if err != nil {
		m.opts.Logger.Warn("cannot load top runs", "game", id, "err", err)
	}
	summary.Top = top

	summary.Best = max(prevBest, m.gameState.Score)
	summary.NewBest = m.gameState.Score > prevBest
	m.opts.Logger.Info("run finished", "game", id, "score", summary.Score,
		"ticks", summary.Ticks, "best", summary.Best)
	return summary
}

// View renders the current frame, or the results panel after a game over.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.gameState.GameOver && m.results != nil {
		return lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center, m.results.View())
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Results returns the summary of the last finished run, or nil while playing.
func (m Model) Results() *RunSummary {
	return m.results
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
