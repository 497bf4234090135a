// Package eggtoss implements Egg Toss: roam a camp site, collect eggs from
// nests and throw them at campers before an angry one catches you.
package eggtoss

import (
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egg-toss/internal/config"
	"github.com/vovakirdan/egg-toss/internal/core"
	"github.com/vovakirdan/egg-toss/internal/registry"
)

// Sounds receives presentation cues. Implementations must not block.
type Sounds interface {
	StartAmbient()
	StopAmbient()
	PlayThrow()
	PlayHit()
	PlayCaught()
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var (
	logger *log.Logger
	sounds Sounds
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes diagnostics from new games to l.
func SetLogger(l *log.Logger) {
	logger = l
}

// SetSounds installs the sound cue sink for new games.
func SetSounds(s Sounds) {
	sounds = s
}

// Game adapts Sim to the registry.Game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.EggTossConfig
	sim     *Sim
	atlas   *Atlas
	load    sync.Once
	rng     *rand.Rand
	sounds  Sounds
	logger  *log.Logger
}

// New creates an Egg Toss game. Sprites load in the background on the
// first Reset.
func New() *Game {
	return &Game{atlas: NewAtlas()}
}

func init() {
	registry.Register("eggtoss", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "eggtoss"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Egg Toss"
}

// Reset loads config and starts a fresh game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = logger
	if g.logger == nil {
		g.logger = discardLogger()
	}
	g.sounds = sounds
	g.load.Do(func() {
		lg, done := g.logger, g.atlas.LoadAsync()
		go func() {
			if err := <-done; err != nil {
				lg.Warn("sprites unavailable, drawing placeholders", "err", err)
			}
		}()
	})

	cfg, err := config.LoadEggToss(configPath)
	if err != nil {
		g.logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultEggTossConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.sim = NewSim(cfg, g.rng, g.logger)
	g.sim.SetViewport(runtime.ScreenW, runtime.ScreenH-hudHeight)
}

// Resize updates the viewport after a terminal resize.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if g.sim != nil {
		g.sim.SetViewport(w, h-hudHeight)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.sim.GameOver {
		g.sim.Reset()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.sim.TogglePause()
	}

	g.sim.Tick(in)
	g.dispatch(g.sim.DrainEvents())

	return core.StepResult{State: g.State()}
}

// dispatch forwards simulation events to the sound sink.
func (g *Game) dispatch(events []Event) {
	if g.sounds == nil {
		return
	}
	for _, e := range events {
		switch e {
		case EventStart:
			g.sounds.StartAmbient()
		case EventThrow:
			g.sounds.PlayThrow()
		case EventHit:
			g.sounds.PlayHit()
		case EventCaught:
			g.sounds.StopAmbient()
			g.sounds.PlayCaught()
		}
	}
}

// Render draws the game into dst.
func (g *Game) Render(dst *core.Screen) {
	g.sim.Draw(dst, g.atlas)
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score,
		Ticks:    g.sim.Ticks,
		GameOver: g.sim.GameOver,
		Paused:   g.sim.Paused,
	}
}

// Snapshot returns the simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Sim exposes the running simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}
