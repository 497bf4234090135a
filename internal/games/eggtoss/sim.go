package eggtoss

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egg-toss/internal/config"
	"github.com/vovakirdan/egg-toss/internal/core"
)

// Sim owns all mutable game state. Every update function takes the Sim by
// reference; there is no package-level game state.
type Sim struct {
	cfg        config.EggTossConfig
	rng        core.Rand
	logger     *log.Logger
	difficulty *config.DifficultyManager

	Props  []Prop
	Player Player
	NPCs   []NPC
	Eggs   []Egg
	Report PlacementReport

	Camera     Camera
	PrevCamera Camera // Camera as of the start of the current tick
	zoomSet    bool

	Score      int
	Ticks      int
	SpawnTimer int

	GameOver  bool
	Started   bool
	Paused    bool
	Landscape bool

	events []Event
}

// NewSim creates a simulation and generates its first world.
// A nil logger discards output.
func NewSim(cfg config.EggTossConfig, rng core.Rand, logger *log.Logger) *Sim {
	if logger == nil {
		logger = discardLogger()
	}
	s := &Sim{
		cfg:        cfg,
		rng:        rng,
		logger:     logger,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		Landscape:  true,
	}
	s.Reset()
	return s
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// Config returns the configuration the simulation was built with.
func (s *Sim) Config() config.EggTossConfig {
	return s.cfg
}

// Bounds returns the world rectangle.
func (s *Sim) Bounds() core.Rect {
	return core.NewRect(0, 0, s.cfg.World.Width, s.cfg.World.Height)
}

// Reset clears score and the game-over latch, then regenerates the world and
// re-places the player. Viewport and zoom are kept.
func (s *Sim) Reset() {
	gen := NewGenerator(s.cfg.World, s.rng, s.logger)

	// Regenerate the world
	s.Report = PlacementReport{}
	s.Props = gen.Props(&s.Report)

	// Re-place the player, empty-handed
	pc := s.cfg.Player
	s.Player = Player{
		Rect:    gen.PlayerSpawn(pc.Size, pc.Size, s.Props, &s.Report),
		Speed:   pc.Speed,
		Dir:     DirDown,
		Eggs:    0,
		MaxEggs: pc.MaxEggs,
	}
	s.Player.Sprite = playerSprite(s.Player)

	// Reset entities and counters
	s.NPCs = NPCsForTents(s.Props, s.cfg.NPC.Size)
	s.Eggs = nil
	s.Score = 0
	s.Ticks = 0
	s.GameOver = false
	s.Started = false
	s.Paused = false
	s.SpawnTimer = core.RandRange(s.rng, s.cfg.NPC.SpawnTicksMin, s.cfg.NPC.SpawnTicksMax)
	s.events = s.events[:0]

	// Snap the camera so the first frame doesn't pan
	s.Camera.Follow(s.Player.Rect, s.Bounds())
	s.PrevCamera = s.Camera
}

// SetViewport records the viewport size in cells. The zoom is picked on the
// first call and kept for the life of the Sim.
func (s *Sim) SetViewport(w, h int) {
	s.Camera.ViewW = w
	s.Camera.ViewH = h
	s.Landscape = w > h
	if !s.zoomSet {
		s.Camera.Zoom = ZoomForViewport(s.cfg.Camera, w)
		s.zoomSet = true
	}
	s.Camera.Follow(s.Player.Rect, s.Bounds())
	s.PrevCamera.ViewW, s.PrevCamera.ViewH = w, h
	if s.PrevCamera.Zoom == 0 {
		s.PrevCamera = s.Camera
	}
}

// Tick advances one frame. Order: throw, player, NPCs, eggs, camera, spawn
// timer. Nothing runs while paused, over, or outside landscape.
func (s *Sim) Tick(in core.InputFrame) {
	// Props render with last frame's camera
	s.PrevCamera = s.Camera

	// Gate: nothing moves while paused, over, or in portrait
	if !s.Landscape || s.Paused || s.GameOver {
		return
	}

	// First live tick starts the ambient audio
	if !s.Started {
		s.Started = true
		s.emit(EventStart)
	}
	s.Ticks++

	if in.Has(core.ActionThrow) {
		s.Throw()
	}

	// Update entities
	s.updatePlayer(in)
	s.updateNPCs()
	s.updateEggs()
	s.Camera.Follow(s.Player.Rect, s.Bounds())
	s.updateSpawner()
}

// TogglePause flips the pause flag. It has no effect after game over.
func (s *Sim) TogglePause() {
	if s.GameOver {
		return
	}
	s.Paused = !s.Paused
}

// endGame latches game over. Only the first call has side effects.
func (s *Sim) endGame() {
	if s.GameOver {
		return
	}
	s.GameOver = true
	s.logger.Info("player caught", "score", s.Score, "ticks", s.Ticks)
	s.emit(EventCaught)
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}

// DrainEvents returns events emitted since the last drain.
func (s *Sim) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}
