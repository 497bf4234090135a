package eggtoss

// GameStateType names the overall state of a game.
type GameStateType string

const (
	StateWaiting  GameStateType = "waiting" // Before the first tick
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateRotate   GameStateType = "rotate" // Viewport not in landscape
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the simulation for determinism testing.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       int
	Score      int
	State      GameStateType
	SpawnTimer int

	PlayerX, PlayerY float64
	PlayerDir        Direction
	PlayerEggs       int

	CameraX, CameraY float64

	// Each NPC is 5 values: X, Y, Angry, Hit, WalkStepsLeft
	NPCCount int
	NPCData  []float64

	// Each egg is 4 values: X, Y, VX, VY
	EggCount int
	EggData  []float64

	PropCount int
}

// Snapshot returns the current simulation state.
func (s *Sim) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.GameOver:
		state = StateGameOver
	case !s.Landscape:
		state = StateRotate
	case s.Paused:
		state = StatePaused
	case !s.Started:
		state = StateWaiting
	}

	npcData := make([]float64, 0, len(s.NPCs)*5)
	for _, n := range s.NPCs {
		npcData = append(npcData, n.X, n.Y, boolF(n.Angry), boolF(n.Hit), float64(n.WalkStepsLeft))
	}

	eggData := make([]float64, 0, len(s.Eggs)*4)
	for _, e := range s.Eggs {
		eggData = append(eggData, e.X, e.Y, e.VX, e.VY)
	}

	return Snapshot{
		Tick:       s.Ticks,
		Score:      s.Score,
		State:      state,
		SpawnTimer: s.SpawnTimer,
		PlayerX:    s.Player.X,
		PlayerY:    s.Player.Y,
		PlayerDir:  s.Player.Dir,
		PlayerEggs: s.Player.Eggs,
		CameraX:    s.Camera.X,
		CameraY:    s.Camera.Y,
		NPCCount:   len(s.NPCs),
		NPCData:    npcData,
		EggCount:   len(s.Eggs),
		EggData:    eggData,
		PropCount:  len(s.Props),
	}
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
