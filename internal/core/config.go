package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns the settings used when the terminal size is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  100,
		ScreenH:  30,
		TickRate: 60,
	}
}

// GameState is the part of a game the platform needs after each tick.
type GameState struct {
	Score    int
	Ticks    int  // Ticks simulated since the round started
	GameOver bool // Latched until the next restart
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
