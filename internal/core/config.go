package core

// RuntimeConfig is what the platform tells a game at Reset.
type RuntimeConfig struct {
	ScreenW  int // terminal columns available to the game
	ScreenH  int // terminal rows available to the game
	TickRate int // ticks per second
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the status the platform needs after every tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState

	// Err is a fault the simulation cannot recover from.
	// The platform stops the loop and reports it.
	Err error
}
