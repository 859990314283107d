package frogger

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateFault    GameStateType = "fault"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Score       int
	Crossings   int
	Deaths      int
	PlayerX     float64
	PlayerY     float64
	PlayerSpeed float64
	LastOutcome Outcome
	Obstacles   int
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.fault != nil:
		state = StateFault
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		Crossings:   g.crossings,
		Deaths:      g.deaths,
		LastOutcome: g.last.Outcome,
		State:       state,
	}
	if g.world != nil {
		p := g.world.Player()
		s.PlayerX = p.X
		s.PlayerY = p.Y
		s.PlayerSpeed = p.Speed
		s.Obstacles = g.world.ObstacleCount()
	}
	return s
}
