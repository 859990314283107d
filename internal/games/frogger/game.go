// Package frogger implements a Frogger-style lane crossing game.
// The player hops across a road and a river; rows of obstacles scroll
// past at fixed speeds and wrap around seamlessly.
package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// Layout in screen cells.
const (
	CellsPerGrid = 4 // Screen columns per grid unit
	hudHeight    = 1
)

// Game implements the Frogger game logic on top of a World.
type Game struct {
	world     *World
	cfg       config.FroggerConfig
	score     int
	crossings int
	deaths    int
	best      int // stored high score, shown in the HUD
	gameOver  bool
	paused    bool
	tick      uint64
	last      TickResult
	fault     error // Fatal engine error, reported on every Step
}

// configPath stores the custom config path set via CLI
var configPath string
var speedPreset config.Preset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the speed preset used by the next Reset.
func SetPreset(preset string) {
	switch config.Preset(preset) {
	case config.PresetCalm, config.PresetRush, config.PresetClassic:
		speedPreset = config.Preset(preset)
	default:
		speedPreset = "" // Use config speeds
	}
}

// New creates a new Frogger game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "frogger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset initializes or restarts the game. The world is laid out in its own
// units, so the runtime screen size only matters to Render.
func (g *Game) Reset(core.RuntimeConfig) {
	// Load game config
	cfg, err := config.LoadFrogger(configPath)
	if err != nil {
		cfg = config.DefaultFroggerConfig()
	}
	if speedPreset != "" {
		config.ApplyPreset(&cfg, speedPreset)
	}

	g.ResetWithConfig(cfg)
}

// SetBest sets the stored high score shown next to the score. It survives Reset.
func (g *Game) SetBest(score int) {
	g.best = score
}

// ResetWithConfig restarts the game on an explicit configuration.
func (g *Game) ResetWithConfig(cfg config.FroggerConfig) {
	g.cfg = cfg
	g.score = 0
	g.crossings = 0
	g.deaths = 0
	g.gameOver = false
	g.paused = false
	g.tick = 0
	g.last = TickResult{}

	g.world, g.fault = BuildWorld(cfg)
}

// BuildWorld converts a validated config into a World.
func BuildWorld(cfg config.FroggerConfig) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("frogger: %w", err)
	}

	grid := cfg.World.Grid
	playerColor, err := config.ColorByName(cfg.Player.Color)
	if err != nil {
		return nil, err
	}

	lanes := make([]Lane, len(cfg.Lanes))
	for i, lc := range cfg.Lanes {
		lanes[i].Terrain = ParseTerrain(lc.Terrain)
		if lc.Pattern == nil {
			continue
		}

		shape, err := ParseShape(lc.Pattern.Shape)
		if err != nil {
			return nil, fmt.Errorf("frogger: lane %d: %w", i, err)
		}
		color, err := config.ColorByName(lc.Pattern.Color)
		if err != nil {
			return nil, fmt.Errorf("frogger: lane %d: %w", i, err)
		}
		p, err := NewLanePattern(lc.Pattern.Spacing, lc.Pattern.Size*grid, shape, color, lc.Pattern.Speed)
		if err != nil {
			return nil, fmt.Errorf("frogger: lane %d: %w", i, err)
		}
		lanes[i].Pattern = p
	}

	spawnX := float64(cfg.Player.SpawnCol) * grid
	return NewWorld(Settings{
		Grid:        grid,
		GridGap:     cfg.World.GridGap,
		Width:       cfg.World.Width(),
		Height:      cfg.World.Height(),
		Spawn:       Point{X: spawnX, Y: float64(cfg.Player.SpawnRow) * grid},
		Respawn:     Point{X: spawnX, Y: float64(cfg.Player.RespawnRow) * grid},
		PlayerColor: playerColor,
		GoalEvery:   cfg.Gameplay.GoalEvery,
	}, lanes)
}

// Step advances the game by one tick.
// Hops queued since the previous tick are applied before the world moves.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.fault != nil {
		return core.StepResult{State: g.State(), Err: g.fault}
	}
	if g.world == nil || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Moves {
		if dir, ok := DirectionFromAction(a); ok {
			g.world.Move(dir)
		}
	}

	res, err := g.world.Tick(1)
	if err != nil {
		g.fault = err
		g.gameOver = true
		return core.StepResult{State: g.State(), Err: err}
	}
	g.tick++
	g.last = res

	switch res.Outcome {
	case OutcomeHit, OutcomeDrowned:
		g.deaths++
	case OutcomeScored:
		g.crossings++
		g.score += g.cfg.Gameplay.CrossingPoints
		g.world.Respawn()
		if g.world.BoardFull() {
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Crossings returns how many goal slots were filled this game.
func (g *Game) Crossings() int {
	return g.crossings
}

// Deaths returns how many times the player was hit or drowned.
func (g *Game) Deaths() int {
	return g.deaths
}

// World exposes the simulation for inspection.
func (g *Game) World() *World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register("frogger", func() registry.Game {
		return New()
	})
}
