package frogger

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ErrInvalidWorld is wrapped by world construction failures.
var ErrInvalidWorld = errors.New("invalid world")

// Direction is a single hop requested by the player.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// DirectionFromAction maps a platform action to a hop.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirUp, false
	}
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Player is the frog. Speed is the speed of the log it rides, 0 on land.
type Player struct {
	X     float64
	Y     float64
	Speed float64
}

// Riding reports whether the player is carried by an obstacle.
func (p Player) Riding() bool {
	return p.Speed != 0
}

// Box returns the player's collision box, inset by the grid gap on the right.
func (p Player) Box(grid, gap float64) core.RectF {
	return core.NewRectF(p.X, p.Y, grid-gap, grid)
}

// ScoredPlayer marks a filled goal slot. It never changes once created.
type ScoredPlayer struct {
	X     float64
	Y     float64
	Size  float64
	Shape Shape
	Color core.Color
	Slot  int
}

// Settings holds the world geometry and spawn rules.
type Settings struct {
	Grid        float64 // Lane height and hop length
	GridGap     float64 // Collision inset and visual lane gap
	Width       float64
	Height      float64
	Spawn       Point // Start position, also used after a road hit
	Respawn     Point // Position after drowning or reaching home
	PlayerColor core.Color
	GoalEvery   int // Every Nth column of the goal row is a goal slot
}

// Lane describes one row before its obstacles are built.
type Lane struct {
	Terrain Terrain
	Pattern *LanePattern // nil for a safe zone
}

// World is the complete game state: rows, the player and filled goals.
// It is owned by a single game loop and is not safe for concurrent use.
type World struct {
	settings Settings
	rows     []Row
	player   Player
	scored   []ScoredPlayer
}

// NewWorld validates the settings and builds every row's obstacles.
func NewWorld(s Settings, lanes []Lane) (*World, error) {
	if err := s.validate(len(lanes)); err != nil {
		return nil, err
	}

	w := &World{
		settings: s,
		rows:     make([]Row, len(lanes)),
	}
	for i, lane := range lanes {
		w.rows[i] = newRow(i, s.Grid, s.Width, lane.Terrain, lane.Pattern)
	}
	w.player = Player{X: s.Spawn.X, Y: s.Spawn.Y}
	w.clampPlayer()
	return w, nil
}

func (s Settings) validate(rows int) error {
	if s.Grid <= 0 {
		return fmt.Errorf("frogger: grid must be positive, got %v: %w", s.Grid, ErrInvalidWorld)
	}
	if s.GridGap < 0 || s.GridGap >= s.Grid {
		return fmt.Errorf("frogger: grid gap %v outside [0, %v): %w", s.GridGap, s.Grid, ErrInvalidWorld)
	}
	if s.Width < s.Grid || s.Height < 3*s.Grid {
		return fmt.Errorf("frogger: world %vx%v too small for grid %v: %w", s.Width, s.Height, s.Grid, ErrInvalidWorld)
	}
	if s.GoalEvery < 1 {
		return fmt.Errorf("frogger: goal spacing must be positive, got %d: %w", s.GoalEvery, ErrInvalidWorld)
	}

	// Every row the player can be clamped into must exist.
	lowest := rowAt(s.Height-2*s.Grid, s.Grid)
	if lowest >= rows {
		return fmt.Errorf("frogger: %d rows but the player can reach row %d: %w", rows, lowest, ErrInvalidWorld)
	}
	for _, p := range []Point{s.Spawn, s.Respawn} {
		if r := rowAt(p.Y, s.Grid); r < 0 || r >= rows {
			return fmt.Errorf("frogger: spawn (%v, %v) is on row %d of %d: %w", p.X, p.Y, r, rows, ErrInvalidWorld)
		}
	}
	return nil
}

// rowAt returns the row index covering world y.
func rowAt(y, grid float64) int {
	return int(math.Floor(y/grid)) - 1
}

// Move hops the player one grid unit and clamps it to the world.
func (w *World) Move(dir Direction) {
	g := w.settings.Grid
	switch dir {
	case DirUp:
		w.player.Y -= g
	case DirDown:
		w.player.Y += g
	case DirLeft:
		w.player.X -= g
	case DirRight:
		w.player.X += g
	}
	w.clampPlayer()
}

// Respawn puts the player back on the respawn point, grounded.
func (w *World) Respawn() {
	w.placePlayer(w.settings.Respawn)
}

func (w *World) placePlayer(p Point) {
	w.player.X = p.X
	w.player.Y = p.Y
	w.player.Speed = 0
	w.clampPlayer()
}

// clampPlayer keeps x in [0, width-grid] and y in [grid, height-2*grid].
func (w *World) clampPlayer() {
	g := w.settings.Grid
	w.player.X = core.ClampF(w.player.X, 0, w.settings.Width-g)
	w.player.Y = core.ClampF(w.player.Y, g, w.settings.Height-2*g)
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Rows returns the rows. Callers must treat them as read-only.
func (w *World) Rows() []Row {
	return w.rows
}

// Scored returns a copy of the filled goal slots in arrival order.
func (w *World) Scored() []ScoredPlayer {
	return append([]ScoredPlayer(nil), w.scored...)
}

// Settings returns the world settings.
func (w *World) Settings() Settings {
	return w.settings
}

// ObstacleCount returns the number of obstacles across all rows.
func (w *World) ObstacleCount() int {
	n := 0
	for i := range w.rows {
		n += len(w.rows[i].Obstacles)
	}
	return n
}

// slotAt returns the goal slot under world x. Slots are 1-based columns.
func (w *World) slotAt(x float64) int {
	g := w.settings.Grid
	return int(math.Floor((x + g) / g))
}

// isGoalSlot reports whether a slot on the goal row counts as home.
func (w *World) isGoalSlot(slot int) bool {
	return slot >= 1 && (slot-1)%w.settings.GoalEvery == 0
}

// GoalSlots returns every goal slot reachable inside the world.
func (w *World) GoalSlots() []int {
	columns := int(math.Floor(w.settings.Width / w.settings.Grid))
	var slots []int
	for slot := 1; slot <= columns; slot++ {
		if w.isGoalSlot(slot) {
			slots = append(slots, slot)
		}
	}
	return slots
}

func (w *World) slotTaken(slot int) bool {
	for _, s := range w.scored {
		if s.Slot == slot {
			return true
		}
	}
	return false
}

// BoardFull reports whether every goal slot holds a scored player.
func (w *World) BoardFull() bool {
	return len(w.scored) >= len(w.GoalSlots())
}
