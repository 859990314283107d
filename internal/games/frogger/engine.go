package frogger

import (
	"errors"
	"fmt"
)

// ErrPlayerOutOfBounds means the player's row has no entry in the row
// table. Input clamping should make this impossible, so it is fatal.
var ErrPlayerOutOfBounds = errors.New("player outside row table")

// Outcome is what happened to the player during a tick.
type Outcome int

const (
	OutcomeGrounded Outcome = iota // on land, or on water with nothing to do
	OutcomeRiding                  // standing on a log or turtle
	OutcomeHit                     // run over, sent back to spawn
	OutcomeDrowned                 // fell in the river, sent back to respawn
	OutcomeScored                  // reached a free goal slot
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeGrounded:
		return "grounded"
	case OutcomeRiding:
		return "riding"
	case OutcomeHit:
		return "hit"
	case OutcomeDrowned:
		return "drowned"
	case OutcomeScored:
		return "scored"
	default:
		return "unknown"
	}
}

// TickResult reports the player outcome of one tick.
type TickResult struct {
	Outcome Outcome
	Row     int // Row the player was evaluated on
	Slot    int // Goal slot filled, set only for OutcomeScored
}

// Tick advances the world by dt frames: rows move and recycle, the player
// drifts with whatever it rides, then the player is resolved against its row.
func (w *World) Tick(dt float64) (TickResult, error) {
	for i := range w.rows {
		w.rows[i].Advance(dt, w.settings.Grid, w.settings.Width)
	}

	w.player.X += w.player.Speed * dt
	w.clampPlayer()

	return w.resolve()
}

// resolve runs collision and scoring for the player's current row.
// Riding is decided before drowning so a player on a log is never drowned
// in the same tick.
func (w *World) resolve() (TickResult, error) {
	g := w.settings.Grid
	row := rowAt(w.player.Y, g)
	if row < 0 || row >= len(w.rows) {
		return TickResult{Row: row}, fmt.Errorf("frogger: player y=%v is on row %d, table has %d rows: %w",
			w.player.Y, row, len(w.rows), ErrPlayerOutOfBounds)
	}

	half := float64(len(w.rows)) / 2
	box := w.player.Box(g, w.settings.GridGap)

	for _, o := range w.rows[row].Obstacles {
		if !box.Intersects(o.Box(g, w.settings.GridGap)) {
			continue
		}

		// road half: run over
		if float64(row) > half {
			w.placePlayer(w.settings.Spawn)
			return TickResult{Outcome: OutcomeHit, Row: row}, nil
		}

		// river half: ride along
		w.player.Speed = o.Speed
		return TickResult{Outcome: OutcomeRiding, Row: row}, nil
	}

	w.player.Speed = 0

	if row == 0 {
		slot := w.slotAt(w.player.X)
		if w.isGoalSlot(slot) && !w.slotTaken(slot) {
			w.scored = append(w.scored, ScoredPlayer{
				X:     float64(slot-1) * g,
				Y:     w.player.Y,
				Size:  g,
				Shape: ShapeCircle,
				Color: w.settings.PlayerColor,
				Slot:  slot,
			})
			return TickResult{Outcome: OutcomeScored, Row: row, Slot: slot}, nil
		}
	}

	// in the river with nothing underneath
	if float64(row) < half-1 {
		w.placePlayer(w.settings.Respawn)
		return TickResult{Outcome: OutcomeDrowned, Row: row}, nil
	}

	return TickResult{Outcome: OutcomeGrounded, Row: row}, nil
}
