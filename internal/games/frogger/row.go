package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Terrain is the visual band a row belongs to.
type Terrain int

const (
	TerrainGoal Terrain = iota
	TerrainRiver
	TerrainBeach
	TerrainSidewalk
	TerrainRoad
)

// ParseTerrain resolves a config terrain name; unknown names are sidewalk.
func ParseTerrain(name string) Terrain {
	switch name {
	case "goal":
		return TerrainGoal
	case "river":
		return TerrainRiver
	case "beach":
		return TerrainBeach
	case "road":
		return TerrainRoad
	default:
		return TerrainSidewalk
	}
}

// Obstacle is a log, turtle or vehicle. Only X and PatternIndex change
// after construction.
type Obstacle struct {
	X            float64
	Y            float64
	Size         float64
	Shape        Shape
	Color        core.Color
	Speed        float64
	PatternIndex int // Slot of the pattern this obstacle currently fills
}

// Box returns the collision box. The right edge is pulled in by gap so
// the player can stand just past the end of a log without riding it.
func (o Obstacle) Box(grid, gap float64) core.RectF {
	return core.NewRectF(o.X, o.Y, o.Size-gap, grid)
}

// Row is one lane of the world.
type Row struct {
	Index     int
	Y         float64
	Terrain   Terrain
	Pattern   *LanePattern
	Obstacles []Obstacle // Pattern slot order, not x order once recycling starts
}

func newRow(index int, grid, worldW float64, terrain Terrain, p *LanePattern) Row {
	y := grid * float64(index+1)
	return Row{
		Index:     index,
		Y:         y,
		Terrain:   terrain,
		Pattern:   p,
		Obstacles: buildObstacles(p, y, grid, worldW),
	}
}

// Safe reports whether the row has no obstacles at all.
func (r *Row) Safe() bool {
	return r.Pattern == nil
}

// Advance moves every obstacle by speed*dt, then recycles the ones that
// left the visible world.
func (r *Row) Advance(dt, grid, worldW float64) {
	if r.Pattern == nil || len(r.Obstacles) == 0 {
		return
	}

	for i := range r.Obstacles {
		r.Obstacles[i].X += r.Obstacles[i].Speed * dt
	}

	if r.Pattern.Speed < 0 {
		r.recycleLeft(grid)
	} else {
		r.recycleRight(grid, worldW)
	}
}

// recycleLeft moves obstacles that exited on the left to the next pattern
// slot after the rightmost obstacle. The farthest off-screen goes first so
// several exits in one tick keep their relative order.
func (r *Row) recycleLeft(grid float64) {
	n := len(r.Pattern.Spacing)
	for {
		li := r.leftmost()
		o := &r.Obstacles[li]
		if o.X >= -o.Size {
			return
		}

		right := r.Obstacles[r.rightmost()]
		o.X = right.X + right.Size + r.Pattern.gap(right.PatternIndex, grid)
		o.PatternIndex = (right.PatternIndex + 1) % n
	}
}

// recycleRight moves obstacles that exited on the right to the pattern slot
// before the leftmost obstacle.
func (r *Row) recycleRight(grid, worldW float64) {
	n := len(r.Pattern.Spacing)
	for {
		ri := r.rightmost()
		o := &r.Obstacles[ri]
		if o.X <= worldW {
			return
		}

		left := r.Obstacles[r.leftmost()]
		prev := (left.PatternIndex - 1 + n) % n
		o.X = left.X - r.Pattern.gap(prev, grid) - o.Size
		o.PatternIndex = prev
	}
}

// leftmost returns the index of the obstacle with the smallest x,
// first found on ties.
func (r *Row) leftmost() int {
	best := 0
	for i := 1; i < len(r.Obstacles); i++ {
		if r.Obstacles[i].X < r.Obstacles[best].X {
			best = i
		}
	}
	return best
}

// rightmost returns the index of the obstacle with the largest x,
// first found on ties.
func (r *Row) rightmost() int {
	best := 0
	for i := 1; i < len(r.Obstacles); i++ {
		if r.Obstacles[i].X > r.Obstacles[best].X {
			best = i
		}
	}
	return best
}

// Span returns the length of the row's tiling: every obstacle plus the gap
// that follows it.
func (r *Row) Span(grid float64) float64 {
	if r.Pattern == nil {
		return 0
	}
	span := 0.0
	for _, o := range r.Obstacles {
		span += o.Size + r.Pattern.gap(o.PatternIndex, grid)
	}
	return span
}
