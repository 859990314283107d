package frogger

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ErrInvalidPattern is wrapped by lane pattern construction failures.
var ErrInvalidPattern = errors.New("invalid lane pattern")

// Shape selects how a body is drawn.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// String returns the config name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// ParseShape resolves a config shape name.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "rect":
		return ShapeRect, nil
	case "circle":
		return ShapeCircle, nil
	default:
		return ShapeRect, fmt.Errorf("frogger: unknown shape %q: %w", name, ErrInvalidPattern)
	}
}

// LanePattern is the repeating template of one row: obstacles of one size,
// shape, color and speed, separated by gaps that cycle through Spacing.
// A nil *LanePattern is a safe zone.
type LanePattern struct {
	Spacing []int   // Gap after each slot, in grid units
	Size    float64 // Obstacle length in world units
	Shape   Shape
	Color   core.Color
	Speed   float64 // World units per frame; the sign never changes
}

// NewLanePattern validates and builds a pattern. The spacing slice is copied.
func NewLanePattern(spacing []int, size float64, shape Shape, color core.Color, speed float64) (*LanePattern, error) {
	if len(spacing) == 0 {
		return nil, fmt.Errorf("frogger: empty spacing: %w", ErrInvalidPattern)
	}
	for _, s := range spacing {
		if s < 0 {
			return nil, fmt.Errorf("frogger: negative spacing %d: %w", s, ErrInvalidPattern)
		}
	}
	if size <= 0 {
		return nil, fmt.Errorf("frogger: size must be positive, got %v: %w", size, ErrInvalidPattern)
	}
	if speed == 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return nil, fmt.Errorf("frogger: speed must be finite and non-zero, got %v: %w", speed, ErrInvalidPattern)
	}

	return &LanePattern{
		Spacing: append([]int(nil), spacing...),
		Size:    size,
		Shape:   shape,
		Color:   color,
		Speed:   speed,
	}, nil
}

// Width returns the length of one full repetition of the pattern.
func (p *LanePattern) Width(grid float64) float64 {
	sum := 0
	for _, s := range p.Spacing {
		sum += s
	}
	return p.Size*float64(len(p.Spacing)) + grid*float64(sum)
}

// gap returns the distance between the obstacle in slot and the next one.
func (p *LanePattern) gap(slot int, grid float64) float64 {
	return grid * float64(p.Spacing[slot])
}

// repetitions returns how many whole copies of the pattern are laid out:
// enough to cover the world width plus two spare copies off-screen, so a
// recycled obstacle always lands out of view.
func (p *LanePattern) repetitions(grid, worldW float64) int {
	return int(math.Ceil(worldW/p.Width(grid))) + 2
}

// buildObstacles lays the pattern out left to right from x=0.
// The count is always a multiple of len(Spacing), which keeps the total
// span of the row constant however the slots rotate during recycling.
func buildObstacles(p *LanePattern, y, grid, worldW float64) []Obstacle {
	if p == nil {
		return nil
	}

	n := len(p.Spacing)
	count := p.repetitions(grid, worldW) * n
	obstacles := make([]Obstacle, 0, count)

	x := 0.0
	slot := 0
	for i := 0; i < count; i++ {
		obstacles = append(obstacles, Obstacle{
			X:            x,
			Y:            y,
			Size:         p.Size,
			Shape:        p.Shape,
			Color:        p.Color,
			Speed:        p.Speed,
			PatternIndex: slot,
		})

		// move the next obstacle over according to the spacing
		x += p.Size + p.gap(slot, grid)
		slot = (slot + 1) % n
	}
	return obstacles
}
