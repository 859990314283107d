package frogger

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

const testGrid = 48.0

func mustPattern(t *testing.T, spacing []int, size, speed float64) *LanePattern {
	t.Helper()
	p, err := NewLanePattern(spacing, size, ShapeRect, core.ColorBrown, speed)
	if err != nil {
		t.Fatalf("NewLanePattern() failed: %v", err)
	}
	return p
}

func TestLanePatternWidth(t *testing.T) {
	tests := []struct {
		name     string
		spacing  []int
		size     float64
		expected float64
	}{
		{"single gap", []int{2}, 4 * testGrid, 4*testGrid + 2*testGrid},
		{"truck", []int{3, 8}, 2 * testGrid, 2*2*testGrid + 11*testGrid},
		{"no gaps", []int{0, 0}, testGrid, 2 * testGrid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustPattern(t, tc.spacing, tc.size, 1)
			if got := p.Width(testGrid); got != tc.expected {
				t.Errorf("Width() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNewLanePatternRejects(t *testing.T) {
	tests := []struct {
		name    string
		spacing []int
		size    float64
		speed   float64
	}{
		{"empty spacing", nil, 48, 1},
		{"negative spacing", []int{1, -1}, 48, 1},
		{"zero size", []int{1}, 0, 1},
		{"zero speed", []int{1}, 48, 0},
		{"infinite speed", []int{1}, 48, math.Inf(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLanePattern(tc.spacing, tc.size, ShapeRect, core.ColorRed, tc.speed)
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("NewLanePattern() error = %v, expected ErrInvalidPattern", err)
			}
		})
	}
}

func TestNewLanePatternCopiesSpacing(t *testing.T) {
	spacing := []int{1, 2}
	p := mustPattern(t, spacing, 48, 1)
	spacing[0] = 9
	if p.Spacing[0] != 1 {
		t.Error("pattern should not share the caller's spacing slice")
	}
}

func TestBuildObstaclesLayout(t *testing.T) {
	// pattern width 720, ceil(624/720)+2 = 3 repetitions of 2 slots
	p := mustPattern(t, []int{3, 8}, 2*testGrid, -2)
	obstacles := buildObstacles(p, testGrid*9, testGrid, 624)

	expectedX := []float64{0, 240, 720, 960, 1440, 1680}
	if len(obstacles) != len(expectedX) {
		t.Fatalf("built %d obstacles, expected %d", len(obstacles), len(expectedX))
	}
	for i, o := range obstacles {
		if o.X != expectedX[i] {
			t.Errorf("obstacle %d x = %v, expected %v", i, o.X, expectedX[i])
		}
		if o.PatternIndex != i%2 {
			t.Errorf("obstacle %d index = %d, expected %d", i, o.PatternIndex, i%2)
		}
		if o.Y != testGrid*9 || o.Speed != -2 || o.Size != 2*testGrid {
			t.Errorf("obstacle %d did not inherit pattern fields: %+v", i, o)
		}
	}
}

func TestBuildObstaclesCoversTwoExtraPatterns(t *testing.T) {
	patterns := [][]int{{2}, {0, 2, 0, 2, 0, 2}, {3}, {2, 2}, {14}, {3, 3, 7}}
	for _, spacing := range patterns {
		p := mustPattern(t, spacing, testGrid, 1)
		obstacles := buildObstacles(p, testGrid, testGrid, 624)

		if len(obstacles)%len(spacing) != 0 {
			t.Errorf("spacing %v: %d obstacles is not whole repetitions", spacing, len(obstacles))
		}

		last := obstacles[len(obstacles)-1]
		end := last.X + last.Size + p.gap(last.PatternIndex, testGrid)
		if end < 624+2*p.Width(testGrid) {
			t.Errorf("spacing %v: row ends at %v, expected at least %v", spacing, end, 624+2*p.Width(testGrid))
		}
	}
}

func TestBuildObstaclesSafeZone(t *testing.T) {
	if obstacles := buildObstacles(nil, testGrid, testGrid, 624); obstacles != nil {
		t.Errorf("safe zone should have no obstacles, got %d", len(obstacles))
	}

	r := newRow(0, testGrid, 624, TerrainGoal, nil)
	r.Advance(1, testGrid, 624)
	if !r.Safe() || len(r.Obstacles) != 0 {
		t.Error("safe row should stay empty")
	}
}

func TestRowRecycleLeft(t *testing.T) {
	// width 144, 4 obstacles at 0, 144, 288, 432
	p := mustPattern(t, []int{2}, testGrid, -10)
	r := newRow(3, testGrid, 200, TerrainRoad, p)
	if len(r.Obstacles) != 4 {
		t.Fatalf("expected 4 obstacles, got %d", len(r.Obstacles))
	}

	for i := 0; i < 4; i++ {
		r.Advance(1, testGrid, 200)
	}
	if r.Obstacles[0].X != -40 {
		t.Fatalf("obstacle should still be partly visible at -40, got %v", r.Obstacles[0].X)
	}

	r.Advance(1, testGrid, 200)

	// -50 < -48: goes after the rightmost (382)
	expected := 382.0 + testGrid + 2*testGrid
	if r.Obstacles[0].X != expected {
		t.Errorf("recycled x = %v, expected %v", r.Obstacles[0].X, expected)
	}
	if r.Obstacles[0].PatternIndex != 0 {
		t.Errorf("recycled index = %d, expected 0", r.Obstacles[0].PatternIndex)
	}
}

func TestRowRecycleRightSeveralAtOnce(t *testing.T) {
	// width 240, 6 obstacles at 0, 96, 240, 336, 480, 576
	p := mustPattern(t, []int{1, 2}, testGrid, 10)
	r := newRow(8, testGrid, 200, TerrainRoad, p)

	r.Advance(1, testGrid, 200)

	got := sortedByX(r.Obstacles)
	expected := []struct {
		x   float64
		idx int
	}{
		{-470, 0}, {-374, 1}, {-230, 0}, {-134, 1}, {10, 0}, {106, 1},
	}
	if len(got) != len(expected) {
		t.Fatalf("row has %d obstacles, expected %d", len(got), len(expected))
	}
	for i, e := range expected {
		if got[i].X != e.x || got[i].PatternIndex != e.idx {
			t.Errorf("obstacle %d = (%v, %d), expected (%v, %d)", i, got[i].X, got[i].PatternIndex, e.x, e.idx)
		}
	}
}

func TestRowExtremesFirstFound(t *testing.T) {
	r := Row{Obstacles: []Obstacle{{X: 5}, {X: 1}, {X: 9}, {X: 1}, {X: 9}}}
	if r.leftmost() != 1 {
		t.Errorf("leftmost() = %d, expected 1", r.leftmost())
	}
	if r.rightmost() != 2 {
		t.Errorf("rightmost() = %d, expected 2", r.rightmost())
	}
}

func sortedByX(obstacles []Obstacle) []Obstacle {
	out := append([]Obstacle(nil), obstacles...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}
