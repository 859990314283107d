package frogger

import (
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Surface receives draw calls in world units.
type Surface interface {
	DrawRect(x, y, w, h float64, c core.Color)
	DrawCircle(cx, cy, r float64, c core.Color)
}

// Draw issues one call per obstacle, one for the player and one per
// scored player, in that order.
func (w *World) Draw(s Surface) {
	for i := range w.rows {
		for _, o := range w.rows[i].Obstacles {
			w.drawBody(s, o.X, o.Y, o.Size, o.Shape, o.Color)
		}
	}

	w.drawBody(s, w.player.X, w.player.Y, w.settings.Grid, ShapeCircle, w.settings.PlayerColor)

	for _, sp := range w.scored {
		w.drawBody(s, sp.X, sp.Y, sp.Size, sp.Shape, sp.Color)
	}
}

func (w *World) drawBody(s Surface, x, y, size float64, shape Shape, c core.Color) {
	gap := w.settings.GridGap
	switch shape {
	case ShapeCircle:
		s.DrawCircle(x+size/2, y+size/2, size/2-gap/2, c)
	default:
		s.DrawRect(x, y+gap/2, size, w.settings.Grid-gap, c)
	}
}

// Glyphs used by ScreenSurface.
const (
	RectGlyph   = '█'
	CircleGlyph = '●'
)

// ScreenSurface rasterises world draw calls into a core.Screen.
// One grid unit becomes one screen row and CellsPerGrid columns.
// Anything outside the field rectangle is clipped.
type ScreenSurface struct {
	dst          *core.Screen
	grid         float64
	cellsPerGrid int
	originX      int // screen column of world x=0
	originY      int // screen row of world y=0
	clip         core.Rect
}

// NewScreenSurface creates a surface drawing into dst. field is the clip
// rectangle in screen cells; world (0, 0) maps to (originX, originY).
func NewScreenSurface(dst *core.Screen, grid float64, cellsPerGrid, originX, originY int, field core.Rect) *ScreenSurface {
	return &ScreenSurface{
		dst:          dst,
		grid:         grid,
		cellsPerGrid: cellsPerGrid,
		originX:      originX,
		originY:      originY,
		clip:         field,
	}
}

// col converts world x to a screen column.
func (s *ScreenSurface) col(x float64) int {
	return s.originX + int(math.Floor(x*float64(s.cellsPerGrid)/s.grid))
}

// row converts world y to a screen row.
func (s *ScreenSurface) row(y float64) int {
	return s.originY + int(math.Floor(y/s.grid))
}

// DrawRect fills every cell the rectangle touches, at least one column wide.
func (s *ScreenSurface) DrawRect(x, y, w, h float64, c core.Color) {
	x0, x1 := s.col(x), s.col(x+w)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	y0 := s.row(y)
	y1 := s.row(math.Nextafter(y+h, math.Inf(-1))) + 1
	s.fill(x0, x1, y0, y1, RectGlyph, c)
}

// DrawCircle draws the circle's horizontal span on the row of its centre.
func (s *ScreenSurface) DrawCircle(cx, cy, r float64, c core.Color) {
	x0, x1 := s.col(cx-r), s.col(cx+r)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	y := s.row(cy)
	s.fill(x0, x1, y, y+1, CircleGlyph, c)
}

func (s *ScreenSurface) fill(x0, x1, y0, y1 int, glyph rune, c core.Color) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if s.clip.Contains(x, y) {
				s.dst.SetColored(x, y, glyph, c)
			}
		}
	}
}
