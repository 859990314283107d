package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Visual characters for terrain bands
const (
	WaterChar    = '~'
	SandChar     = '░'
	PavementChar = '▒'
	LaneMarkChar = '-'
	GoalChar     = '▒'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		g.drawCenteredMessage(dst, "CONFIG ERROR", "Check the frogger config")
		return
	}

	field, ok := g.field(dst)
	if !ok {
		need := fmt.Sprintf("Need %dx%d", field.W, field.H+hudHeight)
		g.drawCenteredMessage(dst, "TERMINAL TOO SMALL", need)
		return
	}

	g.drawTerrain(dst, field)

	// World (0, 0) is one grid row above the first lane.
	surface := NewScreenSurface(dst, g.world.settings.Grid, CellsPerGrid, field.X, field.Y-1, field)
	g.world.Draw(surface)

	g.drawHUD(dst, field)

	if g.fault != nil {
		g.drawCenteredMessage(dst, "ENGINE FAULT", g.fault.Error())
		return
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "BOARD CLEARED", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// field returns the playfield rectangle centred below the HUD and whether
// it fits on the screen.
func (g *Game) field(dst *core.Screen) (core.Rect, bool) {
	columns := int(g.world.settings.Width / g.world.settings.Grid)
	w := columns * CellsPerGrid
	h := len(g.world.rows)

	x := (dst.Width() - w) / 2
	r := core.NewRect(x, hudHeight, w, h)
	return r, dst.Width() >= w && dst.Height() >= h+hudHeight
}

// drawTerrain paints the background band of every row.
func (g *Game) drawTerrain(dst *core.Screen, field core.Rect) {
	for i := range g.world.rows {
		y := field.Y + i
		switch g.world.rows[i].Terrain {
		case TerrainGoal:
			dst.DrawHLineColored(field.X, y, field.W, SandChar, core.ColorTan)
			for _, slot := range g.world.GoalSlots() {
				dst.DrawHLineColored(field.X+(slot-1)*CellsPerGrid, y, CellsPerGrid, GoalChar, core.ColorGreen)
			}
		case TerrainRiver:
			dst.DrawHLineColored(field.X, y, field.W, WaterChar, core.ColorAqua)
		case TerrainBeach:
			dst.DrawHLineColored(field.X, y, field.W, SandChar, core.ColorTan)
		case TerrainRoad:
			for x := 0; x < field.W; x += 2 * CellsPerGrid {
				dst.SetColored(field.X+x, y, LaneMarkChar, core.ColorGray)
			}
		default:
			dst.DrawHLineColored(field.X, y, field.W, PavementChar, core.ColorGray)
		}
	}
}

// drawHUD renders score, best score, filled goals and deaths above the field.
func (g *Game) drawHUD(dst *core.Screen, field core.Rect) {
	left := fmt.Sprintf(" Score: %d Best: %d Home: %d/%d ", g.score, max(g.best, g.score), g.crossings, len(g.world.GoalSlots()))
	dst.DrawText(field.X, 0, left)

	right := fmt.Sprintf(" Deaths: %d ", g.deaths)
	if g.world.player.Riding() {
		right = " RIDING" + right
	}
	dst.DrawTextColored(field.Right()-len(right), 0, right, core.ColorGold)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
