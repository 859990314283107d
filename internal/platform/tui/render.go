package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ansiCodes holds the 256-color code for each palette entry.
var ansiCodes = [core.NumColors]string{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorMagenta:     "5",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorOrange:      "208",
	core.ColorGray:        "245",
	core.ColorBrown:       "130",
	core.ColorSaddleBrown: "94",
	core.ColorSilver:      "250",
	core.ColorGreenYellow: "154",
	core.ColorTan:         "180",
	core.ColorAqua:        "38",
	core.ColorGold:        "220",
}

var colorStyles = buildStyles()

func buildStyles() [core.NumColors]lipgloss.Style {
	var styles [core.NumColors]lipgloss.Style
	for c, code := range ansiCodes {
		style := lipgloss.NewStyle()
		if code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	// The frog and the HUD score stand out.
	styles[core.ColorGreenYellow] = styles[core.ColorGreenYellow].Bold(true)
	styles[core.ColorGold] = styles[core.ColorGold].Bold(true)
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if c >= core.NumColors {
		return colorStyles[core.ColorDefault]
	}
	return colorStyles[c]
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string.
// Each run of same-colored cells on a line is styled once.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
