package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawHLineColored(0, 0, 6, '~', core.ColorAqua)
	s.SetColored(2, 1, '●', core.ColorGreenYellow)
	s.DrawTextColored(0, 2, "ab", core.ColorSilver)

	lines := strings.Split(ansi.ReplaceAllString(RenderScreen(s), ""), "\n")
	expected := []string{"~~~~~~", "  ●   ", "ab    "}
	if len(lines) != len(expected) {
		t.Fatalf("rendered %d lines, expected %d", len(lines), len(expected))
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, line, expected[i])
		}
	}
}

func TestEveryColorHasCode(t *testing.T) {
	for c := core.ColorRed; c < core.NumColors; c++ {
		if ansiCodes[c] == "" {
			t.Errorf("color %d has no ANSI code", c)
		}
	}
}

func TestStyleForOutOfRange(t *testing.T) {
	got := styleFor(core.NumColors + 3).Render("x")
	if ansi.ReplaceAllString(got, "") != "x" {
		t.Errorf("out of range color rendered %q", got)
	}
}
