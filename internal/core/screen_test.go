package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(5, 2)
	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 5x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "     \n     " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(3, 3)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		s.Set(p[0], p[1], 'X')
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected blank", p[0], p[1], got)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out of bounds writes should be dropped")
	}
	if got := s.Row(7); got != "   " {
		t.Errorf("Row(7) = %q, expected blanks", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColored(1, 0, "frog", ColorGreenYellow)
	s.DrawHLineColored(0, 1, 10, '~', ColorAqua)

	if got := s.Row(0); got != " frog " {
		t.Errorf("Row(0) = %q", got)
	}
	if c := s.GetCell(2, 0); c.Rune != 'r' || c.Color != ColorGreenYellow {
		t.Errorf("GetCell(2, 0) = %+v", c)
	}
	if got := s.Row(1); got != "~~~~~~" {
		t.Errorf("Row(1) = %q, line should clip at the edge", got)
	}
	if c := s.GetCell(5, 1); c.Color != ColorAqua {
		t.Errorf("GetCell(5, 1).Color = %d, expected aqua", c.Color)
	}

	s.Clear()
	if c := s.GetCell(2, 0); c != blankCell {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(0, 0, 6, 4), '#')
	s.DrawBox(NewRect(1, 0, 4, 3))

	expected := []string{
		"#┌──┐#",
		"#│##│#",
		"#└──┘#",
		"######",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 2, "wxyz")

	s.Resize(2, 2)
	if got := s.String(); got != "ab\n  " {
		t.Errorf("after shrink: %q", got)
	}

	s.Resize(5, 3)
	if got := s.String(); got != "ab   \n     \n     " {
		t.Errorf("after grow: %q", got)
	}

	s.Resize(-1, 2)
	if s.Width() != 0 || s.Row(0) != "" {
		t.Errorf("negative width should clamp to zero, got %d", s.Width())
	}
}
