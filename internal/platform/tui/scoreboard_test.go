package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/storage"
)

func TestRunRows(t *testing.T) {
	rows := runRows([]storage.Run{
		{Score: 300, Crossings: 3, Deaths: 1, Player: "ann"},
		{Score: 100, Crossings: 1},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "300" || rows[0][2] != "3" || rows[0][3] != "1" || rows[0][4] != "ann" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][4] != "-" {
		t.Errorf("anonymous player shown as %q, expected -", rows[1][4])
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "frogger", "Frogger", 100, 30)

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Frogger") {
		t.Error("missing title")
	}
	if !strings.Contains(view, "unavailable") {
		t.Error("missing storage message")
	}
}

func TestScoreboardLoadsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{100, 400, 200} {
		if _, err := store.SaveRun(storage.Run{GameID: "frogger", Score: score, Crossings: score / 100}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "frogger", "Frogger", 100, 30)
	if len(m.runs) != 3 || m.runs[0].Score != 400 {
		t.Fatalf("loaded runs = %+v", m.runs)
	}
	if m.stats == nil || m.stats.Runs != 3 {
		t.Errorf("stats = %+v", m.stats)
	}
	if !strings.Contains(m.View(), "Best:") {
		t.Error("wide layout should show the stats sidebar")
	}
}

func TestScoreboardQuitAndResize(t *testing.T) {
	m := NewScoreboardModel(nil, "frogger", "Frogger", 100, 30)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(ScoreboardModel)
	if m.showSidebar() {
		t.Error("narrow terminal should hide the sidebar")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(ScoreboardModel)
	if !m.quitting || !isQuit(cmd) {
		t.Error("q should quit the scoreboard")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestScoreboardSwitchesToRecent(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{GameID: "frogger", Player: "old", Score: 500},
		{GameID: "frogger", Player: "new", Score: 100},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "frogger", "Frogger", 100, 30)
	if m.runs[0].Player != "old" {
		t.Fatalf("best view should start with the high score, got %q", m.runs[0].Player)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecent || m.runs[0].Player != "new" {
		t.Errorf("tab should list the newest run first, got view %d and %q", m.view, m.runs[0].Player)
	}
	if !strings.Contains(m.View(), "RECENT RUNS - Frogger") {
		t.Error("missing recent heading")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).view != viewBest {
		t.Error("second tab should return to the best runs")
	}
}
