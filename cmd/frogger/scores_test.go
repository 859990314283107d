package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/storage"
)

func TestClearScoresOnlyTouchesOneGame(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{GameID: "frogger", Score: 120},
		{GameID: "frogger", Score: 340},
		{GameID: "other", Score: 50},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := clearScores(&buf, store, "frogger", "Frogger"); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if got := buf.String(); got != "Cleared 2 Frogger runs.\n" {
		t.Errorf("output = %q", got)
	}

	if best, err := store.HighScore("frogger"); err != nil || best != 0 {
		t.Errorf("HighScore(frogger) = %d, %v, expected 0", best, err)
	}
	if best, err := store.HighScore("other"); err != nil || best != 50 {
		t.Errorf("HighScore(other) = %d, %v, expected 50", best, err)
	}
}
