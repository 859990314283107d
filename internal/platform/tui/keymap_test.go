package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey("w"), core.ActionUp},
		{"s", runeKey("s"), core.ActionDown},
		{"a", runeKey("a"), core.ActionLeft},
		{"d", runeKey("d"), core.ActionRight},
		{"k", runeKey("k"), core.ActionUp},
		{"j", runeKey("j"), core.ActionDown},
		{"h", runeKey("h"), core.ActionLeft},
		{"l", runeKey("l"), core.ActionRight},
		{"p", runeKey("p"), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey("r"), core.ActionRestart},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("x"), core.ActionNone},
		{"help is not an action", runeKey("?"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestHelpListsHops(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 || len(km.FullHelp()) != 3 {
		t.Error("unexpected help layout")
	}
	for _, b := range km.FullHelp()[0] {
		if b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
