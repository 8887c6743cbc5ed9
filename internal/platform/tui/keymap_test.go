package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"w", runeKey('w'), core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionServe},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s is frontend only", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() should list bindings")
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 8 {
		t.Errorf("FullHelp() lists %d bindings, expected 8", total)
	}
}
