// Package tui runs the game in a terminal through Bubble Tea, locally or
// per SSH session. It maps keys to actions, rasterises field-space quads
// onto a character screen and keeps the match journal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation frame. It carries the
// wall-clock time the tick fired.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed since prev, or 0 when there is no
// previous frame. The value is not clamped.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	return now.Sub(prev).Seconds()
}
