package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderScreenPlainDefaultColor(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "PONG", core.ColorDefault)
	s.SetColored(5, 1, '#', core.ColorCyan)

	out := RenderScreen(s, NewPalette(lipgloss.NewRenderer(io.Discard)))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	if lines[0] != "PONG  " {
		t.Errorf("row 0 = %q, expected %q", lines[0], "PONG  ")
	}
	if !strings.HasSuffix(lines[1], "#") || lipgloss.Width(lines[1]) != 6 {
		t.Errorf("row 1 = %q, expected 6 columns ending in #", lines[1])
	}
}

func TestPaletteFallsBackToDefault(t *testing.T) {
	p := NewPalette(nil)
	if got := p.Style(core.Color(200)).Render("x"); got != p[core.ColorDefault].Render("x") {
		t.Errorf("unknown color rendered %q, expected the default style", got)
	}
}
