package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func testTheme() Theme {
	return Theme{
		Ball:        'O',
		Paddle:      '#',
		Tally:       '|',
		BallColor:   core.ColorWhite,
		PaddleColor: core.ColorCyan,
		TextColor:   core.ColorYellow,
	}
}

func newTestRenderer(w, h int) *ScreenRenderer {
	return NewScreenRenderer(core.NewScreen(w, h), core.V2(pong.FieldWidth, pong.FieldHeight), testTheme())
}

func TestScreenRendererFlipsRows(t *testing.T) {
	// 64x48 cells: one cell per 10 field units.
	r := newTestRenderer(64, 48)

	r.PreRender()
	r.PrepareQuadPass()
	r.RenderQuad(core.V2(5, 475), core.V2(10, 10)) // Top-left corner of the field
	r.RenderQuad(core.V2(635, 5), core.V2(10, 10)) // Bottom-right corner
	r.PostRender()

	s := r.Screen()
	if s.Get(0, 0) != 'O' {
		t.Errorf("top-left quad should be at row 0, got %q", s.Get(0, 0))
	}
	if s.Get(63, 47) != 'O' {
		t.Errorf("bottom-right quad should be at the last row, got %q", s.Get(63, 47))
	}
	if s.Get(0, 47) != ' ' {
		t.Error("bottom-left cell should be empty")
	}
}

func TestScreenRendererQuadSize(t *testing.T) {
	r := newTestRenderer(64, 48)

	r.PreRender()
	r.RenderQuad(core.V2(32, 240), core.V2(pong.PaddleWidth, pong.PaddleHeight))
	r.PostRender()

	s := r.Screen()
	count := 0
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) == '#' {
				count++
				if c := s.GetCell(x, y).Color; c != core.ColorCyan {
					t.Errorf("paddle cell color = %d, expected cyan", c)
				}
			}
		}
	}
	// 10x60 units at 10 units per cell
	if count != 6 {
		t.Errorf("paddle covers %d cells, expected 6", count)
	}
}

func TestScreenRendererMinimumCell(t *testing.T) {
	// Very small terminal: every quad still shows up.
	r := newTestRenderer(20, 10)

	r.PreRender()
	r.RenderQuad(core.V2(320, 240), core.V2(pong.BallSize, pong.BallSize))
	r.PostRender()

	if !strings.ContainsRune(r.Screen().String(), 'O') {
		t.Error("ball should cover at least one cell")
	}
}

func TestScreenRendererTextAndNet(t *testing.T) {
	theme := testTheme()
	theme.Net = ':'
	r := NewScreenRenderer(core.NewScreen(64, 48), core.V2(pong.FieldWidth, pong.FieldHeight), theme)

	r.PreRender()
	r.PrepareTextPass()
	r.RenderText("SERVE", core.V2(320, 360), 16)
	r.PostRender()

	s := r.Screen()
	row := s.Row(12)
	if !strings.Contains(row, "SERVE") {
		t.Errorf("row 12 = %q, expected the text", row)
	}
	if s.Get(32, 0) != ':' {
		t.Errorf("net glyph missing at the centre column, got %q", s.Get(32, 0))
	}
}

func TestScreenRendererDrawsGame(t *testing.T) {
	g := pong.New()
	g.Update(pong.Input{}, 0)

	r := newTestRenderer(64, 48)
	g.Render(r)

	out := r.Screen().String()
	if strings.Count(out, "#") != 12 {
		t.Errorf("expected two paddles of 6 cells, got %d paddle cells", strings.Count(out, "#"))
	}
	if !strings.Contains(out, "Press SPACE to serve") {
		t.Error("waiting prompt should be drawn")
	}
}

func TestThemeFromConfig(t *testing.T) {
	theme := ThemeFromConfig(config.Default().Display)

	if theme.Ball != '●' || theme.Paddle != '█' || theme.Net != '│' {
		t.Errorf("glyphs = %q %q %q", theme.Ball, theme.Paddle, theme.Net)
	}
	if theme.PaddleColor != core.ColorCyan {
		t.Errorf("PaddleColor = %d, expected cyan", theme.PaddleColor)
	}

	cfg := config.Default().Display
	cfg.NetGlyph = ""
	if ThemeFromConfig(cfg).Net != 0 {
		t.Error("empty net glyph should hide the net")
	}
}
