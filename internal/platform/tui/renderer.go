package tui

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Theme holds the glyphs and colors the screen renderer draws with.
type Theme struct {
	Ball        rune
	Paddle      rune
	Net         rune // Zero hides the net
	Tally       rune
	BallColor   core.Color
	PaddleColor core.Color
	TextColor   core.Color
	NetColor    core.Color
}

// ThemeFromConfig builds a theme from the display configuration.
func ThemeFromConfig(cfg config.DisplayConfig) Theme {
	return Theme{
		Ball:        firstRune(cfg.BallGlyph, '●'),
		Paddle:      firstRune(cfg.PaddleGlyph, '█'),
		Net:         firstRune(cfg.NetGlyph, 0),
		Tally:       '▌',
		BallColor:   core.ParseColor(cfg.BallColor),
		PaddleColor: core.ParseColor(cfg.PaddleColor),
		TextColor:   core.ParseColor(cfg.TextColor),
		NetColor:    core.ParseColor(cfg.NetColor),
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

type quadCmd struct {
	pos, scale core.Vec2
}

type textCmd struct {
	text string
	pos  core.Vec2
}

// ScreenRenderer rasterises field-space primitives onto a character screen.
// Field space is y-up; screen rows grow downward, so rows are flipped.
// Commands are buffered per frame and drawn in PostRender.
type ScreenRenderer struct {
	screen *core.Screen
	field  core.Vec2
	theme  Theme

	quads []quadCmd
	texts []textCmd
}

// NewScreenRenderer creates a renderer drawing the given field onto screen.
func NewScreenRenderer(screen *core.Screen, field core.Vec2, theme Theme) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		field:  field,
		theme:  theme,
	}
}

// PreRender starts a new frame.
func (r *ScreenRenderer) PreRender() {
	r.quads = r.quads[:0]
	r.texts = r.texts[:0]
}

// PrepareQuadPass implements pong.Renderer.
func (r *ScreenRenderer) PrepareQuadPass() {}

// RenderQuad queues a rectangle.
func (r *ScreenRenderer) RenderQuad(pos, scale core.Vec2) {
	r.quads = append(r.quads, quadCmd{pos: pos, scale: scale})
}

// PrepareTextPass implements pong.Renderer.
func (r *ScreenRenderer) PrepareTextPass() {}

// RenderText queues a line of text centred at pos. Terminal glyphs have a
// fixed size, so size is ignored.
func (r *ScreenRenderer) RenderText(text string, pos core.Vec2, _ float64) {
	r.texts = append(r.texts, textCmd{text: text, pos: pos})
}

// PostRender draws the queued frame onto the screen.
func (r *ScreenRenderer) PostRender() {
	r.screen.Clear()
	r.drawNet()

	for _, q := range r.quads {
		glyph, color := r.style(q.scale)
		r.screen.DrawRect(r.cellRect(q.pos, q.scale), glyph, color)
	}

	for _, t := range r.texts {
		col, row := r.cell(t.pos)
		col -= len([]rune(t.text)) / 2
		r.screen.DrawText(col, row, t.text, r.theme.TextColor)
	}
}

// style picks the glyph for a quad from its shape.
func (r *ScreenRenderer) style(scale core.Vec2) (rune, core.Color) {
	switch {
	case scale.X == scale.Y:
		return r.theme.Ball, r.theme.BallColor
	case scale.Y >= pong.PaddleHeight:
		return r.theme.Paddle, r.theme.PaddleColor
	default:
		return r.theme.Tally, r.theme.TextColor
	}
}

func (r *ScreenRenderer) drawNet() {
	if r.theme.Net == 0 {
		return
	}
	x := r.screen.Width() / 2
	for y := 0; y < r.screen.Height(); y += 2 {
		r.screen.SetColored(x, y, r.theme.Net, r.theme.NetColor)
	}
}

// scale returns cells per field unit on each axis.
func (r *ScreenRenderer) scale() (float64, float64) {
	if r.field.X <= 0 || r.field.Y <= 0 {
		return 0, 0
	}
	return float64(r.screen.Width()) / r.field.X, float64(r.screen.Height()) / r.field.Y
}

// cell maps a field-space point to a screen cell.
func (r *ScreenRenderer) cell(p core.Vec2) (int, int) {
	sx, sy := r.scale()
	col := int(math.Floor(p.X * sx))
	row := int(math.Floor((r.field.Y - p.Y) * sy))
	return col, row
}

// cellRect maps a centred field-space box to screen cells. Every visible
// quad covers at least one cell.
func (r *ScreenRenderer) cellRect(pos, scale core.Vec2) core.Rect {
	sx, sy := r.scale()
	b := core.BoundsFromCenter(pos, scale)

	x0 := int(math.Round(b.Min.X * sx))
	x1 := int(math.Round(b.Max.X * sx))
	y0 := int(math.Round((r.field.Y - b.Max.Y) * sy))
	y1 := int(math.Round((r.field.Y - b.Min.Y) * sy))

	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Screen returns the screen the renderer draws on.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

var _ pong.Renderer = (*ScreenRenderer)(nil)
