package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// glyphHeight is the pixel height of basicfont.Face7x13.
const glyphHeight = 13

var background = color.RGBA{R: 12, G: 12, B: 16, A: 255}

// palette maps screen colors onto RGB.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 220, G: 220, B: 220, A: 255},
	core.ColorRed:           {R: 205, G: 49, B: 49, A: 255},
	core.ColorGreen:         {R: 13, G: 188, B: 121, A: 255},
	core.ColorYellow:        {R: 229, G: 229, B: 16, A: 255},
	core.ColorBlue:          {R: 36, G: 114, B: 200, A: 255},
	core.ColorMagenta:       {R: 188, G: 63, B: 188, A: 255},
	core.ColorCyan:          {R: 17, G: 168, B: 205, A: 255},
	core.ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	core.ColorBrightRed:     {R: 241, G: 76, B: 76, A: 255},
	core.ColorBrightGreen:   {R: 35, G: 209, B: 139, A: 255},
	core.ColorBrightYellow:  {R: 245, G: 245, B: 67, A: 255},
	core.ColorBrightBlue:    {R: 59, G: 142, B: 234, A: 255},
	core.ColorBrightMagenta: {R: 214, G: 112, B: 214, A: 255},
	core.ColorBrightCyan:    {R: 41, G: 184, B: 219, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 255, G: 135, B: 0, A: 255},
	core.ColorGray:          {R: 110, G: 110, B: 110, A: 255},
}

// RGBA returns the window color for c.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// Colors are the window's draw colors.
type Colors struct {
	Ball, Paddle, Text, Net color.RGBA
}

// ColorsFromConfig resolves the display color names.
func ColorsFromConfig(d config.DisplayConfig) Colors {
	return Colors{
		Ball:   RGBA(core.ParseColor(d.BallColor)),
		Paddle: RGBA(core.ParseColor(d.PaddleColor)),
		Text:   RGBA(core.ParseColor(d.TextColor)),
		Net:    RGBA(core.ParseColor(d.NetColor)),
	}
}

// Renderer draws game frames onto an ebiten image. The field is y-up; the
// image is y-down.
type Renderer struct {
	target *ebiten.Image
	field  core.Vec2
	scale  float64
	colors Colors
	face   text.Face
}

// NewRenderer creates a renderer for a field drawn at the given pixel scale.
func NewRenderer(field core.Vec2, scale float64, colors Colors) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	return &Renderer{
		field:  field,
		scale:  scale,
		colors: colors,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Target sets the image the next frame is drawn onto.
func (r *Renderer) Target(img *ebiten.Image) {
	r.target = img
}

// Size returns the window size in pixels.
func (r *Renderer) Size() (int, int) {
	return int(r.field.X * r.scale), int(r.field.Y * r.scale)
}

// PreRender clears the frame and draws the net.
func (r *Renderer) PreRender() {
	if r.target == nil {
		return
	}
	r.target.Fill(background)

	w, h := r.Size()
	dash := float32(8 * r.scale)
	for y := float32(0); y < float32(h); y += 2 * dash {
		vector.FillRect(r.target, float32(w)/2-1, y, 2, dash, r.colors.Net, false)
	}
}

func (r *Renderer) PrepareQuadPass() {}

// RenderQuad fills the rectangle centred on pos.
func (r *Renderer) RenderQuad(pos, scale core.Vec2) {
	if r.target == nil {
		return
	}
	x, y, w, h := QuadRect(pos, scale, r.field.Y, r.scale)
	vector.FillRect(r.target, x, y, w, h, r.quadColor(scale), false)
}

func (r *Renderer) quadColor(scale core.Vec2) color.RGBA {
	switch {
	case scale.X == scale.Y:
		return r.colors.Ball
	case scale.Y >= pong.PaddleHeight:
		return r.colors.Paddle
	default:
		return r.colors.Text
	}
}

func (r *Renderer) PrepareTextPass() {}

// RenderText draws text centred on pos. size is the glyph height in field units.
func (r *Renderer) RenderText(s string, pos core.Vec2, size float64) {
	if r.target == nil {
		return
	}
	x, y := FieldToScreen(pos, r.field.Y, r.scale)
	k := size * r.scale / glyphHeight

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(r.colors.Text)
	text.Draw(r.target, s, r.face, op)
}

func (r *Renderer) PostRender() {}

// FieldToScreen maps a field point to window pixels.
func FieldToScreen(p core.Vec2, fieldH, scale float64) (float32, float32) {
	return float32(p.X * scale), float32((fieldH - p.Y) * scale)
}

// QuadRect returns the top-left corner and size in window pixels of the
// quad centred on pos.
func QuadRect(pos, size core.Vec2, fieldH, scale float64) (x, y, w, h float32) {
	b := core.BoundsFromCenter(pos, size)
	x, y = FieldToScreen(core.V2(b.Min.X, b.Max.Y), fieldH, scale)
	return x, y, float32(size.X * scale), float32(size.Y * scale)
}
