package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Palette maps screen colors to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// ansiCodes are the terminal color codes behind each core.Color.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// NewPalette builds styles for the given lipgloss renderer. SSH sessions
// pass their own renderer so colors match the remote terminal; nil uses
// the default renderer.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	p := Palette{core.ColorDefault: r.NewStyle()}
	for c, code := range ansiCodes {
		p[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// Style returns the style for c, falling back to the default style.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if style, ok := p[c]; ok {
		return style
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}
