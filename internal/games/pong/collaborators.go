package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Event is a gameplay event reported to the audio collaborator.
type Event int

const (
	EventWallHit Event = iota + 1
	EventPaddleHit
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventWallHit:
		return "WallHit"
	case EventPaddleHit:
		return "PaddleHit"
	default:
		return "Unknown"
	}
}

// Audio plays sound effects for gameplay events.
// Play is fire-and-forget and must not block the calling frame.
type Audio interface {
	Play(e Event)
}

// NopAudio discards every event.
type NopAudio struct{}

// Play implements Audio.
func (NopAudio) Play(Event) {}

// Renderer draws field-space primitives for one frame.
// A frame is bracketed by PreRender and PostRender; quads and text are
// submitted after their respective pass has been prepared.
type Renderer interface {
	PreRender()
	PrepareQuadPass()
	// RenderQuad draws an axis-aligned rectangle centred at pos with extent scale.
	RenderQuad(pos, scale core.Vec2)
	PrepareTextPass()
	// RenderText draws text anchored (centred) at pos. size is the glyph
	// height in field units.
	RenderText(text string, pos core.Vec2, size float64)
	PostRender()
}
