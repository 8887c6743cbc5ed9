package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Field and entity layout. Field space has its origin at the bottom-left
// corner with +Y pointing up.
const (
	FieldWidth  = 640.0
	FieldHeight = 480.0

	BallSize     = 10.0
	PaddleWidth  = 10.0
	PaddleHeight = 60.0

	// Horizontal paddle placement as a fraction of the field width.
	LeftPaddleX  = 0.05
	RightPaddleX = 0.95

	// Serve velocity in units per second.
	ServeVelocityX = -350.0
	ServeVelocityY = 300.0

	PlayerPaddleSpeed = 300.0
	AIPaddleSpeed     = 290.0

	// WinScore ends the match once either side reaches it.
	WinScore = 5
)

// Side identifies one of the two paddles.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Entity is a rectangular body in the field.
type Entity struct {
	Pos      core.Vec2 // Centre
	Scale    core.Vec2 // Full extent
	Velocity core.Vec2 // Units per second
	Bounds   core.BoundingBox
}

// NewEntity creates an entity at rest with bounds computed from pos and scale.
func NewEntity(pos, scale core.Vec2) Entity {
	e := Entity{Pos: pos, Scale: scale}
	e.UpdateBounds()
	return e
}

// UpdateBounds recomputes Bounds from Pos and Scale.
func (e *Entity) UpdateBounds() {
	e.Bounds = core.BoundsFromCenter(e.Pos, e.Scale)
}

// Integrate advances the position by velocity*dt and refreshes the bounds.
func (e *Entity) Integrate(dt float64) {
	e.Pos = e.Pos.Add(e.Velocity.Scale(dt))
	e.UpdateBounds()
}

// Translate moves the position and the bounds together.
func (e *Entity) Translate(d core.Vec2) {
	e.Pos = e.Pos.Add(d)
	e.Bounds = e.Bounds.Translate(d)
}

// Ball is the moving puck.
type Ball struct {
	Entity
}

// Paddle is one of the two bats.
type Paddle struct {
	Entity
}

// World is the simulated play field.
type World struct {
	Size    core.Vec2
	Ball    Ball
	Paddles [2]Paddle // Indexed by Side
}

// Paddle returns the paddle for the given side.
func (w *World) Paddle(s Side) *Paddle {
	return &w.Paddles[s]
}
