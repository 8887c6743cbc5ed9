package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Axis identifies the axis a collision was resolved along.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "none"
	}
}

// Penetration computes the smallest displacement that separates mover from
// obstacle. The correction is taken along the axis of least penetration;
// exact ties resolve along Y. It returns AxisNone and a zero vector when the
// boxes do not overlap on both axes.
func Penetration(mover, obstacle core.BoundingBox) (Axis, core.Vec2) {
	ov := mover.Overlap(obstacle)
	if ov.X <= 0 || ov.Y <= 0 {
		return AxisNone, core.Vec2{}
	}

	ms, os := mover.CenterSum(), obstacle.CenterSum()
	if ov.X < ov.Y {
		if ms.X < os.X {
			return AxisX, core.V2(-ov.X, 0)
		}
		return AxisX, core.V2(ov.X, 0)
	}

	if ms.Y < os.Y {
		return AxisY, core.V2(0, -ov.Y)
	}
	return AxisY, core.V2(0, ov.Y)
}

// resolvePaddleHit pushes the ball out of the paddle and reverses its
// horizontal velocity. The X component is reflected whatever axis the
// position was corrected along. Reports whether a hit happened.
func resolvePaddleHit(ball *Ball, paddle *Paddle) bool {
	if !ball.Bounds.Intersects(paddle.Bounds) {
		return false
	}

	axis, d := Penetration(ball.Bounds, paddle.Bounds)
	if axis == AxisNone {
		return false
	}

	ball.Translate(d)
	ball.Velocity.X = -ball.Velocity.X
	return true
}

// bounceOffWalls reflects the ball off the top or bottom edge of the field.
// The ball must be moving toward the wall it touches, so a ball that was
// already reflected is not bounced back out again.
func bounceOffWalls(ball *Ball, field core.Vec2) bool {
	switch {
	case ball.Bounds.Max.Y > field.Y && ball.Velocity.Y > 0:
		ball.Translate(core.V2(0, field.Y-ball.Bounds.Max.Y))
	case ball.Bounds.Min.Y < 0 && ball.Velocity.Y < 0:
		ball.Translate(core.V2(0, -ball.Bounds.Min.Y))
	default:
		return false
	}

	ball.Velocity.Y = -ball.Velocity.Y
	return true
}
