package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Input is the logical key state the simulation reads each frame.
type Input struct {
	Up    bool
	Down  bool
	Serve bool
}

// InputFromFrame extracts the simulation keys from a platform input frame.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Up:    f.Has(core.ActionUp),
		Down:  f.Has(core.ActionDown),
		Serve: f.Has(core.ActionServe),
	}
}

// PlayerVelocity maps the held keys to the player paddle's vertical speed.
// Up wins when both keys are held.
func PlayerVelocity(up, down bool) float64 {
	switch {
	case up:
		return PlayerPaddleSpeed
	case down:
		return -PlayerPaddleSpeed
	default:
		return 0
	}
}

// AIVelocity steers the CPU paddle toward the ball's current height.
// There is no prediction and no reaction delay; the slightly lower speed
// is what makes it beatable.
func AIVelocity(paddleY, ballY float64) float64 {
	switch {
	case paddleY < ballY:
		return AIPaddleSpeed
	case paddleY > ballY:
		return -AIPaddleSpeed
	default:
		return 0
	}
}

// applyPolicies sets paddle velocities for this frame: the left paddle
// follows the keyboard, the right one is the CPU.
func (g *Game) applyPolicies(in Input) {
	w := &g.world
	w.Paddle(SideLeft).Velocity = core.V2(0, PlayerVelocity(in.Up, in.Down))

	cpu := w.Paddle(SideRight)
	cpu.Velocity = core.V2(0, AIVelocity(cpu.Pos.Y, w.Ball.Pos.Y))
}
