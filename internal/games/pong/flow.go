package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// State is the game-flow state.
type State int

const (
	StateInvalid State = iota
	StateInitializing
	StateLoadingGameEnvironment
	StateWaitingForPlayers
	StateRunning

	stateCount
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "Initializing"
	case StateLoadingGameEnvironment:
		return "LoadingGameEnvironment"
	case StateWaitingForPlayers:
		return "WaitingForPlayers"
	case StateRunning:
		return "Running"
	default:
		return "Invalid"
	}
}

// transition returns the state the game should move to given this frame's
// input. Returning the current state means the machine is stable.
func (g *Game) transition(in Input) State {
	switch g.state {
	case StateInitializing:
		return StateLoadingGameEnvironment
	case StateLoadingGameEnvironment:
		return StateWaitingForPlayers
	case StateWaitingForPlayers:
		if in.Serve {
			return StateRunning
		}
	}
	return g.state
}

// settle advances the state machine until it reaches a fixed point.
// Every pass through WaitingForPlayers runs the match-over check, even
// when a held serve moves on to Running in the same frame.
func (g *Game) settle(in Input) {
	for range stateCount {
		if g.state == StateWaitingForPlayers {
			g.waitForPlayers()
		}
		next := g.transition(in)
		if next == g.state {
			return
		}
		g.changeState(next)
	}
}

// changeState switches state and runs the entry action of the new state.
func (g *Game) changeState(next State) {
	g.logger.Debug("state change", "from", g.state, "to", next)
	g.state = next

	if next == StateLoadingGameEnvironment {
		g.loadEnvironment()
	}
}

// loadEnvironment places the ball and both paddles for a new round.
// The score is kept.
func (g *Game) loadEnvironment() {
	size := g.field
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("pong: invalid field size %vx%v", size.X, size.Y))
	}

	w := &g.world
	w.Size = size

	center := size.Half()
	w.Ball = Ball{NewEntity(center, core.V2(BallSize, BallSize))}
	w.Ball.Velocity = core.V2(ServeVelocityX, ServeVelocityY)

	paddleScale := core.V2(PaddleWidth, PaddleHeight)
	w.Paddles[SideLeft] = Paddle{NewEntity(core.V2(size.X*LeftPaddleX, center.Y), paddleScale)}
	w.Paddles[SideRight] = Paddle{NewEntity(core.V2(size.X*RightPaddleX, center.Y), paddleScale)}
}

// waitForPlayers requests quit once either side has won.
func (g *Game) waitForPlayers() {
	if g.MatchOver() && !g.quitRequested {
		winner, _ := g.Winner()
		g.logger.Info("match over", "winner", winner, "left", g.score[SideLeft], "right", g.score[SideRight])
		g.quitRequested = true
	}
}
