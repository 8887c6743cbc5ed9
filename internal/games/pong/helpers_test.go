package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

type recordingAudio struct {
	events []Event
}

func (a *recordingAudio) Play(e Event) {
	a.events = append(a.events, e)
}

func (a *recordingAudio) count(e Event) int {
	n := 0
	for _, got := range a.events {
		if got == e {
			n++
		}
	}
	return n
}

// newRunningGame returns a freshly loaded game already in StateRunning.
func newRunningGame(t *testing.T) (*Game, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	g := New(WithAudio(audio))
	g.state = StateRunning
	g.loadEnvironment()
	return g, audio
}

// placeBall puts the ball at pos with the given velocity.
func placeBall(g *Game, pos, vel core.Vec2) {
	g.world.Ball.Pos = pos
	g.world.Ball.Velocity = vel
	g.world.Ball.UpdateBounds()
}
