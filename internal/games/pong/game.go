// Package pong implements a two-paddle Pong match against a CPU opponent.
// The left paddle follows the keyboard and the right paddle tracks the
// ball. Frontends feed input and elapsed time into Update and draw the
// result through a Renderer.
package pong

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Score layout for the tally marks drawn along the top of the field.
const (
	tallyWidth   = 4.0
	tallyHeight  = 16.0
	tallySpacing = 10.0
	tallyMargin  = 20.0
	promptSize   = 16.0
)

// Game owns the world, the score and the flow state of one match.
type Game struct {
	state         State
	field         core.Vec2
	world         World
	score         [2]int
	quitRequested bool
	frame         uint64

	audio  Audio
	logger *log.Logger
	stats  Stats
}

// Option configures a Game.
type Option func(*Game)

// WithAudio sets the sound-effect sink.
func WithAudio(a Audio) Option {
	return func(g *Game) {
		if a != nil {
			g.audio = a
		}
	}
}

// WithLogger sets the logger used for flow and scoring messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game in StateInitializing. The first Update loads the
// environment and waits for a serve.
func New(opts ...Option) *Game {
	g := &Game{
		state:  StateInitializing,
		field:  core.V2(FieldWidth, FieldHeight),
		audio:  NopAudio{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Update advances the game by dt seconds using the given input.
func (g *Game) Update(in Input, dt float64) {
	g.frame++
	g.settle(in)

	if g.state == StateRunning {
		g.applyPolicies(in)
		for i := range g.world.Paddles {
			UpdatePaddle(&g.world.Paddles[i], g.world.Size, dt)
		}
		g.UpdateBall(dt)
	}
}

// Step is Update for a platform input frame.
func (g *Game) Step(in core.InputFrame, dt float64) {
	g.Update(InputFromFrame(in), dt)
}

// emit forwards an event to the audio sink and records it.
func (g *Game) emit(e Event) {
	g.stats.record(e)
	g.audio.Play(e)
}

// State returns the current flow state.
func (g *Game) State() State {
	return g.state
}

// World returns a copy of the simulated field.
func (g *Game) World() World {
	return g.world
}

// Score returns the points of both sides, indexed by Side.
func (g *Game) Score() [2]int {
	return g.score
}

// QuitRequested reports whether the match has ended and the host should exit.
func (g *Game) QuitRequested() bool {
	return g.quitRequested
}

// MatchOver reports whether either side has reached WinScore.
func (g *Game) MatchOver() bool {
	return g.score[SideLeft] >= WinScore || g.score[SideRight] >= WinScore
}

// Winner returns the side that won the match, if it is over.
func (g *Game) Winner() (Side, bool) {
	switch {
	case g.score[SideLeft] >= WinScore:
		return SideLeft, true
	case g.score[SideRight] >= WinScore:
		return SideRight, true
	default:
		return SideLeft, false
	}
}

// Stats returns the rally statistics gathered so far.
func (g *Game) Stats() Stats {
	return g.stats
}

// Render draws the current frame.
func (g *Game) Render(r Renderer) {
	r.PreRender()
	defer r.PostRender()

	if g.state == StateInitializing || g.state == StateInvalid {
		return
	}

	w := &g.world
	r.PrepareQuadPass()
	r.RenderQuad(w.Ball.Pos, w.Ball.Scale)
	for i := range w.Paddles {
		r.RenderQuad(w.Paddles[i].Pos, w.Paddles[i].Scale)
	}
	g.renderTally(r)

	if g.state == StateWaitingForPlayers {
		r.PrepareTextPass()
		r.RenderText(g.Prompt(), core.V2(w.Size.X/2, w.Size.Y*0.75), promptSize)
	}
}

// renderTally draws one mark per point, growing outward from the centre line.
func (g *Game) renderTally(r Renderer) {
	w := &g.world
	y := w.Size.Y - tallyMargin
	scale := core.V2(tallyWidth, tallyHeight)

	for i := range g.score[SideLeft] {
		x := w.Size.X/2 - tallyMargin - float64(i)*tallySpacing
		r.RenderQuad(core.V2(x, y), scale)
	}
	for i := range g.score[SideRight] {
		x := w.Size.X/2 + tallyMargin + float64(i)*tallySpacing
		r.RenderQuad(core.V2(x, y), scale)
	}
}

// Prompt returns the text shown while waiting for a serve.
func (g *Game) Prompt() string {
	if winner, ok := g.Winner(); ok {
		if winner == SideLeft {
			return "YOU WIN!"
		}
		return "CPU WINS!"
	}
	return "Press SPACE to serve"
}

// Stats tracks rally statistics for the match journal.
type Stats struct {
	PaddleHits   int
	WallHits     int
	Rally        int // Paddle hits in the current rally
	LongestRally int
	Rallies      int // Completed rallies, one per point
}

func (s *Stats) record(e Event) {
	switch e {
	case EventPaddleHit:
		s.PaddleHits++
		s.Rally++
		s.LongestRally = max(s.LongestRally, s.Rally)
	case EventWallHit:
		s.WallHits++
	}
}

func (s *Stats) endRally() {
	s.Rallies++
	s.Rally = 0
}
