package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// UpdatePaddle integrates a paddle and clamps it vertically inside the
// field. Velocity is left untouched by the clamp. Bounds are recomputed
// after clamping so the same-frame ball collision sees the final position.
func UpdatePaddle(p *Paddle, field core.Vec2, dt float64) {
	p.Integrate(dt)

	half := p.Scale.Y / 2
	p.Pos.Y = core.ClampF(p.Pos.Y, half, field.Y-half)
	p.UpdateBounds()
}

// UpdateBall integrates the ball, bounces it off the top and bottom walls,
// resolves contact with each paddle and then checks for a point.
// A point moves the game back to StateLoadingGameEnvironment.
func (g *Game) UpdateBall(dt float64) {
	w := &g.world
	ball := &w.Ball

	ball.Integrate(dt)

	if bounceOffWalls(ball, w.Size) {
		g.emit(EventWallHit)
	}

	for i := range w.Paddles {
		if resolvePaddleHit(ball, &w.Paddles[i]) {
			g.emit(EventPaddleHit)
		}
	}

	switch {
	case ball.Pos.X < 0:
		g.scorePoint(SideRight)
	case ball.Pos.X > w.Size.X:
		g.scorePoint(SideLeft)
	}
}

// scorePoint credits a point and restarts the round.
func (g *Game) scorePoint(s Side) {
	g.score[s]++
	g.stats.endRally()

	g.logger.Info("point", "side", s, "left", g.score[SideLeft], "right", g.score[SideRight])
	g.changeState(StateLoadingGameEnvironment)
}
