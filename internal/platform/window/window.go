// Package window runs the game in a desktop window using ebiten.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Journal records finished matches.
type Journal interface {
	SaveMatch(m storage.Match) (int64, error)
}

// Options configures a window session.
type Options struct {
	Title  string
	Scale  float64
	Colors Colors

	Journal   Journal     // Optional
	Audio     pong.Audio  // Optional
	Logger    *log.Logger // Optional
	Player    string
	Clipboard func(string) error // Optional, enables ctrl+y
}

// heldKeys are polled every frame for held actions.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionServe: {ebiten.KeySpace},
}

// Game adapts a pong.Game to ebiten.Game.
type Game struct {
	game     *pong.Game
	renderer *Renderer
	opts     Options
	logger   *log.Logger

	pressed  func(ebiten.Key) bool
	now      func() time.Time
	prevKeys map[ebiten.Key]bool

	started time.Time
	last    time.Time
	paused  bool
	saved   bool
	status  string
}

// New creates a window adapter running a fresh game.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Game{
		game: pong.New(
			pong.WithAudio(opts.Audio),
			pong.WithLogger(logging.Category(logger, logging.CategorySim)),
		),
		renderer: NewRenderer(core.V2(pong.FieldWidth, pong.FieldHeight), opts.Scale, opts.Colors),
		opts:     opts,
		logger:   logging.Category(logger, logging.CategoryWindow),
		pressed:  ebiten.IsKeyPressed,
		now:      time.Now,
		prevKeys: make(map[ebiten.Key]bool),
		started:  time.Now(),
	}
}

// justPressed reports a key going down this frame.
func (g *Game) justPressed(k ebiten.Key) bool {
	down := g.pressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = down
	return down && !was
}

// input polls the held action keys.
func (g *Game) input() core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range heldKeys {
		for _, k := range keys {
			if g.pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}

// Update runs one simulation frame.
func (g *Game) Update() error {
	ctrl := g.pressed(ebiten.KeyControl)

	quit := g.justPressed(ebiten.KeyQ)
	pause := g.justPressed(ebiten.KeyP)
	if g.justPressed(ebiten.KeyEscape) {
		pause = true
	}
	if g.justPressed(ebiten.KeyY) && ctrl {
		g.status = g.copyFrame()
	}

	if quit {
		g.finish()
		return ebiten.Termination
	}
	if pause {
		g.paused = !g.paused
		g.last = time.Time{}
	}
	if g.paused {
		return nil
	}

	now := g.now()
	var dt float64
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.game.Step(g.input(), dt)

	if g.game.QuitRequested() {
		g.finish()
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Target(screen)
	g.game.Render(withStatus{Renderer: g.renderer, line: g.statusLine()})
}

// statusLine is the score bar shown at the top of the window.
func (g *Game) statusLine() string {
	score := g.game.Score()
	line := fmt.Sprintf("YOU %d : %d CPU", score[pong.SideLeft], score[pong.SideRight])
	if g.paused {
		line += "  PAUSED"
	}
	if g.status != "" {
		line += "  " + g.status
	}
	return line
}

// withStatus draws a status line as the last text of the frame, before
// the wrapped renderer closes it.
type withStatus struct {
	pong.Renderer
	line string
}

func (w withStatus) PostRender() {
	w.PrepareTextPass()
	w.RenderText(w.line, core.V2(pong.FieldWidth/2, pong.FieldHeight-12), 12)
	w.Renderer.PostRender()
}

// Layout returns the fixed logical size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.renderer.Size()
}

// finish writes the journal entry once.
func (g *Game) finish() {
	if g.saved {
		return
	}
	g.saved = true

	score := g.game.Score()
	g.logger.Info("match finished", "left", score[pong.SideLeft], "right", score[pong.SideRight])

	if g.opts.Journal == nil {
		return
	}
	entry := storage.MatchFromGame(g.game, "window", g.opts.Player, g.started, g.now())
	if _, err := g.opts.Journal.SaveMatch(entry); err != nil {
		g.logger.Warn("could not save match", "error", err)
	}
}

func (g *Game) copyFrame() string {
	if g.opts.Clipboard == nil {
		return "clipboard unavailable"
	}
	if err := g.opts.Clipboard(g.game.Snapshot().String() + "\n"); err != nil {
		g.logger.Warn("clipboard write failed", "error", err)
		return "copy failed"
	}
	return "state copied"
}

// Pong returns the game driven by the window.
func (g *Game) Pong() *pong.Game {
	return g.game
}

// Run opens the window and blocks until the match ends or the window closes.
func Run(opts Options) (*pong.Game, error) {
	if opts.Title == "" {
		opts.Title = "Pong"
	}
	g := New(opts)

	w, h := g.renderer.Size()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(w, h)

	err := ebiten.RunGame(g)
	// Closing the window ends the session like a quit.
	g.finish()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return g.game, fmt.Errorf("window: %w", err)
	}
	return g.game, nil
}
