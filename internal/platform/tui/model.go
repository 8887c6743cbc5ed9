package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// statusLines is the number of rows below the field used by the status bar.
const statusLines = 1

// Journal records finished matches.
type Journal interface {
	SaveMatch(m storage.Match) (int64, error)
}

// Options configures a terminal game session.
type Options struct {
	Runtime    core.RuntimeConfig
	Theme      Theme
	HoldWindow time.Duration

	Journal  Journal     // Optional
	Audio    pong.Audio  // Optional
	Logger   *log.Logger // Optional
	Lipgloss *lipgloss.Renderer

	Frontend string // Journal label: "terminal" or "ssh"
	Player   string

	// ScreenshotDir enables ctrl+s when non-empty.
	ScreenshotDir string
	// Clipboard enables ctrl+y when non-nil.
	Clipboard func(string) error
}

// Model is the Bubble Tea model for one match.
type Model struct {
	game     *pong.Game
	screen   *core.Screen
	renderer *ScreenRenderer
	palette  Palette
	styles   statusStyles
	keys     KeyMap
	help     help.Model
	held     *core.KeyState
	opts     Options
	logger   *log.Logger
	now      func() time.Time

	started  time.Time
	lastTick time.Time
	paused   bool
	quitting bool
	saved    *bool // Shared across model copies so the journal is written once
	status   string
}

type statusStyles struct {
	score  lipgloss.Style
	paused lipgloss.Style
	note   lipgloss.Style
	help   lipgloss.Style
}

// NewModel creates a Bubble Tea model running a fresh game.
func NewModel(opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Frontend == "" {
		opts.Frontend = "terminal"
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	game := pong.New(
		pong.WithAudio(opts.Audio),
		pong.WithLogger(logging.Category(logger, logging.CategorySim)),
	)

	screen := core.NewScreen(opts.Runtime.ScreenW, max(0, opts.Runtime.ScreenH-statusLines))
	lg := opts.Lipgloss
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Runtime.ScreenW

	saved := false
	return Model{
		game:     game,
		screen:   screen,
		renderer: NewScreenRenderer(screen, core.V2(pong.FieldWidth, pong.FieldHeight), opts.Theme),
		palette:  NewPalette(lg),
		styles: statusStyles{
			score:  lg.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
			paused: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
			note:   lg.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
			help:   lg.NewStyle().Foreground(lipgloss.Color("241")),
		},
		keys:    DefaultKeyMap(),
		help:    h,
		held:    core.NewKeyState(opts.HoldWindow),
		opts:    opts,
		logger:  logging.Category(logger, logging.CategoryTUI),
		now:     time.Now,
		started: time.Now(),
		saved:   &saved,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "frontend", m.opts.Frontend, "player", m.opts.Player)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.status = m.copyFrame()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.held.Reset()
		// Drop the paused interval so it is not integrated on resume.
		m.lastTick = time.Time{}
	case core.ActionNone:
	default:
		if !m.paused {
			m.held.Press(action, m.now())
		}
	}

	return m, nil
}

// handleResize processes terminal resize events. The field is rescaled;
// the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-statusLines))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	m.game.Step(m.held.Frame(now), dt)

	if m.game.QuitRequested() {
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// finish writes the journal entry once.
func (m Model) finish() {
	if *m.saved {
		return
	}
	*m.saved = true

	score := m.game.Score()
	m.logger.Info("match finished",
		"player", m.opts.Player,
		"left", score[pong.SideLeft],
		"right", score[pong.SideRight],
	)

	if m.opts.Journal == nil {
		return
	}
	entry := storage.MatchFromGame(m.game, m.opts.Frontend, m.opts.Player, m.started, m.now())
	if _, err := m.opts.Journal.SaveMatch(entry); err != nil {
		m.logger.Warn("could not save match", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() string {
	if m.opts.ScreenshotDir == "" {
		return "screenshots disabled"
	}

	m.game.Render(m.renderer)
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}

	name := fmt.Sprintf("pong_%s.txt", m.now().Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	return "saved " + name
}

// copyFrame puts the current frame and a state summary on the clipboard.
func (m Model) copyFrame() string {
	if m.opts.Clipboard == nil {
		return "clipboard unavailable"
	}

	m.game.Render(m.renderer)
	text := m.screen.String() + "\n" + m.game.Snapshot().String() + "\n"
	if err := m.opts.Clipboard(text); err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		return "copy failed"
	}
	return "frame copied"
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.renderer)
	return RenderScreen(m.screen, m.palette) + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	score := m.game.Score()
	bar := m.styles.score.Render(fmt.Sprintf("YOU %d : %d CPU", score[pong.SideLeft], score[pong.SideRight]))

	if m.paused {
		bar += "  " + m.styles.paused.Render("PAUSED")
	}
	if m.status != "" {
		bar += "  " + m.styles.note.Render(m.status)
	}
	return bar + "  " + m.styles.help.Render(m.help.View(m.keys))
}

// Game returns the game driven by the model.
func (m Model) Game() *pong.Game {
	return m.game
}

// Paused reports whether the frontend is paused.
func (m Model) Paused() bool {
	return m.paused
}

// SystemClipboard writes to the local clipboard.
func SystemClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// Run starts a local terminal session and returns the finished game.
func Run(opts Options) (*pong.Game, error) {
	model := NewModel(opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	if m, ok := final.(Model); ok {
		return m.Game(), nil
	}
	return model.Game(), nil
}
