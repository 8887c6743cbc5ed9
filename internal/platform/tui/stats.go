package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Stats browser layout constants
const (
	maxMatches    = 100 // Max journal entries to load
	tableChrome   = 9   // Rows used by title, summary, borders and help
	minTableRows  = 3
	dateColumnMin = 12
)

// MatchSource is the read side of the match journal.
type MatchSource interface {
	RecentMatches(limit int) ([]storage.Match, error)
	Summary() (*storage.Summary, error)
}

// StatsKeyMap defines the key bindings for the stats browser.
type StatsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Refresh, k.Quit}}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the match journal browser.
type StatsModel struct {
	source   MatchSource
	matches  []storage.Match
	summary  storage.Summary
	err      error
	table    table.Model
	help     help.Model
	keys     StatsKeyMap
	width    int
	height   int
	quitting bool
}

// NewStatsModel creates a new stats browser.
func NewStatsModel(source MatchSource, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := StatsModel{
		source: source,
		keys:   DefaultStatsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// statsColumns returns the table columns sized for the given width.
func statsColumns(width int) []table.Column {
	columns := []table.Column{
		{Title: "Date", Width: dateColumnMin},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 8},
		{Title: "Rally", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Player", Width: 12},
	}

	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := width - 6 - used; extra > 0 {
		columns[len(columns)-1].Width += min(extra, 20)
	}
	return columns
}

// createTable creates a new table with appropriate columns.
func (m *StatsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(statsColumns(m.width)),
		table.WithFocused(true),
		table.WithHeight(max(minTableRows, m.height-tableChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the journal into the table.
func (m *StatsModel) load() {
	m.err = nil
	if m.source == nil {
		m.matches = nil
		m.table.SetRows(nil)
		return
	}

	matches, err := m.source.RecentMatches(maxMatches)
	if err != nil {
		m.err = err
		m.matches = nil
	} else {
		m.matches = matches
	}

	if sum, err := m.source.Summary(); err == nil {
		m.summary = *sum
	} else if m.err == nil {
		m.err = err
	}

	m.table.SetRows(MatchRows(m.matches))
	m.table.GotoTop()
}

// MatchRows formats journal entries as table rows.
func MatchRows(matches []storage.Match) []table.Row {
	rows := make([]table.Row, len(matches))
	for i, mt := range matches {
		rows[i] = table.Row{
			mt.StartedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d:%d", mt.LeftScore, mt.RightScore),
			resultLabel(mt),
			fmt.Sprintf("%d", mt.LongestRally),
			formatDuration(mt.Duration),
			mt.Player,
		}
	}
	return rows
}

func resultLabel(mt storage.Match) string {
	switch mt.Winner {
	case "left":
		return "won"
	case "right":
		return "lost"
	default:
		return "quit"
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// SummaryLine formats the journal summary.
func SummaryLine(s storage.Summary) string {
	if s.Matches == 0 {
		return "No matches recorded yet."
	}
	return fmt.Sprintf("%d matches  %d won  %d lost  %d unfinished  points %d:%d  longest rally %d",
		s.Matches, s.Wins, s.Losses, s.Unfinished, s.PointsFor, s.PointsAgainst, s.LongestRally)
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats browser.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(MatchRows(m.matches))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats browser.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("MATCH JOURNAL", m.width)))
	b.WriteString("\n\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(summaryStyle.Render(centerText(SummaryLine(m.summary), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty/error message.
func (m StatsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not read the journal:\n" + m.err.Error())
	case len(m.matches) == 0:
		return emptyStyle.Render("No matches recorded yet.\nFinish a game to start the journal!")
	default:
		return m.table.View()
	}
}

// centerText pads text so it is centred in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunStats runs the match journal browser.
func RunStats(source MatchSource, width, height int) error {
	p := tea.NewProgram(NewStatsModel(source, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
