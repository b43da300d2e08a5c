package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engines/internal/registry"
	"github.com/vovakirdan/arcade-engines/internal/storage"
)

const (
	boardHistoryLimit = 100 // rows loaded per game
	boardListWidth    = 18  // width of the game column in the wide layout
	boardWideAt       = 78  // terminal width that fits the game column
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Prev, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Scroll, k.Prev, k.Next}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("up/down", "scroll")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("right/tab", "next game")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("left", "prev game")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the score history of one game at a time along
// with the stored best and, for turn-based games, their round totals.
type ScoreboardModel struct {
	games   []registry.GameInfo
	current int
	backend Backend

	history []storage.ScoreEntry
	best    int
	summary string

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(backend Backend, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:   registry.List(),
		backend: backend,
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= boardWideAt
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "Played", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
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

// load reads the selected game's history, best score and round totals.
func (m *ScoreboardModel) load() {
	m.history, m.best, m.summary = nil, 0, ""
	if len(m.games) == 0 || m.backend == nil {
		m.table.SetRows(nil)
		return
	}
	g := m.games[m.current]

	if rows, err := m.backend.TopScores(g.ID, boardHistoryLimit); err == nil {
		m.history = rows
	}
	//nolint:errcheck // Missing or corrupt values show as zero
	m.best, _ = storage.ReadInt(m.backend, storage.HighScoreKey(g.Path))

	switch g.Path {
	case "/wordle":
		if ws, err := storage.ReadWordleStats(m.backend); err == nil {
			m.summary = fmt.Sprintf("played %d  won %d  streak %d", ws.Played, ws.Won, ws.Streak)
		}
	case "/tic-tac-toe":
		if ts, err := storage.ReadTicTacToeScores(m.backend); err == nil {
			m.summary = fmt.Sprintf("X %d  O %d  draws %d", ts.X, ts.O, ts.Draws)
		}
	}

	rows := make([]table.Row, len(m.history))
	for i, e := range m.history {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Level),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) step(d int) {
	if n := len(m.games); n > 0 {
		m.current = (m.current + d + n) % n
		m.load()
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	if len(m.games) == 0 {
		return centerText("No games registered.", m.width)
	}

	g := m.games[m.current]
	header := boardTitleStyle.Render(centerText(fmt.Sprintf("SCORES  %s  best %d", g.Title, m.best), m.width))

	body := boardFrameStyle.Render(m.boardBody(g))
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, boardFrameStyle.Render(m.gameColumn()), " ", body)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, m.gameStrip(), body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, "", header, "", body, boardMutedStyle.Render(m.help.View(m.keys)))
}

func (m ScoreboardModel) boardBody(g registry.GameInfo) string {
	var b strings.Builder
	if m.summary != "" {
		b.WriteString(boardActiveStyle.Render(m.summary))
		b.WriteString("\n\n")
	}
	if len(m.history) > 0 {
		b.WriteString(m.table.View())
		return b.String()
	}
	if g.Timed {
		b.WriteString(boardMutedStyle.Italic(true).Render("No runs recorded yet."))
	} else if m.summary == "" {
		b.WriteString(boardMutedStyle.Italic(true).Render("No rounds played yet."))
	}
	return b.String()
}

// gameColumn lists every game for the wide layout.
func (m ScoreboardModel) gameColumn() string {
	lines := make([]string, len(m.games))
	for i, g := range m.games {
		name := truncate(g.Title, boardListWidth-2)
		if i == m.current {
			lines[i] = boardActiveStyle.Render("> " + name)
		} else {
			lines[i] = "  " + name
		}
	}
	return lipgloss.NewStyle().Width(boardListWidth).Render(strings.Join(lines, "\n"))
}

// gameStrip shows the neighbours of the selected game for narrow terminals.
func (m ScoreboardModel) gameStrip() string {
	n := len(m.games)
	prev := m.games[(m.current+n-1)%n].Title
	next := m.games[(m.current+1)%n].Title
	return centerText(boardMutedStyle.Render("< "+prev)+"  "+boardActiveStyle.Render(m.games[m.current].Title)+"  "+boardMutedStyle.Render(next+" >"), m.width)
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "."
	}
	return s
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(backend Backend, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(backend, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
