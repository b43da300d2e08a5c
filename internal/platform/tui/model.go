package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engines/internal/clock"
	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/engine"
	"github.com/vovakirdan/arcade-engines/internal/games/tictactoe"
	"github.com/vovakirdan/arcade-engines/internal/games/wordle"
	"github.com/vovakirdan/arcade-engines/internal/registry"
	"github.com/vovakirdan/arcade-engines/internal/storage"
)

// Backend is the persistence the front end writes to: the key-value
// gateway plus the score history.
type Backend interface {
	storage.Gateway
	engine.Recorder
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// Env carries what every screen needs.
type Env struct {
	Backend Backend
	Logger  *log.Logger
	Runtime core.RuntimeConfig
	Options registry.Options
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// pointerMapper is implemented by games that take pointer input. It maps
// a terminal cell to game coordinates.
type pointerMapper interface {
	PointerAt(col, row, w, h int) core.PointF
}

// Model is the Bubble Tea model for running timed games. The session owns
// the simulation clock; the model only forwards input and redraws.
type Model struct {
	game     registry.Timed
	session  *engine.Session
	screen   *core.Screen
	keys     *KeyMapper
	help     help.Model
	config   core.RuntimeConfig
	showHelp bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Timed, env Env) Model {
	cfg := env.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sc := engine.Config{
		GameID: game.ID(),
		Path:   game.Path(),
		Curve:  game.Curve(),
		Seed:   cfg.Seed,
		Clock:  clock.Real(),
		Logger: env.logger(),
	}
	if env.Backend != nil {
		sc.Gateway = env.Backend
		sc.Recorder = env.Backend
	}

	return Model{
		game:    game,
		session: engine.NewSession(game, sc),
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:    NewKeyMapper(),
		help:    help.New(),
		config:  cfg,
	}
}

// Session returns the session driven by the model.
func (m Model) Session() *engine.Session {
	return m.session
}

// Init starts the redraw loop. The session itself starts on the first
// game input.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.session.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionRestart:
		if st := m.session.Status(); st == engine.Over || st == engine.Paused {
			m.session.Reseed(time.Now().UnixNano())
		}
	case core.ActionPause:
		m.session.Submit(action)
	default:
		m.submit(action)
	}
	return m, nil
}

// submit forwards a game action, starting a fresh session unless the
// game waits for its first jump.
func (m Model) submit(a core.Action) {
	if m.session.Status() == engine.NotStarted {
		if l, ok := m.game.(engine.Launcher); !ok || !l.StartsOnJump() {
			m.session.Start()
		}
	}
	m.session.Submit(a)
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	pm, ok := m.game.(pointerMapper)
	if !ok {
		return
	}
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return
	}
	if m.session.Status() == engine.NotStarted && msg.Action == tea.MouseActionPress {
		m.session.Start()
	}
	m.session.SubmitPointer(pm.PointerAt(msg.X, msg.Y, m.screen.Width(), m.screen.Height()))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.View(func(_ engine.Rules, _ engine.State) {
		m.game.Render(m.screen)
	})

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var st engine.State
	m.session.View(func(_ engine.Rules, s engine.State) {
		st = s
		m.game.Render(m.screen)
	})
	overlay(m.screen, st)

	bottom := statusLine(m.game.Title(), st)
	if m.showHelp {
		bottom = helpStyle.Render(m.help.View(m.keys.Keys()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), bottom)
}

// overlay draws the lifecycle message over the game field.
func overlay(s *core.Screen, st engine.State) {
	switch st.Status {
	case engine.NotStarted:
		s.DrawMessage("READY", "Press an arrow or SPACE to start")
	case engine.Paused:
		s.DrawMessage("PAUSED", "P to resume, R to restart")
	case engine.Over:
		title := "GAME OVER"
		if st.Won {
			title = "YOU WIN"
		}
		s.DrawMessage(title, fmt.Sprintf("Score %d  R to restart, Q to quit", st.Score))
	}
}

func statusLine(title string, st engine.State) string {
	return statusStyle.Render(fmt.Sprintf("%s  Score %d  Best %d  Level %d", title, st.Score, st.Best, st.Level)) +
		helpStyle.Render("  "+st.Status.String()+"  ? help")
}

// Run starts the Bubble Tea program for a registered game.
func Run(gameID string, env Env) error {
	g, err := registry.Create(gameID, env.Options)
	if err != nil {
		return err
	}
	if b, ok := g.(registry.Bound); ok && env.Backend != nil {
		b.Bind(env.Backend, env.logger().With("game", gameID))
	}

	model, err := modelFor(g, env)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err = p.Run()
	return err
}

func modelFor(g registry.Game, env Env) (tea.Model, error) {
	switch g := g.(type) {
	case registry.Timed:
		return NewModel(g, env), nil
	case *tictactoe.Match:
		return NewTicTacToeModel(g, env), nil
	case *wordle.Game:
		return NewWordleModel(g, env), nil
	}
	return nil, fmt.Errorf("tui: no front end for game %q", g.ID())
}
