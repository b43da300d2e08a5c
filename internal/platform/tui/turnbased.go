package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/games/tictactoe"
	"github.com/vovakirdan/arcade-engines/internal/games/wordle"
)

// replyDelay is how long the computer "thinks" before answering.
const replyDelay = 500 * time.Millisecond

type replyMsg struct{}

func replyCmd() tea.Cmd {
	return tea.Tick(replyDelay, func(time.Time) tea.Msg { return replyMsg{} })
}

// TicTacToeModel drives a tic-tac-toe match from the keyboard.
type TicTacToeModel struct {
	match    *tictactoe.Match
	screen   *core.Screen
	keys     *KeyMapper
	title    string
	hint     string
	quitting bool
}

// NewTicTacToeModel creates the front end for a bound match.
func NewTicTacToeModel(match *tictactoe.Match, env Env) TicTacToeModel {
	return TicTacToeModel{
		match:  match,
		screen: core.NewScreen(env.Runtime.ScreenW, max(env.Runtime.ScreenH-1, 1)),
		keys:   NewKeyMapper(),
		title:  match.Title(),
	}
}

// Init implements tea.Model.
func (m TicTacToeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the match.
func (m TicTacToeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	case replyMsg:
		m.match.Reply()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m TicTacToeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.hint = ""
	switch msg.String() {
	case "h":
		m.hint = m.showHint()
		return m, nil
	case "enter", " ":
		if m.match.PlayCursor() && m.match.ComputerToMove() {
			return m, replyCmd()
		}
		return m, nil
	case "n", "r":
		m.match.NewRound()
		return m, nil
	case "m":
		next := tictactoe.TwoPlayer
		if m.match.Mode() == tictactoe.TwoPlayer {
			next = tictactoe.VsComputer
		}
		m.match.SetMode(next)
		return m, nil
	case "c":
		m.match.ResetScores()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if d := action.Direction(); d != core.DirNone {
		m.match.MoveCursor(d)
	}
	return m, nil
}

// showHint moves the cursor to the best move for the side to move and
// describes the outlook of the position.
func (m TicTacToeModel) showHint() string {
	i, ok := m.match.Hint()
	if !ok || m.match.ComputerToMove() {
		return ""
	}
	m.match.SetCursor(i)

	outlook := "draw"
	switch v := m.match.Evaluate(); {
	case v > 0:
		outlook = "win"
	case v < 0:
		outlook = "loss"
	}
	return fmt.Sprintf("Hint: cell %d, best play leads to a %s for %s", i+1, outlook, m.match.Turn())
}

// View renders the board and the key legend.
func (m TicTacToeModel) View() string {
	if m.quitting {
		return ""
	}
	m.match.Render(m.screen)
	legend := helpStyle.Render("arrows move  enter play  h hint  n new round  m mode  c clear scores  q quit")
	if m.hint != "" {
		legend = statusStyle.Render(m.hint)
	}
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), legend)
}

// WordleModel drives a wordle game from the keyboard. Letters are typed
// directly, so quitting uses esc or ctrl+c.
type WordleModel struct {
	game     *wordle.Game
	screen   *core.Screen
	notice   string
	quitting bool
}

// NewWordleModel creates the front end for a bound game and starts a
// round seeded from the runtime config.
func NewWordleModel(game *wordle.Game, env Env) WordleModel {
	seed := env.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reseed(rand.New(rand.NewSource(seed)))
	return WordleModel{
		game:   game,
		screen: core.NewScreen(env.Runtime.ScreenW, max(env.Runtime.ScreenH-1, 1)),
	}
}

// Init implements tea.Model.
func (m WordleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the game.
func (m WordleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m WordleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyCtrlN:
		m.game.NewRound()
	case tea.KeyBackspace:
		m.game.Backspace()
	case tea.KeyEnter:
		if m.game.Over() {
			m.game.NewRound()
			break
		}
		if _, err := m.game.Enter(); errors.Is(err, wordle.ErrIncomplete) {
			m.notice = "Not enough letters"
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.game.Type(r)
		}
	}
	return m, nil
}

// View renders the grid, the keyboard and any notice.
func (m WordleModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	bottom := helpStyle.Render("type letters  enter guess  ctrl+n new word  esc quit")
	if m.notice != "" {
		bottom = statusStyle.Render(m.notice)
	}
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), bottom)
}
