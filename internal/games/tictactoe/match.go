// Package tictactoe implements the strategy game: three in a row on a 3x3
// board, played against the minimax computer or hot-seat by two players.
// Results feed a persisted x/o/draws scoreboard.
package tictactoe

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/minimax"
	"github.com/vovakirdan/arcade-engines/internal/registry"
	"github.com/vovakirdan/arcade-engines/internal/storage"
)

// Mode selects the opponent.
type Mode int

const (
	// VsComputer puts the human on X, moving first, against the search on O.
	VsComputer Mode = iota
	// TwoPlayer alternates X and O on the same keyboard.
	TwoPlayer
)

func (m Mode) String() string {
	if m == TwoPlayer {
		return "two players"
	}
	return "vs computer"
}

// Human is the mark the player controls against the computer.
const Human = minimax.X

// Match is one running game plus the scoreboard it reports into.
type Match struct {
	mode   Mode
	board  minimax.Board
	turn   minimax.Mark
	winner minimax.Mark
	line   [3]int
	draw   bool
	cursor int

	scores storage.TicTacToeScores
	gw     storage.Gateway
	log    *log.Logger
}

// New creates a match in the given mode with no persistence.
func New(mode Mode) *Match {
	m := &Match{mode: mode, log: log.New(io.Discard)}
	m.NewRound()
	return m
}

func init() {
	registry.Register("tictactoe", func(opts registry.Options) (registry.Game, error) {
		return New(VsComputer), nil
	})
}

// ID returns the game identifier.
func (m *Match) ID() string { return "tictactoe" }

// Title returns the display name.
func (m *Match) Title() string { return "Tic-Tac-Toe" }

// Path returns the persistence path.
func (m *Match) Path() string { return "/tic-tac-toe" }

// Bind attaches the gateway and loads the stored scoreboard. A missing or
// unreadable scoreboard starts from zero.
func (m *Match) Bind(gw storage.Gateway, logger *log.Logger) {
	m.gw = gw
	if logger != nil {
		m.log = logger
	}
	if gw == nil {
		return
	}
	scores, err := storage.ReadTicTacToeScores(gw)
	if err != nil {
		m.log.Warn("could not load tic-tac-toe scores", "error", err)
	}
	m.scores = scores
}

// SetMode switches the opponent and starts a new round.
func (m *Match) SetMode(mode Mode) {
	m.mode = mode
	m.NewRound()
}

// NewRound clears the board; X moves first. The scoreboard is kept.
func (m *Match) NewRound() {
	m.board = minimax.Board{}
	m.turn = minimax.X
	m.winner = minimax.Empty
	m.line = [3]int{}
	m.draw = false
	m.cursor = 4
}

// Play marks cell i for the side to move. Occupied cells, out-of-range
// indices, finished rounds and the computer's turn are rejected.
func (m *Match) Play(i int) bool {
	if i < 0 || i >= len(m.board) || m.board[i] != minimax.Empty || m.Over() {
		return false
	}
	if m.ComputerToMove() {
		return false
	}
	m.place(i)
	return true
}

// ComputerToMove reports whether the round waits for the computer's reply.
func (m *Match) ComputerToMove() bool {
	return m.mode == VsComputer && !m.Over() && m.turn != Human
}

// Reply lets the computer move. It returns the chosen cell, or false when
// it is not the computer's turn.
func (m *Match) Reply() (int, bool) {
	if !m.ComputerToMove() {
		return 0, false
	}
	i, ok := minimax.BestMove(m.board, m.turn)
	if !ok {
		return 0, false
	}
	m.place(i)
	return i, true
}

// Hint returns the best move for the side to move.
func (m *Match) Hint() (int, bool) {
	if m.Over() {
		return 0, false
	}
	return minimax.BestMove(m.board, m.turn)
}

// Evaluate returns the game value of the position for the side to move.
func (m *Match) Evaluate() int {
	return minimax.Evaluate(m.board, m.turn)
}

func (m *Match) place(i int) {
	m.board[i] = m.turn
	if w, line := minimax.Winner(m.board); w != minimax.Empty {
		m.winner, m.line = w, line
		m.finish()
		return
	}
	if minimax.Full(m.board) {
		m.draw = true
		m.finish()
		return
	}
	m.turn = m.turn.Other()
}

// finish updates the scoreboard and the shared counters.
func (m *Match) finish() {
	switch m.winner {
	case minimax.X:
		m.scores.X++
	case minimax.O:
		m.scores.O++
	default:
		m.scores.Draws++
	}
	m.log.Info("round over", "winner", m.winner, "draw", m.draw, "mode", m.mode)

	if m.gw == nil {
		return
	}
	if err := storage.WriteJSON(m.gw, storage.KeyTicTacToeScores, m.scores); err != nil {
		m.log.Warn("could not save tic-tac-toe scores", "error", err)
	}
	if err := storage.WriteInt(m.gw, storage.KeyTicTacToeHighScore, max(m.scores.X, m.scores.O)); err != nil {
		m.log.Warn("could not save tic-tac-toe high score", "error", err)
	}
	if _, err := storage.IncrementGamesPlayed(m.gw); err != nil {
		m.log.Warn("could not update games played", "error", err)
	}
}

// ResetScores zeroes and persists the scoreboard.
func (m *Match) ResetScores() {
	m.scores = storage.TicTacToeScores{}
	if m.gw == nil {
		return
	}
	if err := storage.WriteJSON(m.gw, storage.KeyTicTacToeScores, m.scores); err != nil {
		m.log.Warn("could not save tic-tac-toe scores", "error", err)
	}
}

// Over reports whether the round has a winner or is drawn.
func (m *Match) Over() bool { return m.winner != minimax.Empty || m.draw }

// Winner returns the winning mark and line; ok is false without a winner.
func (m *Match) Winner() (mark minimax.Mark, line [3]int, ok bool) {
	return m.winner, m.line, m.winner != minimax.Empty
}

// Draw reports a drawn round.
func (m *Match) Draw() bool { return m.draw }

// Board returns a copy of the board.
func (m *Match) Board() minimax.Board { return m.board }

// Turn returns the side to move.
func (m *Match) Turn() minimax.Mark { return m.turn }

// Mode returns the opponent mode.
func (m *Match) Mode() Mode { return m.mode }

// Scores returns the scoreboard.
func (m *Match) Scores() storage.TicTacToeScores { return m.scores }

// Cursor returns the selected cell.
func (m *Match) Cursor() int { return m.cursor }

// MoveCursor shifts the selection, stopping at the board edges.
func (m *Match) MoveCursor(d core.Direction) {
	x, y := m.cursor%3, m.cursor/3
	dx, dy := d.Delta()
	x = core.Clamp(x+dx, 0, 2)
	y = core.Clamp(y+dy, 0, 2)
	m.cursor = y*3 + x
}

// SetCursor selects cell i. Out-of-range indices are ignored.
func (m *Match) SetCursor(i int) {
	if i >= 0 && i < len(m.board) {
		m.cursor = i
	}
}

// PlayCursor plays the selected cell.
func (m *Match) PlayCursor() bool { return m.Play(m.cursor) }
