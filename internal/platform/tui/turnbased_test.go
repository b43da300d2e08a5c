package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/games/tictactoe"
	"github.com/vovakirdan/arcade-engines/internal/games/wordle"
	"github.com/vovakirdan/arcade-engines/internal/minimax"
	"github.com/vovakirdan/arcade-engines/internal/storage"
)

func testEnv() Env {
	return Env{
		Backend: storage.NewMemory(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7},
	}
}

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func TestTicTacToeModelTwoPlayer(t *testing.T) {
	match := tictactoe.New(tictactoe.TwoPlayer)
	m := NewTicTacToeModel(match, testEnv())

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	// X centre, cursor up, O top middle.
	send(t, m, enter, tea.KeyMsg{Type: tea.KeyUp}, enter)

	b := match.Board()
	if b[4] != minimax.X || b[1] != minimax.O {
		t.Errorf("board = %v, want X at 4 and O at 1", b)
	}
}

func TestTicTacToeModelComputerReplies(t *testing.T) {
	match := tictactoe.New(tictactoe.VsComputer)
	m := NewTicTacToeModel(match, testEnv())

	m2, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a delayed reply command after the human move")
	}
	if !match.ComputerToMove() {
		t.Fatal("computer should be to move")
	}

	send(t, m2, replyMsg{})
	if match.ComputerToMove() {
		t.Error("computer did not reply")
	}
	marks := 0
	for _, c := range match.Board() {
		if c != minimax.Empty {
			marks++
		}
	}
	if marks != 2 {
		t.Errorf("marks on board = %d, want 2", marks)
	}
}

func TestTicTacToeModelHint(t *testing.T) {
	match := tictactoe.New(tictactoe.TwoPlayer)
	m := NewTicTacToeModel(match, testEnv())

	// X on 0 and 1, O on 4: X to move wins on 2.
	for _, i := range []int{0, 4, 1} {
		if !match.Play(i) {
			t.Fatalf("Play(%d) rejected", i)
		}
	}
	// O to move must block on 2.
	next, _ := send(t, m, runes("h"))
	if match.Cursor() != 2 {
		t.Errorf("cursor = %d, want hint cell 2", match.Cursor())
	}
	hint := next.(TicTacToeModel).hint
	if hint == "" {
		t.Fatal("expected a hint line")
	}
	if !containsPlain(hint, "cell 3") || !containsPlain(hint, "draw") {
		t.Errorf("hint = %q, want cell 3 with a draw outlook", hint)
	}

	// Any other key clears the hint.
	next, _ = send(t, next, tea.KeyMsg{Type: tea.KeyLeft})
	if next.(TicTacToeModel).hint != "" {
		t.Error("hint should clear on the next key")
	}
}

func TestTicTacToeModelModeToggle(t *testing.T) {
	match := tictactoe.New(tictactoe.VsComputer)
	m := NewTicTacToeModel(match, testEnv())
	send(t, m, runes("m"))
	if match.Mode() != tictactoe.TwoPlayer {
		t.Errorf("mode = %v, want two players", match.Mode())
	}
}

func TestWordleModelTypingAndGuess(t *testing.T) {
	g := wordle.New(nil)
	m := NewWordleModel(g, testEnv())
	g.SetAnswer("CRANE")

	m2, _ := send(t, m, runes("cra"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := m2.(WordleModel).notice; got == "" {
		t.Error("expected a notice for an incomplete guess")
	}
	if g.Current() != "CRA" {
		t.Errorf("current = %q, want CRA", g.Current())
	}

	send(t, m2, tea.KeyMsg{Type: tea.KeyBackspace}, runes("ane"), tea.KeyMsg{Type: tea.KeyEnter})
	if !g.Won() {
		t.Errorf("guesses = %v, want CRANE to win", g.Guesses())
	}
}

func TestWordleModelWin(t *testing.T) {
	g := wordle.New(nil)
	m := NewWordleModel(g, testEnv())
	g.SetAnswer("CRANE")

	send(t, m, runes("crane"), tea.KeyMsg{Type: tea.KeyEnter})
	if !g.Won() || !g.Over() {
		t.Fatalf("won=%v over=%v, want a win", g.Won(), g.Over())
	}

	// Enter on a finished round starts the next one.
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if g.Over() || len(g.Guesses()) != 0 {
		t.Error("enter after the round should start a new one")
	}
}

func TestMenuListsBestScores(t *testing.T) {
	mem := storage.NewMemory()
	if err := storage.WriteInt(mem, storage.HighScoreKey("/wordle"), 3); err != nil {
		t.Fatal(err)
	}
	m := NewMenuModel(mem, core.DefaultConfig())

	found := false
	for i, item := range m.items {
		if item.GameID != "wordle" {
			continue
		}
		found = true
		if item.Best != 3 {
			t.Errorf("wordle best = %d, want 3", item.Best)
		}
		m.cursor = i
	}
	if !found {
		t.Fatal("wordle missing from menu")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := next.(MenuModel).Selected()
	if sel == nil || sel.GameID != "wordle" {
		t.Errorf("selected = %v, want wordle", sel)
	}
}
