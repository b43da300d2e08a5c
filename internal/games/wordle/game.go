// Package wordle implements the word-guessing game: six tries to find a
// five-letter word, with per-letter feedback and persisted statistics.
package wordle

import (
	"errors"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engines/internal/registry"
	"github.com/vovakirdan/arcade-engines/internal/spawn"
	"github.com/vovakirdan/arcade-engines/internal/storage"
)

const (
	// Rows is the number of guesses allowed.
	Rows = 6
	// Cols is the word length.
	Cols = 5
)

var (
	ErrFinished   = errors.New("wordle: game finished")
	ErrIncomplete = errors.New("wordle: guess needs five letters")
	ErrInvalid    = errors.New("wordle: guess must be letters only")
)

// Game is one round plus the statistics it reports into.
type Game struct {
	gen *spawn.Generator

	answer  string
	guesses []string
	marks   [][]Mark
	current []byte
	won     bool
	over    bool

	stats storage.WordleStats
	gw    storage.Gateway
	log   *log.Logger
}

// New creates a game drawing answers from rng. A nil rng is seeded with 1.
func New(rng *rand.Rand) *Game {
	g := &Game{gen: spawn.New(rng), log: log.New(io.Discard)}
	g.NewRound()
	return g
}

func init() {
	registry.Register("wordle", func(opts registry.Options) (registry.Game, error) {
		return New(nil), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "wordle" }

// Title returns the display name.
func (g *Game) Title() string { return "Wordle" }

// Path returns the persistence path.
func (g *Game) Path() string { return "/wordle" }

// Reseed replaces the answer source and starts a new round.
func (g *Game) Reseed(rng *rand.Rand) {
	g.gen = spawn.New(rng)
	g.NewRound()
}

// Bind attaches the gateway and loads the stored statistics.
func (g *Game) Bind(gw storage.Gateway, logger *log.Logger) {
	g.gw = gw
	if logger != nil {
		g.log = logger
	}
	if gw == nil {
		return
	}
	stats, err := storage.ReadWordleStats(gw)
	if err != nil {
		g.log.Warn("could not load wordle stats", "error", err)
	}
	g.stats = stats
}

// NewRound picks a fresh answer and clears the guesses.
func (g *Game) NewRound() {
	g.answer = Words[g.gen.Pick(len(Words))]
	g.guesses = g.guesses[:0]
	g.marks = g.marks[:0]
	g.current = g.current[:0]
	g.won = false
	g.over = false
}

// SetAnswer overrides the answer for the current round. Used to set up scenarios.
func (g *Game) SetAnswer(word string) {
	g.answer = strings.ToUpper(word)
}

// Type appends a letter to the pending guess. Non-letters, a full row and
// a finished round are ignored.
func (g *Game) Type(r rune) bool {
	if g.over || len(g.current) >= Cols {
		return false
	}
	switch {
	case r >= 'a' && r <= 'z':
		r -= 'a' - 'A'
	case r >= 'A' && r <= 'Z':
	default:
		return false
	}
	g.current = append(g.current, byte(r))
	return true
}

// Backspace removes the last pending letter.
func (g *Game) Backspace() {
	if len(g.current) > 0 {
		g.current = g.current[:len(g.current)-1]
	}
}

// Enter submits the pending guess.
func (g *Game) Enter() ([]Mark, error) {
	if g.over {
		return nil, ErrFinished
	}
	if len(g.current) != Cols {
		return nil, ErrIncomplete
	}
	marks, err := g.Guess(string(g.current))
	if err == nil {
		g.current = g.current[:0]
	}
	return marks, err
}

// Guess scores a whole word. The round ends on an exact match or after
// the last row.
func (g *Game) Guess(word string) ([]Mark, error) {
	if g.over {
		return nil, ErrFinished
	}
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) != Cols {
		return nil, ErrIncomplete
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return nil, ErrInvalid
		}
	}

	marks := Score(g.answer, word)
	g.guesses = append(g.guesses, word)
	g.marks = append(g.marks, marks)

	switch {
	case allHit(marks):
		g.won, g.over = true, true
		g.finish()
	case len(g.guesses) >= Rows:
		g.over = true
		g.finish()
	}
	return marks, nil
}

// finish updates played/won/streak and the shared counters.
func (g *Game) finish() {
	g.stats.Played++
	if g.won {
		g.stats.Won++
		g.stats.Streak++
	} else {
		g.stats.Streak = 0
	}
	g.log.Info("wordle over", "won", g.won, "guesses", len(g.guesses), "streak", g.stats.Streak)

	if g.gw == nil {
		return
	}
	if err := storage.WriteJSON(g.gw, storage.KeyWordleStats, g.stats); err != nil {
		g.log.Warn("could not save wordle stats", "error", err)
	}
	if err := storage.WriteInt(g.gw, storage.KeyWordleHighScore, g.stats.Won); err != nil {
		g.log.Warn("could not save wordle high score", "error", err)
	}
	if _, err := storage.IncrementGamesPlayed(g.gw); err != nil {
		g.log.Warn("could not update games played", "error", err)
	}
}

// KeyState returns the strongest feedback a letter has received.
func (g *Game) KeyState(r rune) Mark {
	best := Unknown
	for i, word := range g.guesses {
		for j := 0; j < len(word); j++ {
			if rune(word[j]) == r && g.marks[i][j] > best {
				best = g.marks[i][j]
			}
		}
	}
	return best
}

// Answer returns the hidden word.
func (g *Game) Answer() string { return g.answer }

// Guesses returns the submitted words.
func (g *Game) Guesses() []string { return append([]string(nil), g.guesses...) }

// Marks returns the feedback for guess i.
func (g *Game) Marks(i int) []Mark {
	if i < 0 || i >= len(g.marks) {
		return nil
	}
	return append([]Mark(nil), g.marks[i]...)
}

// Current returns the pending letters.
func (g *Game) Current() string { return string(g.current) }

// Over reports a finished round.
func (g *Game) Over() bool { return g.over }

// Won reports a solved round.
func (g *Game) Won() bool { return g.won }

// Stats returns the persisted statistics.
func (g *Game) Stats() storage.WordleStats { return g.stats }

// WinRate returns the percentage of rounds won, rounded to the nearest integer.
func (g *Game) WinRate() int {
	if g.stats.Played == 0 {
		return 0
	}
	return (g.stats.Won*100 + g.stats.Played/2) / g.stats.Played
}
