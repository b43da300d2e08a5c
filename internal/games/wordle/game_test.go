package wordle

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/arcade-engines/internal/storage"
)

func TestScore(t *testing.T) {
	tests := []struct {
		answer string
		guess  string
		want   []Mark
	}{
		{"CRANE", "CRANE", []Mark{Hit, Hit, Hit, Hit, Hit}},
		{"CRANE", "BOUGH", []Mark{Miss, Miss, Miss, Miss, Miss}},
		{"CRANE", "NACRE", []Mark{Present, Present, Present, Present, Hit}},
		// The only E goes to the hit.
		{"CRANE", "EERIE", []Mark{Miss, Miss, Present, Miss, Hit}},
		// One S is left after the hit; the first extra S takes it.
		{"CHESS", "SASSY", []Mark{Present, Miss, Miss, Hit, Miss}},
		{"PIANO", "PAPAL", []Mark{Hit, Present, Miss, Miss, Miss}},
	}
	for _, tt := range tests {
		t.Run(tt.answer+"/"+tt.guess, func(t *testing.T) {
			if got := Score(tt.answer, tt.guess); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypingAndEnter(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))
	g.SetAnswer("HOUSE")

	for _, r := range "ho1u" {
		g.Type(r)
	}
	if g.Current() != "HOU" {
		t.Fatalf("current = %q, want HOU", g.Current())
	}
	if _, err := g.Enter(); !errors.Is(err, ErrIncomplete) {
		t.Errorf("short enter err = %v, want ErrIncomplete", err)
	}

	g.Backspace()
	for _, r := range "USEX" {
		g.Type(r)
	}
	if g.Current() != "HOUSE" {
		t.Fatalf("current = %q, want HOUSE", g.Current())
	}
	marks, err := g.Enter()
	if err != nil {
		t.Fatal(err)
	}
	if !allHit(marks) || !g.Won() || !g.Over() {
		t.Error("exact guess should win")
	}
	if g.Type('A') {
		t.Error("typing after the round ended was accepted")
	}
}

func TestGuessValidation(t *testing.T) {
	g := New(nil)
	if _, err := g.Guess("AB1DE"); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
	if _, err := g.Guess("TOOLONG"); !errors.Is(err, ErrIncomplete) {
		t.Errorf("err = %v, want ErrIncomplete", err)
	}
	if len(g.Guesses()) != 0 {
		t.Error("rejected guesses must not use a row")
	}
}

func TestStatsAndStreak(t *testing.T) {
	mem := storage.NewMemory()
	g := New(rand.New(rand.NewSource(2)))
	g.Bind(mem, nil)

	rounds := []struct {
		win        bool
		wantStreak int
	}{
		{true, 1},
		{true, 2},
		{false, 0},
		{true, 1},
	}
	for i, r := range rounds {
		g.NewRound()
		g.SetAnswer("STORM")
		if r.win {
			g.Guess("STORM")
		} else {
			for j := 0; j < Rows; j++ {
				g.Guess("CLOUD")
			}
		}
		if !g.Over() {
			t.Fatalf("round %d did not finish", i)
		}
		if g.Stats().Streak != r.wantStreak {
			t.Errorf("round %d: streak = %d, want %d", i, g.Stats().Streak, r.wantStreak)
		}
	}

	stored, err := storage.ReadWordleStats(mem)
	if err != nil {
		t.Fatal(err)
	}
	if stored != (storage.WordleStats{Played: 4, Won: 3, Streak: 1}) {
		t.Errorf("stored stats = %+v", stored)
	}
	if hs, _ := storage.ReadInt(mem, storage.KeyWordleHighScore); hs != 3 {
		t.Errorf("wordle high score = %d, want 3", hs)
	}
	if n, _ := storage.ReadInt(mem, storage.KeyGamesPlayed); n != 4 {
		t.Errorf("games played = %d, want 4", n)
	}
	if g.WinRate() != 75 {
		t.Errorf("win rate = %d, want 75", g.WinRate())
	}
}

func TestSixMissesLose(t *testing.T) {
	g := New(nil)
	g.SetAnswer("TIGER")
	for i := 0; i < Rows; i++ {
		if _, err := g.Guess("PLANT"); err != nil {
			t.Fatalf("guess %d: %v", i, err)
		}
	}
	if !g.Over() || g.Won() {
		t.Fatal("six misses should lose")
	}
	if _, err := g.Guess("TIGER"); !errors.Is(err, ErrFinished) {
		t.Errorf("err = %v, want ErrFinished", err)
	}
}

func TestKeyState(t *testing.T) {
	g := New(nil)
	g.SetAnswer("CRANE")
	g.Guess("NACRE")
	g.Guess("CRAMP")

	tests := []struct {
		key  rune
		want Mark
	}{
		{'C', Hit},
		{'N', Present},
		{'M', Miss},
		{'Z', Unknown},
		{'E', Hit},
	}
	for _, tt := range tests {
		if got := g.KeyState(tt.key); got != tt.want {
			t.Errorf("KeyState(%c) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestAnswersFromList(t *testing.T) {
	g := New(rand.New(rand.NewSource(9)))
	seen := make(map[string]bool)
	for _, w := range Words {
		seen[w] = true
		if len(w) != Cols {
			t.Errorf("word %q has %d letters", w, len(w))
		}
	}
	if len(seen) != 40 {
		t.Errorf("word list has %d distinct words, want 40", len(seen))
	}
	for i := 0; i < 100; i++ {
		g.NewRound()
		if !seen[g.Answer()] {
			t.Fatalf("answer %q not in the list", g.Answer())
		}
	}
}
