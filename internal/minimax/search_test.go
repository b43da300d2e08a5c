package minimax

import "testing"

func TestBestMoveBlocksThreat(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		side  Mark
		want  int
	}{
		{"O blocks X row", Board{X, X, Empty, Empty, Empty, Empty, Empty, Empty, Empty}, O, 2},
		{"X blocks O row", Board{O, O, Empty, Empty, Empty, X, Empty, Empty, X}, X, 2},
		{"win beats block", Board{X, X, Empty, O, O, Empty, Empty, Empty, Empty}, O, 5},
		{"blocks diagonal", Board{X, Empty, Empty, Empty, X, Empty, O, Empty, Empty}, O, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := BestMove(tc.board, tc.side)
			if !ok {
				t.Fatal("BestMove reported no move")
			}
			if got != tc.want {
				t.Errorf("BestMove = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBestMoveNoMove(t *testing.T) {
	full := Board{X, O, X, X, O, O, O, X, X}
	if _, ok := BestMove(full, O); ok {
		t.Error("full board should report no move")
	}

	won := Board{X, X, X, O, O, Empty, Empty, Empty, Empty}
	if _, ok := BestMove(won, O); ok {
		t.Error("decided board should report no move")
	}
}

func TestSearchDoesNotMutateBoard(t *testing.T) {
	b := Board{X, Empty, Empty, Empty, O, Empty, Empty, Empty, Empty}
	before := b
	Search(b, X)
	if b != before {
		t.Errorf("board mutated: %v, want %v", b, before)
	}
}

func TestEmptyBoardIsDraw(t *testing.T) {
	r := Search(Board{}, X)
	if r.Score != 0 {
		t.Errorf("empty board value = %d, want 0", r.Score)
	}
	if r.Move != 0 {
		t.Errorf("first maximal move = %d, want 0", r.Move)
	}
	if r.Nodes == 0 {
		t.Error("search should visit nodes")
	}
}

func TestWinner(t *testing.T) {
	b := Board{O, X, Empty, X, O, Empty, X, Empty, O}
	m, line := Winner(b)
	if m != O || line != [3]int{0, 4, 8} {
		t.Errorf("Winner = %v %v, want O [0 4 8]", m, line)
	}
	if m, _ := Winner(Board{}); m != Empty {
		t.Errorf("empty board winner = %v", m)
	}
}

// TestSelfPlayNeverLoses lets the search play one side against every
// possible reply sequence of the other, from the empty board.
func TestSelfPlayNeverLoses(t *testing.T) {
	for _, searcher := range []Mark{X, O} {
		t.Run(searcher.String(), func(t *testing.T) {
			memo := make(map[Board]int)
			var play func(b Board, toMove Mark)
			play = func(b Board, toMove Mark) {
				if w, _ := Winner(b); w != Empty {
					if w != searcher {
						t.Fatalf("searcher %v lost on %v", searcher, b)
					}
					return
				}
				if Full(b) {
					return
				}

				if toMove == searcher {
					move, ok := memo[b]
					if !ok {
						move, ok = BestMove(b, searcher)
						if !ok {
							t.Fatalf("no move on open board %v", b)
						}
						memo[b] = move
					}
					b[move] = searcher
					play(b, toMove.Other())
					return
				}

				for i := range b {
					if b[i] != Empty {
						continue
					}
					next := b
					next[i] = toMove
					play(next, toMove.Other())
				}
			}
			play(Board{}, X)
		})
	}
}

// TestBestMoveKeepsValue checks every reachable position: a move chosen
// from a non-losing position never hands the opponent a forced win.
func TestBestMoveKeepsValue(t *testing.T) {
	seen := make(map[Board]bool)
	var walk func(b Board, toMove Mark)
	walk = func(b Board, toMove Mark) {
		if seen[b] || Decided(b) {
			return
		}
		seen[b] = true

		if Evaluate(b, toMove) >= 0 {
			move, ok := BestMove(b, toMove)
			if !ok {
				t.Fatalf("no move on open board %v", b)
			}
			after := b
			after[move] = toMove
			if w, _ := Winner(after); w == Empty && !Full(after) {
				if v := Evaluate(after, toMove.Other()); v > 0 {
					t.Fatalf("move %d on %v lets %v force a win", move, b, toMove.Other())
				}
			}
		}

		for i := range b {
			if b[i] == Empty {
				next := b
				next[i] = toMove
				walk(next, toMove.Other())
			}
		}
	}
	walk(Board{}, X)

	if len(seen) < 4000 {
		t.Errorf("visited %d positions, expected all reachable open positions", len(seen))
	}
}
