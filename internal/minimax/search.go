package minimax

import "math"

// K is the terminal score ceiling. It exceeds the deepest possible
// continuation so faster wins and slower losses score higher.
const K = 10

// Result is the outcome of a root search.
type Result struct {
	Move  int   // chosen cell, -1 when there is no move
	Score int   // game value for the searching side
	Nodes int64 // positions visited
}

type searcher struct {
	board Board // private copy, mutated with apply/undo pairs
	side  Mark
	nodes int64
}

// BestMove returns the value-optimal cell for side. ok is false when the
// board is full or already decided.
func BestMove(b Board, side Mark) (int, bool) {
	r := Search(b, side)
	return r.Move, r.Move >= 0
}

// Search runs exhaustive minimax from b with side to move. Candidates are
// tried in index order and the first maximal one is kept.
func Search(b Board, side Mark) Result {
	if side == Empty || Decided(b) {
		return Result{Move: -1}
	}

	s := &searcher{board: b, side: side}
	best, move := math.MinInt, -1
	for i := range s.board {
		if s.board[i] != Empty {
			continue
		}
		s.board[i] = side
		v := s.minimax(0, false)
		s.board[i] = Empty
		if v > best {
			best, move = v, i
		}
	}
	return Result{Move: move, Score: best, Nodes: s.nodes}
}

// Evaluate returns the game value of b for side when side is to move:
// positive for a forced win, zero for a draw, negative for a forced loss.
func Evaluate(b Board, side Mark) int {
	if w, _ := Winner(b); w != Empty {
		if w == side {
			return K
		}
		return -K
	}
	if Full(b) {
		return 0
	}
	return Search(b, side).Score
}

// minimax scores the position after a move at the given depth.
// maximizing is true when the searching side is to move.
func (s *searcher) minimax(depth int, maximizing bool) int {
	s.nodes++

	if w, _ := Winner(s.board); w != Empty {
		if w == s.side {
			return K - depth
		}
		return depth - K
	}
	if Full(s.board) {
		return 0
	}

	mover := s.side
	best := math.MinInt
	if !maximizing {
		mover = s.side.Other()
		best = math.MaxInt
	}

	for i := range s.board {
		if s.board[i] != Empty {
			continue
		}
		s.board[i] = mover
		v := s.minimax(depth+1, !maximizing)
		s.board[i] = Empty

		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}
