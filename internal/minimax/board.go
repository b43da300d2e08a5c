// Package minimax implements exhaustive adversarial search for the 3x3
// strategy game. The search is synchronous and stateless: callers pass a
// board by value and receive the chosen cell index.
package minimax

// Mark is the content of one board cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// Other returns the opposing side. Empty has no opponent.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Board is a row-major 3x3 grid. Index 0 is top-left, 8 bottom-right.
type Board [9]Mark

// Lines lists every winning triple, rows then columns then diagonals.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the mark owning a complete line and that line.
// It returns Empty when nobody has won.
func Winner(b Board) (Mark, [3]int) {
	for _, l := range Lines {
		m := b[l[0]]
		if m != Empty && m == b[l[1]] && m == b[l[2]] {
			return m, l
		}
	}
	return Empty, [3]int{}
}

// Full reports whether every cell is taken.
func Full(b Board) bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Decided reports whether the game on b is over.
func Decided(b Board) bool {
	if w, _ := Winner(b); w != Empty {
		return true
	}
	return Full(b)
}
