package blocks

// Cell is a board square: 0 is empty, otherwise the shape tag that filled it.
type Cell uint8

// Empty is the unoccupied cell value.
const Empty Cell = 0

// Board is the stack of settled cells, row 0 at the top.
type Board [][]Cell

// NewBoard creates an empty board.
func NewBoard(cols, rows int) Board {
	b := make(Board, rows)
	for y := range b {
		b[y] = make([]Cell, cols)
	}
	return b
}

// Cols returns the board width.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Rows returns the board height.
func (b Board) Rows() int {
	return len(b)
}

// Fits reports whether p lies inside the walls and floor without
// overlapping settled cells. Cells above the top edge are allowed.
func (b Board) Fits(p Piece) bool {
	for _, c := range p.Blocks() {
		if c.X < 0 || c.X >= b.Cols() || c.Y >= b.Rows() {
			return false
		}
		if c.Y >= 0 && b[c.Y][c.X] != Empty {
			return false
		}
	}
	return true
}

// Merge writes the piece into the board.
func (b Board) Merge(p Piece) {
	tag := p.Shape.Cell()
	for _, c := range p.Blocks() {
		if c.Y >= 0 && c.Y < b.Rows() && c.X >= 0 && c.X < b.Cols() {
			b[c.Y][c.X] = tag
		}
	}
}

// FullRows lists the indices of completely occupied rows, top to bottom.
func (b Board) FullRows() []int {
	var out []int
	for y, row := range b {
		full := true
		for _, c := range row {
			if c == Empty {
				full = false
				break
			}
		}
		if full {
			out = append(out, y)
		}
	}
	return out
}

// ClearRows removes every full row, shifting the rows above down and
// inserting empty rows at the top. It returns the number removed.
func (b Board) ClearRows() int {
	full := b.FullRows()
	if len(full) == 0 {
		return 0
	}

	remove := make(map[int]bool, len(full))
	for _, y := range full {
		remove[y] = true
	}

	// Compact surviving rows towards the bottom.
	dst := b.Rows() - 1
	for y := b.Rows() - 1; y >= 0; y-- {
		if remove[y] {
			continue
		}
		copy(b[dst], b[y])
		dst--
	}
	for ; dst >= 0; dst-- {
		for x := range b[dst] {
			b[dst][x] = Empty
		}
	}
	return len(full)
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for y := range b {
		out[y] = append([]Cell(nil), b[y]...)
	}
	return out
}
