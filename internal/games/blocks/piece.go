package blocks

import "github.com/vovakirdan/arcade-engines/internal/core"

// Shape identifies a tetromino.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of tetromino shapes.
const ShapeCount = 7

var shapeMatrices = [ShapeCount][][]bool{
	ShapeI: {
		{true, true, true, true},
	},
	ShapeO: {
		{true, true},
		{true, true},
	},
	ShapeT: {
		{false, true, false},
		{true, true, true},
	},
	ShapeS: {
		{false, true, true},
		{true, true, false},
	},
	ShapeZ: {
		{true, true, false},
		{false, true, true},
	},
	ShapeJ: {
		{true, false, false},
		{true, true, true},
	},
	ShapeL: {
		{false, false, true},
		{true, true, true},
	},
}

var shapeColors = [ShapeCount]core.Color{
	ShapeI: core.ColorCyan,
	ShapeO: core.ColorYellow,
	ShapeT: core.ColorMagenta,
	ShapeS: core.ColorGreen,
	ShapeZ: core.ColorRed,
	ShapeJ: core.ColorBlue,
	ShapeL: core.ColorOrange,
}

func (s Shape) String() string {
	return [...]string{"I", "O", "T", "S", "Z", "J", "L"}[s]
}

// Cell returns the board tag for a shape. Zero is reserved for empty.
func (s Shape) Cell() Cell {
	return Cell(s + 1)
}

// Piece is the falling tetromino: a shape matrix anchored at (X, Y).
type Piece struct {
	Shape    Shape
	Matrix   [][]bool
	Rotation int // quarter turns clockwise from spawn
	X, Y     int
}

// NewPiece creates a piece of shape s at the anchor.
func NewPiece(s Shape, x, y int) Piece {
	src := shapeMatrices[s]
	m := make([][]bool, len(src))
	for i := range src {
		m[i] = append([]bool(nil), src[i]...)
	}
	return Piece{Shape: s, Matrix: m, X: x, Y: y}
}

// Rotated returns the piece turned a quarter clockwise about its anchor:
// the matrix is transposed and each new row reversed.
func (p Piece) Rotated() Piece {
	rows, cols := len(p.Matrix), len(p.Matrix[0])
	m := make([][]bool, cols)
	for i := range m {
		m[i] = make([]bool, rows)
		for j := 0; j < rows; j++ {
			m[i][j] = p.Matrix[rows-1-j][i]
		}
	}
	p.Matrix = m
	p.Rotation = (p.Rotation + 1) % 4
	return p
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Blocks returns the board cells the piece covers.
func (p Piece) Blocks() []core.GridPosition {
	var out []core.GridPosition
	for y, row := range p.Matrix {
		for x, filled := range row {
			if filled {
				out = append(out, core.Pos(p.X+x, p.Y+y))
			}
		}
	}
	return out
}
