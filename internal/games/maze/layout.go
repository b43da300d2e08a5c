package maze

import "github.com/vovakirdan/arcade-engines/internal/core"

// Tile is one maze square.
type Tile uint8

const (
	Open Tile = iota
	Wall
	Dot
	Pellet
)

// classic is the 19x22 layout: '#' wall, '.' dot, 'o' power pellet.
var classic = [...]string{
	"###################",
	"#........#........#",
	"#.##.###.#.###.##.#",
	"#o##.###.#.###.##o#",
	"#.................#",
	"#.##.#.#####.#.##.#",
	"#....#...#...#....#",
	"####.### # ###.####",
	"   #.#       #.#   ",
	"####.# ## ## #.####",
	"    .  #   #  .    ",
	"####.# ##### #.####",
	"   #.#       #.#   ",
	"####.# ##### #.####",
	"#........#........#",
	"#.##.###.#.###.##.#",
	"#o.#...........#.o#",
	"##.#.#.#####.#.#.##",
	"#....#...#...#....#",
	"#.######.#.######.#",
	"#.................#",
	"###################",
}

var (
	playerStart = core.Pos(9, 1)
	ghostStarts = [...]core.GridPosition{
		core.Pos(8, 9),
		core.Pos(9, 9),
		core.Pos(10, 9),
		core.Pos(9, 10),
	}
	ghostColors = [...]core.Color{
		core.ColorRed,
		core.ColorMagenta,
		core.ColorCyan,
		core.ColorOrange,
	}
)

// Grid is a mutable copy of a layout, indexed [y][x].
type Grid [][]Tile

// NewGrid parses rows into tiles.
func NewGrid(rows []string) Grid {
	g := make(Grid, len(rows))
	for y, row := range rows {
		g[y] = make([]Tile, len(row))
		for x, r := range row {
			switch r {
			case '#':
				g[y][x] = Wall
			case '.':
				g[y][x] = Dot
			case 'o':
				g[y][x] = Pellet
			}
		}
	}
	return g
}

// Classic returns a fresh copy of the standard maze.
func Classic() Grid {
	return NewGrid(classic[:])
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// Walkable reports whether p is inside the maze and not a wall.
func (g Grid) Walkable(p core.GridPosition) bool {
	return p.In(g.Width(), g.Height()) && g[p.Y][p.X] != Wall
}

// Remaining counts uneaten dots and pellets.
func (g Grid) Remaining() int {
	n := 0
	for _, row := range g {
		for _, t := range row {
			if t == Dot || t == Pellet {
				n++
			}
		}
	}
	return n
}
