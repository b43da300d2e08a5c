// Package blocks implements the falling-block puzzle: tetrominoes fall one
// row per tick, full rows clear for points scaled by level, and the game
// ends when a new piece cannot spawn.
package blocks

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-engines/internal/config"
	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/engine"
	"github.com/vovakirdan/arcade-engines/internal/progression"
	"github.com/vovakirdan/arcade-engines/internal/registry"
	"github.com/vovakirdan/arcade-engines/internal/spawn"
)

// Game implements the falling-block rules.
type Game struct {
	cfg config.BlocksConfig
	gen *spawn.Generator

	board Board
	piece Piece
	next  Shape
	tick  uint64
	score int
	lines int
	over  bool
}

// New creates a falling-block game from a resolved config.
func New(cfg config.BlocksConfig) *Game {
	if len(cfg.LineScores) < 2 {
		cfg.LineScores = config.DefaultBlocksConfig().LineScores
	}
	g := &Game{cfg: cfg}
	g.Reset(rand.New(rand.NewSource(1)))
	return g
}

func init() {
	registry.Register("blocks", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadBlocks(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Preset)
		if err != nil {
			return nil, err
		}
		config.ApplyBlocksPreset(&cfg, preset)
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "blocks" }

// Title returns the display name.
func (g *Game) Title() string { return "Blocks" }

// Path returns the persistence path.
func (g *Game) Path() string { return "/tetris" }

// Curve returns the gravity progression.
func (g *Game) Curve() progression.Curve { return g.cfg.Progression }

// Reset clears the board and draws the first two pieces.
func (g *Game) Reset(rng *rand.Rand) {
	g.gen = spawn.New(rng)
	g.board = NewBoard(g.cfg.Grid.Width, g.cfg.Grid.Height)
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.over = false
	g.next = g.randomShape()
	g.spawn()
}

// Place overrides the board and the falling piece. Used to set up scenarios.
func (g *Game) Place(board Board, piece Piece) {
	g.board = board.Clone()
	g.piece = piece
	g.over = false
}

// Step applies latched commands and then gravity.
func (g *Game) Step(f engine.Frame) engine.Events {
	if g.over {
		return engine.Events{}
	}
	g.tick++

	switch f.Intent.Dir {
	case core.DirLeft:
		g.shift(-1)
	case core.DirRight:
		g.shift(1)
	case core.DirUp:
		g.rotate()
	}
	if f.Intent.Actions.Has(core.ActionRotate) {
		g.rotate()
	}
	if f.Intent.Actions.Has(core.ActionHardDrop) || f.Intent.Actions.Has(core.ActionJump) {
		// The drop already locked this tick's piece.
		return g.hardDrop(f.Level)
	}
	return g.fall(f.Level)
}

// React applies movement commands immediately while the session runs.
// Up rotates, Down soft-drops and Jump hard-drops.
func (g *Game) React(a core.Action, level int) (engine.Events, bool) {
	if g.over {
		return engine.Events{}, false
	}
	switch a {
	case core.ActionLeft:
		g.shift(-1)
	case core.ActionRight:
		g.shift(1)
	case core.ActionUp, core.ActionRotate:
		g.rotate()
	case core.ActionDown, core.ActionSoftDrop:
		return g.fall(level), true
	case core.ActionJump, core.ActionHardDrop:
		return g.hardDrop(level), true
	default:
		return engine.Events{}, false
	}
	return engine.Events{}, true
}

// Progress reports cleared lines; the curve levels up every ten.
func (g *Game) Progress() int { return g.lines }

func (g *Game) shift(dx int) bool {
	moved := g.piece.Moved(dx, 0)
	if !g.board.Fits(moved) {
		return false
	}
	g.piece = moved
	return true
}

// rotate turns the piece clockwise; a blocked rotation is discarded.
func (g *Game) rotate() bool {
	turned := g.piece.Rotated()
	if !g.board.Fits(turned) {
		return false
	}
	g.piece = turned
	return true
}

// fall moves the piece down one row, locking it when the row below is blocked.
func (g *Game) fall(level int) engine.Events {
	down := g.piece.Moved(0, 1)
	if g.board.Fits(down) {
		g.piece = down
		return engine.Events{}
	}
	return g.lock(level)
}

func (g *Game) hardDrop(level int) engine.Events {
	for {
		down := g.piece.Moved(0, 1)
		if !g.board.Fits(down) {
			break
		}
		g.piece = down
	}
	return g.lock(level)
}

// lock merges the piece, clears full rows and spawns the next piece.
func (g *Game) lock(level int) engine.Events {
	g.board.Merge(g.piece)
	n := g.board.ClearRows()

	var ev engine.Events
	if n > 0 {
		idx := min(n, len(g.cfg.LineScores)-1)
		pts := g.cfg.LineScores[idx] * max(level, 1)
		g.score += pts
		g.lines += n
		ev.Points = pts
	}

	if !g.spawn() {
		g.over = true
		ev.Over = true
	}
	return ev
}

// spawn promotes the preview piece to the spawn anchor. It returns false
// when the spawn area is blocked.
func (g *Game) spawn() bool {
	g.piece = NewPiece(g.next, g.cfg.Grid.Width/2-1, 0)
	g.next = g.randomShape()
	return g.board.Fits(g.piece)
}

func (g *Game) randomShape() Shape {
	return Shape(g.gen.Pick(ShapeCount))
}

// Board returns a copy of the settled cells.
func (g *Game) Board() Board { return g.board.Clone() }

// Piece returns the falling piece.
func (g *Game) Piece() Piece { return g.piece }

// Next returns the preview shape.
func (g *Game) Next() Shape { return g.next }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lines returns the number of cleared rows.
func (g *Game) Lines() int { return g.lines }

// Ghost returns where the piece would land on a hard drop.
func (g *Game) Ghost() Piece {
	p := g.piece
	for g.board.Fits(p.Moved(0, 1)) {
		p = p.Moved(0, 1)
	}
	return p
}

// Render draws the well, the falling piece with its landing shadow, and
// the next piece preview.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := g.board.Cols(), g.board.Rows()
	ox := max((dst.Width()-(w*2+2+12))/2, 0)
	oy := 1

	dst.DrawText(ox, 0, fmt.Sprintf("Blocks  Lines: %d", g.lines))
	dst.DrawBox(core.NewRect(ox, oy, w*2+2, h+2))

	for y, row := range g.board {
		for x, c := range row {
			if c != Empty {
				g.cell(dst, ox, oy, core.Pos(x, y), '█', shapeColors[c-1])
			}
		}
	}
	if !g.over {
		for _, p := range g.Ghost().Blocks() {
			g.cell(dst, ox, oy, p, '░', core.ColorGray)
		}
		for _, p := range g.piece.Blocks() {
			g.cell(dst, ox, oy, p, '█', shapeColors[g.piece.Shape])
		}
	}

	px := ox + w*2 + 4
	dst.DrawText(px, oy+1, "Next:")
	preview := NewPiece(g.next, 0, 0)
	for _, p := range preview.Blocks() {
		dst.SetColor(px+p.X*2, oy+3+p.Y, '█', shapeColors[g.next])
		dst.SetColor(px+p.X*2+1, oy+3+p.Y, '█', shapeColors[g.next])
	}
}

func (g *Game) cell(dst *core.Screen, ox, oy int, p core.GridPosition, r rune, c core.Color) {
	if p.Y < 0 {
		return
	}
	x := ox + 1 + p.X*2
	y := oy + 1 + p.Y
	dst.SetColor(x, y, r, c)
	dst.SetColor(x+1, y, r, c)
}
