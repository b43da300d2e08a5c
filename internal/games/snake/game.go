// Package snake implements the grid snake: the snake moves one cell per
// tick along its heading, grows by one segment per food and dies on the
// border or its own body.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-engines/internal/config"
	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/engine"
	"github.com/vovakirdan/arcade-engines/internal/input"
	"github.com/vovakirdan/arcade-engines/internal/progression"
	"github.com/vovakirdan/arcade-engines/internal/registry"
	"github.com/vovakirdan/arcade-engines/internal/spawn"
)

// Game implements the snake rules.
type Game struct {
	cfg config.SnakeConfig
	gen *spawn.Generator

	tick    uint64
	score   int
	snake   []core.GridPosition // head at index 0
	heading core.Direction
	food    core.GridPosition
	hasFood bool
	dead    bool
	won     bool
}

// New creates a snake game from a resolved config.
func New(cfg config.SnakeConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(rand.New(rand.NewSource(1)))
	return g
}

func init() {
	registry.Register("snake", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadSnake(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Preset)
		if err != nil {
			return nil, err
		}
		config.ApplySnakePreset(&cfg, preset)
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Path returns the persistence path.
func (g *Game) Path() string { return "/snake" }

// Curve returns the speed progression.
func (g *Game) Curve() progression.Curve { return g.cfg.Progression }

// InputMode makes the heading persist between key presses.
func (g *Game) InputMode() input.Mode { return input.Continuous }

// InputOptions rejects a turn straight back into the neck.
func (g *Game) InputOptions() []input.Option {
	return []input.Option{input.WithReversalFilter()}
}

// Heading returns the direction the last move applied.
func (g *Game) Heading() core.Direction { return g.heading }

// Reset initializes the snake at the start cell heading right.
func (g *Game) Reset(rng *rand.Rand) {
	g.gen = spawn.New(rng)
	g.tick = 0
	g.score = 0
	g.dead = false
	g.won = false
	g.snake = []core.GridPosition{core.Pos(g.cfg.StartX, g.cfg.StartY)}
	g.heading = core.DirRight
	g.spawnFood()
}

// Place overrides the snake, heading and food. Used to set up scenarios.
func (g *Game) Place(body []core.GridPosition, heading core.Direction, food core.GridPosition) {
	g.snake = append([]core.GridPosition(nil), body...)
	g.heading = heading
	g.food = food
	g.hasFood = true
}

// Step moves the snake one cell.
func (g *Game) Step(f engine.Frame) engine.Events {
	if g.dead || g.won {
		return engine.Events{}
	}
	g.tick++

	dir := f.Intent.Dir
	if dir == core.DirNone || (len(g.snake) > 1 && dir == g.heading.Opposite()) {
		dir = g.heading
	}
	g.heading = dir

	head := g.snake[0].Add(dir)
	if !head.In(g.cfg.Grid.Width, g.cfg.Grid.Height) || g.occupies(head) {
		g.dead = true
		return engine.Events{Over: true}
	}

	g.snake = append([]core.GridPosition{head}, g.snake...)
	if g.hasFood && head == g.food {
		g.score += g.cfg.FoodPoints
		if !g.spawnFood() {
			g.won = true
			return engine.Events{Points: g.cfg.FoodPoints, Over: true, Won: true}
		}
		return engine.Events{Points: g.cfg.FoodPoints}
	}

	g.snake = g.snake[:len(g.snake)-1]
	return engine.Events{}
}

// Progress reports the score; the curve levels up every few foods.
func (g *Game) Progress() int { return g.score }

// spawnFood places food on a free cell. It returns false when the board is full.
func (g *Game) spawnFood() bool {
	p, ok := g.gen.FreeCell(g.cfg.Grid.Width, g.cfg.Grid.Height, g.occupies)
	g.food, g.hasFood = p, ok
	return ok
}

// occupies checks every body cell, tail included.
func (g *Game) occupies(p core.GridPosition) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Body returns a copy of the snake, head first.
func (g *Game) Body() []core.GridPosition {
	return append([]core.GridPosition(nil), g.snake...)
}

// Food returns the food cell and whether food is on the board.
func (g *Game) Food() (core.GridPosition, bool) {
	return g.food, g.hasFood
}

// Render draws the board with a one-cell border.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height

	// Two columns per cell keeps the board roughly square in a terminal.
	ox := max((dst.Width()-(w*2+2))/2, 0)
	oy := 1
	dst.DrawText(ox, 0, fmt.Sprintf("Snake  Length: %d", len(g.snake)))
	dst.DrawBox(core.NewRect(ox, oy, w*2+2, h+2))

	if g.hasFood {
		g.cell(dst, ox, oy, g.food, '●', core.ColorRed)
	}
	for i, seg := range g.snake {
		r, c := '■', core.ColorGreen
		if i == 0 {
			r, c = '█', core.ColorYellow
		}
		g.cell(dst, ox, oy, seg, r, c)
	}
}

func (g *Game) cell(dst *core.Screen, ox, oy int, p core.GridPosition, r rune, c core.Color) {
	x := ox + 1 + p.X*2
	y := oy + 1 + p.Y
	dst.SetColor(x, y, r, c)
	dst.SetColor(x+1, y, r, c)
}
