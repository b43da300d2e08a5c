// Package maze implements the maze chase: the player eats dots while
// ghosts wander at random, power pellets make the player safe for a while
// and each cleared maze starts the next level.
package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/arcade-engines/internal/config"
	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/engine"
	"github.com/vovakirdan/arcade-engines/internal/input"
	"github.com/vovakirdan/arcade-engines/internal/progression"
	"github.com/vovakirdan/arcade-engines/internal/registry"
	"github.com/vovakirdan/arcade-engines/internal/spawn"
)

// Ghost is a wandering chaser.
type Ghost struct {
	Pos   core.GridPosition
	Color core.Color
}

// Game implements the maze rules.
type Game struct {
	cfg config.MazeConfig
	gen *spawn.Generator

	grid    Grid
	player  core.GridPosition
	heading core.Direction
	ghosts  []Ghost
	power   time.Duration // remaining power mode
	tick    uint64
	score   int
	lives   int
	cleared int
	over    bool
}

// New creates a maze game from a resolved config.
func New(cfg config.MazeConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(rand.New(rand.NewSource(1)))
	return g
}

func init() {
	registry.Register("maze", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadMaze(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Preset)
		if err != nil {
			return nil, err
		}
		config.ApplyMazePreset(&cfg, preset)
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "maze" }

// Title returns the display name.
func (g *Game) Title() string { return "Maze" }

// Path returns the persistence path.
func (g *Game) Path() string { return "/pacman" }

// Curve returns the speed progression.
func (g *Game) Curve() progression.Curve { return g.cfg.Progression }

// InputMode keeps the player moving along the last direction pressed.
func (g *Game) InputMode() input.Mode { return input.Continuous }

// InputOptions allows instant reversal.
func (g *Game) InputOptions() []input.Option { return nil }

// Heading returns the held direction.
func (g *Game) Heading() core.Direction { return g.heading }

// Reset restores the first maze, the lives and the actors.
func (g *Game) Reset(rng *rand.Rand) {
	g.gen = spawn.New(rng)
	g.tick = 0
	g.score = 0
	g.lives = max(g.cfg.Lives, 1)
	g.cleared = 0
	g.over = false
	g.newMaze()
}

func (g *Game) newMaze() {
	g.grid = Classic()
	g.player = playerStart
	g.heading = core.DirNone
	g.power = 0
	g.ghosts = g.ghosts[:0]
	for i, p := range ghostStarts {
		g.ghosts = append(g.ghosts, Ghost{Pos: p, Color: ghostColors[i]})
	}
}

// Place overrides the maze, the player and the ghosts. Used to set up scenarios.
func (g *Game) Place(grid Grid, player core.GridPosition, ghosts []core.GridPosition) {
	g.grid = grid
	g.player = player
	g.ghosts = g.ghosts[:0]
	for i, p := range ghosts {
		g.ghosts = append(g.ghosts, Ghost{Pos: p, Color: ghostColors[i%len(ghostColors)]})
	}
}

// Step moves the player, then the ghosts, then resolves contact.
func (g *Game) Step(f engine.Frame) engine.Events {
	if g.over {
		return engine.Events{}
	}
	g.tick++

	if g.power > 0 {
		g.power -= f.DT
		if g.power < 0 {
			g.power = 0
		}
	}

	var ev engine.Events
	if f.Intent.Dir != core.DirNone {
		g.heading = f.Intent.Dir
		if next := g.player.Add(f.Intent.Dir); g.grid.Walkable(next) {
			g.player = next
			ev.Points = g.eat(next)
		}
	}

	if g.grid.Remaining() == 0 {
		g.cleared++
		g.newMaze()
		return ev
	}

	// Checking before and after the ghosts move also catches head-on swaps.
	hit := g.touching()
	if g.power == 0 && g.gen.Hazard(g.cfg.GhostMoveChance) {
		g.moveGhosts()
		hit = hit || g.touching()
	}

	if hit && g.power == 0 {
		g.lives--
		if g.lives <= 0 {
			g.over = true
			ev.Over = true
			return ev
		}
		// The held direction survives the respawn.
		g.player = playerStart
	}
	return ev
}

func (g *Game) eat(p core.GridPosition) int {
	switch g.grid[p.Y][p.X] {
	case Dot:
		g.grid[p.Y][p.X] = Open
		g.score += g.cfg.DotPoints
		return g.cfg.DotPoints
	case Pellet:
		g.grid[p.Y][p.X] = Open
		g.score += g.cfg.PelletPoints
		g.power = g.cfg.PowerDuration
		return g.cfg.PelletPoints
	}
	return 0
}

// moveGhosts steps every ghost uniformly among its legal directions.
func (g *Game) moveGhosts() {
	for i := range g.ghosts {
		var legal []core.Direction
		for _, d := range core.Directions {
			if g.grid.Walkable(g.ghosts[i].Pos.Add(d)) {
				legal = append(legal, d)
			}
		}
		if len(legal) == 0 {
			continue
		}
		g.ghosts[i].Pos = g.ghosts[i].Pos.Add(legal[g.gen.Pick(len(legal))])
	}
}

// touching reports whether a ghost shares the player's cell.
func (g *Game) touching() bool {
	for _, gh := range g.ghosts {
		if gh.Pos == g.player {
			return true
		}
	}
	return false
}

// Progress reports cleared mazes.
func (g *Game) Progress() int { return g.cleared }

// Powered reports whether ghosts are currently harmless.
func (g *Game) Powered() bool { return g.power > 0 }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Player returns the player cell.
func (g *Game) Player() core.GridPosition { return g.player }

// Ghosts returns a copy of the ghosts.
func (g *Game) Ghosts() []Ghost { return append([]Ghost(nil), g.ghosts...) }

// Grid returns the live maze.
func (g *Game) Grid() Grid { return g.grid }

// Render draws the maze, the actors and the lives counter.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := g.grid.Width()
	ox := max((dst.Width()-w*2)/2, 0)
	oy := 1

	status := fmt.Sprintf("Maze  Lives: %d  Maze: %d", g.lives, g.cleared+1)
	if g.Powered() {
		status += "  POWER"
	}
	dst.DrawText(ox, 0, status)

	for y, row := range g.grid {
		for x, t := range row {
			p := core.Pos(x, y)
			switch t {
			case Wall:
				g.cell(dst, ox, oy, p, '█', core.ColorBlue)
			case Dot:
				dst.SetColor(ox+x*2, oy+y, '·', core.ColorWhite)
			case Pellet:
				dst.SetColor(ox+x*2, oy+y, '●', core.ColorYellow)
			}
		}
	}

	for _, gh := range g.ghosts {
		c := gh.Color
		if g.Powered() {
			c = core.ColorBlue
		}
		dst.SetColor(ox+gh.Pos.X*2, oy+gh.Pos.Y, 'ᗣ', c)
	}
	dst.SetColor(ox+g.player.X*2, oy+g.player.Y, 'ᗧ', core.ColorYellow)
}

func (g *Game) cell(dst *core.Screen, ox, oy int, p core.GridPosition, r rune, c core.Color) {
	dst.SetColor(ox+p.X*2, oy+p.Y, r, c)
	dst.SetColor(ox+p.X*2+1, oy+p.Y, r, c)
}
