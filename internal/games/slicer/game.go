// Package slicer implements the slicing game: fruit and bombs are thrown
// up into the field, passing the pointer close to a fruit slices it, and
// slicing a bomb ends the game.
package slicer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/arcade-engines/internal/config"
	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/engine"
	"github.com/vovakirdan/arcade-engines/internal/progression"
	"github.com/vovakirdan/arcade-engines/internal/registry"
	"github.com/vovakirdan/arcade-engines/internal/spawn"
)

// fruitKinds is the number of distinct fruit glyphs.
const fruitKinds = 8

var fruitColors = [fruitKinds]core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorMagenta,
	core.ColorRed,
	core.ColorGreen,
}

// Item is a thrown fruit or bomb in field coordinates.
type Item struct {
	ID     int
	Pos    core.PointF
	Vel    core.PointF
	Bomb   bool
	Kind   int
	Sliced bool
}

// Game implements the slicing rules.
type Game struct {
	cfg   config.SlicerConfig
	gen   *spawn.Generator
	trail *Trail

	items      []Item
	nextID     int
	now        time.Duration // simulated time since reset
	sinceSpawn time.Duration
	combo      int
	comboUntil time.Duration
	score      int
	lives      int
	tick       uint64
	over       bool
}

// New creates a slicing game from a resolved config.
func New(cfg config.SlicerConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(rand.New(rand.NewSource(1)))
	return g
}

func init() {
	registry.Register("slicer", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadSlicer(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Preset)
		if err != nil {
			return nil, err
		}
		config.ApplySlicerPreset(&cfg, preset)
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "slicer" }

// Title returns the display name.
func (g *Game) Title() string { return "Fruit Slicer" }

// Path returns the persistence path.
func (g *Game) Path() string { return "/fruit-ninja" }

// Curve returns a fixed tick rate.
func (g *Game) Curve() progression.Curve { return progression.Fixed(g.cfg.Tick) }

// Reset empties the field and restores the lives.
func (g *Game) Reset(rng *rand.Rand) {
	g.gen = spawn.New(rng)
	g.trail = NewTrail(g.cfg.Trail.Length, g.cfg.Trail.MaxAge)
	g.items = g.items[:0]
	g.nextID = 0
	g.now = 0
	g.sinceSpawn = 0
	g.combo = 0
	g.comboUntil = 0
	g.score = 0
	g.lives = max(g.cfg.Lives, 1)
	g.tick = 0
	g.over = false
}

// Step advances time, records the pointer, throws new items, moves them
// and resolves slices and misses.
func (g *Game) Step(f engine.Frame) engine.Events {
	if g.over {
		return engine.Events{}
	}
	g.tick++
	g.now += f.DT

	for _, p := range f.Intent.Pointer {
		g.trail.Add(p, g.now)
	}
	g.trail.Expire(g.now)

	if g.combo > 0 && g.now >= g.comboUntil {
		g.combo = 0
	}

	g.sinceSpawn += f.DT
	for g.cfg.SpawnInterval > 0 && g.sinceSpawn >= g.cfg.SpawnInterval {
		g.sinceSpawn -= g.cfg.SpawnInterval
		g.throw()
	}

	for i := range g.items {
		it := &g.items[i]
		it.Pos.X += it.Vel.X
		it.Pos.Y += it.Vel.Y
		it.Vel.Y += g.cfg.Gravity
	}

	var ev engine.Events
	for i := range g.items {
		it := &g.items[i]
		if it.Sliced || !g.trail.Near(it.Pos, g.cfg.Trail.Threshold) {
			continue
		}
		if it.Bomb {
			g.over = true
			ev.Over = true
			return ev
		}
		it.Sliced = true
		pts := g.cfg.Scoring.Base + g.cfg.Scoring.PerCombo*g.combo
		g.score += pts
		ev.Points += pts
		g.combo++
		g.comboUntil = g.now + g.cfg.Scoring.ComboTimeout
	}

	kept := g.items[:0]
	for _, it := range g.items {
		if it.Sliced {
			continue
		}
		if it.Pos.Y > g.cfg.Field.Height {
			if !it.Bomb {
				g.lives--
			}
			continue
		}
		kept = append(kept, it)
	}
	g.items = kept

	if g.lives <= 0 {
		g.over = true
		ev.Over = true
	}
	return ev
}

// throw launches an item from the bottom edge.
func (g *Game) throw() {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	g.nextID++
	g.items = append(g.items, Item{
		ID:   g.nextID,
		Pos:  core.PointF{X: g.gen.Between(w*0.1, w*0.9), Y: h},
		Vel:  core.PointF{X: g.gen.Between(-2, 2), Y: -g.gen.Between(10, 18)},
		Bomb: g.gen.Hazard(g.cfg.BombChance),
		Kind: g.gen.Pick(fruitKinds),
	})
}

// Add places an item on the field. Used to set up scenarios.
func (g *Game) Add(it Item) {
	g.nextID++
	it.ID = g.nextID
	g.items = append(g.items, it)
}

// Progress is unused; the tick rate never changes.
func (g *Game) Progress() int { return 0 }

// Items returns a copy of the live items.
func (g *Game) Items() []Item { return append([]Item(nil), g.items...) }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Combo returns the current combo count.
func (g *Game) Combo() int { return g.combo }

// Trail returns the pointer trail.
func (g *Game) Trail() *Trail { return g.trail }

// PointerAt maps a screen cell to field coordinates.
func (g *Game) PointerAt(col, row, w, h int) core.PointF {
	if w <= 0 || h <= 0 {
		return core.PointF{}
	}
	return core.PointF{
		X: (float64(col) + 0.5) / float64(w) * g.cfg.Field.Width,
		Y: (float64(row) + 0.5) / float64(h) * g.cfg.Field.Height,
	}
}

// Render scales the field onto the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 1 {
		return
	}
	at := func(p core.PointF) (int, int) {
		return int(p.X / g.cfg.Field.Width * float64(w)), 1 + int(p.Y/g.cfg.Field.Height*float64(h-1))
	}

	for _, s := range g.trail.Samples() {
		x, y := at(s.Pos)
		dst.SetColor(x, y, '·', core.ColorCyan)
	}
	for _, it := range g.items {
		x, y := at(it.Pos)
		if it.Bomb {
			dst.SetColor(x, y, '✱', core.ColorGray)
			continue
		}
		dst.SetColor(x, y, '●', fruitColors[it.Kind])
	}

	hud := fmt.Sprintf(" Score: %d  Lives: %d ", g.score, g.lives)
	if g.combo > 1 {
		hud += fmt.Sprintf(" Combo x%d ", g.combo)
	}
	dst.DrawText(0, 0, hud)
}
