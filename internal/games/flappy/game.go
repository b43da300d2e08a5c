// Package flappy implements the side-scroller: the bird falls under
// gravity, flaps upward on Jump and scores one point per pipe it clears.
package flappy

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

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// Game implements the side-scroller rules.
type Game struct {
	cfg   config.FlappyConfig
	pipes *PipeManager

	birdY   float64 // top of the bird box
	birdVel float64
	score   int
	tick    uint64
	over    bool
}

// New creates a side-scroller from a resolved config.
func New(cfg config.FlappyConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(rand.New(rand.NewSource(1)))
	return g
}

func init() {
	registry.Register("flappy", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadFlappy(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Preset)
		if err != nil {
			return nil, err
		}
		config.ApplyFlappyPreset(&cfg, preset)
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "flappy" }

// Title returns the display name.
func (g *Game) Title() string { return "Flappy Bird" }

// Path returns the persistence path.
func (g *Game) Path() string { return "/flappy-bird" }

// Curve returns a fixed tick rate.
func (g *Game) Curve() progression.Curve { return progression.Fixed(g.cfg.Tick) }

// StartsOnJump makes the first flap start the session.
func (g *Game) StartsOnJump() bool { return true }

// Reset centres the bird and clears the pipes.
func (g *Game) Reset(rng *rand.Rand) {
	gen := spawn.New(rng)
	if g.pipes == nil {
		g.pipes = NewPipeManager(g.cfg.Pipes, g.cfg.Field, gen)
	} else {
		g.pipes.Reset(gen)
	}
	g.birdY = g.cfg.Field.Height / 2
	g.birdVel = 0
	g.score = 0
	g.tick = 0
	g.over = false
}

// Step applies a flap, integrates the bird, moves the pipes and checks
// for contact.
func (g *Game) Step(f engine.Frame) engine.Events {
	if g.over {
		return engine.Events{}
	}
	g.tick++

	if f.Intent.Actions.Has(core.ActionJump) || f.Intent.Dir == core.DirUp {
		g.birdVel = g.cfg.Physics.JumpImpulse
	}

	ny := g.birdY + g.birdVel
	g.birdVel += g.cfg.Physics.Gravity
	if ny <= 0 || ny >= g.cfg.Field.Height-g.cfg.Player.Size {
		g.over = true
		return engine.Events{Over: true}
	}
	g.birdY = ny

	passed := g.pipes.Update(f.DT, g.cfg.Player.CenterX)
	g.score += passed

	ev := engine.Events{Points: passed}
	if g.pipes.CheckCollision(g.BirdBox()) {
		g.over = true
		ev.Over = true
	}
	return ev
}

// Progress is unused; the tick rate never changes.
func (g *Game) Progress() int { return 0 }

// BirdBox returns the bird's collision box.
func (g *Game) BirdBox() core.RectF {
	size := g.cfg.Player.Size
	return core.RectF{X: g.cfg.Player.CenterX - size/2, Y: g.birdY, W: size, H: size}
}

// Velocity returns the bird's vertical speed; negative is up.
func (g *Game) Velocity() float64 { return g.birdVel }

// Pipes returns the pipe manager.
func (g *Game) Pipes() *PipeManager { return g.pipes }

// Render scales the field onto the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()-1
	if w <= 0 || h <= 0 {
		return
	}
	sx := float64(w) / g.cfg.Field.Width
	sy := float64(h) / g.cfg.Field.Height

	for x := 0; x < w; x++ {
		dst.SetColor(x, h, GroundChar, core.ColorGreen)
	}

	for _, p := range g.pipes.Pipes() {
		x0 := int(p.X * sx)
		x1 := int((p.X + g.cfg.Pipes.Width) * sx)
		top := int(p.GapTop * sy)
		bottom := int((p.GapTop + g.cfg.Pipes.Gap) * sy)
		for x := x0; x < x1; x++ {
			for y := 0; y < top; y++ {
				dst.SetColor(x, y, PipeChar, core.ColorGreen)
			}
			if top > 0 {
				dst.SetColor(x, top-1, PipeCapTop, core.ColorGreen)
			}
			for y := bottom; y < h; y++ {
				dst.SetColor(x, y, PipeChar, core.ColorGreen)
			}
			if bottom < h {
				dst.SetColor(x, bottom, PipeCapBottom, core.ColorGreen)
			}
		}
	}

	box := g.BirdBox()
	bx0, bx1 := int(box.X*sx), max(int((box.X+box.W)*sx), int(box.X*sx)+1)
	by0, by1 := int(box.Y*sy), max(int((box.Y+box.H)*sy), int(box.Y*sy)+1)
	for y := by0; y < by1; y++ {
		for x := bx0; x < bx1; x++ {
			r := '●'
			if x == bx1-1 && y == by0 {
				r = PlayerChar
			}
			dst.SetColor(x, y, r, core.ColorYellow)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
}
