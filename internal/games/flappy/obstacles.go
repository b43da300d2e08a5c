package flappy

import (
	"time"

	"github.com/vovakirdan/arcade-engines/internal/config"
	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/spawn"
)

// Pipe is a vertical obstacle with a gap for the bird to pass through.
type Pipe struct {
	X      float64 // left edge
	GapTop float64 // top of the gap
	Passed bool    // scored once the bird clears its right edge
}

// TopRect returns the collision box above the gap.
func (p Pipe) TopRect(width float64) core.RectF {
	return core.RectF{X: p.X, Y: 0, W: width, H: p.GapTop}
}

// BottomRect returns the collision box below the gap.
func (p Pipe) BottomRect(width, gap, fieldH float64) core.RectF {
	bottom := p.GapTop + gap
	return core.RectF{X: p.X, Y: bottom, W: width, H: fieldH - bottom}
}

// PipeManager spawns, moves and retires pipes.
type PipeManager struct {
	cfg    config.FlappyPipes
	field  config.Field
	gen    *spawn.Generator
	pipes  []Pipe
	sinceT time.Duration // simulated time since the last spawn
}

// NewPipeManager creates an empty manager drawing gaps from gen.
func NewPipeManager(cfg config.FlappyPipes, field config.Field, gen *spawn.Generator) *PipeManager {
	return &PipeManager{
		cfg:   cfg,
		field: field,
		gen:   gen,
		pipes: make([]Pipe, 0, 8),
	}
}

// Reset clears all pipes and the spawn timer.
func (pm *PipeManager) Reset(gen *spawn.Generator) {
	pm.gen = gen
	pm.pipes = pm.pipes[:0]
	pm.sinceT = 0
}

// Update spawns on the interval, moves pipes left and drops those past the
// left edge. It returns how many pipes the bird cleared this tick.
func (pm *PipeManager) Update(dt time.Duration, birdX float64) int {
	pm.sinceT += dt
	for pm.cfg.Interval > 0 && pm.sinceT >= pm.cfg.Interval {
		pm.sinceT -= pm.cfg.Interval
		pm.spawn()
	}

	passed := 0
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= pm.cfg.Speed
		if p.X <= -pm.cfg.Width {
			continue
		}
		if !p.Passed && p.X+pm.cfg.Width < birdX {
			p.Passed = true
			passed++
		}
		kept = append(kept, p)
	}
	pm.pipes = kept
	return passed
}

func (pm *PipeManager) spawn() {
	pm.pipes = append(pm.pipes, Pipe{
		X:      pm.field.Width,
		GapTop: pm.gen.GapOffset(pm.field.Height, pm.cfg.Gap, pm.cfg.Margin),
	})
}

// Add appends a pipe. Used to set up scenarios.
func (pm *PipeManager) Add(p Pipe) {
	pm.pipes = append(pm.pipes, p)
}

// Pipes returns the live pipes, oldest first.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision tests a box against every pipe.
func (pm *PipeManager) CheckCollision(box core.RectF) bool {
	for _, p := range pm.pipes {
		if box.Intersects(p.TopRect(pm.cfg.Width)) ||
			box.Intersects(p.BottomRect(pm.cfg.Width, pm.cfg.Gap, pm.field.Height)) {
			return true
		}
	}
	return false
}
