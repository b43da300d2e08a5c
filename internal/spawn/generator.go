// Package spawn draws randomized entities from an injected source so that
// placement fairness can be reproduced with a fixed seed.
package spawn

import (
	"math/rand"

	"github.com/vovakirdan/arcade-engines/internal/core"
)

// maxAttempts bounds rejection sampling before FreeCell falls back to a scan.
const maxAttempts = 64

// Generator produces random spawn parameters.
type Generator struct {
	rng *rand.Rand
}

// New wraps rng. A nil rng is seeded with 1.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Generator{rng: rng}
}

// Rand exposes the underlying source for games that need raw draws.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// FreeCell returns a uniformly random cell of a width x height grid for
// which occupied reports false. ok is false when every cell is occupied.
func (g *Generator) FreeCell(width, height int, occupied func(core.GridPosition) bool) (core.GridPosition, bool) {
	if width <= 0 || height <= 0 {
		return core.GridPosition{}, false
	}

	for i := 0; i < maxAttempts; i++ {
		p := core.Pos(g.rng.Intn(width), g.rng.Intn(height))
		if !occupied(p) {
			return p, true
		}
	}

	var free []core.GridPosition
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := core.Pos(x, y)
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.GridPosition{}, false
	}
	return free[g.rng.Intn(len(free))], true
}

// Pick returns a uniform index in [0, n).
func (g *Generator) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return g.rng.Intn(n)
}

// GapOffset returns an obstacle gap offset uniform in
// [margin, height-gap-margin]. A range that does not fit collapses to margin.
func (g *Generator) GapOffset(height, gap, margin float64) float64 {
	hi := height - gap - margin
	if hi <= margin {
		return margin
	}
	return margin + g.rng.Float64()*(hi-margin)
}

// Hazard reports true with probability p.
func (g *Generator) Hazard(p float64) bool {
	return g.rng.Float64() < p
}

// Between returns a uniform float in [lo, hi).
func (g *Generator) Between(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
