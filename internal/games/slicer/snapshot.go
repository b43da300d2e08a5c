package slicer

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick  uint64
	Now   time.Duration
	Score int
	Lives int
	Combo int
	Items int
	Trail int
	Over  bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:  g.tick,
		Now:   g.now,
		Score: g.score,
		Lives: g.lives,
		Combo: g.combo,
		Items: len(g.items),
		Trail: len(g.trail.Samples()),
		Over:  g.over,
	}
}
