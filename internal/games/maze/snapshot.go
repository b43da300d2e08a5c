package maze

import (
	"time"

	"github.com/vovakirdan/arcade-engines/internal/core"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	Lives     int
	Cleared   int
	Player    core.GridPosition
	Ghosts    [4]core.GridPosition
	Power     time.Duration
	Remaining int
	Over      bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Lives:     g.lives,
		Cleared:   g.cleared,
		Player:    g.player,
		Power:     g.power,
		Remaining: g.grid.Remaining(),
		Over:      g.over,
	}
	for i := 0; i < len(g.ghosts) && i < len(s.Ghosts); i++ {
		s.Ghosts[i] = g.ghosts[i].Pos
	}
	return s
}
