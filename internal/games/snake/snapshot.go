package snake

import "github.com/vovakirdan/arcade-engines/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     core.GridPosition
	Dir      core.Direction
	Food     core.GridPosition
	Dead     bool
	Won      bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	var head core.GridPosition
	if len(g.snake) > 0 {
		head = g.snake[0]
	}
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.snake),
		Head:     head,
		Dir:      g.heading,
		Food:     g.food,
		Dead:     g.dead,
		Won:      g.won,
	}
}
