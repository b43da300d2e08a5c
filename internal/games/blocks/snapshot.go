package blocks

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lines    int
	Shape    Shape
	Rotation int
	X, Y     int
	Next     Shape
	Filled   int
	Over     bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	filled := 0
	for _, row := range g.board {
		for _, c := range row {
			if c != Empty {
				filled++
			}
		}
	}
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lines:    g.lines,
		Shape:    g.piece.Shape,
		Rotation: g.piece.Rotation,
		X:        g.piece.X,
		Y:        g.piece.Y,
		Next:     g.next,
		Filled:   filled,
		Over:     g.over,
	}
}
