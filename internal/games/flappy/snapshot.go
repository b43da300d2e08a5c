package flappy

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Score   int
	BirdY   float64
	BirdVel float64
	Pipes   int
	Over    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		BirdY:   g.birdY,
		BirdVel: g.birdVel,
		Pipes:   len(g.pipes.Pipes()),
		Over:    g.over,
	}
}
