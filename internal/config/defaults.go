package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/arcade-engines/internal/progression"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/slicer.yaml
var defaultSlicerYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:       Grid{Width: 20, Height: 20},
		StartX:     10,
		StartY:     10,
		FoodPoints: 10,
		Progression: progression.Curve{
			Initial:    150 * time.Millisecond,
			Step:       20 * time.Millisecond,
			Floor:      50 * time.Millisecond,
			Every:      50,
			StartLevel: 1,
		},
	}
}

// DefaultBlocksConfig returns the default falling-block configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Grid:       Grid{Width: 10, Height: 20},
		LineScores: []int{0, 100, 300, 500, 800},
		Progression: progression.Curve{
			Initial:    time.Second,
			Step:       100 * time.Millisecond,
			Floor:      100 * time.Millisecond,
			Every:      10,
			StartLevel: 1,
		},
	}
}

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Lives:           3,
		DotPoints:       10,
		PelletPoints:    50,
		PowerDuration:   5 * time.Second,
		GhostMoveChance: 0.5,
		Progression: progression.Curve{
			Initial:    200 * time.Millisecond,
			Step:       20 * time.Millisecond,
			Floor:      60 * time.Millisecond,
			Every:      1,
			StartLevel: 1,
		},
	}
}

// DefaultFlappyConfig returns the default side-scroller configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field:   Field{Width: 400, Height: 600},
		Physics: FlappyPhysics{Gravity: 0.5, JumpImpulse: -8},
		Pipes: FlappyPipes{
			Width:    60,
			Gap:      150,
			Margin:   50,
			Speed:    3,
			Interval: 2 * time.Second,
		},
		Player: FlappyPlayer{CenterX: 200, Size: 40},
		Tick:   20 * time.Millisecond,
	}
}

// DefaultSlicerConfig returns the default slicing configuration.
func DefaultSlicerConfig() SlicerConfig {
	return SlicerConfig{
		Field:         Field{Width: 100, Height: 100},
		Tick:          30 * time.Millisecond,
		SpawnInterval: time.Second,
		BombChance:    0.2,
		Gravity:       0.5,
		Lives:         3,
		Trail: SlicerTrail{
			Length:    6,
			MaxAge:    300 * time.Millisecond,
			Threshold: 8,
		},
		Scoring: SlicerScoring{
			Base:         10,
			PerCombo:     5,
			ComboTimeout: time.Second,
		},
	}
}
