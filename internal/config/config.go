// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade engines.
package config

import (
	"time"

	"github.com/vovakirdan/arcade-engines/internal/progression"
)

// Grid is the size of a discrete board.
type Grid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Field is the size of a continuous play field.
type Field struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid        Grid              `yaml:"grid"`
	StartX      int               `yaml:"start_x"`
	StartY      int               `yaml:"start_y"`
	FoodPoints  int               `yaml:"food_points"`
	Progression progression.Curve `yaml:"progression"`
}

// BlocksConfig contains all configuration for the falling-block game.
type BlocksConfig struct {
	Grid        Grid              `yaml:"grid"`
	LineScores  []int             `yaml:"line_scores"` // indexed by rows cleared at once
	Progression progression.Curve `yaml:"progression"`
}

// MazeConfig contains all configuration for the maze chase.
type MazeConfig struct {
	Lives           int               `yaml:"lives"`
	DotPoints       int               `yaml:"dot_points"`
	PelletPoints    int               `yaml:"pellet_points"`
	PowerDuration   time.Duration     `yaml:"power_duration"`
	GhostMoveChance float64           `yaml:"ghost_move_chance"`
	Progression     progression.Curve `yaml:"progression"`
}

// FlappyConfig contains all configuration for the side-scroller.
type FlappyConfig struct {
	Field   Field         `yaml:"field"`
	Physics FlappyPhysics `yaml:"physics"`
	Pipes   FlappyPipes   `yaml:"pipes"`
	Player  FlappyPlayer  `yaml:"player"`
	Tick    time.Duration `yaml:"tick"`
}

// FlappyPhysics defines physics parameters per tick.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// FlappyPipes defines obstacle parameters.
type FlappyPipes struct {
	Width    float64       `yaml:"width"`
	Gap      float64       `yaml:"gap"`
	Margin   float64       `yaml:"margin"`
	Speed    float64       `yaml:"speed"`
	Interval time.Duration `yaml:"interval"`
}

// FlappyPlayer defines the bird's box.
type FlappyPlayer struct {
	CenterX float64 `yaml:"center_x"`
	Size    float64 `yaml:"size"`
}

// SlicerConfig contains all configuration for the slicing game.
type SlicerConfig struct {
	Field         Field         `yaml:"field"`
	Tick          time.Duration `yaml:"tick"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	BombChance    float64       `yaml:"bomb_chance"`
	Gravity       float64       `yaml:"gravity"`
	Lives         int           `yaml:"lives"`
	Trail         SlicerTrail   `yaml:"trail"`
	Scoring       SlicerScoring `yaml:"scoring"`
}

// SlicerTrail defines the pointer trail used for slice detection.
type SlicerTrail struct {
	Length    int           `yaml:"length"`
	MaxAge    time.Duration `yaml:"max_age"`
	Threshold float64       `yaml:"threshold"` // slice when distance < threshold
}

// SlicerScoring defines combo scoring.
type SlicerScoring struct {
	Base         int           `yaml:"base"`
	PerCombo     int           `yaml:"per_combo"`
	ComboTimeout time.Duration `yaml:"combo_timeout"`
}
