package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arcade-engines/internal/progression"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyCurvePreset adjusts a progression curve for a preset.
// easy halves the per-level speed-up, hard starts at level 3, fixed never levels.
func ApplyCurvePreset(c progression.Curve, preset DifficultyPreset) progression.Curve {
	if IsFixedPreset(preset) {
		c.Every = 0
		return c
	}
	switch preset {
	case DifficultyEasy:
		c.Step /= 2
	case DifficultyHard:
		c.StartLevel = 3
	}
	return c
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Progression = ApplyCurvePreset(cfg.Progression, preset)
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	cfg.Progression = ApplyCurvePreset(cfg.Progression, preset)
}

// ApplyMazePreset modifies the config based on a difficulty preset.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	cfg.Progression = ApplyCurvePreset(cfg.Progression, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Lives = 5
		cfg.GhostMoveChance = 0.35
	case DifficultyHard:
		cfg.Lives = 1
		cfg.GhostMoveChance = 0.7
	}
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Pipes.Gap = 190
	case DifficultyHard:
		cfg.Pipes.Gap = 120
		cfg.Pipes.Speed = 4
	}
}

// ApplySlicerPreset modifies the config based on a difficulty preset.
func ApplySlicerPreset(cfg *SlicerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lives = 5
		cfg.BombChance = 0.1
	case DifficultyHard:
		cfg.Lives = 2
		cfg.BombChance = 0.3
	}
}
