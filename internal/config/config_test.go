package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	snake, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() error: %v", err)
	}
	if snake.Progression != DefaultSnakeConfig().Progression {
		t.Errorf("snake progression = %+v, want %+v", snake.Progression, DefaultSnakeConfig().Progression)
	}
	if snake.Grid.Width != 20 || snake.FoodPoints != 10 {
		t.Errorf("snake config = %+v", snake)
	}

	blocks, err := LoadBlocks("")
	if err != nil {
		t.Fatalf("LoadBlocks() error: %v", err)
	}
	if len(blocks.LineScores) != 5 || blocks.LineScores[4] != 800 {
		t.Errorf("line scores = %v", blocks.LineScores)
	}
	if blocks.Progression.Initial != time.Second {
		t.Errorf("blocks initial period = %v, want 1s", blocks.Progression.Initial)
	}

	maze, _ := LoadMaze("")
	if maze.PowerDuration != 5*time.Second || maze.Lives != 3 {
		t.Errorf("maze config = %+v", maze)
	}

	flappy, _ := LoadFlappy("")
	if flappy.Pipes.Interval != 2*time.Second || flappy.Tick != 20*time.Millisecond {
		t.Errorf("flappy config = %+v", flappy)
	}

	slicer, _ := LoadSlicer("")
	if slicer.Trail.MaxAge != 300*time.Millisecond || slicer.Trail.Threshold != 8 {
		t.Errorf("slicer config = %+v", slicer)
	}
}

func TestCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("food_points: 25\nprogression:\n  initial: 300ms\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() error: %v", err)
	}
	if cfg.FoodPoints != 25 {
		t.Errorf("food points = %d, want 25", cfg.FoodPoints)
	}
	if cfg.Progression.Initial != 300*time.Millisecond {
		t.Errorf("initial = %v, want 300ms", cfg.Progression.Initial)
	}
	if cfg.Progression.Floor != 50*time.Millisecond || cfg.Grid.Width != 20 {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
}

func TestEmptyLineScoresFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	if err := os.WriteFile(path, []byte("line_scores: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadBlocks(path)
	if err != nil {
		t.Fatalf("LoadBlocks() error: %v", err)
	}
	if len(cfg.LineScores) != 5 || cfg.LineScores[1] != 100 {
		t.Errorf("line scores = %v, want the default table", cfg.LineScores)
	}
}

func TestCustomPathErrors(t *testing.T) {
	if _, err := LoadMaze(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("lives: [not an int"), 0o644)
	if _, err := LoadMaze(path); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePreset(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParsePreset(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestApplyCurvePreset(t *testing.T) {
	base := DefaultSnakeConfig().Progression

	if c := ApplyCurvePreset(base, DifficultyEasy); c.Step != 10*time.Millisecond {
		t.Errorf("easy step = %v, want 10ms", c.Step)
	}
	if c := ApplyCurvePreset(base, DifficultyHard); c.Level(0) != 3 {
		t.Errorf("hard start level = %d, want 3", c.Level(0))
	}
	if c := ApplyCurvePreset(base, DifficultyFixed); c.Progressive() {
		t.Error("fixed preset should disable progression")
	}
	if c := ApplyCurvePreset(base, DifficultyNormal); c != base {
		t.Error("normal preset should not change the curve")
	}
}
