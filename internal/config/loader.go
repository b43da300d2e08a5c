package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<name> -> ./configs/<name> -> embedded default -> fallback.
// Each file is decoded over the defaults, so a partial file only overrides what it names.
func load[T any](name, customPath string, embedded []byte, fallback T) (T, error) {
	cfg := fallback
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		cfg = fallback
	}

	// A custom path must exist and parse.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		next := cfg
		if err := yaml.Unmarshal(data, &next); err == nil {
			return next, nil
		}
	}
	return cfg, nil
}

// LoadSnake loads snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake.yaml", customPath, defaultSnakeYAML, DefaultSnakeConfig())
}

// LoadBlocks loads falling-block configuration.
// A line-score table shorter than two entries falls back to the default.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	cfg, err := load("blocks.yaml", customPath, defaultBlocksYAML, DefaultBlocksConfig())
	if err != nil {
		return cfg, err
	}
	if len(cfg.LineScores) < 2 {
		cfg.LineScores = DefaultBlocksConfig().LineScores
	}
	return cfg, nil
}

// LoadMaze loads maze chase configuration.
func LoadMaze(customPath string) (MazeConfig, error) {
	return load("maze.yaml", customPath, defaultMazeYAML, DefaultMazeConfig())
}

// LoadFlappy loads side-scroller configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load("flappy.yaml", customPath, defaultFlappyYAML, DefaultFlappyConfig())
}

// LoadSlicer loads slicing game configuration.
func LoadSlicer(customPath string) (SlicerConfig, error) {
	return load("slicer.yaml", customPath, defaultSlicerYAML, DefaultSlicerConfig())
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
