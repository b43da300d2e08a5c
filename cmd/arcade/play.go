package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engines/internal/config"
	"github.com/vovakirdan/arcade-engines/internal/platform/tui"
	"github.com/vovakirdan/arcade-engines/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move, steer or rotate
  Space       - Flap (flappy), hard drop (blocks)
  X           - Rotate (blocks)
  Mouse       - Slice (slicer)
  P/Esc       - Pause
  R           - Restart (after game over or while paused)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower speed-up
  normal - Default progression
  hard   - Start a few levels in
  fixed  - No progression, stays at the initial speed

Examples:
  arcade play snake
  arcade play maze --difficulty easy
  arcade play blocks --difficulty hard
  arcade play flappy --config ./my-flappy.yaml
  arcade play wordle`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	env, cleanup, err := newEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	env.Options = registry.Options{ConfigPath: flagConfig, Preset: flagDifficulty}

	runErr := tui.Run(gameID, env)

	// Close storage before potential exit
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
