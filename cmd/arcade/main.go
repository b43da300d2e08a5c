// arcade is a terminal arcade of real-time and turn-based games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade scores <game>     - Show high scores for a game
//	arcade stats             - Show stored counters and statistics
//
// Global flags:
//
//	--fps <rate>        - Set render rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db, env ARCADE_DB)
//	--log-level <lvl>   - debug, info, warn or error (env ARCADE_LOG_LEVEL)
//	--log-file <path>   - Log destination (default: ~/.arcade/arcade.log)
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-engines/internal/games/blocks"
	_ "github.com/vovakirdan/arcade-engines/internal/games/flappy"
	_ "github.com/vovakirdan/arcade-engines/internal/games/maze"
	_ "github.com/vovakirdan/arcade-engines/internal/games/slicer"
	_ "github.com/vovakirdan/arcade-engines/internal/games/snake"
	_ "github.com/vovakirdan/arcade-engines/internal/games/tictactoe"
	_ "github.com/vovakirdan/arcade-engines/internal/games/wordle"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - play classic games in your terminal",
	Long: `Arcade bundles seven classic games behind one terminal front end.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores
  stats    - View stored counters and statistics

Examples:
  arcade list
  arcade play snake
  arcade play blocks --difficulty hard
  arcade menu
  arcade scores flappy`,
	PersistentPreRun: loadEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Render rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Path to log file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadEnv reads a .env file if present and fills flags the user left unset.
func loadEnv(cmd *cobra.Command, _ []string) {
	//nolint:errcheck // A missing .env file is normal
	godotenv.Load()

	flags := cmd.Flags()
	if v := os.Getenv("ARCADE_DB"); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("ARCADE_LOG_LEVEL"); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}
}
