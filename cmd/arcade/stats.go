package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engines/internal/registry"
	"github.com/vovakirdan/arcade-engines/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored counters and statistics",
	Long: `Display the games-played counter, each game's stored best,
the wordle statistics, the tic-tac-toe scoreboard and per-game
aggregates from the score history.`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

var flagRaw bool

func init() {
	statsCmd.Flags().BoolVar(&flagRaw, "raw", false, "Dump every stored key and value")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRaw {
		dumpKeys(store)
		return
	}

	played, err := storage.ReadInt(store, storage.KeyGamesPlayed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Printf("Games played: %d\n\n", played)

	history, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read score history: %v\n", err)
	}

	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "Game", "Best", "Runs", "Average", "Last played")
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, g := range registry.List() {
		//nolint:errcheck // Corrupt values show as zero
		best, _ := storage.ReadInt(store, storage.HighScoreKey(g.Path))
		runs, avg, last := 0, 0.0, "-"
		if s, ok := history[g.ID]; ok {
			runs, avg = s.GamesCount, s.AvgScore
			last = s.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-12s  %-6d  %-6d  %-8.1f  %s\n", g.ID, best, runs, avg, last)
	}

	ws, err := storage.ReadWordleStats(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Printf("\nWordle: played %d, won %d, streak %d\n", ws.Played, ws.Won, ws.Streak)

	ts, err := storage.ReadTicTacToeScores(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Printf("Tic-Tac-Toe: X %d, O %d, draws %d\n", ts.X, ts.O, ts.Draws)
}

func dumpKeys(store *storage.Store) {
	all, err := store.All()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s = %s\n", k, all[k])
	}
}
