package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its id, title and kind.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	idW := len("ID")
	for _, g := range games {
		idW = max(idW, len(g.ID))
	}

	fmt.Printf("  %-*s  %-14s  %s\n", idW, "ID", "Title", "Kind")
	for _, g := range games {
		kind := "turn-based"
		if g.Timed {
			kind = "real-time"
		}
		fmt.Printf("  %-*s  %-14s  %s\n", idW, g.ID, g.Title, kind)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
