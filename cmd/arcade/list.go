package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its playfield size and best score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Best scores are optional; the listing works without a database.
	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err == nil {
		store = s
		defer store.Close()
	}

	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-16s  %-9s  %s\n", maxIDLen, "ID", "Title", "Field", "Best")
	fmt.Printf("  %-*s  %-16s  %-9s  %s\n", maxIDLen, "--", "-----", "-----", "----")

	for _, info := range games {
		game, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		size := game.Size()
		field := fmt.Sprintf("%.0fx%.0f", size.X, size.Y)

		best := "-"
		if store != nil {
			if hs, err := store.HighScore(info.ID); err == nil && hs > 0 {
				best = fmt.Sprintf("%d", hs)
			}
		}
		fmt.Printf("  %-*s  %-16s  %-9s  %s\n", maxIDLen, info.ID, info.Title, field, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
