package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quad-arcade/internal/storage"
)

var flagResultsLimit int

var resultsCmd = &cobra.Command{
	Use:   "results <game>",
	Short: "Show recent round results for a two-player game",
	Long: `Display who won the latest rounds of Pong or Tic-Tac-Toe,
with a win tally per side.

Examples:
  arcade results pong
  arcade results tictactoe --limit 5`,
	Args: cobra.ExactArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 20, "Number of rounds to show")
}

func runResults(_ *cobra.Command, args []string) {
	game := mustGame(args[0])
	gameID := game.ID()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	results, err := store.RecentResults(gameID, flagResultsLimit)
	if err != nil {
		fail("retrieving results: %v", err)
	}

	fmt.Printf("Round Results - %s\n", game.Title())
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}

	fmt.Printf("  %-6s  %-7s  %-8s  %s\n", "Winner", "Score", "Time", "Date")
	fmt.Printf("  %-6s  %-7s  %-8s  %s\n", "------", "-----", "----", "----")
	for _, r := range results {
		score := fmt.Sprintf("%d-%d", r.LeftScore, r.RightScore)
		fmt.Printf("  %-6s  %-7s  %-8s  %s\n",
			r.Winner, score, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	counts, err := store.WinCounts(gameID)
	if err != nil {
		return
	}
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	fmt.Println()
	fmt.Print("Wins:")
	for _, label := range labels {
		fmt.Printf("  %s %d", label, counts[label])
	}
	fmt.Println()
}
