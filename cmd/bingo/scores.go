package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bingo/internal/registry"
	"github.com/vovakirdan/tui-bingo/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores and recent rounds for a variant",
	Long: `Display the top 10 high scores, win/loss statistics and the most
recent rounds for the specified variant.

Examples:
  bingo scores bingo
  bingo scores bingo_blitz --recent 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent rounds to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bingo list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bingo play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.RoundStats(gameID)
	if err != nil || stats.Played == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Rounds: %d  Won: %d  Lost: %d  Win rate: %.0f%%  Avg marked: %.1f  Best: %d\n",
		stats.Played, stats.Won, stats.Lost, stats.WinRate()*100, stats.AvgMarked, stats.BestScore)

	rounds, err := store.RecentRounds(gameID, flagRecent)
	if err != nil || len(rounds) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent rounds:")
	fmt.Printf("  %-6s  %-6s  %-6s  %-8s  %-15s  %s\n", "Result", "Score", "Marked", "Time", "Reason", "Date")
	for _, r := range rounds {
		fmt.Printf("  %-6s  %-6d  %-6s  %-8s  %-15s  %s\n",
			r.Result,
			r.Score,
			fmt.Sprintf("%d/15", r.Marked),
			r.Duration.Round(100*time.Millisecond),
			r.Reason,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
