package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/session"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the leaderboard for a game",
	Long: `Display the top 10 scores for the specified game.

Tic-Tac-Toe has no leaderboard; wins pay coins instead.

Examples:
  arcade scores snake
  arcade scores invaders`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	if gameID == session.TicTacToe {
		fmt.Printf("%s has no leaderboard.\n", title)
		return
	}

	e := openEnv(cmd)
	defer e.Close()

	entries := e.store.Leaderboard(gameID)

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-10s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-20s  %-10s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	// Print scores
	for i, entry := range entries {
		name := runewidth.FillRight(runewidth.Truncate(entry.PlayerName, 20, "…"), 20)
		dateStr := entry.Date.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %s  %-10d  %-6s  %s\n", i+1, name, entry.Score, entry.Difficulty, dateStr)
	}

	// Show all-time history next to the table
	fmt.Println()
	fmt.Printf("Best: %d\n", e.store.HighScore(gameID))
	if e.db == nil {
		return
	}
	// The history outlives the table, so its best can be higher.
	if best, err := e.db.HighScore(gameID); err == nil && best > e.store.HighScore(gameID) {
		fmt.Printf("All-time best: %d\n", best)
	}
	if st, err := e.db.GetGameStats(gameID); err == nil && st.GamesCount > 0 {
		fmt.Printf("Games played: %d  Average: %.0f\n", st.GamesCount, st.AvgScore)
	}
}
