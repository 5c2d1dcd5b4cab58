package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// historyLimit is how many rows 'arcade stats <game>' prints.
const historyLimit = 10

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show play statistics",
	Long: `Display how often each game was played along with its best,
average and last played scores, from the full score history.

With a game, show that game's totals and its best results of all time.
Unlike the leaderboard, the history keeps every result ever recorded.

Statistics need the database; they are unavailable when the arcade
runs without one.

Examples:
  arcade stats
  arcade stats snake`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	e := openEnv(cmd)
	defer e.Close()

	if e.db == nil {
		fmt.Println("No score history without a database.")
		return
	}

	if len(args) == 1 {
		if err := printGameHistory(e.db, args[0]); err != nil {
			e.fail("reading history: %v", err)
		}
		return
	}

	stats, err := e.db.GetAllGamesStats()
	if err != nil {
		e.fail("reading statistics: %v", err)
	}

	fmt.Printf("Player: %s  Coins: %d  Achievements: %d\n",
		e.store.PlayerName(), e.store.Coins(), e.store.UnlockedCount())
	fmt.Println()

	fmt.Printf("  %-16s  %6s  %8s  %8s  %s\n", "Game", "Played", "Best", "Average", "Last played")
	fmt.Printf("  %-16s  %6s  %8s  %8s  %s\n", "----", "------", "----", "-------", "-----------")

	for _, g := range registry.List() {
		st, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-16s  %6d  %8s  %8s  %s\n", g.Title, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-16s  %6d  %8d  %8.0f  %s\n",
			g.Title, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// printGameHistory prints one game's totals and its best recorded results.
func printGameHistory(db *storage.Store, gameID string) error {
	st, err := db.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("History - %s\n", gameID)
	fmt.Println()
	if st.GamesCount == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}
	fmt.Printf("Played: %d  Best: %d  Average: %.0f  Last played: %s\n",
		st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	fmt.Println()

	rows, err := db.TopScores(gameID, historyLimit)
	if err != nil {
		return err
	}
	fmt.Printf("  %-4s  %-20s  %-10s  %-6s  %s\n", "#", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-20s  %-10s  %-6s  %s\n", "-", "------", "-----", "-----", "----")
	for i, r := range rows {
		name := runewidth.FillRight(runewidth.Truncate(r.Player, 20, "…"), 20)
		fmt.Printf("  %-4d  %s  %-10d  %-6s  %s\n", i+1, name, r.Score, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
