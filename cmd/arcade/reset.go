package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var (
	flagResetYes     bool
	flagResetHistory bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe coins, achievements, leaderboards and purchases",
	Long: `Start over with a fresh profile. Coins, achievements, leaderboards,
purchases, themes and the player name are deleted; the player id is kept.

The score history behind 'arcade stats' survives unless --history is given.

Examples:
  arcade reset --yes
  arcade reset --yes --history`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Confirm the reset")
	resetCmd.Flags().BoolVar(&flagResetHistory, "history", false, "Also delete the score history")
}

func runReset(cmd *cobra.Command, _ []string) {
	e := openEnv(cmd)
	defer e.Close()

	if !flagResetYes {
		e.fail("this deletes all progress, run again with --yes")
	}
	if err := e.store.Reset(); err != nil {
		e.fail("reset failed: %v", err)
	}
	fmt.Println("Progress wiped.")

	if !flagResetHistory {
		return
	}
	if e.db == nil {
		fmt.Println("No score history without a database.")
		return
	}
	for _, g := range registry.List() {
		if err := e.db.ClearScores(g.ID); err != nil {
			e.fail("clearing %s history: %v", g.ID, err)
		}
	}
	fmt.Println("Score history deleted.")
}
