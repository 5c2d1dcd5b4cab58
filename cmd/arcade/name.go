package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/progress"
)

var nameCmd = &cobra.Command{
	Use:   "name [new-name]",
	Short: "Show or change the player name",
	Long: fmt.Sprintf(`Show the player name used on leaderboards, or change it.
Names are trimmed and must be 1 to %d characters long.

Examples:
  arcade name
  arcade name "Ada Lovelace"`, progress.MaxNameLength),
	Args: cobra.MaximumNArgs(1),
	Run:  runName,
}

func runName(cmd *cobra.Command, args []string) {
	e := openEnv(cmd)
	defer e.Close()

	if len(args) == 1 {
		if !e.store.SetPlayerName(args[0]) {
			e.fail("name must be 1 to %d characters", progress.MaxNameLength)
		}
	}

	fmt.Println(e.store.PlayerName())
	fmt.Printf("id: %s\n", e.store.PlayerID())
	if title := e.store.Active(progress.CategoryTitle); title != "" {
		fmt.Printf("title: %s\n", title)
	}
	if badges := e.store.ActiveBadges(); len(badges) > 0 {
		fmt.Printf("badges: %s\n", strings.Join(badges, ", "))
	}
}
