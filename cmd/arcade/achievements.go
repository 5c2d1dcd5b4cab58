package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and progress",
	Args:  cobra.NoArgs,
	Run:   runAchievements,
}

func runAchievements(cmd *cobra.Command, _ []string) {
	e := openEnv(cmd)
	defer e.Close()

	list := e.store.Achievements()
	fmt.Printf("Achievements - %d/%d unlocked\n", e.store.UnlockedCount(), len(list))
	fmt.Println()

	for _, a := range list {
		mark := " "
		if a.Unlocked {
			mark = "✓"
		}
		fmt.Printf("  [%s] %-20s  %s", mark, a.Title, a.Description)
		switch {
		case a.Unlocked && !a.UnlockedDate.IsZero():
			fmt.Printf("  (%s)", a.UnlockedDate.Format("2006-01-02"))
		case a.HasProgress():
			fmt.Printf("  (%d/%d)", a.Progress, a.MaxProgress)
		}
		fmt.Println()
	}
}
