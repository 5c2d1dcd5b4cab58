package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Pick a game, or open the high scores, achievements and shop screens.
After a game ends, Esc returns to the menu to play again.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change the selected game's difficulty
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./arcade.db`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	e := openEnv(cmd)

	err := tui.RunApp(tui.AppConfig{
		Store:   e.store,
		History: e.history(),
		Runtime: e.runtime(cmd),
		Session: e.sessionOptions(),
		Logger:  e.logger,
	})
	if err != nil {
		e.fail("%v", err)
	}
	e.Close()
}
