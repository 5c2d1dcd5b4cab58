// arcade is a retro arcade for the terminal: Snake, Pong, Space Invaders,
// Memory Cards and Tic-Tac-Toe, tied together by coins, achievements,
// leaderboards and a cosmetics shop.
//
// Usage:
//
//	arcade list                 - List available games
//	arcade play <game>          - Play a game
//	arcade menu                 - Start menu to pick games interactively
//	arcade serve                - Start SSH server for remote play
//	arcade scores <game>        - Show the leaderboard for a game
//	arcade stats [game]         - Show play statistics and score history
//	arcade achievements         - List achievements and progress
//	arcade coins                - Show the coin balance
//	arcade shop                 - Browse, buy and equip cosmetics
//	arcade name [new-name]      - Show or change the player name
//	arcade sim <game>           - Run a game headless with random input
//	arcade reset --yes          - Wipe all progress and start over
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/arcade.db)
//	--settings <path>   - Settings file (default: ~/.arcade/settings.toml)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/neon-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/neon-arcade/internal/games/memory"
	_ "github.com/vovakirdan/neon-arcade/internal/games/pong"
	_ "github.com/vovakirdan/neon-arcade/internal/games/snake"
	_ "github.com/vovakirdan/neon-arcade/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagSettings string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Neon Arcade - retro games with coins, achievements and a shop",
	Long: `Neon Arcade is a terminal arcade. Every game you finish pays coins,
counts towards achievements and lands on a per-game leaderboard.
Coins buy cursors, name colors, badges, titles and color themes.

Available commands:
  list          - Show all available games
  play          - Play a specific game directly
  menu          - Interactive arcade with shop and achievements
  serve         - Start SSH server for remote play
  scores        - View a game's leaderboard
  stats         - View play statistics
  achievements  - View achievements
  coins         - View the coin balance
  shop          - Buy and equip cosmetics and themes
  name          - View or change the player name
  sim           - Run a game headless with random input
  reset         - Wipe all progress and start over

Examples:
  arcade list
  arcade play snake
  arcade menu
  arcade serve --ssh :2222
  arcade scores invaders`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the arcade database")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", config.DefaultSettingsPath(), "Path to settings file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(coinsCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(resetCmd)
}
