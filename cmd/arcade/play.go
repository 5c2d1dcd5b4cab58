package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/games/invaders"
	"github.com/vovakirdan/neon-arcade/internal/games/memory"
	"github.com/vovakirdan/neon-arcade/internal/games/pong"
	"github.com/vovakirdan/neon-arcade/internal/games/snake"
	"github.com/vovakirdan/neon-arcade/internal/games/tictactoe"
	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/progress"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/session"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move
  Space       - Start / fire / flip
  Enter       - Confirm
  P           - Pause
  R           - Restart (after game over)
  Esc         - Pause, then leave
  Q/Ctrl+C    - Quit

Difficulty options:
  easy, normal, hard. Without --difficulty the last difficulty picked for
  the game in the menu is used, then the settings file, then normal.
  Tic-Tac-Toe has no difficulty.

Examples:
  arcade play snake
  arcade play pong --difficulty hard
  arcade play invaders --config ./my-invaders.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	e := openEnv(cmd)
	cfg := e.runtime(cmd)

	if p, ok := e.store.Preferences(gameID); ok && p.Difficulty != "" {
		cfg.Difficulty = p.Difficulty
	}
	if flagDifficulty != "" {
		cfg.Difficulty = flagDifficulty
		e.store.SetPreferences(gameID, progress.Preferences{Difficulty: cfg.Level()})
	}

	// Set config path and difficulty for games before creation
	switch gameID {
	case session.Snake:
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(flagDifficulty)
	case session.Pong:
		pong.SetConfigPath(flagConfig)
		pong.SetDifficultyPreset(flagDifficulty)
	case session.Invaders:
		invaders.SetConfigPath(flagConfig)
		invaders.SetDifficultyPreset(flagDifficulty)
	case session.Memory:
		memory.SetConfigPath(flagConfig)
		memory.SetDifficultyPreset(flagDifficulty)
	case session.TicTacToe:
		tictactoe.SetConfigPath(flagConfig)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		e.fail("creating game: %v", err)
	}

	rec := session.New(gameID, e.store, e.sessionOptions()...)
	e.logger.Debug("starting game", "game", gameID, "difficulty", cfg.Level(), "fps", cfg.TickRate)

	// Run the game
	if err := tui.Run(game, e.store, cfg, rec); err != nil {
		e.fail("running game: %v", err)
	}
	e.Close()
}
