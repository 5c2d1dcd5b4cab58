package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var (
	flagSimTicks    uint64
	flagSimRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless with random input",
	Long: `Run a game without a terminal, feeding it random input each tick, and
print how the round ended. Results are not recorded. Useful for checking
custom configs and difficulty tuning; with --seed the run is reproducible.

Examples:
  arcade sim snake --ticks 5000
  arcade sim invaders --seed 42 --difficulty hard`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 36000, "Stop after this many ticks")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Tick at --fps instead of as fast as possible")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// simActions are the inputs a random player presses.
var simActions = []core.Action{
	core.ActionNone, core.ActionUp, core.ActionDown, core.ActionLeft,
	core.ActionRight, core.ActionFire, core.ActionConfirm,
}

func runSim(cmd *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = seed
	if flagDifficulty != "" {
		cfg.Difficulty = flagDifficulty
	}
	game.Reset(cfg)

	loop := core.Loop{MaxTicks: flagSimTicks}
	if flagSimRealtime {
		loop = core.NewLoop(cfg.TickRate)
		loop.MaxTicks = flagSimTicks
	}

	rng := rand.New(rand.NewSource(seed))
	input := func(tick uint64) core.InputFrame {
		if tick == 0 {
			return core.FrameOf(core.ActionStart)
		}
		return core.FrameOf(simActions[rng.Intn(len(simActions))])
	}

	var outcome *core.OutcomeEvent
	observe := func(res core.StepResult) {
		for _, ev := range res.Events {
			if o, ok := ev.(core.OutcomeEvent); ok {
				outcome = &o
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticks, err := loop.Run(ctx, game, input, observe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation stopped: %v\n", err)
	}

	fmt.Printf("%s  seed %d  difficulty %s\n", game.Title(), seed, cfg.Level())
	fmt.Printf("Ticks: %d (%.1fs of play)\n", ticks, float64(ticks)/float64(cfg.TickRate))
	if outcome == nil {
		fmt.Println("Round still running when the simulation stopped.")
		return
	}
	result := "lost"
	switch {
	case outcome.Won:
		result = "won"
	case outcome.Draw:
		result = "draw"
	}
	fmt.Printf("Score: %d  Result: %s\n", outcome.Score, result)
}
