package config

import (
	"embed"
	"fmt"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultSnake returns the embedded Snake configuration.
func DefaultSnake() SnakeConfig { return mustDefault[SnakeConfig]("snake.yaml") }

// DefaultPong returns the embedded Pong configuration.
func DefaultPong() PongConfig { return mustDefault[PongConfig]("pong.yaml") }

// DefaultInvaders returns the embedded Space Invaders configuration.
func DefaultInvaders() InvadersConfig { return mustDefault[InvadersConfig]("invaders.yaml") }

// DefaultMemory returns the embedded Memory configuration.
func DefaultMemory() MemoryConfig { return mustDefault[MemoryConfig]("memory.yaml") }

// DefaultTicTacToe returns the embedded Tic-Tac-Toe configuration.
func DefaultTicTacToe() TicTacToeConfig { return mustDefault[TicTacToeConfig]("tictactoe.yaml") }

// DefaultRewards returns the embedded payout tables.
func DefaultRewards() RewardsConfig { return mustDefault[RewardsConfig]("rewards.yaml") }

// mustDefault decodes an embedded file. The files ship with the binary, so
// a decode failure is a build defect.
func mustDefault[T any](name string) T {
	var cfg T
	if err := decodeOver(&cfg, name, nil); err != nil {
		panic(fmt.Sprintf("config: embedded %s: %v", name, err))
	}
	return cfg
}
