package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a YAML config file for name.
// Search order: customPath -> ~/.arcade/configs/<name> -> ./configs/<name> -> embedded default.
// Only a custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or broken.
func load[T any](name, customPath string) (T, error) {
	var cfg T

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decodeOver(&cfg, name, data); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := decodeOver(&cfg, name, data); err == nil {
			return cfg, nil
		}
		cfg = *new(T)
	}

	if err := decodeOver(&cfg, name, nil); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded %s: %w", name, err)
	}
	return cfg, nil
}

// decodeOver fills cfg from the embedded default first and then from data,
// so a user file only needs the keys it changes.
func decodeOver(cfg any, name string, data []byte) error {
	def, err := defaultsFS.ReadFile("defaults/" + name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(def, cfg); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load[SnakeConfig]("snake.yaml", customPath)
}

// LoadPong loads Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return load[PongConfig]("pong.yaml", customPath)
}

// LoadInvaders loads Space Invaders configuration.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load[InvadersConfig]("invaders.yaml", customPath)
}

// LoadMemory loads Memory configuration.
func LoadMemory(customPath string) (MemoryConfig, error) {
	return load[MemoryConfig]("memory.yaml", customPath)
}

// LoadTicTacToe loads Tic-Tac-Toe configuration.
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	return load[TicTacToeConfig]("tictactoe.yaml", customPath)
}

// LoadRewards loads the coin payout tables.
func LoadRewards(customPath string) (RewardsConfig, error) {
	return load[RewardsConfig]("rewards.yaml", customPath)
}
