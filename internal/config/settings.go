package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Settings are platform-wide preferences read from ~/.arcade/settings.toml
// (or .yaml). Pointer fields distinguish "unset" from zero values.
type Settings struct {
	Difficulty     *string `toml:"difficulty" yaml:"difficulty"`
	TickRate       *int    `toml:"tick_rate" yaml:"tick_rate"`
	PlayerName     *string `toml:"player_name" yaml:"player_name"`
	AllGamesTarget *int    `toml:"all_games_target" yaml:"all_games_target"`
	DBPath         *string `toml:"db" yaml:"db"`
}

// DefaultSettingsPath returns ~/.arcade/settings.toml, or a relative path
// when the home directory is unknown.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "settings.toml"
	}
	return filepath.Join(home, ".arcade", "settings.toml")
}

// LoadSettings reads a settings file; the format follows the extension
// (.yaml/.yml, anything else is TOML). Missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return Settings{}, fmt.Errorf("settings path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	default:
		_, err = toml.Decode(string(data), &s)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings %s: %w", path, err)
	}
	return s, nil
}

// Preset returns the configured difficulty, or fallback when unset.
func (s Settings) Preset(fallback DifficultyPreset) DifficultyPreset {
	if s.Difficulty == nil {
		return fallback
	}
	return ParsePreset(*s.Difficulty)
}

// TickRateOr returns the configured tick rate when positive, else fallback.
func (s Settings) TickRateOr(fallback int) int {
	if s.TickRate == nil || *s.TickRate <= 0 {
		return fallback
	}
	return *s.TickRate
}

// AllGamesTargetOr returns the configured all-games target when positive.
func (s Settings) AllGamesTargetOr(fallback int) int {
	if s.AllGamesTarget == nil || *s.AllGamesTarget <= 0 {
		return fallback
	}
	return *s.AllGamesTarget
}

// DBPathOr returns the configured database path when non-empty.
func (s Settings) DBPathOr(fallback string) string {
	if s.DBPath == nil || *s.DBPath == "" {
		return fallback
	}
	return *s.DBPath
}
