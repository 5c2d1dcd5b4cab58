// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade, plus the platform settings file.
package config

import "github.com/vovakirdan/neon-arcade/internal/shop"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty names in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset maps a user-supplied name to a preset; anything unknown is normal.
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name)
	default:
		return DifficultyNormal
	}
}

// Field is a continuous playfield size.
type Field struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Grid struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"grid"`
	Start struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"start"`
	Difficulty map[DifficultyPreset]SnakeTuning `yaml:"difficulty"`
}

// SnakeTuning holds the values a difficulty preset changes.
type SnakeTuning struct {
	MoveIntervalMS int `yaml:"move_interval_ms"`
	PointsPerFood  int `yaml:"points_per_food"`
}

// Tuning returns the preset's values, falling back to normal.
func (c SnakeConfig) Tuning(p DifficultyPreset) SnakeTuning {
	if t, ok := c.Difficulty[p]; ok {
		return t
	}
	return c.Difficulty[DifficultyNormal]
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Field  Field `yaml:"field"`
	Paddle struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
		Speed  float64 `yaml:"speed"`
		Offset float64 `yaml:"offset"`
	} `yaml:"paddle"`
	Ball struct {
		Size    float64 `yaml:"size"`
		Speed   float64 `yaml:"speed"`
		Speedup float64 `yaml:"speedup"`
		Spin    float64 `yaml:"spin"`
	} `yaml:"ball"`
	AIDeadZone float64                         `yaml:"ai_dead_zone"`
	WinScore   int                             `yaml:"win_score"`
	Difficulty map[DifficultyPreset]PongTuning `yaml:"difficulty"`
}

// PongTuning holds the values a difficulty preset changes.
type PongTuning struct {
	AISpeedFactor float64 `yaml:"ai_speed_factor"`
}

// Tuning returns the preset's values, falling back to normal.
func (c PongConfig) Tuning(p DifficultyPreset) PongTuning {
	if t, ok := c.Difficulty[p]; ok {
		return t
	}
	return c.Difficulty[DifficultyNormal]
}

// InvadersConfig contains all configuration for Space Invaders.
type InvadersConfig struct {
	Field  Field `yaml:"field"`
	Player struct {
		Width        float64 `yaml:"width"`
		Height       float64 `yaml:"height"`
		Speed        float64 `yaml:"speed"`
		BottomMargin float64 `yaml:"bottom_margin"`
		CooldownMS   int     `yaml:"cooldown_ms"`
	} `yaml:"player"`
	Bullet struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
		Speed  float64 `yaml:"speed"`
	} `yaml:"bullet"`
	Enemy struct {
		Width   float64 `yaml:"width"`
		Height  float64 `yaml:"height"`
		Rows    int     `yaml:"rows"`
		Cols    int     `yaml:"cols"`
		Spacing float64 `yaml:"spacing"`
		StartY  float64 `yaml:"start_y"`
		FireMS  int     `yaml:"fire_ms"`
	} `yaml:"enemy"`
	KillPoints    int                                 `yaml:"kill_points"`
	WaveSpeedStep float64                             `yaml:"wave_speed_step"`
	ShakeMS       int                                 `yaml:"shake_ms"`
	Difficulty    map[DifficultyPreset]InvadersTuning `yaml:"difficulty"`
}

// InvadersTuning holds the values a difficulty preset changes.
type InvadersTuning struct {
	Lives      int     `yaml:"lives"`
	EnemySpeed float64 `yaml:"enemy_speed"`
}

// Tuning returns the preset's values, falling back to normal.
func (c InvadersConfig) Tuning(p DifficultyPreset) InvadersTuning {
	if t, ok := c.Difficulty[p]; ok {
		return t
	}
	return c.Difficulty[DifficultyNormal]
}

// MemoryConfig contains all configuration for Memory.
type MemoryConfig struct {
	MismatchDelayMS int                               `yaml:"mismatch_delay_ms"`
	BaseScore       int                               `yaml:"base_score"`
	TimePenalty     int                               `yaml:"time_penalty"`
	MovePenalty     int                               `yaml:"move_penalty"`
	Symbols         []string                          `yaml:"symbols"`
	Difficulty      map[DifficultyPreset]MemoryTuning `yaml:"difficulty"`
}

// MemoryTuning holds the values a difficulty preset changes.
type MemoryTuning struct {
	Pairs   int `yaml:"pairs"`
	Columns int `yaml:"columns"`
}

// Tuning returns the preset's values, falling back to normal.
func (c MemoryConfig) Tuning(p DifficultyPreset) MemoryTuning {
	if t, ok := c.Difficulty[p]; ok {
		return t
	}
	return c.Difficulty[DifficultyNormal]
}

// TicTacToeConfig contains all configuration for Tic-Tac-Toe.
type TicTacToeConfig struct {
	AIDelayMS int `yaml:"ai_delay_ms"`
}

// RewardsConfig maps game ids to coin payout tiers.
type RewardsConfig map[string][]shop.Tier

// For returns the tiers for game, or nil.
func (r RewardsConfig) For(game string) []shop.Tier {
	return r[game]
}
