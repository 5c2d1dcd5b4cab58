package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/shop"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaults(t *testing.T) {
	snake := DefaultSnake()
	if snake.Grid.Width != 15 || snake.Grid.Height != 15 {
		t.Errorf("snake grid = %dx%d, want 15x15", snake.Grid.Width, snake.Grid.Height)
	}
	if snake.Start.X != 7 || snake.Start.Y != 7 {
		t.Errorf("snake start = (%d,%d), want (7,7)", snake.Start.X, snake.Start.Y)
	}

	pong := DefaultPong()
	if pong.Field.Width != 800 || pong.Field.Height != 600 {
		t.Errorf("pong field = %vx%v", pong.Field.Width, pong.Field.Height)
	}
	if pong.WinScore != 10 || pong.Ball.Speedup != 1.1 || pong.AIDeadZone != 2 {
		t.Errorf("pong rules = win %d speedup %v dead zone %v", pong.WinScore, pong.Ball.Speedup, pong.AIDeadZone)
	}

	inv := DefaultInvaders()
	if inv.Enemy.Rows != 4 || inv.Enemy.Cols != 8 || inv.KillPoints != 100 {
		t.Errorf("invaders formation = %dx%d kill %d", inv.Enemy.Rows, inv.Enemy.Cols, inv.KillPoints)
	}

	mem := DefaultMemory()
	if len(mem.Symbols) < mem.Tuning(DifficultyHard).Pairs {
		t.Errorf("memory has %d symbols, hard needs %d", len(mem.Symbols), mem.Tuning(DifficultyHard).Pairs)
	}

	if DefaultTicTacToe().AIDelayMS != 500 {
		t.Errorf("tictactoe ai delay = %d", DefaultTicTacToe().AIDelayMS)
	}
}

func TestDifficultyTuning(t *testing.T) {
	snake := DefaultSnake()
	pong := DefaultPong()
	inv := DefaultInvaders()
	mem := DefaultMemory()

	tests := []struct {
		preset   DifficultyPreset
		interval int
		points   int
		aiFactor float64
		lives    int
		pairs    int
	}{
		{DifficultyEasy, 200, 5, 0.5, 5, 6},
		{DifficultyNormal, 150, 10, 0.7, 3, 8},
		{DifficultyHard, 100, 15, 0.85, 2, 10},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			st := snake.Tuning(tt.preset)
			if st.MoveIntervalMS != tt.interval || st.PointsPerFood != tt.points {
				t.Errorf("snake = %+v", st)
			}
			if got := pong.Tuning(tt.preset).AISpeedFactor; got != tt.aiFactor {
				t.Errorf("pong ai factor = %v, want %v", got, tt.aiFactor)
			}
			if got := inv.Tuning(tt.preset).Lives; got != tt.lives {
				t.Errorf("invaders lives = %d, want %d", got, tt.lives)
			}
			if got := mem.Tuning(tt.preset).Pairs; got != tt.pairs {
				t.Errorf("memory pairs = %d, want %d", got, tt.pairs)
			}
		})
	}
}

func TestUnknownPresetFallsBackToNormal(t *testing.T) {
	snake := DefaultSnake()
	if got := snake.Tuning("insane"); got != snake.Tuning(DifficultyNormal) {
		t.Errorf("unknown preset = %+v", got)
	}
	if ParsePreset("HARD") != DifficultyNormal {
		t.Error("ParsePreset should be case sensitive")
	}
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("ParsePreset(easy) failed")
	}
}

func TestCustomPathOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "snake.yaml", "grid:\n  width: 20\n  height: 12\n")

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if cfg.Grid.Width != 20 || cfg.Grid.Height != 12 {
		t.Errorf("grid = %dx%d, want 20x12", cfg.Grid.Width, cfg.Grid.Height)
	}
	// Keys the file does not mention keep their embedded values.
	if cfg.Tuning(DifficultyHard).PointsPerFood != 15 {
		t.Errorf("hard points = %d, want 15", cfg.Tuning(DifficultyHard).PointsPerFood)
	}
}

func TestCustomPathErrors(t *testing.T) {
	if _, err := LoadPong(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}

	bad := writeFile(t, "pong.yaml", "field: [unclosed\n")
	if _, err := LoadPong(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestRewardTables(t *testing.T) {
	rewards := DefaultRewards()
	for _, game := range []string{"snake", "pong", "invaders", "memory", "tictactoe"} {
		if len(rewards.For(game)) == 0 {
			t.Errorf("no reward tiers for %s", game)
		}
	}
	if got := shop.Reward(rewards.For("invaders"), 320); got != 3 {
		t.Errorf("invaders 320 pays %d, want 3", got)
	}
	if rewards.For("unknown") != nil {
		t.Error("unknown game should have no tiers")
	}
}

func TestLoadSettingsTOML(t *testing.T) {
	path := writeFile(t, "settings.toml", `difficulty = "hard"
tick_rate = 30
all_games_target = 5
db = "/tmp/arcade.db"
`)
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Preset(DifficultyNormal) != DifficultyHard {
		t.Errorf("preset = %s", s.Preset(DifficultyNormal))
	}
	if s.TickRateOr(60) != 30 {
		t.Errorf("tick rate = %d", s.TickRateOr(60))
	}
	if s.AllGamesTargetOr(4) != 5 {
		t.Errorf("all games target = %d", s.AllGamesTargetOr(4))
	}
	if s.DBPathOr("x") != "/tmp/arcade.db" {
		t.Errorf("db = %s", s.DBPathOr("x"))
	}
}

func TestLoadSettingsYAML(t *testing.T) {
	path := writeFile(t, "settings.yaml", "difficulty: easy\nplayer_name: Ada\n")
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Preset(DifficultyNormal) != DifficultyEasy {
		t.Errorf("preset = %s", s.Preset(DifficultyNormal))
	}
	if s.PlayerName == nil || *s.PlayerName != "Ada" {
		t.Errorf("player name = %v", s.PlayerName)
	}
	if s.TickRateOr(60) != 60 {
		t.Error("unset tick rate should use fallback")
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s.Preset(DifficultyEasy) != DifficultyEasy || s.AllGamesTargetOr(4) != 4 {
		t.Error("missing file should yield fallbacks")
	}
	if _, err := LoadSettings(""); err == nil {
		t.Error("empty path should error")
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := writeFile(t, "settings.toml", "difficulty = \n")
	if _, err := LoadSettings(path); err == nil {
		t.Error("expected decode error")
	}
}
