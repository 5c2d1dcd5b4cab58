package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	_, dbPath := openTestStore(t)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreKeyValue(t *testing.T) {
	store, _ := openTestStore(t)

	if _, ok, err := store.Get("arcade-coins"); err != nil || ok {
		t.Fatalf("Get() on empty store = ok %v, err %v", ok, err)
	}

	if err := store.Set("arcade-coins", "12"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("arcade-coins", "15"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("arcade-coins")
	if err != nil || !ok || v != "15" {
		t.Errorf("Get() = %q, %v, %v; expected \"15\", true, nil", v, ok, err)
	}

	if err := store.Delete("arcade-coins"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("arcade-coins"); ok {
		t.Error("key should be gone after Delete()")
	}
	if err := store.Delete("never-set"); err != nil {
		t.Errorf("Delete() of absent key should succeed, got %v", err)
	}
}

func TestStoreKeysPrefix(t *testing.T) {
	store, _ := openTestStore(t)

	for _, k := range []string{"leaderboard_snake", "leaderboard_pong", "leaderboardX", "arcade-coins"} {
		if err := store.Set(k, "[]"); err != nil {
			t.Fatalf("Set(%q) failed: %v", k, err)
		}
	}

	keys, err := store.Keys("leaderboard_")
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "leaderboard_pong" || keys[1] != "leaderboard_snake" {
		t.Errorf("Keys() = %v, expected [leaderboard_pong leaderboard_snake]", keys)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set("player_name", `"Ada"`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get("player_name")
	if err != nil || !ok || v != `"Ada"` {
		t.Errorf("Get() after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestStoreClosed(t *testing.T) {
	store, _ := openTestStore(t)
	store.Close()

	if _, _, err := store.Get("x"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get() on closed store error = %v, expected ErrClosed", err)
	}
	if err := store.Set("x", "1"); !errors.Is(err, ErrClosed) {
		t.Errorf("Set() on closed store error = %v, expected ErrClosed", err)
	}
}

func TestStoreScoreHistory(t *testing.T) {
	store, _ := openTestStore(t)

	for _, s := range []int{100, 50, 200, 100} {
		if _, err := store.SaveScore("snake", "Ada", s, "normal"); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("pong", "Bob", 10, "hard"); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("snake", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 100 {
		t.Errorf("unexpected order: %d, %d, %d", scores[0].Score, scores[1].Score, scores[2].Score)
	}
	if scores[1].ID > scores[2].ID {
		t.Error("equal scores should keep insertion order")
	}
	if scores[0].Player != "Ada" || scores[0].Difficulty != "normal" {
		t.Errorf("player/difficulty not stored: %+v", scores[0])
	}

	high, err := store.HighScore("snake")
	if err != nil || high != 200 {
		t.Errorf("HighScore() = %d, %v; expected 200", high, err)
	}
	high, err = store.HighScore("invaders")
	if err != nil || high != 0 {
		t.Errorf("HighScore() for empty game = %d, %v; expected 0", high, err)
	}
}

func TestStoreGameStats(t *testing.T) {
	store, _ := openTestStore(t)

	store.SaveScore("snake", "Ada", 100, "")
	store.SaveScore("snake", "Ada", 200, "")
	store.SaveScore("memory", "Ada", 900, "hard")

	stats, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 200 || stats.TotalScore != 300 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 150 {
		t.Errorf("AvgScore = %v, expected 150", stats.AvgScore)
	}

	empty, err := store.GetGameStats("pong")
	if err != nil {
		t.Fatalf("GetGameStats() for empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["memory"].HighScore != 900 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}

func TestMemoryBackend(t *testing.T) {
	m := NewMemory()
	m.Set("b", "2")
	m.Set("a", "1")
	m.Set("c", "3")

	if v, ok, _ := m.Get("a"); !ok || v != "1" {
		t.Errorf("Get(a) = %q, %v", v, ok)
	}
	keys, _ := m.Keys("")
	if len(keys) != 3 || keys[0] != "a" {
		t.Errorf("Keys() = %v", keys)
	}
	m.Delete("a")
	if _, ok, _ := m.Get("a"); ok {
		t.Error("a should be deleted")
	}
}
