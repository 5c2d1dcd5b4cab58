package progress

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/leaderboard"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var fixedNow = time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(storage.NewMemory(),
		WithLogger(log.New(io.Discard)),
		WithClock(func() time.Time { return fixedNow }),
	)
}

// brokenBackend fails every operation.
type brokenBackend struct{}

var errDisk = errors.New("disk on fire")

func (brokenBackend) Get(string) (string, bool, error) { return "", false, errDisk }
func (brokenBackend) Set(string, string) error         { return errDisk }
func (brokenBackend) Delete(string) error              { return errDisk }

func TestCoins(t *testing.T) {
	s := newTestStore(t)

	if s.Coins() != 0 {
		t.Fatalf("initial balance = %d, expected 0", s.Coins())
	}
	if got := s.AwardCoins(5); got != 5 {
		t.Errorf("AwardCoins(5) = %d, expected 5", got)
	}
	if got := s.AwardCoins(0); got != 5 {
		t.Errorf("AwardCoins(0) = %d, expected unchanged 5", got)
	}
	if got := s.AwardCoins(-3); got != 5 {
		t.Errorf("AwardCoins(-3) = %d, expected unchanged 5", got)
	}

	if s.SpendCoins(6) {
		t.Error("SpendCoins(6) with balance 5 should fail")
	}
	if s.Coins() != 5 {
		t.Errorf("failed spend changed balance to %d", s.Coins())
	}
	if s.SpendCoins(0) || s.SpendCoins(-1) {
		t.Error("non-positive spend should fail")
	}
	if !s.SpendCoins(5) || s.Coins() != 0 {
		t.Errorf("SpendCoins(5) should empty the balance, got %d", s.Coins())
	}

	s.SetCoins(-10)
	if s.Coins() != 0 {
		t.Errorf("SetCoins(-10) = %d, expected clamp to 0", s.Coins())
	}
}

func TestCoinsNeverNegative(t *testing.T) {
	s := newTestStore(t)
	ops := []struct {
		award, spend int
	}{
		{3, 5}, {0, 3}, {10, 2}, {-4, 20}, {1, 9}, {0, 1},
	}
	for _, op := range ops {
		s.AwardCoins(op.award)
		s.SpendCoins(op.spend)
		if s.Coins() < 0 {
			t.Fatalf("balance went negative: %d", s.Coins())
		}
	}
}

func TestUnlockIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	if !s.Unlock(SnakeMaster) {
		t.Fatal("first Unlock should return true")
	}
	first, _ := s.Achievement(SnakeMaster)
	if !first.Unlocked || !first.UnlockedDate.Equal(fixedNow) {
		t.Fatalf("unexpected state after unlock: %+v", first)
	}

	later := fixedNow.Add(time.Hour)
	s.now = func() time.Time { return later }
	if s.Unlock(SnakeMaster) {
		t.Error("second Unlock should return false")
	}
	again, _ := s.Achievement(SnakeMaster)
	if !again.UnlockedDate.Equal(fixedNow) {
		t.Errorf("unlock date changed to %v", again.UnlockedDate)
	}

	if s.Unlock("no_such_thing") {
		t.Error("unknown id should not unlock")
	}
}

func TestUpdateProgress(t *testing.T) {
	s := newTestStore(t)

	s.UpdateProgress(SpaceAce, 1200, 5000)
	a, _ := s.Achievement(SpaceAce)
	if a.Progress != 1200 || a.MaxProgress != 5000 || !a.HasProgress() {
		t.Errorf("progress = %d/%d", a.Progress, a.MaxProgress)
	}

	s.UpdateProgress(SpaceAce, 9000, 5000)
	a, _ = s.Achievement(SpaceAce)
	if a.Progress != 5000 {
		t.Errorf("progress should clamp to max, got %d", a.Progress)
	}

	s.UpdateProgress(MemorySpeedster, -7, 20)
	a, _ = s.Achievement(MemorySpeedster)
	if a.Progress != 0 {
		t.Errorf("progress should clamp to 0, got %d", a.Progress)
	}

	s.Unlock(SpaceAce)
	s.UpdateProgress(SpaceAce, 10, 5000)
	a, _ = s.Achievement(SpaceAce)
	if a.Progress != 5000 || a.HasProgress() {
		t.Errorf("progress must not move after unlock, got %d", a.Progress)
	}
}

func TestAchievementsMergeCatalog(t *testing.T) {
	s := newTestStore(t)
	s.backend.Set(keyAchievements, `[{"id":"ghost","unlocked":true},{"id":"pong_pro","unlocked":true}]`)

	all := s.Achievements()
	if len(all) != len(Catalog()) {
		t.Fatalf("len = %d, expected %d", len(all), len(Catalog()))
	}
	unlocked := 0
	for _, a := range all {
		if a.ID == "ghost" {
			t.Error("unknown persisted id should be ignored")
		}
		if a.Unlocked {
			unlocked++
		}
	}
	if unlocked != 1 || s.UnlockedCount() != 1 {
		t.Errorf("unlocked = %d, expected 1", unlocked)
	}
}

func TestLeaderboardSubmit(t *testing.T) {
	s := newTestStore(t)

	for i := 1; i <= 12; i++ {
		s.SubmitScore("snake", leaderboard.Entry{PlayerName: "Ada", Score: i * 10})
	}
	table := s.Leaderboard("snake")
	if len(table) != leaderboard.Limit {
		t.Fatalf("len = %d, expected %d", len(table), leaderboard.Limit)
	}
	for i := 1; i < len(table); i++ {
		if table[i].Score > table[i-1].Score {
			t.Fatalf("table not sorted: %v", table)
		}
	}
	if !table[0].Date.Equal(fixedNow) {
		t.Errorf("zero date should be filled from clock, got %v", table[0].Date)
	}
	if s.HighScore("snake") != 120 {
		t.Errorf("HighScore() = %d, expected 120", s.HighScore("snake"))
	}
	if rank := s.SubmitScore("snake", leaderboard.Entry{Score: 1}); rank != -1 {
		t.Errorf("rank of evicted entry = %d", rank)
	}
	if rank := s.SubmitScore("snake", leaderboard.Entry{Score: 500}); rank != 0 {
		t.Errorf("rank of new best = %d", rank)
	}
}

func TestSubmitScoreRecordsHistory(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "arcade.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	s := New(db, WithLogger(log.New(io.Discard)))
	s.SubmitScore("pong", leaderboard.Entry{PlayerName: "Ada", Score: 10, Difficulty: "hard"})

	hist, err := db.TopScores("pong", 10)
	if err != nil || len(hist) != 1 {
		t.Fatalf("TopScores() = %v, %v", hist, err)
	}
	if hist[0].Player != "Ada" || hist[0].Difficulty != "hard" {
		t.Errorf("history row = %+v", hist[0])
	}
	if got := New(db).Leaderboard("pong"); len(got) != 1 {
		t.Errorf("leaderboard should survive a new store over the same db, got %v", got)
	}
}

func TestPlayerName(t *testing.T) {
	s := newTestStore(t)

	if s.PlayerName() != DefaultPlayerName {
		t.Errorf("default name = %q", s.PlayerName())
	}

	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{"  Ada  ", true, "Ada"},
		{"   ", false, "Ada"},
		{"", false, "Ada"},
		{"abcdefghijklmnopqrstu", false, "Ada"},
		{"abcdefghijklmnopqrst", true, "abcdefghijklmnopqrst"},
		{"ñandú", true, "ñandú"},
	}
	for _, tt := range tests {
		if got := s.SetPlayerName(tt.in); got != tt.ok {
			t.Errorf("SetPlayerName(%q) = %v, expected %v", tt.in, got, tt.ok)
		}
		if s.PlayerName() != tt.want {
			t.Errorf("after %q name = %q, expected %q", tt.in, s.PlayerName(), tt.want)
		}
	}
}

func TestPlayerIDStable(t *testing.T) {
	s := newTestStore(t)
	id := s.PlayerID()
	if len(id) != 36 {
		t.Errorf("PlayerID() = %q, expected a UUID", id)
	}
	if s.PlayerID() != id {
		t.Error("PlayerID() should be stable")
	}
}

func TestGamesPlayed(t *testing.T) {
	s := newTestStore(t)

	first, added, size := s.AddGamePlayed("snake")
	if !first || !added || size != 1 {
		t.Errorf("first add = %v, %v, %d", first, added, size)
	}
	first, added, size = s.AddGamePlayed("snake")
	if first || added || size != 1 {
		t.Errorf("repeat add = %v, %v, %d", first, added, size)
	}
	first, added, size = s.AddGamePlayed("pong")
	if first || !added || size != 2 {
		t.Errorf("second game = %v, %v, %d", first, added, size)
	}
	if got := s.GamesPlayed(); len(got) != 2 || got[0] != "snake" {
		t.Errorf("GamesPlayed() = %v", got)
	}
}

func TestPlayDaysAndCounters(t *testing.T) {
	s := newTestStore(t)

	if n := s.RecordPlayDay(fixedNow); n != 1 {
		t.Errorf("first day = %d", n)
	}
	if n := s.RecordPlayDay(fixedNow.Add(2 * time.Hour)); n != 1 {
		t.Errorf("same day counted twice: %d", n)
	}
	if n := s.RecordPlayDay(fixedNow.AddDate(0, 0, 3)); n != 2 {
		t.Errorf("second day = %d", n)
	}

	s.IncrementCounter("tictactoe_wins")
	if n := s.IncrementCounter("tictactoe_wins"); n != 2 || s.Counter("tictactoe_wins") != 2 {
		t.Errorf("counter = %d", n)
	}
}

func TestShopState(t *testing.T) {
	s := newTestStore(t)

	if !s.Owns(CategoryCursor, DefaultStyle) || s.Active(CategoryCursor) != DefaultStyle {
		t.Error("default cursor should be owned and active")
	}
	if s.Active(CategoryTitle) != "" || s.BadgeSlots() != 1 {
		t.Error("unexpected title/slot defaults")
	}

	if s.BuyItem(CategoryCursor, "pixel-sword", 3) {
		t.Error("purchase with no coins should fail")
	}
	s.AwardCoins(4)
	if !s.BuyItem(CategoryCursor, "pixel-sword", 3) || s.Coins() != 1 {
		t.Errorf("purchase failed, coins = %d", s.Coins())
	}
	if !s.Owns(CategoryCursor, "pixel-sword") {
		t.Error("item should be owned after purchase")
	}

	if s.RaiseBadgeSlots(1) || !s.RaiseBadgeSlots(3) || s.RaiseBadgeSlots(2) {
		t.Error("badge slots must only rise")
	}
	if s.RaiseBadgeSlots(4) || s.BadgeSlots() != 3 {
		t.Errorf("slots = %d, expected 3", s.BadgeSlots())
	}
}

func TestToggleBadgeRespectsSlots(t *testing.T) {
	s := newTestStore(t)

	if eq, ok := s.ToggleBadge("badge-veteran"); !eq || !ok {
		t.Fatal("first badge should equip")
	}
	if eq, ok := s.ToggleBadge("badge-champion"); eq || ok {
		t.Error("second badge should not fit in one slot")
	}
	if eq, ok := s.ToggleBadge("badge-veteran"); eq || !ok {
		t.Error("toggling an equipped badge should unequip it")
	}
	if len(s.ActiveBadges()) != 0 {
		t.Errorf("ActiveBadges() = %v", s.ActiveBadges())
	}
}

func TestThemes(t *testing.T) {
	s := newTestStore(t)

	if s.ActiveTheme() != DefaultTheme || !s.ThemeUnlocked("terminal") {
		t.Error("free themes should be available")
	}
	if s.SetActiveTheme("amber") {
		t.Error("locked theme should not be selectable")
	}
	if s.BuyTheme("amber", 5) {
		t.Error("theme purchase without coins should fail")
	}
	s.AwardCoins(5)
	if !s.BuyTheme("amber", 5) || s.Coins() != 0 {
		t.Errorf("BuyTheme failed, coins = %d", s.Coins())
	}
	if !s.BuyTheme("amber", 5) {
		t.Error("re-buying an unlocked theme should succeed for free")
	}
	if !s.SetActiveTheme("amber") || s.ActiveTheme() != "amber" {
		t.Error("unlocked theme should be selectable")
	}
}

func TestPreferences(t *testing.T) {
	s := newTestStore(t)
	if _, ok := s.Preferences("memory"); ok {
		t.Error("no preferences expected initially")
	}
	s.SetPreferences("memory", Preferences{Difficulty: "hard"})
	p, ok := s.Preferences("memory")
	if !ok || p.Difficulty != "hard" {
		t.Errorf("Preferences() = %+v, %v", p, ok)
	}
}

func TestObservers(t *testing.T) {
	s := newTestStore(t)

	var coinEvents, themeEvents int
	cancel := s.OnChange(TopicCoins, func(Topic) {
		coinEvents++
		_ = s.Coins() // observers may read the store
	})
	s.OnChange(TopicTheme, func(Topic) { themeEvents++ })

	s.AwardCoins(3)
	s.SpendCoins(100) // fails, no event
	s.SpendCoins(1)
	if coinEvents != 2 {
		t.Errorf("coin events = %d, expected 2", coinEvents)
	}
	if themeEvents != 0 {
		t.Errorf("theme observer fired for coin change")
	}

	cancel()
	s.AwardCoins(1)
	if coinEvents != 2 {
		t.Errorf("cancelled observer still fired")
	}
}

func TestBrokenBackendDegrades(t *testing.T) {
	s := New(brokenBackend{}, WithLogger(log.New(io.Discard)))

	if s.Coins() != 0 || s.AwardCoins(10) != 0 {
		t.Error("broken backend should read 0 coins and drop awards")
	}
	if s.SpendCoins(1) {
		t.Error("spend should fail on a broken backend")
	}
	if s.Unlock(FirstGame) {
		t.Error("unlock cannot persist on a broken backend")
	}
	if len(s.Achievements()) != len(Catalog()) {
		t.Error("achievements should fall back to the catalog")
	}
	if s.PlayerName() != DefaultPlayerName || s.ActiveTheme() != DefaultTheme {
		t.Error("profile should fall back to defaults")
	}
	if rank := s.SubmitScore("snake", leaderboard.Entry{Score: 5}); rank != -1 {
		t.Errorf("rank on broken backend = %d", rank)
	}
	if s.Leaderboard("snake") != nil {
		t.Error("leaderboard should be empty")
	}
}

func TestCorruptValueFallsBack(t *testing.T) {
	s := newTestStore(t)
	s.backend.Set(keyCoins, "not json")
	s.backend.Set(leaderboardKey("pong"), "{")

	if s.Coins() != 0 {
		t.Errorf("corrupt coins = %d", s.Coins())
	}
	if s.Leaderboard("pong") != nil {
		t.Error("corrupt leaderboard should read empty")
	}
	if s.AwardCoins(2) != 2 {
		t.Error("write after corruption should recover")
	}
}

func TestReset(t *testing.T) {
	s := newTestStore(t)
	id := s.PlayerID()
	s.AwardCoins(9)
	s.SetPlayerName("Ada")
	s.Unlock(Catalog()[0].ID)
	s.SubmitScore("invaders", leaderboard.Entry{PlayerName: "Ada", Score: 300})

	var notified []Topic
	s.OnChange(TopicCoins, func(t Topic) { notified = append(notified, t) })
	s.OnChange(TopicLeaderboard, func(t Topic) { notified = append(notified, t) })

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if s.Coins() != 0 || s.UnlockedCount() != 0 || s.Leaderboard("invaders") != nil {
		t.Error("progress should be wiped")
	}
	if s.PlayerName() != DefaultPlayerName {
		t.Errorf("name = %q, expected default", s.PlayerName())
	}
	if s.PlayerID() != id {
		t.Error("player id must survive a reset")
	}
	if len(notified) != 2 {
		t.Errorf("notified %v, expected coins and leaderboard", notified)
	}
}

func TestResetNeedsListableBackend(t *testing.T) {
	s := New(brokenBackend{}, WithLogger(log.New(io.Discard)))
	if err := s.Reset(); !errors.Is(err, ErrNotListable) {
		t.Errorf("Reset on unlistable backend = %v", err)
	}
}

func TestLeaderboardKeyUsesGameID(t *testing.T) {
	s := newTestStore(t)
	s.SubmitScore("invaders", leaderboard.Entry{PlayerName: "Ada", Score: 120})

	raw, ok, err := s.backend.Get("leaderboard_invaders")
	if err != nil || !ok || raw == "" {
		t.Fatalf("leaderboard_invaders missing: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := s.backend.Get("leaderboard_spaceinvaders"); ok {
		t.Error("no table should be written under the old id")
	}
}
