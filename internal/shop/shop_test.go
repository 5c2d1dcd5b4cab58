package shop

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/progress"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

func newShop(t *testing.T, coins int) (*Shop, *progress.Store) {
	t.Helper()
	store := progress.New(storage.NewMemory(), progress.WithLogger(log.New(io.Discard)))
	store.SetCoins(coins)
	return New(store), store
}

func TestCatalog(t *testing.T) {
	items := Catalog()
	if len(items) != 24 {
		t.Fatalf("catalog has %d items, expected 24", len(items))
	}

	counts := map[progress.Category]int{}
	seen := map[string]bool{}
	for _, it := range items {
		if seen[it.ID] {
			t.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
		counts[it.Category]++
		if it.Price <= 0 {
			t.Errorf("%s has non-positive price", it.ID)
		}
	}

	want := map[progress.Category]int{
		progress.CategoryCursor:    4,
		progress.CategoryNameColor: 5,
		progress.CategoryBadgeSlot: 2,
		progress.CategoryBadge:     8,
		progress.CategoryTitle:     5,
	}
	for c, n := range want {
		if counts[c] != n || len(ByCategory(c)) != n {
			t.Errorf("category %s has %d items, expected %d", c, counts[c], n)
		}
	}
}

func TestPurchase(t *testing.T) {
	s, store := newShop(t, 4)

	if s.Purchase("cursor-circle", 5) {
		t.Fatal("purchase over balance should fail")
	}
	if store.Coins() != 4 || s.Shortfall(5) != 1 {
		t.Errorf("coins = %d, shortfall = %d", store.Coins(), s.Shortfall(5))
	}
	if s.Purchase("no-such-item", 1) {
		t.Error("unknown item should fail")
	}

	if !s.Purchase("cursor-sword", 3) {
		t.Fatal("affordable purchase failed")
	}
	if store.Coins() != 1 {
		t.Errorf("coins after purchase = %d, expected 1", store.Coins())
	}
	if !store.Owns(progress.CategoryCursor, "pixel-sword") {
		t.Error("cursor style should be owned")
	}

	if !s.Purchase("cursor-sword", 3) || store.Coins() != 1 {
		t.Error("re-buying an owned item should succeed without charge")
	}
}

func TestPurchaseTitleOwnedByName(t *testing.T) {
	s, store := newShop(t, 10)
	if !s.Purchase("title-legend", 10) {
		t.Fatal("purchase failed")
	}
	if !store.Owns(progress.CategoryTitle, "The Legend") {
		t.Errorf("owned titles = %v", store.Owned(progress.CategoryTitle))
	}
}

func TestBadgeSlotsAndEquip(t *testing.T) {
	s, store := newShop(t, 30)

	for _, id := range []string{"badge-veteran", "badge-champion", "badge-night-owl"} {
		if !s.Purchase(id, mustItem(t, id).Price) {
			t.Fatalf("purchase %s failed", id)
		}
	}

	if err := s.Equip("badge-veteran"); err != nil {
		t.Fatalf("Equip() = %v", err)
	}
	if err := s.Equip("badge-champion"); !errors.Is(err, ErrNoBadgeSlot) {
		t.Errorf("second badge with one slot: err = %v", err)
	}

	if !s.Purchase("badge-slot-2", 5) || store.BadgeSlots() != 2 {
		t.Fatalf("slot purchase failed, slots = %d", store.BadgeSlots())
	}
	if err := s.Equip("badge-champion"); err != nil {
		t.Errorf("Equip() with free slot = %v", err)
	}
	if got := s.Loadout().Badges; len(got) != 2 {
		t.Errorf("loadout badges = %v", got)
	}

	// Toggle off frees the slot.
	if err := s.Equip("badge-veteran"); err != nil || s.Equipped(mustItem(t, "badge-veteran")) {
		t.Errorf("toggle off failed: %v", err)
	}
	if err := s.Equip("badge-night-owl"); err != nil {
		t.Errorf("Equip() after toggle off = %v", err)
	}

	coins := store.Coins()
	if !s.Purchase("badge-slot-2", 5) || store.Coins() != coins {
		t.Error("owned slot should not be charged again")
	}
	if s.UnlockBadgeSlot(1) {
		t.Error("slot count must not decrease")
	}
}

func TestEquipErrors(t *testing.T) {
	s, _ := newShop(t, 0)

	if err := s.Equip("cursor-star"); !errors.Is(err, ErrNotOwned) {
		t.Errorf("unowned: err = %v", err)
	}
	if err := s.Equip("nope"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("unknown: err = %v", err)
	}
	if err := s.Equip("badge-slot-2"); !errors.Is(err, ErrNotEquipable) {
		t.Errorf("slot: err = %v", err)
	}
}

func TestEquipSingleSlot(t *testing.T) {
	s, store := newShop(t, 10)
	s.Purchase("color-gold", 2)
	s.Purchase("color-pink", 2)

	if err := s.Equip("color-gold"); err != nil {
		t.Fatal(err)
	}
	if err := s.Equip("color-pink"); err != nil {
		t.Fatal(err)
	}
	if store.Active(progress.CategoryNameColor) != "neon-pink" {
		t.Errorf("active color = %q", store.Active(progress.CategoryNameColor))
	}
	s.EquipDefault(progress.CategoryNameColor)
	if s.Loadout().NameColor != progress.DefaultStyle {
		t.Error("EquipDefault should restore the default color")
	}

	s.Purchase("title-hacker", 5)
	s.Equip("title-hacker")
	if s.Loadout().Title != "Code Breaker" {
		t.Errorf("title = %q", s.Loadout().Title)
	}
	s.UnequipTitle()
	if s.Loadout().Title != "" {
		t.Error("UnequipTitle should clear the title")
	}
}

func TestThemes(t *testing.T) {
	s, store := newShop(t, 6)

	if s.ActiveTheme().Name != "neon" {
		t.Errorf("default theme = %q", s.ActiveTheme().Name)
	}
	if err := s.SelectTheme("matrix"); !errors.Is(err, ErrThemeLocked) {
		t.Errorf("locked select: err = %v", err)
	}
	if err := s.SelectTheme("disco"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("unknown select: err = %v", err)
	}
	if s.UnlockTheme("vaporwave") {
		t.Error("vaporwave costs 10, balance is 6")
	}
	if !s.UnlockTheme("matrix") || store.Coins() != 1 {
		t.Fatalf("unlock matrix failed, coins = %d", store.Coins())
	}
	if err := s.SelectTheme("matrix"); err != nil {
		t.Fatal(err)
	}
	if got := s.ActiveTheme().Palette.Primary; got != "#00ff41" {
		t.Errorf("matrix primary = %q", got)
	}
}

// invadersTiers mirrors the shipped Space Invaders payout table.
var invadersTiers = []Tier{
	{MinScore: 500, Coins: 5},
	{MinScore: 300, Coins: 3},
	{MinScore: 150, Coins: 2},
	{MinScore: 50, Coins: 1},
}

func TestRewardTiers(t *testing.T) {
	tests := []struct {
		score, want int
	}{
		{0, 0}, {49, 0}, {50, 1}, {149, 1}, {150, 2}, {300, 3}, {499, 3}, {500, 5}, {9000, 5},
	}
	for _, tt := range tests {
		if got := Reward(invadersTiers, tt.score); got != tt.want {
			t.Errorf("Reward(%d) = %d, expected %d", tt.score, got, tt.want)
		}
	}

	prev := 0
	for score := 0; score <= 1000; score += 10 {
		got := Reward(invadersTiers, score)
		if got < prev {
			t.Fatalf("reward decreased at %d: %d < %d", score, got, prev)
		}
		prev = got
	}

	if Reward(nil, 100) != 0 {
		t.Error("no tiers should pay nothing")
	}
}

func mustItem(t *testing.T, id string) Item {
	t.Helper()
	it, ok := Lookup(id)
	if !ok {
		t.Fatalf("item %q missing", id)
	}
	return it
}
