package shop

import (
	"errors"
	"slices"
	"strconv"

	"github.com/vovakirdan/neon-arcade/internal/progress"
)

// Errors returned by equip operations.
var (
	ErrUnknownItem  = errors.New("shop: unknown item")
	ErrNotOwned     = errors.New("shop: item not owned")
	ErrNoBadgeSlot  = errors.New("shop: no free badge slot")
	ErrNotEquipable = errors.New("shop: item cannot be equipped")
)

// Shop applies economy rules on top of the progression store.
type Shop struct {
	store *progress.Store
}

// New returns a shop backed by store.
func New(store *progress.Store) *Shop {
	return &Shop{store: store}
}

// Owned reports whether the player owns item.
func (s *Shop) Owned(it Item) bool {
	if it.Category == progress.CategoryBadgeSlot {
		n, _ := strconv.Atoi(it.Grants)
		return s.store.BadgeSlots() >= n
	}
	return s.store.Owns(it.Category, it.Grants)
}

// Shortfall returns how many more coins are needed to afford price.
func (s *Shop) Shortfall(price int) int {
	return max(0, price-s.store.Coins())
}

// Purchase buys itemID for price. It fails, changing nothing, when the item
// is unknown or the balance is short. Buying something already owned
// succeeds without charging.
func (s *Shop) Purchase(itemID string, price int) bool {
	it, ok := Lookup(itemID)
	if !ok {
		return false
	}
	if s.Owned(it) {
		return true
	}

	if it.Category == progress.CategoryBadgeSlot {
		n, err := strconv.Atoi(it.Grants)
		if err != nil {
			return false
		}
		if !s.store.SpendCoins(price) {
			return false
		}
		if !s.store.RaiseBadgeSlots(n) {
			s.store.AwardCoins(price)
			return false
		}
		return true
	}
	return s.store.BuyItem(it.Category, it.Grants, price)
}

// Equip activates an owned item. Cursors, name colors and titles replace
// the current selection. Badges toggle: equipping fails with ErrNoBadgeSlot
// when every unlocked slot is in use, and equipping an equipped badge
// removes it.
func (s *Shop) Equip(itemID string) error {
	it, ok := Lookup(itemID)
	if !ok {
		return ErrUnknownItem
	}
	if it.Category == progress.CategoryBadgeSlot {
		return ErrNotEquipable
	}
	if !s.store.Owns(it.Category, it.Grants) {
		return ErrNotOwned
	}

	if it.Category == progress.CategoryBadge {
		if _, ok := s.store.ToggleBadge(it.Grants); !ok {
			return ErrNoBadgeSlot
		}
		return nil
	}
	s.store.SetActive(it.Category, it.Grants)
	return nil
}

// EquipDefault restores the default cursor or name color.
func (s *Shop) EquipDefault(c progress.Category) {
	if c == progress.CategoryCursor || c == progress.CategoryNameColor {
		s.store.SetActive(c, progress.DefaultStyle)
	}
}

// UnequipTitle clears the displayed title.
func (s *Shop) UnequipTitle() {
	s.store.SetActive(progress.CategoryTitle, "")
}

// UnlockBadgeSlot raises the slot count to n. Slot counts never decrease.
func (s *Shop) UnlockBadgeSlot(n int) bool {
	return s.store.RaiseBadgeSlots(n)
}

// Equipped reports whether item is currently active.
func (s *Shop) Equipped(it Item) bool {
	switch it.Category {
	case progress.CategoryBadge:
		return slices.Contains(s.store.ActiveBadges(), it.Grants)
	case progress.CategoryBadgeSlot:
		return false
	default:
		return s.store.Active(it.Category) == it.Grants
	}
}

// Loadout is the player's equipped cosmetics.
type Loadout struct {
	Cursor    string
	NameColor string
	Title     string
	Badges    []Item
	Slots     int
}

// Loadout returns everything currently equipped.
func (s *Shop) Loadout() Loadout {
	l := Loadout{
		Cursor:    s.store.Active(progress.CategoryCursor),
		NameColor: s.store.Active(progress.CategoryNameColor),
		Title:     s.store.Active(progress.CategoryTitle),
		Slots:     s.store.BadgeSlots(),
	}
	for _, id := range s.store.ActiveBadges() {
		if it, ok := Lookup(id); ok {
			l.Badges = append(l.Badges, it)
		}
	}
	return l
}
