package progress

import "slices"

// Category groups shop items that share ownership and equip rules.
type Category string

const (
	CategoryCursor    Category = "cursor"
	CategoryNameColor Category = "nameColor"
	CategoryBadgeSlot Category = "badgeSlot"
	CategoryBadge     Category = "badge"
	CategoryTitle     Category = "title"
)

// DefaultStyle is owned and active for cursors and name colors from the start.
const DefaultStyle = "default"

const (
	keyBadgeSlots   = "arcade-badge-slots"
	keyActiveBadges = "arcade-active-badges"

	// MaxBadgeSlots is the most badges that can ever be shown at once.
	MaxBadgeSlots = 3
)

type categoryKeys struct {
	owned  string
	active string
}

var shopKeys = map[Category]categoryKeys{
	CategoryCursor:    {"arcade-owned-cursors", "arcade-active-cursor"},
	CategoryNameColor: {"arcade-owned-colors", "arcade-active-color"},
	CategoryBadge:     {"arcade-owned-badges", ""},
	CategoryTitle:     {"arcade-owned-titles", "arcade-active-title"},
}

func defaultOwned(c Category) []string {
	if c == CategoryCursor || c == CategoryNameColor {
		return []string{DefaultStyle}
	}
	return nil
}

func defaultActive(c Category) string {
	if c == CategoryCursor || c == CategoryNameColor {
		return DefaultStyle
	}
	return ""
}

// Owned returns the ids owned in a category.
func (s *Store) Owned(c Category) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ownedLocked(c)
}

func (s *Store) ownedLocked(c Category) []string {
	keys, ok := shopKeys[c]
	if !ok {
		return nil
	}
	var owned []string
	if !s.load(keys.owned, &owned) {
		return defaultOwned(c)
	}
	return owned
}

// Owns reports whether id is owned in category c.
func (s *Store) Owns(c Category, id string) bool {
	return slices.Contains(s.Owned(c), id)
}

// BuyItem spends price and grants id in category c as one step, so no other
// writer can observe the coins gone without the item. It returns false when
// the balance is short or the write fails; a failed grant refunds the
// price. Owning an item already still charges it; callers check Owns first.
func (s *Store) BuyItem(c Category, id string, price int) bool {
	keys, ok := shopKeys[c]
	if !ok {
		return false
	}

	s.mu.Lock()
	balance := s.coinsLocked()
	if !s.spendLocked(price) {
		s.mu.Unlock()
		return false
	}
	owned := s.ownedLocked(c)
	granted := true
	if !slices.Contains(owned, id) {
		granted = s.save(keys.owned, append(owned, id))
	}
	if !granted {
		s.save(keyCoins, balance)
	}
	s.mu.Unlock()

	if granted {
		s.notify(TopicCoins)
		s.notify(TopicShop)
	}
	return granted
}

// Active returns the equipped id for a single-slot category, or "".
func (s *Store) Active(c Category) string {
	keys, ok := shopKeys[c]
	if !ok || keys.active == "" {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var id string
	if !s.load(keys.active, &id) {
		return defaultActive(c)
	}
	return id
}

// SetActive equips id in a single-slot category. "" clears the slot.
func (s *Store) SetActive(c Category, id string) bool {
	keys, ok := shopKeys[c]
	if !ok || keys.active == "" {
		return false
	}
	s.mu.Lock()
	ok = s.save(keys.active, id)
	s.mu.Unlock()
	if ok {
		s.notify(TopicShop)
	}
	return ok
}

// BadgeSlots returns how many badges may be shown at once (1 to 3).
func (s *Store) BadgeSlots() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.badgeSlotsLocked()
}

func (s *Store) badgeSlotsLocked() int {
	var n int
	if !s.load(keyBadgeSlots, &n) {
		return 1
	}
	return min(MaxBadgeSlots, max(1, n))
}

// RaiseBadgeSlots sets the slot count to n when n is higher than the
// current count and within MaxBadgeSlots. Slot counts never go down.
func (s *Store) RaiseBadgeSlots(n int) bool {
	if n > MaxBadgeSlots {
		return false
	}
	s.mu.Lock()
	if n <= s.badgeSlotsLocked() {
		s.mu.Unlock()
		return false
	}
	ok := s.save(keyBadgeSlots, n)
	s.mu.Unlock()
	if ok {
		s.notify(TopicShop)
	}
	return ok
}

// ActiveBadges returns the equipped badges in equip order.
func (s *Store) ActiveBadges() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	s.load(keyActiveBadges, &ids)
	return ids
}

// ToggleBadge equips an unequipped badge or unequips an equipped one.
// Equipping fails when every slot is taken. Ownership is the caller's
// concern. equipped reports the badge state afterwards.
func (s *Store) ToggleBadge(id string) (equipped, ok bool) {
	s.mu.Lock()
	var ids []string
	s.load(keyActiveBadges, &ids)

	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
		ok = s.save(keyActiveBadges, ids)
		s.mu.Unlock()
		if ok {
			s.notify(TopicShop)
		}
		return !ok, ok
	}

	if len(ids) >= s.badgeSlotsLocked() {
		s.mu.Unlock()
		return false, false
	}
	ok = s.save(keyActiveBadges, append(ids, id))
	s.mu.Unlock()
	if ok {
		s.notify(TopicShop)
	}
	return ok, ok
}
