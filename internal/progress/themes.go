package progress

import "slices"

const (
	keyTheme          = "arcade-theme"
	keyUnlockedThemes = "arcade-unlocked-themes"

	// DefaultTheme is active until the player picks another.
	DefaultTheme = "neon"
)

// FreeThemes are unlocked for every player.
var FreeThemes = []string{"neon", "terminal"}

// UnlockedThemes returns every theme the player may select.
func (s *Store) UnlockedThemes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlockedThemesLocked()
}

func (s *Store) unlockedThemesLocked() []string {
	var themes []string
	if !s.load(keyUnlockedThemes, &themes) {
		return slices.Clone(FreeThemes)
	}
	for _, free := range FreeThemes {
		if !slices.Contains(themes, free) {
			themes = append(themes, free)
		}
	}
	return themes
}

// ThemeUnlocked reports whether theme can be selected.
func (s *Store) ThemeUnlocked(theme string) bool {
	return slices.Contains(s.UnlockedThemes(), theme)
}

// BuyTheme spends cost and unlocks theme. Already unlocked themes cost
// nothing and report true.
func (s *Store) BuyTheme(theme string, cost int) bool {
	s.mu.Lock()
	themes := s.unlockedThemesLocked()
	if slices.Contains(themes, theme) {
		s.mu.Unlock()
		return true
	}
	if cost > 0 && !s.spendLocked(cost) {
		s.mu.Unlock()
		return false
	}
	ok := s.save(keyUnlockedThemes, append(themes, theme))
	s.mu.Unlock()

	if cost > 0 {
		s.notify(TopicCoins)
	}
	if ok {
		s.notify(TopicTheme)
	}
	return ok
}

// ActiveTheme returns the selected theme name.
func (s *Store) ActiveTheme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var theme string
	if !s.load(keyTheme, &theme) || theme == "" {
		return DefaultTheme
	}
	return theme
}

// SetActiveTheme selects theme. Locked themes are rejected.
func (s *Store) SetActiveTheme(theme string) bool {
	s.mu.Lock()
	if !slices.Contains(s.unlockedThemesLocked(), theme) {
		s.mu.Unlock()
		return false
	}
	ok := s.save(keyTheme, theme)
	s.mu.Unlock()
	if ok {
		s.notify(TopicTheme)
	}
	return ok
}
