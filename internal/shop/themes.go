package shop

import (
	"errors"

	"github.com/vovakirdan/neon-arcade/internal/progress"
)

// ErrThemeLocked is returned when selecting a theme that is not unlocked.
var ErrThemeLocked = errors.New("shop: theme is locked")

// ErrUnknownTheme is returned for names outside the theme list.
var ErrUnknownTheme = errors.New("shop: unknown theme")

// Palette holds a theme's colors as hex strings.
type Palette struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Text       string
}

// Theme is a selectable color scheme.
type Theme struct {
	Name    string
	Title   string
	Icon    string
	Cost    int
	Palette Palette
}

var themes = []Theme{
	{"neon", "NEON NIGHTS", "🌆", 0,
		Palette{"#ff10f0", "#00ffff", "#ffff00", "#000000", "#ffffff"}},
	{"terminal", "GREEN TERMINAL", "💻", 0,
		Palette{"#33ff33", "#00ff00", "#88ff88", "#000000", "#33ff33"}},
	{"amber", "AMBER MONITOR", "📟", 5,
		Palette{"#ffb000", "#ff8800", "#ffd700", "#1a0f00", "#ffb000"}},
	{"matrix", "MATRIX CODE", "🟢", 5,
		Palette{"#00ff41", "#008f11", "#00ff88", "#0d0208", "#00ff41"}},
	{"vaporwave", "VAPORWAVE", "🌴", 10,
		Palette{"#ff71ce", "#01cdfe", "#05ffa1", "#2d1b69", "#ffffff"}},
}

// Themes returns every theme in display order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// LookupTheme finds a theme by name.
func LookupTheme(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ActiveTheme returns the selected theme, falling back to the default when
// the stored name is unknown.
func (s *Shop) ActiveTheme() Theme {
	if t, ok := LookupTheme(s.store.ActiveTheme()); ok {
		return t
	}
	t, _ := LookupTheme(progress.DefaultTheme)
	return t
}

// UnlockTheme buys a theme at its listed cost. Unlocked themes succeed
// without charging.
func (s *Shop) UnlockTheme(name string) bool {
	t, ok := LookupTheme(name)
	if !ok {
		return false
	}
	return s.store.BuyTheme(t.Name, t.Cost)
}

// SelectTheme makes an unlocked theme active.
func (s *Shop) SelectTheme(name string) error {
	if _, ok := LookupTheme(name); !ok {
		return ErrUnknownTheme
	}
	if !s.store.SetActiveTheme(name) {
		return ErrThemeLocked
	}
	return nil
}

// ThemeUnlocked reports whether the player may select name.
func (s *Shop) ThemeUnlocked(name string) bool {
	return s.store.ThemeUnlocked(name)
}
