package progress

// Preferences are remembered per game between sessions.
type Preferences struct {
	Difficulty string `json:"difficulty"`
}

func prefsKey(game string) string { return "game_prefs_" + game }

// Preferences returns the stored preferences for game. ok is false when
// nothing has been saved yet.
func (s *Store) Preferences(game string) (p Preferences, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok = s.load(prefsKey(game), &p)
	return p, ok
}

// SetPreferences stores preferences for game.
func (s *Store) SetPreferences(game string, p Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(prefsKey(game), p)
}
