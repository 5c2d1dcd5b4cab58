package progress

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	keyPlayerName  = "player_name"
	keyPlayerID    = "player_id"
	keyGamesPlayed = "games_played"
	keyPlayDays    = "play_days"

	// DefaultPlayerName is used until the player picks one.
	DefaultPlayerName = "Player"
	// MaxNameLength bounds a trimmed player name, in characters.
	MaxNameLength = 20
)

// PlayerName returns the stored name or DefaultPlayerName.
func (s *Store) PlayerName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var name string
	if !s.load(keyPlayerName, &name) || name == "" {
		return DefaultPlayerName
	}
	return name
}

// SetPlayerName trims name and stores it when it is 1 to MaxNameLength
// characters long. Anything else is ignored and false is returned.
func (s *Store) SetPlayerName(name string) bool {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n == 0 || n > MaxNameLength {
		return false
	}

	s.mu.Lock()
	ok := s.save(keyPlayerName, name)
	s.mu.Unlock()
	if ok {
		s.notify(TopicProfile)
	}
	return ok
}

// PlayerID returns a stable id for this database, minting one on first use.
func (s *Store) PlayerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var id string
	if s.load(keyPlayerID, &id) && id != "" {
		return id
	}
	id = s.newID()
	s.save(keyPlayerID, id)
	return id
}

// GamesPlayed returns the ids of games started at least once, in the order
// they were first played.
func (s *Store) GamesPlayed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var played []string
	s.load(keyGamesPlayed, &played)
	return played
}

// AddGamePlayed records that game was started. firstEver is true when no
// game had ever been recorded before this call; added is true when game was
// not yet in the set. size is the set size afterwards.
func (s *Store) AddGamePlayed(game string) (firstEver, added bool, size int) {
	s.mu.Lock()
	var played []string
	firstEver = !s.load(keyGamesPlayed, &played) && !s.exists(keyGamesPlayed)
	if !slices.Contains(played, game) {
		played = append(played, game)
		added = s.save(keyGamesPlayed, played)
		if !added {
			played = played[:len(played)-1]
		}
	}
	size = len(played)
	s.mu.Unlock()

	if added {
		s.notify(TopicProfile)
	}
	return firstEver, added, size
}

// RecordPlayDay adds the calendar day of t to the set of days on which a
// game was played, and returns the number of distinct days.
func (s *Store) RecordPlayDay(t time.Time) int {
	day := t.Format(time.DateOnly)

	s.mu.Lock()
	defer s.mu.Unlock()
	var days []string
	s.load(keyPlayDays, &days)
	if !slices.Contains(days, day) {
		days = append(days, day)
		if !s.save(keyPlayDays, days) {
			return len(days) - 1
		}
	}
	return len(days)
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time { return s.now() }

func counterKey(name string) string { return "counter_" + name }

// Counter returns a named monotonic counter.
func (s *Store) Counter(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	s.load(counterKey(name), &n)
	return n
}

// IncrementCounter adds one to a named counter and returns the new value.
func (s *Store) IncrementCounter(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	s.load(counterKey(name), &n)
	if s.save(counterKey(name), n+1) {
		n++
	}
	return n
}
