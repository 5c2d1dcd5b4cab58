// Package achievements turns gameplay events into unlocks.
//
// Rules are pure threshold checks over typed events; all state lives in the
// progression store, so an Engine is cheap to build per session.
package achievements

import (
	"time"

	"github.com/vovakirdan/neon-arcade/internal/progress"
)

// DefaultAllGamesTarget is how many distinct games must be started to earn
// all_games.
const DefaultAllGamesTarget = 4

// Store is the slice of the progression store the engine needs.
type Store interface {
	Unlock(id string) bool
	UpdateProgress(id string, current, limit int)
	AddGamePlayed(game string) (firstEver, added bool, size int)
	RecordPlayDay(t time.Time) int
	Now() time.Time
}

var _ Store = (*progress.Store)(nil)

// Engine evaluates achievement rules against a progression store.
type Engine struct {
	store          Store
	allGamesTarget int
}

// Option configures an Engine.
type Option func(*Engine)

// WithAllGamesTarget overrides the number of distinct games for all_games.
// Values below 1 are ignored.
func WithAllGamesTarget(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.allGamesTarget = n
		}
	}
}

// New returns an engine backed by store.
func New(store Store, opts ...Option) *Engine {
	e := &Engine{store: store, allGamesTarget: DefaultAllGamesTarget}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AllGamesTarget returns the configured all_games threshold.
func (e *Engine) AllGamesTarget() int { return e.allGamesTarget }

// Check evaluates ev and unlocks at most one achievement. It returns the
// id that was newly unlocked, or "" when nothing changed, including when
// the matching achievement was already unlocked.
func (e *Engine) Check(ev Event) string {
	id := ev.target()
	if id == "" {
		return ""
	}
	if e.store.Unlock(id) {
		return id
	}
	return ""
}

// UpdateProgress records progress toward a locked achievement.
func (e *Engine) UpdateProgress(id string, current, limit int) {
	e.store.UpdateProgress(id, current, limit)
}

// TrackGamePlayed records that game was started. The very first start
// unlocks first_game; reaching the all-games target unlocks all_games; the
// play day counts toward streak_3. It returns every newly unlocked id.
func (e *Engine) TrackGamePlayed(game string) []string {
	var unlocked []string
	add := func(id string) {
		if id != "" {
			unlocked = append(unlocked, id)
		}
	}

	firstEver, added, size := e.store.AddGamePlayed(game)
	if firstEver && e.store.Unlock(progress.FirstGame) {
		add(progress.FirstGame)
	}
	if added && size >= e.allGamesTarget && e.store.Unlock(progress.AllGames) {
		add(progress.AllGames)
	}

	days := e.store.RecordPlayDay(e.store.Now())
	add(e.Check(PlayStreak{Days: days}))

	return unlocked
}
