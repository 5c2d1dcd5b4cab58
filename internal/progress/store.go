// Package progress is the single source of truth for everything a player
// accumulates across sessions: coins, achievements, leaderboards, profile,
// shop ownership, themes and per-game preferences.
//
// Values are JSON documents stored under flat keys in a Backend. Storage
// failures never reach callers: reads fall back to defaults and writes are
// dropped with a warning, so a broken disk degrades the arcade to a
// session-only one instead of crashing a game.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Backend is a string key-value store. storage.Store and storage.Memory
// both satisfy it.
type Backend interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Lister is implemented by backends that can enumerate their keys.
type Lister interface {
	Keys(prefix string) ([]string, error)
}

// ErrNotListable is returned by Reset when the backend cannot list keys.
var ErrNotListable = errors.New("progress: backend cannot list keys")

// ScoreRecorder receives every submitted score for long-term history.
// storage.Store implements it; the in-memory backend does not.
type ScoreRecorder interface {
	SaveScore(gameID, player string, score int, difficulty string) (int64, error)
}

// Topic names a slice of progression state observers can watch.
type Topic string

const (
	TopicCoins        Topic = "coins"
	TopicAchievements Topic = "achievements"
	TopicLeaderboard  Topic = "leaderboard"
	TopicProfile      Topic = "profile"
	TopicShop         Topic = "shop"
	TopicTheme        Topic = "theme"
)

// Store wraps a Backend with typed accessors. It is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	backend  Backend
	recorder ScoreRecorder
	log      *log.Logger
	now      func() time.Time
	newID    func() string

	obsMu     sync.Mutex
	observers map[Topic]map[int]func(Topic)
	nextObs   int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for storage warnings.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock overrides the time source used for unlock dates, leaderboard
// dates and play days.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRecorder sets an explicit score history sink.
func WithRecorder(r ScoreRecorder) Option {
	return func(s *Store) { s.recorder = r }
}

// WithIDGenerator overrides how the player id is minted.
func WithIDGenerator(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// New creates a Store over the given backend. When the backend also
// records score history it is used as the recorder unless one is given.
func New(b Backend, opts ...Option) *Store {
	s := &Store{
		backend:   b,
		log:       log.Default(),
		now:       time.Now,
		newID:     uuid.NewString,
		observers: make(map[Topic]map[int]func(Topic)),
	}
	if r, ok := b.(ScoreRecorder); ok {
		s.recorder = r
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers fn to run after every successful mutation of topic.
// Callbacks run synchronously after the write, outside the store lock, so
// they may read the store. The returned func unregisters fn.
func (s *Store) OnChange(topic Topic, fn func(Topic)) (cancel func()) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	id := s.nextObs
	s.nextObs++
	if s.observers[topic] == nil {
		s.observers[topic] = make(map[int]func(Topic))
	}
	s.observers[topic][id] = fn

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		delete(s.observers[topic], id)
	}
}

// Reset wipes all progression and keeps only the player id. Every topic
// is notified afterwards. Unlike other writes, failures are returned.
func (s *Store) Reset() error {
	lister, ok := s.backend.(Lister)
	if !ok {
		return ErrNotListable
	}

	s.mu.Lock()
	keys, err := lister.Keys("")
	if err == nil {
		for _, k := range keys {
			if k == keyPlayerID {
				continue
			}
			if err = s.backend.Delete(k); err != nil {
				err = fmt.Errorf("progress: cannot delete %s: %w", k, err)
				break
			}
		}
	}
	s.mu.Unlock()

	for _, t := range allTopics {
		s.notify(t)
	}
	return err
}

var allTopics = []Topic{
	TopicCoins, TopicAchievements, TopicLeaderboard,
	TopicProfile, TopicShop, TopicTheme,
}

func (s *Store) notify(topic Topic) {
	s.obsMu.Lock()
	fns := make([]func(Topic), 0, len(s.observers[topic]))
	for _, fn := range s.observers[topic] {
		fns = append(fns, fn)
	}
	s.obsMu.Unlock()

	for _, fn := range fns {
		fn(topic)
	}
}

// load decodes key into dst. It returns false when the key is absent,
// unreadable or corrupt; dst is left untouched in that case.
// Callers must hold s.mu.
func (s *Store) load(key string, dst any) bool {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		s.log.Warn("progress: read failed, using default", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn("progress: corrupt value, using default", "key", key, "error", err)
		return false
	}
	return true
}

// exists reports whether key is present. Callers must hold s.mu.
func (s *Store) exists(key string) bool {
	_, ok, err := s.backend.Get(key)
	if err != nil {
		s.log.Warn("progress: read failed", "key", key, "error", err)
	}
	return ok
}

// save encodes v under key. A failed write is logged and dropped.
// Callers must hold s.mu.
func (s *Store) save(key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("progress: cannot encode value", "key", key, "error", err)
		return false
	}
	if err := s.backend.Set(key, string(data)); err != nil {
		s.log.Warn("progress: write dropped", "key", key, "error", err)
		return false
	}
	return true
}
