package progress

import "time"

const keyAchievements = "achievements"

// Achievement is a catalog entry merged with the player's state.
type Achievement struct {
	Definition
	Unlocked     bool
	UnlockedDate time.Time
	Progress     int
	MaxProgress  int
}

// HasProgress reports whether a progress bar should be shown.
func (a Achievement) HasProgress() bool {
	return !a.Unlocked && a.MaxProgress > 0
}

type achievementRecord struct {
	ID           string     `json:"id"`
	Unlocked     bool       `json:"unlocked"`
	UnlockedDate *time.Time `json:"unlockedDate,omitempty"`
	Progress     int        `json:"progress,omitempty"`
	MaxProgress  int        `json:"maxProgress,omitempty"`
}

// records loads persisted state keyed by id. Unknown ids are dropped.
func (s *Store) records() map[string]achievementRecord {
	var list []achievementRecord
	s.load(keyAchievements, &list)

	out := make(map[string]achievementRecord, len(catalog))
	for _, r := range list {
		if _, ok := Lookup(r.ID); ok {
			out[r.ID] = r
		}
	}
	return out
}

func (s *Store) saveRecords(recs map[string]achievementRecord) bool {
	list := make([]achievementRecord, 0, len(recs))
	for _, d := range catalog {
		if r, ok := recs[d.ID]; ok {
			list = append(list, r)
		}
	}
	return s.save(keyAchievements, list)
}

func merge(d Definition, r achievementRecord) Achievement {
	a := Achievement{
		Definition:  d,
		Unlocked:    r.Unlocked,
		Progress:    r.Progress,
		MaxProgress: r.MaxProgress,
	}
	if r.UnlockedDate != nil {
		a.UnlockedDate = *r.UnlockedDate
	}
	return a
}

// Achievements returns every catalog entry with the player's state.
func (s *Store) Achievements() []Achievement {
	s.mu.Lock()
	recs := s.records()
	s.mu.Unlock()

	out := make([]Achievement, len(catalog))
	for i, d := range catalog {
		out[i] = merge(d, recs[d.ID])
	}
	return out
}

// Achievement returns a single merged entry.
func (s *Store) Achievement(id string) (Achievement, bool) {
	d, ok := Lookup(id)
	if !ok {
		return Achievement{}, false
	}
	s.mu.Lock()
	recs := s.records()
	s.mu.Unlock()
	return merge(d, recs[id]), true
}

// UnlockedCount returns how many achievements are unlocked.
func (s *Store) UnlockedCount() int {
	n := 0
	for _, a := range s.Achievements() {
		if a.Unlocked {
			n++
		}
	}
	return n
}

// Unlock marks id as unlocked. It returns true only on the first unlock;
// unknown ids and repeated unlocks return false and change nothing.
func (s *Store) Unlock(id string) bool {
	if _, ok := Lookup(id); !ok {
		return false
	}

	s.mu.Lock()
	recs := s.records()
	r := recs[id]
	if r.Unlocked {
		s.mu.Unlock()
		return false
	}
	now := s.now()
	r.ID = id
	r.Unlocked = true
	r.UnlockedDate = &now
	if r.MaxProgress > 0 {
		r.Progress = r.MaxProgress
	}
	recs[id] = r
	ok := s.saveRecords(recs)
	s.mu.Unlock()

	if ok {
		s.log.Debug("achievement unlocked", "id", id)
		s.notify(TopicAchievements)
	}
	return ok
}

// UpdateProgress records progress toward a locked achievement, clamped to
// [0, limit]. It is a no-op for unlocked or unknown achievements.
func (s *Store) UpdateProgress(id string, current, limit int) {
	if _, ok := Lookup(id); !ok || limit <= 0 {
		return
	}
	current = max(0, min(limit, current))

	s.mu.Lock()
	recs := s.records()
	r := recs[id]
	if r.Unlocked || (r.Progress == current && r.MaxProgress == limit) {
		s.mu.Unlock()
		return
	}
	r.ID = id
	r.Progress = current
	r.MaxProgress = limit
	recs[id] = r
	ok := s.saveRecords(recs)
	s.mu.Unlock()

	if ok {
		s.notify(TopicAchievements)
	}
}
