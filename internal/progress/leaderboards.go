package progress

import (
	"github.com/vovakirdan/neon-arcade/internal/leaderboard"
)

func leaderboardKey(game string) string { return "leaderboard_" + game }

// Leaderboard returns the game's table, best first. Tables written out of
// order or over-long are normalized on read.
func (s *Store) Leaderboard(game string) []leaderboard.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leaderboardLocked(game)
}

func (s *Store) leaderboardLocked(game string) []leaderboard.Entry {
	var entries []leaderboard.Entry
	if !s.load(leaderboardKey(game), &entries) {
		return nil
	}
	return leaderboard.Normalize(entries, leaderboard.Limit)
}

// HighScore returns the best score on the game's table, or 0.
func (s *Store) HighScore(game string) int {
	return leaderboard.Top(s.Leaderboard(game))
}

// SubmitScore inserts an entry into the game's table and appends it to the
// score history when a recorder is configured. A zero Date is filled with
// the store clock. It returns the entry's 0-based rank, or -1 when the
// entry did not make the top ten.
func (s *Store) SubmitScore(game string, e leaderboard.Entry) int {
	if e.Date.IsZero() {
		e.Date = s.now()
	}

	s.mu.Lock()
	table, rank := leaderboard.Insert(s.leaderboardLocked(game), e, leaderboard.Limit)
	ok := s.save(leaderboardKey(game), table)
	recorder := s.recorder
	s.mu.Unlock()

	if recorder != nil {
		if _, err := recorder.SaveScore(game, e.PlayerName, e.Score, e.Difficulty); err != nil {
			s.log.Warn("progress: score history write dropped", "game", game, "error", err)
		}
	}

	if !ok {
		return -1
	}
	s.notify(TopicLeaderboard)
	return rank
}
