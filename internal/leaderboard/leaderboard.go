// Package leaderboard keeps per-game top-N score tables.
package leaderboard

import (
	"sort"
	"time"
)

// Limit is the number of entries a table keeps.
const Limit = 10

// Entry is one row of a leaderboard.
type Entry struct {
	PlayerName string    `json:"playerName"`
	Score      int       `json:"score"`
	Date       time.Time `json:"date"`
	Difficulty string    `json:"difficulty,omitempty"`
}

// Insert returns a new table with e placed by score, highest first, and
// truncated to limit entries. Entries with equal scores keep insertion
// order, so e lands after any existing entry with the same score.
// rank is e's 0-based position, or -1 when it did not make the cut.
// The input slice is not modified.
func Insert(entries []Entry, e Entry, limit int) (ranked []Entry, rank int) {
	if limit <= 0 {
		limit = Limit
	}

	ranked = make([]Entry, 0, len(entries)+1)
	ranked = append(ranked, entries...)
	ranked = append(ranked, e)
	newIdx := len(ranked) - 1

	order := make([]int, len(ranked))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ranked[order[a]].Score > ranked[order[b]].Score
	})

	sorted := make([]Entry, len(ranked))
	rank = -1
	for pos, idx := range order {
		sorted[pos] = ranked[idx]
		if idx == newIdx {
			rank = pos
		}
	}

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	if rank >= limit {
		rank = -1
	}
	return sorted, rank
}

// Normalize sorts a table loaded from storage and truncates it.
// Used to repair tables written by older builds or edited by hand.
func Normalize(entries []Entry, limit int) []Entry {
	if limit <= 0 {
		limit = Limit
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Score > out[b].Score
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Top returns the highest score in the table, or 0 when empty.
func Top(entries []Entry) int {
	best := 0
	for _, e := range entries {
		if e.Score > best {
			best = e.Score
		}
	}
	return best
}

// Qualifies reports whether score would make it onto the table.
func Qualifies(entries []Entry, score, limit int) bool {
	if limit <= 0 {
		limit = Limit
	}
	if len(entries) < limit {
		return true
	}
	// Ties rank after existing entries, so a tie with the last entry is out.
	return score > entries[len(entries)-1].Score
}
