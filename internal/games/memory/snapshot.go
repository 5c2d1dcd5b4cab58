package memory

import "github.com/vovakirdan/neon-arcade/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Phase   core.Phase
	Layout  string // Card faces in deal order
	Cursor  int
	Moves   int
	Matches int
	Seconds int
	Score   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	layout := make([]byte, 0, len(g.cards))
	for _, c := range g.cards {
		layout = append(layout, c.symbol...)
	}
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.Phase(),
		Layout:  string(layout),
		Cursor:  g.cursor,
		Moves:   g.moves,
		Matches: g.matches,
		Seconds: g.Seconds(),
		Score:   g.score,
	}
}
