package invaders

import "github.com/vovakirdan/neon-arcade/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Phase      core.Phase
	Score      int
	Lives      int
	Wave       int
	PlayerX    int
	Alive      int
	Bullets    int
	Dir        int
	SpeedMilli int
	FormationX int // Left edge of the first live enemy
	FormationY int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Phase:      g.Phase(),
		Score:      g.score,
		Lives:      g.lives,
		Wave:       g.wave,
		PlayerX:    int(g.playerX),
		Alive:      g.aliveCount(),
		Bullets:    len(g.bullets),
		Dir:        int(g.dir),
		SpeedMilli: int(g.speed*1000 + 0.5),
	}
	for _, e := range g.enemies {
		if e.alive {
			s.FormationX = int(e.X)
			s.FormationY = int(e.Y)
			break
		}
	}
	return s
}
