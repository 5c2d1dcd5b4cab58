package pong

import "github.com/vovakirdan/neon-arcade/internal/core"

// Snapshot contains the complete state of a Pong game.
// Velocities are scaled by 1000 so snapshots compare exactly.
type Snapshot struct {
	Tick        uint64
	Phase       core.Phase
	BallX       int
	BallY       int
	BallVX      int
	BallVY      int
	PlayerY     int
	AIY         int
	PlayerScore int
	AIScore     int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Phase:       g.Phase(),
		BallX:       int(g.ball.X),
		BallY:       int(g.ball.Y),
		BallVX:      int(g.ballVX * 1000),
		BallVY:      int(g.ballVY * 1000),
		PlayerY:     int(g.playerY),
		AIY:         int(g.aiY),
		PlayerScore: g.playerScore,
		AIScore:     g.aiScore,
	}
}
