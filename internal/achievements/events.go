package achievements

import "github.com/vovakirdan/neon-arcade/internal/progress"

// Event is a gameplay fact an achievement rule can react to.
type Event interface {
	// target returns the achievement id this event earns, or "".
	target() string
}

// SnakeScore is a finished Snake round.
type SnakeScore struct{ Value int }

// SnakeMilestone is a running Snake score, reported while the snake is alive.
type SnakeMilestone struct{ Score int }

// MemoryTime is the completion time of a Memory round, in seconds.
type MemoryTime struct{ Seconds int }

// MemoryComplete is a finished Memory round.
type MemoryComplete struct {
	Score int
	Moves int
}

// PongScore is a finished Pong match.
type PongScore struct {
	Score   int
	AIScore int
}

// HardModeComplete is any game won on hard difficulty.
type HardModeComplete struct{}

// KonamiCode is the cheat code entered anywhere in the arcade.
type KonamiCode struct{}

// SpaceSurvivor is a finished Space Invaders run.
type SpaceSurvivor struct{ FinalScore int }

// SpaceAce is a Space Invaders score, checked on every kill.
type SpaceAce struct{ Score int }

// TicTacToeWin carries the lifetime number of Tic-Tac-Toe wins.
type TicTacToeWin struct{ TotalWins int }

// LeaderboardRank is where a submitted score landed (0-based, -1 for none).
type LeaderboardRank struct{ Rank int }

// MultiTalent carries the player's best scores in the three core games.
type MultiTalent struct {
	Snake, Memory, Pong int
}

// PlayStreak carries the number of distinct days with at least one game.
type PlayStreak struct{ Days int }

// Thresholds.
const (
	SnakeMasterScore   = 100
	SnakeLegendScore   = 200
	PerfectSnakeScore  = 50
	MemoryGeniusSecs   = 30
	MemorySpeedSecs    = 20
	PerfectMemoryMoves = 12
	PongWinScore       = 10
	SpaceSurvivorScore = 2000
	SpaceAceScore      = 5000
	TicTacWins         = 5
	ScoreHunterRank    = 3
	MultiTalentScore   = 50
	StreakDays         = 3
)

func (e SnakeScore) target() string {
	switch {
	case e.Value >= SnakeLegendScore:
		return progress.SnakeLegend
	case e.Value >= SnakeMasterScore:
		return progress.SnakeMaster
	}
	return ""
}

func (e SnakeMilestone) target() string {
	if e.Score >= PerfectSnakeScore {
		return progress.PerfectSnake
	}
	return ""
}

func (e MemoryTime) target() string {
	switch {
	case e.Seconds <= MemorySpeedSecs:
		return progress.MemorySpeedster
	case e.Seconds <= MemoryGeniusSecs:
		return progress.MemoryGenius
	}
	return ""
}

func (e MemoryComplete) target() string {
	if e.Moves <= PerfectMemoryMoves {
		return progress.PerfectMemory
	}
	return ""
}

func (e PongScore) target() string {
	switch {
	case e.Score >= PongWinScore && e.AIScore == 0:
		return progress.PongPerfect
	case e.Score >= PongWinScore:
		return progress.PongPro
	}
	return ""
}

func (HardModeComplete) target() string { return progress.HardMode }

func (KonamiCode) target() string { return progress.KonamiDiscoverer }

func (e SpaceSurvivor) target() string {
	if e.FinalScore >= SpaceSurvivorScore {
		return progress.SpaceSurvivor
	}
	return ""
}

func (e SpaceAce) target() string {
	if e.Score >= SpaceAceScore {
		return progress.SpaceAce
	}
	return ""
}

func (e TicTacToeWin) target() string {
	if e.TotalWins >= TicTacWins {
		return progress.TicTacWinner
	}
	return ""
}

func (e LeaderboardRank) target() string {
	if e.Rank >= 0 && e.Rank < ScoreHunterRank {
		return progress.ScoreHunter
	}
	return ""
}

func (e MultiTalent) target() string {
	// Pong matches end at 10, so a won match stands in for a 50+ score.
	if e.Snake >= MultiTalentScore && e.Memory >= MultiTalentScore && e.Pong >= PongWinScore {
		return progress.MultiTalent
	}
	return ""
}

func (e PlayStreak) target() string {
	if e.Days >= StreakDays {
		return progress.Streak3
	}
	return ""
}
