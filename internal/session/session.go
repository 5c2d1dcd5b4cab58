// Package session connects a running game to the progression layer.
//
// A Recorder is created per game and fed the events every Step returns.
// It submits scores, evaluates achievements and pays coin rewards, and
// reports what happened so the presentation layer can show it.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/achievements"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/leaderboard"
	"github.com/vovakirdan/neon-arcade/internal/progress"
	"github.com/vovakirdan/neon-arcade/internal/shop"
)

// Game ids with progression rules.
const (
	Snake     = "snake"
	Pong      = "pong"
	Invaders  = "invaders"
	Memory    = "memory"
	TicTacToe = "tictactoe"
)

// TicTacToeWinsCounter counts tic-tac-toe rounds won across sessions.
const TicTacToeWinsCounter = "tictactoe_wins"

// hardModeSnakeScore is the snake score that counts as beating hard mode.
const hardModeSnakeScore = 100

// Report summarizes the progression effects of a batch of events.
type Report struct {
	Unlocked  []progress.Definition
	Coins     int  // Coins awarded
	Rank      int  // Leaderboard rank (0-based), -1 when none
	Submitted bool // A score was written to the leaderboard
	Finished  bool // The batch contained an outcome
	Score     int  // Final score when Finished
}

func emptyReport() Report { return Report{Rank: -1} }

func (r *Report) merge(o Report) {
	r.Unlocked = append(r.Unlocked, o.Unlocked...)
	r.Coins += o.Coins
	if o.Submitted {
		r.Rank = o.Rank
		r.Submitted = true
	}
	if o.Finished {
		r.Finished = true
		r.Score = o.Score
	}
}

// Empty reports whether nothing worth showing happened.
func (r Report) Empty() bool {
	return len(r.Unlocked) == 0 && r.Coins == 0 && !r.Finished
}

// Recorder applies one game's events to the progression store.
type Recorder struct {
	game    string
	store   *progress.Store
	engine  *achievements.Engine
	rewards config.RewardsConfig
	log     *log.Logger
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger sets the logger used for unlock and reward messages.
func WithLogger(l *log.Logger) Option {
	return func(r *Recorder) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRewards replaces the coin payout tables.
func WithRewards(rc config.RewardsConfig) Option {
	return func(r *Recorder) {
		if rc != nil {
			r.rewards = rc
		}
	}
}

// WithEngine replaces the achievement engine, e.g. to change the
// all-games target.
func WithEngine(e *achievements.Engine) Option {
	return func(r *Recorder) {
		if e != nil {
			r.engine = e
		}
	}
}

// New returns a recorder for game backed by store.
func New(game string, store *progress.Store, opts ...Option) *Recorder {
	r := &Recorder{
		game:    game,
		store:   store,
		engine:  achievements.New(store),
		rewards: config.DefaultRewards(),
		log:     log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Game returns the id this recorder reports for.
func (r *Recorder) Game() string { return r.game }

// Handle applies a Step's events in order.
func (r *Recorder) Handle(events []core.Event) Report {
	rep := emptyReport()
	for _, ev := range events {
		switch ev := ev.(type) {
		case core.StartedEvent:
			rep.merge(r.unlocked(r.engine.TrackGamePlayed(r.game)...))
		case core.ScoreEvent:
			rep.merge(r.scored(ev))
		case core.OutcomeEvent:
			rep.merge(r.finished(ev))
		}
	}
	return rep
}

// Konami records the cheat code.
func (r *Recorder) Konami() Report {
	return r.unlocked(r.engine.Check(achievements.KonamiCode{}))
}

func (r *Recorder) scored(ev core.ScoreEvent) Report {
	switch r.game {
	case Snake:
		return r.unlocked(r.engine.Check(achievements.SnakeMilestone{Score: ev.Score}))
	case Invaders:
		r.engine.UpdateProgress(progress.SpaceAce, ev.Score, achievements.SpaceAceScore)
	}
	return emptyReport()
}

func (r *Recorder) finished(ev core.OutcomeEvent) Report {
	rep := emptyReport()
	rep.Finished = true
	rep.Score = ev.Score
	hard := ev.Difficulty == core.DifficultyHard

	var ids []string
	check := func(e achievements.Event) {
		ids = append(ids, r.engine.Check(e))
	}

	switch r.game {
	case Snake:
		r.submit(&rep, ev)
		check(achievements.SnakeScore{Value: ev.Score})
		if hard && ev.Score >= hardModeSnakeScore {
			check(achievements.HardModeComplete{})
		}
		r.reward(&rep, ev.Score)
		check(r.multiTalent())

	case Pong:
		if !ev.Won {
			break
		}
		r.submit(&rep, ev)
		check(achievements.PongScore{Score: ev.Score, AIScore: ev.OpponentScore})
		if hard {
			check(achievements.HardModeComplete{})
		}
		r.reward(&rep, ev.Score)
		check(r.multiTalent())

	case Invaders:
		r.submit(&rep, ev)
		r.reward(&rep, ev.Score)
		check(achievements.SpaceSurvivor{FinalScore: ev.Score})
		check(achievements.SpaceAce{Score: ev.Score})

	case Memory:
		r.submit(&rep, ev)
		check(achievements.MemoryTime{Seconds: ev.Seconds})
		check(achievements.MemoryComplete{Score: ev.Score, Moves: ev.Moves})
		r.engine.UpdateProgress(progress.MemoryGenius, max(0, achievements.MemoryGeniusSecs-ev.Seconds), achievements.MemoryGeniusSecs)
		r.engine.UpdateProgress(progress.MemorySpeedster, max(0, achievements.MemorySpeedSecs-ev.Seconds), achievements.MemorySpeedSecs)
		r.engine.UpdateProgress(progress.PerfectMemory, max(0, achievements.PerfectMemoryMoves-ev.Moves), achievements.PerfectMemoryMoves)
		if hard {
			check(achievements.HardModeComplete{})
		}
		r.reward(&rep, ev.Score)
		check(r.multiTalent())

	case TicTacToe:
		if !ev.Won {
			break
		}
		wins := r.store.IncrementCounter(TicTacToeWinsCounter)
		r.engine.UpdateProgress(progress.TicTacWinner, wins, achievements.TicTacWins)
		check(achievements.TicTacToeWin{TotalWins: wins})
		r.reward(&rep, ev.Score)

	default:
		r.submit(&rep, ev)
		r.reward(&rep, ev.Score)
	}

	if rep.Submitted {
		check(achievements.LeaderboardRank{Rank: rep.Rank})
	}
	rep.merge(r.unlocked(ids...))
	return rep
}

// submit writes a positive score to the leaderboard once.
func (r *Recorder) submit(rep *Report, ev core.OutcomeEvent) {
	if ev.Score <= 0 {
		return
	}
	rep.Rank = r.store.SubmitScore(r.game, leaderboard.Entry{
		PlayerName: r.store.PlayerName(),
		Score:      ev.Score,
		Difficulty: ev.Difficulty,
	})
	rep.Submitted = true
	r.log.Debug("score submitted", "game", r.game, "score", ev.Score, "rank", rep.Rank)
}

// reward pays the coin tier reached by score.
func (r *Recorder) reward(rep *Report, score int) {
	coins := shop.Reward(r.rewards.For(r.game), score)
	if coins <= 0 {
		return
	}
	r.store.AwardCoins(coins)
	rep.Coins += coins
	r.log.Debug("coins awarded", "game", r.game, "coins", coins)
}

func (r *Recorder) multiTalent() achievements.Event {
	return achievements.MultiTalent{
		Snake:  r.store.HighScore(Snake),
		Memory: r.store.HighScore(Memory),
		Pong:   r.store.HighScore(Pong),
	}
}

// unlocked turns achievement ids into a report, skipping empty ids.
func (r *Recorder) unlocked(ids ...string) Report {
	rep := emptyReport()
	for _, id := range ids {
		if id == "" {
			continue
		}
		if def, ok := progress.Lookup(id); ok {
			rep.Unlocked = append(rep.Unlocked, def)
			r.log.Debug("achievement unlocked", "game", r.game, "id", id)
		}
	}
	return rep
}
