package core

// Event is something a game reports from a single Step. The platform hands
// events to the session layer, which turns them into progression updates.
type Event interface {
	gameEvent()
}

// StartedEvent is emitted on every NotStarted/GameOver -> Running transition.
type StartedEvent struct {
	Game string
}

// ScoreEvent is emitted whenever the score changes while running.
type ScoreEvent struct {
	Score int // Score after the change
	Delta int
}

// OutcomeEvent is emitted exactly once per round, on the transition to GameOver.
type OutcomeEvent struct {
	Score         int
	Won           bool
	Draw          bool
	OpponentScore int // Pong AI score
	Moves         int // Memory pair flips
	Seconds       int // Memory elapsed time
	Difficulty    string
}

// ShakeEvent asks the presentation layer for a brief screen shake.
type ShakeEvent struct {
	Ticks int
}

func (StartedEvent) gameEvent() {}
func (ScoreEvent) gameEvent()   {}
func (OutcomeEvent) gameEvent() {}
func (ShakeEvent) gameEvent()   {}
