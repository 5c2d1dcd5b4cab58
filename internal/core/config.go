package core

// Difficulty names shared by every game and by the achievement rules.
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	Difficulty string // easy, normal or hard; empty means normal
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		Difficulty: DifficultyNormal,
	}
}

// Level returns the configured difficulty, defaulting to normal.
func (c RuntimeConfig) Level() string {
	switch c.Difficulty {
	case DifficultyEasy, DifficultyHard:
		return c.Difficulty
	default:
		return DifficultyNormal
	}
}

// TicksFor converts a duration in milliseconds into a whole number of ticks
// at the configured rate. The result is at least 1.
func (c RuntimeConfig) TicksFor(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return max(1, (ms*rate+500)/1000)
}

// Phase is the lifecycle state every game shares.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int
	Phase Phase
	Won   bool // Meaningful only once Phase is PhaseGameOver
}

// GameOver reports whether the game has reached its terminal phase.
func (s GameState) GameOver() bool { return s.Phase == PhaseGameOver }

// Paused reports whether the simulation is frozen.
func (s GameState) Paused() bool { return s.Phase == PhasePaused }

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Lifecycle is the phase bookkeeping every game embeds. Games call
// HandleLifecycle at the top of Step; when it returns false the tick
// must not mutate simulation state.
type Lifecycle struct {
	phase Phase
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() Phase { return l.phase }

// SetPhase forces a phase. Used by Reset and by terminal conditions.
func (l *Lifecycle) SetPhase(p Phase) { l.phase = p }

// Running reports whether the simulation advances this tick.
func (l *Lifecycle) Running() bool { return l.phase == PhaseRunning }

// End moves to GameOver.
func (l *Lifecycle) End() { l.phase = PhaseGameOver }

// HandleLifecycle applies start, restart and pause actions.
// start is invoked when the game must (re)initialize its round state and
// begin running. It returns true when the simulation should advance.
func (l *Lifecycle) HandleLifecycle(in InputFrame, start func()) (advance, started bool) {
	switch l.phase {
	case PhaseNotStarted:
		if in.Has(ActionStart) || in.Has(ActionConfirm) {
			start()
			l.phase = PhaseRunning
			return false, true
		}
		return false, false
	case PhaseGameOver:
		// Only an explicit restart: fire or confirm still held from the
		// last moments of a round must not skip the results.
		if in.Has(ActionRestart) {
			start()
			l.phase = PhaseRunning
			return false, true
		}
		return false, false
	case PhasePaused:
		if in.Has(ActionPause) {
			l.phase = PhaseRunning
		}
		return false, false
	default:
		if in.Has(ActionPause) {
			l.phase = PhasePaused
			return false, false
		}
		return true, false
	}
}
