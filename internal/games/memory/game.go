// Package memory implements a card-matching Memory game.
// Cards are laid face down in a grid; the player flips two at a time and
// matched pairs stay up. A mismatched pair is shown for a moment before
// turning back over. The final score rewards speed and few moves.
package memory

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	cardW   = 5 // "[ A ]"
	cardGap = 1
)

type card struct {
	symbol  string
	flipped bool
	matched bool
}

// Game implements Memory.
type Game struct {
	core.Lifecycle

	cfg     config.MemoryConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	pairs int
	cols  int

	cards    []card
	cursor   int
	open     []int // Indexes of face-up, unmatched cards (at most 2)
	hideWait int   // Ticks until a mismatched pair turns back over

	moves        int
	matches      int
	elapsedTicks int
	score        int
}

// Package-level variables for config/difficulty, set by the CLI before play.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path for subsequently created games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset overrides the difficulty carried in RuntimeConfig.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new Memory game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Match every pair. Fast and tidy scores best."
}

// Reset loads configuration and puts the game in NotStarted.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if difficultyPreset != "" {
		runtime.Difficulty = difficultyPreset
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0

	cfg, err := config.LoadMemory(configPath)
	if err != nil {
		cfg = config.DefaultMemory()
	}
	g.cfg = cfg

	tuning := cfg.Tuning(config.ParsePreset(runtime.Level()))
	g.pairs = core.Clamp(tuning.Pairs, 1, len(symbols(cfg)))
	g.cols = core.Max(1, tuning.Columns)

	g.deal()
	g.SetPhase(core.PhaseNotStarted)
}

// symbols returns the configured card faces, falling back to letters.
func symbols(cfg config.MemoryConfig) []string {
	if len(cfg.Symbols) > 0 {
		return cfg.Symbols
	}
	out := make([]string, 26)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

// deal shuffles a fresh deck and clears the round counters.
func (g *Game) deal() {
	faces := symbols(g.cfg)[:g.pairs]
	g.cards = g.cards[:0]
	for _, s := range faces {
		g.cards = append(g.cards, card{symbol: s}, card{symbol: s})
	}
	g.rng.Shuffle(len(g.cards), func(i, j int) {
		g.cards[i], g.cards[j] = g.cards[j], g.cards[i]
	})

	g.cursor = 0
	g.open = g.open[:0]
	g.hideWait = 0
	g.moves = 0
	g.matches = 0
	g.elapsedTicks = 0
	g.score = 0
}

// Seconds returns whole seconds played in the current round.
func (g *Game) Seconds() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return g.elapsedTicks / rate
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	var events []core.Event
	advance, started := g.HandleLifecycle(in, g.deal)
	if started {
		events = append(events, core.StartedEvent{Game: g.ID()})
	}
	if !advance {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.elapsedTicks++
	g.moveCursor(in)

	if g.hideWait > 0 {
		g.hideWait--
		if g.hideWait == 0 {
			for _, i := range g.open {
				g.cards[i].flipped = false
			}
			g.open = g.open[:0]
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
		if g.flip(g.cursor) {
			g.End()
			events = append(events, g.outcome())
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor moves the selection within the grid, stopping at the edges.
func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor/g.cols, g.cursor%g.cols
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	if col < 0 || col >= g.cols || row < 0 {
		return
	}
	if next := row*g.cols + col; next < len(g.cards) {
		g.cursor = next
	}
}

// flip turns a card face up and resolves a pair. It reports whether the
// last pair was just matched.
func (g *Game) flip(i int) bool {
	c := &g.cards[i]
	if c.flipped || c.matched || len(g.open) == 2 {
		return false
	}
	c.flipped = true
	g.open = append(g.open, i)
	if len(g.open) < 2 {
		return false
	}

	g.moves++
	a, b := g.open[0], g.open[1]
	if g.cards[a].symbol != g.cards[b].symbol {
		g.hideWait = g.runtime.TicksFor(g.cfg.MismatchDelayMS)
		return false
	}

	g.cards[a].matched = true
	g.cards[b].matched = true
	g.open = g.open[:0]
	g.matches++
	if g.matches < g.pairs {
		return false
	}

	g.score = Score(g.cfg, g.Seconds(), g.moves)
	return true
}

// Score computes the final score for a finished board.
func Score(cfg config.MemoryConfig, seconds, moves int) int {
	return max(0, cfg.BaseScore-cfg.TimePenalty*seconds-cfg.MovePenalty*moves)
}

func (g *Game) outcome() core.OutcomeEvent {
	return core.OutcomeEvent{
		Score:      g.score,
		Won:        true,
		Moves:      g.moves,
		Seconds:    g.Seconds(),
		Difficulty: g.runtime.Level(),
	}
}

// Render draws the board and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	secs := g.Seconds()
	hud := fmt.Sprintf(" MEMORY  Time %d:%02d  Moves %02d  Pairs %d/%d", secs/60, secs%60, g.moves, g.matches, g.pairs)
	dst.DrawTextColor(0, 0, hud, core.ColorText)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	rows := (len(g.cards) + g.cols - 1) / g.cols
	gridW := g.cols*(cardW+cardGap) - cardGap
	gridH := rows*2 - 1
	x0 := (dst.Width() - gridW) / 2
	y0 := 2 + core.Max(0, (dst.Height()-2-gridH)/2)

	for i, c := range g.cards {
		x := x0 + (i%g.cols)*(cardW+cardGap)
		y := y0 + (i/g.cols)*2

		face := "?"
		color := core.ColorSecondary
		switch {
		case c.matched:
			face, color = c.symbol, core.ColorGreen
		case c.flipped:
			face, color = c.symbol, core.ColorPrimary
		}
		if i == g.cursor && g.Running() {
			color = core.ColorAccent
		}
		dst.DrawTextColor(x, y, fmt.Sprintf("[ %s ]", face), color)
	}

	switch g.Phase() {
	case core.PhaseNotStarted:
		dst.DrawOverlay("MEMORY", fmt.Sprintf("%d pairs. Press ENTER", g.pairs))
	case core.PhasePaused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		dst.DrawOverlay("ALL PAIRS FOUND!",
			fmt.Sprintf("Score %d", g.score),
			fmt.Sprintf("%ds, %d moves", secs, g.moves),
			"Press R to play again")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.Phase(),
		Won:   g.Phase() == core.PhaseGameOver,
	}
}
