package memory

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

func startedGame(t *testing.T, difficulty string) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 31, ScreenW: 80, ScreenH: 24, TickRate: 60, Difficulty: difficulty})
	g.Step(core.FrameOf(core.ActionStart))
	if g.Phase() != core.PhaseRunning {
		t.Fatalf("phase after start = %s", g.Phase())
	}
	return g
}

// pairIndexes groups card positions by face.
func pairIndexes(g *Game) map[string][]int {
	out := make(map[string][]int)
	for i, c := range g.cards {
		out[c.symbol] = append(out[c.symbol], i)
	}
	return out
}

func mismatched(g *Game) (int, int) {
	for i := range g.cards {
		for j := i + 1; j < len(g.cards); j++ {
			if g.cards[i].symbol != g.cards[j].symbol {
				return i, j
			}
		}
	}
	return -1, -1
}

func TestDeckByDifficulty(t *testing.T) {
	tests := []struct {
		difficulty string
		cards      int
		cols       int
	}{
		{core.DifficultyEasy, 12, 4},
		{core.DifficultyNormal, 16, 4},
		{core.DifficultyHard, 20, 5},
	}
	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			g := startedGame(t, tt.difficulty)
			if len(g.cards) != tt.cards || g.cols != tt.cols {
				t.Errorf("cards %d cols %d, want %d/%d", len(g.cards), g.cols, tt.cards, tt.cols)
			}
			for face, idx := range pairIndexes(g) {
				if len(idx) != 2 {
					t.Errorf("face %q appears %d times", face, len(idx))
				}
			}
		})
	}
}

func TestShuffleIsSeeded(t *testing.T) {
	deal := func(seed int64) string {
		g := New()
		g.Reset(core.RuntimeConfig{Seed: seed, TickRate: 60})
		g.Step(core.FrameOf(core.ActionStart))
		return g.Snapshot().Layout
	}
	if deal(5) != deal(5) {
		t.Error("same seed should deal the same layout")
	}
}

func TestMismatchFlipsBack(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	a, b := mismatched(g)

	g.flip(a)
	g.flip(b)

	if g.moves != 1 {
		t.Errorf("moves = %d, want 1", g.moves)
	}
	if !g.cards[a].flipped || !g.cards[b].flipped {
		t.Fatal("mismatched pair should stay face up for a moment")
	}
	if g.hideWait != 60 {
		t.Errorf("hideWait = %d, want 60 ticks", g.hideWait)
	}

	// A third card cannot be flipped while the pair is showing.
	g.cursor = (b + 1) % len(g.cards)
	for g.cursor == a || g.cursor == b {
		g.cursor = (g.cursor + 1) % len(g.cards)
	}
	third := g.cursor
	g.Step(core.FrameOf(core.ActionConfirm))
	if g.cards[third].flipped {
		t.Error("third card flipped during mismatch delay")
	}

	for range 59 {
		g.Step(core.NewInputFrame())
	}
	if g.cards[a].flipped || g.cards[b].flipped {
		t.Error("mismatched pair should turn back over after the delay")
	}
	if len(g.open) != 0 {
		t.Errorf("open = %v", g.open)
	}
}

func TestMatchStaysUp(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	var pair []int
	for _, idx := range pairIndexes(g) {
		pair = idx
		break
	}

	g.flip(pair[0])
	done := g.flip(pair[1])

	if done {
		t.Error("one pair should not finish the board")
	}
	if !g.cards[pair[0]].matched || !g.cards[pair[1]].matched {
		t.Error("pair should be matched")
	}
	if g.matches != 1 || g.moves != 1 || g.hideWait != 0 {
		t.Errorf("matches %d moves %d hideWait %d", g.matches, g.moves, g.hideWait)
	}
	// Flipping a matched card again is ignored.
	if g.flip(pair[0]); len(g.open) != 0 {
		t.Error("matched card was reopened")
	}
}

func TestWinThroughInput(t *testing.T) {
	g := startedGame(t, core.DifficultyEasy)
	pairs := pairIndexes(g)

	var last []int
	for _, idx := range pairs {
		if last == nil {
			last = idx
			continue
		}
		g.flip(idx[0])
		g.flip(idx[1])
	}
	g.elapsedTicks = 25 * 60

	var events []core.Event
	for _, i := range last {
		g.cursor = i
		res := g.Step(core.FrameOf(core.ActionConfirm))
		events = append(events, res.Events...)
	}

	if g.Phase() != core.PhaseGameOver {
		t.Fatalf("board complete, phase = %s", g.Phase())
	}
	if len(events) != 1 {
		t.Fatalf("events = %v", events)
	}
	out, ok := events[0].(core.OutcomeEvent)
	if !ok {
		t.Fatalf("event = %#v", events[0])
	}
	// Six pairs, six moves, 25 seconds: 1000 - 125 - 60.
	if out.Score != 815 || out.Moves != 6 || out.Seconds != 25 || !out.Won {
		t.Errorf("outcome = %+v", out)
	}
	if out.Difficulty != core.DifficultyEasy {
		t.Errorf("difficulty = %s", out.Difficulty)
	}
}

func TestScoreFormula(t *testing.T) {
	cfg := config.DefaultMemory()
	tests := []struct {
		seconds, moves, want int
	}{
		{0, 0, 1000},
		{10, 8, 870},
		{30, 12, 730},
		{100, 60, 0},
		{500, 500, 0},
	}
	for _, tt := range tests {
		if got := Score(cfg, tt.seconds, tt.moves); got != tt.want {
			t.Errorf("Score(%d, %d) = %d, want %d", tt.seconds, tt.moves, got, tt.want)
		}
	}
}

func TestClockOnlyRunsWhileRunning(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 60})
	for range 120 {
		g.Step(core.NewInputFrame())
	}
	if g.Seconds() != 0 {
		t.Errorf("clock ran before start: %d", g.Seconds())
	}

	g.Step(core.FrameOf(core.ActionStart))
	for range 120 {
		g.Step(core.NewInputFrame())
	}
	if g.Seconds() != 2 {
		t.Errorf("seconds = %d, want 2", g.Seconds())
	}

	g.Step(core.FrameOf(core.ActionPause))
	for range 600 {
		g.Step(core.NewInputFrame())
	}
	if g.Seconds() != 2 {
		t.Errorf("clock ran while paused: %d", g.Seconds())
	}
}

func TestCursorStaysOnGrid(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	g.Step(core.FrameOf(core.ActionUp))
	g.Step(core.FrameOf(core.ActionLeft))
	if g.cursor != 0 {
		t.Errorf("cursor = %d, want 0", g.cursor)
	}
	for range 10 {
		g.Step(core.FrameOf(core.ActionRight))
	}
	if g.cursor != 3 {
		t.Errorf("cursor = %d, want 3 at the row end", g.cursor)
	}
	for range 10 {
		g.Step(core.FrameOf(core.ActionDown))
	}
	if g.cursor != 15 {
		t.Errorf("cursor = %d, want 15 at the bottom", g.cursor)
	}
}

func TestRender(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()
	if !strings.Contains(content, "MEMORY") || !strings.Contains(content, "[ ? ]") {
		t.Errorf("render missing HUD or cards:\n%s", content)
	}
}
