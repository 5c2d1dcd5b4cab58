package tictactoe

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func startedGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 17, ScreenW: 80, ScreenH: 24, TickRate: 60})
	g.Step(core.FrameOf(core.ActionStart))
	if g.Phase() != core.PhaseRunning {
		t.Fatalf("phase after start = %s", g.Phase())
	}
	return g
}

// place moves the cursor to cell i and confirms.
func place(g *Game, i int) core.StepResult {
	g.cursor = i
	return g.Step(core.FrameOf(core.ActionConfirm))
}

// waitAI steps until the CPU has answered.
func waitAI(g *Game) []core.Event {
	var events []core.Event
	for g.aiWait > 0 {
		events = append(events, g.Step(core.NewInputFrame()).Events...)
	}
	return events
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Mark
	}{
		{"empty", Board{}, Empty},
		{"row", Board{X, X, X}, X},
		{"column", Board{O, X, 0, O, X, 0, O}, O},
		{"diagonal", Board{X, O, O, 0, X, 0, 0, 0, X}, X},
		{"anti diagonal", Board{0, 0, O, 0, O, 0, O}, O},
		{"no line", Board{X, O, X, X, O, O, O, X, X}, Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := tt.board.Winner(); got != tt.want {
				t.Errorf("Winner() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAIPriorities(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  []int
	}{
		{"takes the win over a block", Board{O, O, 0, X, X}, []int{2}},
		{"blocks", Board{X, X, 0, 0, O}, []int{2}},
		{"takes the center", Board{X}, []int{4}},
		{"takes a corner", Board{0, X, 0, 0, O}, []int{0, 2, 6, 8}},
		{"takes any free cell", Board{X, O, X, X, O, O, O, X}, []int{8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startedGame(t)
			g.board = tt.board
			got := g.aiMove()
			ok := false
			for _, w := range tt.want {
				if got == w {
					ok = true
				}
			}
			if !ok {
				t.Errorf("aiMove() = %d, want one of %v", got, tt.want)
			}
		})
	}
}

func TestCPUAnswersAfterDelay(t *testing.T) {
	g := startedGame(t)
	place(g, 0)

	if g.board[0] != X {
		t.Fatal("player move not placed")
	}
	if g.aiWait != 30 {
		t.Errorf("aiWait = %d, want 30 ticks", g.aiWait)
	}

	// The player cannot move while the CPU is thinking.
	g.cursor = 8
	g.Step(core.FrameOf(core.ActionConfirm))
	if g.board[8] != Empty {
		t.Error("player moved during the CPU's turn")
	}

	waitAI(g)
	if g.board[4] != O {
		t.Errorf("CPU should take the center, board %v", g.board)
	}
}

func TestOccupiedCellIgnored(t *testing.T) {
	g := startedGame(t)
	place(g, 4)
	waitAI(g)
	before := g.board
	place(g, 4)
	if g.board != before || g.aiWait != 0 {
		t.Error("confirming an occupied cell should do nothing")
	}
}

func TestPlayerWinAndTally(t *testing.T) {
	g := startedGame(t)
	g.board = Board{X, X, 0, O, O}

	res := place(g, 2)

	if g.Phase() != core.PhaseGameOver {
		t.Fatal("completing a row should end the round")
	}
	if len(res.Events) != 1 {
		t.Fatalf("events = %v", res.Events)
	}
	out := res.Events[0].(core.OutcomeEvent)
	if !out.Won || out.Draw || out.Score != 1 {
		t.Errorf("outcome = %+v", out)
	}
	if g.Tally() != (Tally{X: 1}) {
		t.Errorf("tally = %+v", g.Tally())
	}

	// A new round keeps the tally.
	res = g.Step(core.FrameOf(core.ActionRestart))
	if g.Phase() != core.PhaseRunning || g.board != (Board{}) {
		t.Fatal("restart should clear the board")
	}
	if len(res.Events) != 1 {
		t.Errorf("restart events = %v", res.Events)
	}
	if g.Tally().X != 1 {
		t.Errorf("tally lost on new round: %+v", g.Tally())
	}

	// Reset clears it.
	g.Reset(core.RuntimeConfig{Seed: 1})
	if g.Tally() != (Tally{}) {
		t.Errorf("Reset should clear the tally: %+v", g.Tally())
	}
}

func TestCPUWin(t *testing.T) {
	g := startedGame(t)
	g.board = Board{O, O, 0, X, 0, 0, X}

	place(g, 8)
	events := waitAI(g)

	if g.board[2] != O {
		t.Fatalf("CPU should complete its row, board %v", g.board)
	}
	if len(events) != 1 {
		t.Fatalf("events = %v", events)
	}
	out := events[0].(core.OutcomeEvent)
	if out.Won || out.Draw || out.Score != 0 {
		t.Errorf("outcome = %+v", out)
	}
	if g.Tally().O != 1 {
		t.Errorf("tally = %+v", g.Tally())
	}
}

func TestDraw(t *testing.T) {
	g := startedGame(t)
	g.board = Board{X, O, X, X, O, O, O, X}

	res := place(g, 8)

	if g.Phase() != core.PhaseGameOver || !g.draw {
		t.Fatalf("full board should be a draw, board %v", g.board)
	}
	out := res.Events[0].(core.OutcomeEvent)
	if !out.Draw || out.Won {
		t.Errorf("outcome = %+v", out)
	}
	if g.Tally().Draws != 1 {
		t.Errorf("tally = %+v", g.Tally())
	}
}

func TestRender(t *testing.T) {
	g := startedGame(t)
	place(g, 0)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "TIC-TAC-TOE") || !strings.Contains(content, "CPU is thinking") {
		t.Errorf("render missing HUD or status:\n%s", content)
	}
}
