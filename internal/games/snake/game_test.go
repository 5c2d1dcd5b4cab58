package snake

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func testConfig(seed int64, difficulty string) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:       seed,
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Difficulty: difficulty,
	}
}

// startedGame returns a game that has already received the start action.
func startedGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig(seed, core.DifficultyNormal))
	res := g.Step(core.FrameOf(core.ActionStart))
	if g.Phase() != core.PhaseRunning {
		t.Fatalf("phase after start = %s", g.Phase())
	}
	if !hasStarted(res.Events) {
		t.Fatal("start should emit StartedEvent")
	}
	return g
}

func hasStarted(events []core.Event) bool {
	for _, ev := range events {
		if _, ok := ev.(core.StartedEvent); ok {
			return true
		}
	}
	return false
}

func outcomeOf(events []core.Event) (core.OutcomeEvent, bool) {
	for _, ev := range events {
		if o, ok := ev.(core.OutcomeEvent); ok {
			return o, true
		}
	}
	return core.OutcomeEvent{}, false
}

func TestInitialState(t *testing.T) {
	g := New()
	g.Reset(testConfig(1, core.DifficultyNormal))

	if g.Phase() != core.PhaseNotStarted {
		t.Errorf("phase = %s, want not_started", g.Phase())
	}
	snap := g.Snapshot()
	if snap.SnakeLen != 1 || snap.HeadX != 7 || snap.HeadY != 7 {
		t.Errorf("initial body = len %d head (%d,%d), want [(7,7)]", snap.SnakeLen, snap.HeadX, snap.HeadY)
	}
	if snap.Dir != DirRight {
		t.Errorf("initial heading = %s, want right", snap.Dir)
	}
	if g.isSnakeAt(g.food) {
		t.Error("food spawned on the snake")
	}

	// Ticks before start change nothing.
	for range 50 {
		g.Step(core.NewInputFrame())
	}
	if after := g.Snapshot(); after.HeadX != 7 || after.Phase != core.PhaseNotStarted {
		t.Errorf("snake moved before start: %+v", after)
	}
}

func TestMoveIntervalByDifficulty(t *testing.T) {
	tests := []struct {
		difficulty string
		ticks      int
	}{
		{core.DifficultyEasy, 12},
		{core.DifficultyNormal, 9},
		{core.DifficultyHard, 6},
	}
	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			g := New()
			g.Reset(testConfig(1, tt.difficulty))
			if g.moveEveryTicks != tt.ticks {
				t.Errorf("moveEveryTicks = %d, want %d", g.moveEveryTicks, tt.ticks)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(12345, core.DifficultyNormal))
		g.Step(core.FrameOf(core.ActionStart))
		for i := range 300 {
			in := core.NewInputFrame()
			switch i {
			case 20:
				in.Set(core.ActionDown)
			case 60:
				in.Set(core.ActionLeft)
			case 120:
				in.Set(core.ActionUp)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := startedGame(t, 42)

	g.Step(core.FrameOf(core.ActionLeft))
	if g.nextDir == DirLeft {
		t.Error("should not allow immediate reversal from right to left")
	}

	g.Step(core.FrameOf(core.ActionDown))
	if g.nextDir != DirDown {
		t.Errorf("nextDir = %s, want down", g.nextDir)
	}

	// Reversal is judged against the applied heading, so up is still
	// accepted before the move commits down.
	g.Step(core.FrameOf(core.ActionUp))
	if g.nextDir != DirUp {
		t.Errorf("nextDir = %s, want up", g.nextDir)
	}
}

func TestEdgeWrap(t *testing.T) {
	tests := []struct {
		name  string
		start Point
		dir   Direction
		want  Point
	}{
		{"right edge", Point{14, 7}, DirRight, Point{0, 7}},
		{"left edge", Point{0, 3}, DirLeft, Point{14, 3}},
		{"top edge", Point{5, 0}, DirUp, Point{5, 14}},
		{"bottom edge", Point{5, 14}, DirDown, Point{5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startedGame(t, 7)
			g.snake = []Point{tt.start}
			g.direction, g.nextDir = tt.dir, tt.dir
			g.food = Point{X: 10, Y: 10}

			g.moveSnake()

			if g.snake[0] != tt.want {
				t.Errorf("head = %+v, want %+v", g.snake[0], tt.want)
			}
			if g.Phase() != core.PhaseRunning {
				t.Errorf("wrapping should not end the game")
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := startedGame(t, 111)
	g.snake = []Point{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
	}
	g.direction, g.nextDir = DirRight, DirRight
	g.food = Point{X: 0, Y: 0}
	g.score = 30

	// (6,5) is the current tail; any body cell counts.
	events := g.moveSnake()

	if g.Phase() != core.PhaseGameOver {
		t.Fatal("game should be over after self collision")
	}
	out, ok := outcomeOf(events)
	if !ok {
		t.Fatal("game over should emit an outcome")
	}
	if out.Score != 30 || out.Won || out.Difficulty != core.DifficultyNormal {
		t.Errorf("outcome = %+v", out)
	}
}

func TestSnakeGrowth(t *testing.T) {
	g := startedGame(t, 222)
	head := g.snake[0]
	g.food = Point{X: head.X + 1, Y: head.Y}

	events := g.moveSnake()

	if len(g.snake) != 2 {
		t.Errorf("len = %d, want 2", len(g.snake))
	}
	if g.score != 10 {
		t.Errorf("score = %d, want 10 on normal", g.score)
	}
	if len(events) != 1 {
		t.Fatalf("events = %v, want one ScoreEvent", events)
	}
	if ev, ok := events[0].(core.ScoreEvent); !ok || ev.Score != 10 || ev.Delta != 10 {
		t.Errorf("event = %#v", events[0])
	}
	if g.isSnakeAt(g.food) {
		t.Error("respawned food is on the snake")
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	g := startedGame(t, 999)

	// Fill all but three cells so sampling has to fall back to a scan.
	g.snake = g.snake[:0]
	for y := range g.gridH {
		for x := range g.gridW {
			if y == g.gridH-1 && x >= g.gridW-3 {
				continue
			}
			g.snake = append(g.snake, Point{X: x, Y: y})
		}
	}

	for range 50 {
		g.spawnFood()
		if g.isSnakeAt(g.food) {
			t.Fatalf("food spawned on snake at %+v", g.food)
		}
		if g.food.X < 0 || g.food.X >= g.gridW || g.food.Y < 0 || g.food.Y >= g.gridH {
			t.Fatalf("food out of bounds at %+v", g.food)
		}
	}
}

func TestFullBoardIsWin(t *testing.T) {
	g := startedGame(t, 5)
	g.gridW, g.gridH = 2, 1
	g.snake = []Point{{X: 0, Y: 0}}
	g.food = Point{X: 1, Y: 0}
	g.direction, g.nextDir = DirRight, DirRight

	events := g.moveSnake()

	if g.Phase() != core.PhaseGameOver || !g.State().Won {
		t.Fatalf("full board should end in a win, state %+v", g.State())
	}
	out, ok := outcomeOf(events)
	if !ok || !out.Won {
		t.Errorf("outcome = %+v, ok=%v", out, ok)
	}
}

func TestPauseFreezesSnake(t *testing.T) {
	g := startedGame(t, 3)
	g.Step(core.FrameOf(core.ActionPause))
	if g.Phase() != core.PhasePaused {
		t.Fatalf("phase = %s, want paused", g.Phase())
	}

	before := g.Snapshot()
	for range 100 {
		g.Step(core.FrameOf(core.ActionUp))
	}
	after := g.Snapshot()
	if after.HeadX != before.HeadX || after.HeadY != before.HeadY || after.Score != before.Score {
		t.Errorf("paused snake changed: %+v -> %+v", before, after)
	}

	g.Step(core.FrameOf(core.ActionPause))
	if g.Phase() != core.PhaseRunning {
		t.Errorf("second pause should resume, phase %s", g.Phase())
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := startedGame(t, 8)
	g.score = 50
	g.End()

	// Fire and start still held from the round do not restart it.
	if res := g.Step(core.FrameOf(core.ActionFire, core.ActionStart, core.ActionConfirm)); hasStarted(res.Events) || g.Phase() != core.PhaseGameOver {
		t.Fatalf("only restart may leave game over, phase %s", g.Phase())
	}

	res := g.Step(core.FrameOf(core.ActionRestart))
	if !hasStarted(res.Events) {
		t.Error("restart should emit StartedEvent")
	}
	if g.Phase() != core.PhaseRunning || g.score != 0 || len(g.snake) != 1 {
		t.Errorf("restart did not reset round: phase %s score %d len %d", g.Phase(), g.score, len(g.snake))
	}
}

func TestRandomPlayKeepsBodyAndFoodValid(t *testing.T) {
	dirs := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionNone}

	for seed := int64(1); seed <= 20; seed++ {
		g := startedGame(t, seed)
		rng := rand.New(rand.NewSource(seed))

		for tick := range 3000 {
			if g.Phase() == core.PhaseGameOver {
				g.Step(core.FrameOf(core.ActionRestart))
				continue
			}

			seen := make(map[Point]bool, len(g.snake))
			for _, p := range g.snake {
				if seen[p] {
					t.Fatalf("seed %d tick %d: body cell %v repeated in %v", seed, tick, p, g.snake)
				}
				seen[p] = true
			}
			if !g.won && seen[g.food] {
				t.Fatalf("seed %d tick %d: food %v on the body", seed, tick, g.food)
			}

			g.Step(core.FrameOf(dirs[rng.Intn(len(dirs))]))
		}
	}
}

func TestSnakeMovesOnInterval(t *testing.T) {
	g := startedGame(t, 9)
	start := g.snake[0]
	g.food = Point{X: 0, Y: 0}

	for range g.moveEveryTicks - 1 {
		g.Step(core.NewInputFrame())
	}
	if g.snake[0] != start {
		t.Fatal("snake moved before its interval elapsed")
	}
	g.Step(core.NewInputFrame())
	if g.snake[0] != (Point{X: start.X + 1, Y: start.Y}) {
		t.Errorf("head = %+v after one interval", g.snake[0])
	}
}

func TestGameID(t *testing.T) {
	g := New()
	if g.ID() != "snake" || g.Title() != "Snake" {
		t.Errorf("ID/Title = %s/%s", g.ID(), g.Title())
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(444, core.DifficultyNormal))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "SNAKE") {
		t.Error("HUD should contain 'SNAKE'")
	}
	if !strings.Contains(content, "Press ENTER to start") {
		t.Error("not-started overlay missing")
	}
}
