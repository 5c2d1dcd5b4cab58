package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func startedGame(t *testing.T, difficulty string) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 99, ScreenW: 80, ScreenH: 24, TickRate: 60, Difficulty: difficulty})
	res := g.Step(core.FrameOf(core.ActionStart))
	if g.Phase() != core.PhaseRunning {
		t.Fatalf("phase after start = %s", g.Phase())
	}
	if len(res.Events) != 1 {
		t.Fatalf("start events = %v", res.Events)
	}
	return g
}

func playerBullets(g *Game) int {
	n := 0
	for _, b := range g.bullets {
		if !b.enemy {
			n++
		}
	}
	return n
}

func TestInitialFormation(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)

	if len(g.enemies) != 32 || g.aliveCount() != 32 {
		t.Fatalf("enemies = %d alive %d, want 32", len(g.enemies), g.aliveCount())
	}
	first, last := g.enemies[0], g.enemies[31]
	if first.X != 160 || first.Y != 80 {
		t.Errorf("first enemy at (%v,%v), want (160,80)", first.X, first.Y)
	}
	if last.X != 580 || last.Y != 260 {
		t.Errorf("last enemy at (%v,%v), want (580,260)", last.X, last.Y)
	}
	if g.wave != 1 || g.score != 0 || g.dir != 1 {
		t.Errorf("wave %d score %d dir %v", g.wave, g.score, g.dir)
	}
}

func TestLivesByDifficulty(t *testing.T) {
	tests := map[string]int{
		core.DifficultyEasy:   5,
		core.DifficultyNormal: 3,
		core.DifficultyHard:   2,
	}
	for difficulty, lives := range tests {
		t.Run(difficulty, func(t *testing.T) {
			g := startedGame(t, difficulty)
			if g.lives != lives {
				t.Errorf("lives = %d, want %d", g.lives, lives)
			}
		})
	}
}

func TestFormationFlipsAsUnit(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	// Shift so the rightmost column sits half a unit from the wall.
	for i := range g.enemies {
		g.enemies[i].X += 179.5
	}
	before := make([]enemy, len(g.enemies))
	copy(before, g.enemies)

	g.moveFormation()

	if g.dir != -1 {
		t.Fatalf("dir = %v, want -1 after touching the wall", g.dir)
	}
	for i, e := range g.enemies {
		if e.X != before[i].X+1 {
			t.Errorf("enemy %d x = %v, want %v", i, e.X, before[i].X+1)
		}
		if e.Y != before[i].Y+15 {
			t.Errorf("enemy %d y = %v, want %v", i, e.Y, before[i].Y+15)
		}
	}

	// Next move heads left without another descent.
	g.moveFormation()
	if g.enemies[0].X != before[0].X || g.enemies[0].Y != before[0].Y+15 {
		t.Errorf("after reversal enemy 0 at (%v,%v)", g.enemies[0].X, g.enemies[0].Y)
	}
}

func TestDeadEnemiesDoNotTriggerFlip(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	for i := range g.enemies {
		g.enemies[i].X += 179.5
		if i%8 == 7 {
			g.enemies[i].alive = false
		}
	}
	g.moveFormation()
	if g.dir != 1 {
		t.Error("a dead enemy at the wall should not flip the formation")
	}
}

func TestKillScores(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	g.bullets = []bullet{{RectF: core.RectF{X: 170, Y: 90, W: 4, H: 15}}}

	events := g.resolveHits()

	if g.enemies[0].alive {
		t.Error("enemy 0 should be destroyed")
	}
	if g.score != 100 {
		t.Errorf("score = %d, want 100", g.score)
	}
	if len(g.bullets) != 0 {
		t.Error("bullet should be consumed")
	}
	if len(events) != 1 {
		t.Fatalf("events = %v", events)
	}
	if ev, ok := events[0].(core.ScoreEvent); !ok || ev.Score != 100 || ev.Delta != 100 {
		t.Errorf("event = %#v", events[0])
	}
}

func TestBulletKillsOnlyOneEnemy(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	// Stack two enemies so one bullet overlaps both.
	g.enemies[1].X = g.enemies[0].X
	g.bullets = []bullet{{RectF: core.RectF{X: 170, Y: 90, W: 4, H: 15}}}

	g.resolveHits()

	if g.aliveCount() != 31 {
		t.Errorf("alive = %d, want 31", g.aliveCount())
	}
}

func TestPlayerHitShakesAndEnds(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	ship := g.playerRect()
	hit := bullet{RectF: core.RectF{X: ship.X + 15, Y: ship.Y + 5, W: 4, H: 15}, enemy: true}

	g.bullets = []bullet{hit}
	events := g.resolveHits()
	if g.lives != 2 {
		t.Errorf("lives = %d, want 2", g.lives)
	}
	if len(events) != 1 {
		t.Fatalf("events = %v", events)
	}
	if ev, ok := events[0].(core.ShakeEvent); !ok || ev.Ticks != 18 {
		t.Errorf("event = %#v, want ShakeEvent{18}", events[0])
	}

	g.lives = 1
	g.score = 700
	g.bullets = []bullet{hit}
	events = g.resolveHits()
	if g.Phase() != core.PhaseGameOver {
		t.Fatal("losing the last life should end the game")
	}
	var out core.OutcomeEvent
	found := false
	for _, ev := range events {
		if o, ok := ev.(core.OutcomeEvent); ok {
			out, found = o, true
		}
	}
	if !found || out.Score != 700 || out.Difficulty != core.DifficultyNormal {
		t.Errorf("outcome = %+v found=%v", out, found)
	}
}

func TestWaveAdvance(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	for i := 1; i < len(g.enemies); i++ {
		g.enemies[i].alive = false
	}
	g.bullets = []bullet{{RectF: core.RectF{X: 170, Y: 95, W: 4, H: 15}}}

	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.Wave != 2 {
		t.Fatalf("wave = %d, want 2", snap.Wave)
	}
	if snap.Alive != 32 {
		t.Errorf("alive = %d, want fresh formation", snap.Alive)
	}
	if snap.SpeedMilli != 1200 {
		t.Errorf("speed = %d/1000, want 1.2", snap.SpeedMilli)
	}
	if snap.Bullets != 0 {
		t.Errorf("bullets = %d, want cleared", snap.Bullets)
	}
	if snap.Score != 100 || g.Phase() != core.PhaseRunning {
		t.Errorf("score %d phase %s", snap.Score, g.Phase())
	}
}

func TestInvasionEndsGame(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	g.enemies[0].Y = 525

	res := g.Step(core.NewInputFrame())

	if g.Phase() != core.PhaseGameOver || !g.invaded {
		t.Fatal("enemy reaching the invasion line should end the game")
	}
	last := res.Events[len(res.Events)-1]
	if _, ok := last.(core.OutcomeEvent); !ok {
		t.Errorf("last event = %#v, want outcome", last)
	}
}

func TestPlayerCooldown(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	fire := core.FrameOf(core.ActionFire)

	for range 18 {
		g.Step(fire)
	}
	if n := playerBullets(g); n != 1 {
		t.Fatalf("player bullets after 18 ticks = %d, want 1", n)
	}
	g.Step(fire)
	if n := playerBullets(g); n != 2 {
		t.Errorf("player bullets after cooldown = %d, want 2", n)
	}
}

func TestPlayerClampedToField(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	for range 200 {
		g.movePlayer(core.FrameOf(core.ActionLeft))
	}
	if g.playerX != 0 {
		t.Errorf("playerX = %v, want 0", g.playerX)
	}
	for range 200 {
		g.movePlayer(core.FrameOf(core.ActionRight))
	}
	if g.playerX != 760 {
		t.Errorf("playerX = %v, want 760", g.playerX)
	}
}

func TestPauseFreezes(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	for range 30 {
		g.Step(core.FrameOf(core.ActionFire))
	}
	g.Step(core.FrameOf(core.ActionPause))

	before := g.Snapshot()
	for range 120 {
		g.Step(core.FrameOf(core.ActionFire, core.ActionLeft))
	}
	after := g.Snapshot()
	before.Tick, after.Tick = 0, 0
	if before != after {
		t.Errorf("paused game changed:\n%+v\n%+v", before, after)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New()
		g.Reset(core.RuntimeConfig{Seed: 4242, TickRate: 60})
		g.Step(core.FrameOf(core.ActionStart))
		for i := range 900 {
			in := core.FrameOf(core.ActionFire)
			if (i/50)%2 == 0 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestRender(t *testing.T) {
	g := startedGame(t, core.DifficultyNormal)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "WAVE 01") {
		t.Errorf("HUD missing:\n%s", content)
	}
	if !strings.ContainsRune(content, PlayerChar) {
		t.Error("ship not drawn")
	}
}
