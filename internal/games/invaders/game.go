// Package invaders implements Space Invaders.
// A 4x8 formation marches side to side, dropping half an enemy height
// each time any ship touches a wall. Clearing the formation starts a
// faster wave; the game ends when lives run out or the formation lands.
package invaders

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar      = '▲'
	PlayerShotChar  = '|'
	EnemyShotChar   = '!'
	playerTopMargin = 10 // Gap between the ship and the field bottom
)

var enemyGlyphs = []rune{'▼', 'W', 'M', 'V'}

type bullet struct {
	core.RectF
	enemy bool
}

type enemy struct {
	core.RectF
	alive bool
}

// Game implements Space Invaders.
type Game struct {
	core.Lifecycle

	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	baseSpeed  float64
	startLives int

	// Cooldowns in ticks
	shotTicks  int
	enemyTicks int
	shakeTicks int
	shotWait   int
	enemyWait  int

	playerX float64
	bullets []bullet
	enemies []enemy
	dir     float64 // +1 right, -1 left
	speed   float64
	wave    int
	lives   int
	score   int
	invaded bool
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

// New creates a new Space Invaders game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Hold the line against endless waves."
}

// Reset loads configuration and puts the game in NotStarted.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if difficultyPreset != "" {
		runtime.Difficulty = difficultyPreset
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvaders()
	}
	g.cfg = cfg

	tuning := cfg.Tuning(config.ParsePreset(runtime.Level()))
	g.baseSpeed = tuning.EnemySpeed
	g.startLives = core.Max(1, tuning.Lives)

	g.shotTicks = runtime.TicksFor(cfg.Player.CooldownMS)
	g.enemyTicks = runtime.TicksFor(cfg.Enemy.FireMS)
	g.shakeTicks = runtime.TicksFor(cfg.ShakeMS)

	g.newRound()
	g.SetPhase(core.PhaseNotStarted)
}

// newRound restores lives, score and the first wave.
func (g *Game) newRound() {
	g.playerX = g.cfg.Field.Width/2 - g.cfg.Player.Width/2
	g.lives = g.startLives
	g.score = 0
	g.wave = 1
	g.invaded = false
	g.shotWait = 0
	g.enemyWait = g.enemyTicks
	g.speed = g.baseSpeed
	g.spawnFormation()
}

// spawnFormation lays out a fresh formation centered horizontally and
// clears every bullet in flight.
func (g *Game) spawnFormation() {
	e := g.cfg.Enemy
	startX := (g.cfg.Field.Width - float64(e.Cols)*e.Spacing) / 2

	g.enemies = g.enemies[:0]
	for row := range e.Rows {
		for col := range e.Cols {
			g.enemies = append(g.enemies, enemy{
				RectF: core.RectF{
					X: startX + float64(col)*e.Spacing,
					Y: e.StartY + float64(row)*e.Spacing,
					W: e.Width,
					H: e.Height,
				},
				alive: true,
			})
		}
	}
	g.bullets = g.bullets[:0]
	g.dir = 1
}

// playerRect returns the ship's box.
func (g *Game) playerRect() core.RectF {
	p := g.cfg.Player
	return core.RectF{
		X: g.playerX,
		Y: g.cfg.Field.Height - p.Height - playerTopMargin,
		W: p.Width,
		H: p.Height,
	}
}

// invasionLine is the y an enemy's bottom edge must not reach.
func (g *Game) invasionLine() float64 {
	return g.cfg.Field.Height - g.cfg.Player.Height - g.cfg.Player.BottomMargin
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	var events []core.Event
	advance, started := g.HandleLifecycle(in, g.newRound)
	if started {
		events = append(events, core.StartedEvent{Game: g.ID()})
	}
	if !advance {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.movePlayer(in)
	g.moveBullets()
	g.moveFormation()
	g.enemyFire()
	events = append(events, g.resolveHits()...)

	if g.Running() && g.aliveCount() == 0 {
		g.nextWave()
	}

	if g.Running() && g.formationLanded() {
		g.invaded = true
		g.End()
		events = append(events, g.outcome())
	}

	return core.StepResult{State: g.State(), Events: events}
}

// movePlayer applies movement and the fire button.
func (g *Game) movePlayer(in core.InputFrame) {
	p := g.cfg.Player
	if in.Has(core.ActionLeft) {
		g.playerX -= p.Speed
	}
	if in.Has(core.ActionRight) {
		g.playerX += p.Speed
	}
	g.playerX = core.ClampF(g.playerX, 0, g.cfg.Field.Width-p.Width)

	if g.shotWait > 0 {
		g.shotWait--
	}
	if (in.Has(core.ActionFire) || in.Has(core.ActionUp)) && g.shotWait == 0 {
		ship := g.playerRect()
		b := g.cfg.Bullet
		g.bullets = append(g.bullets, bullet{
			RectF: core.RectF{X: ship.X + ship.W/2 - b.Width/2, Y: ship.Y, W: b.Width, H: b.Height},
		})
		g.shotWait = g.shotTicks
	}
}

// moveBullets advances every bullet and drops the ones that left the field.
func (g *Game) moveBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if b.enemy {
			b.Y += g.cfg.Bullet.Speed
		} else {
			b.Y -= g.cfg.Bullet.Speed
		}
		if b.Y > 0 && b.Y < g.cfg.Field.Height {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// moveFormation shifts every live enemy; if any touches a wall the whole
// formation reverses and descends half an enemy height.
func (g *Game) moveFormation() {
	flip := false
	limit := g.cfg.Field.Width - g.cfg.Enemy.Width
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.alive {
			continue
		}
		e.X += g.dir * g.speed
		if e.X <= 0 || e.X >= limit {
			flip = true
		}
	}
	if !flip {
		return
	}
	g.dir = -g.dir
	for i := range g.enemies {
		if g.enemies[i].alive {
			g.enemies[i].Y += g.cfg.Enemy.Height / 2
		}
	}
}

// enemyFire lets a random live enemy shoot once per cooldown.
func (g *Game) enemyFire() {
	if g.enemyWait > 0 {
		g.enemyWait--
		return
	}
	alive := g.aliveIndexes()
	if len(alive) == 0 {
		return
	}
	shooter := g.enemies[alive[g.rng.Intn(len(alive))]]
	b := g.cfg.Bullet
	g.bullets = append(g.bullets, bullet{
		RectF: core.RectF{X: shooter.X + shooter.W/2 - b.Width/2, Y: shooter.Bottom(), W: b.Width, H: b.Height},
		enemy: true,
	})
	g.enemyWait = g.enemyTicks
}

// resolveHits handles player shots against enemies and enemy shots
// against the ship.
func (g *Game) resolveHits() []core.Event {
	var events []core.Event
	ship := g.playerRect()

	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if b.enemy {
			if b.Intersects(ship) {
				g.lives--
				events = append(events, core.ShakeEvent{Ticks: g.shakeTicks})
				continue
			}
			kept = append(kept, b)
			continue
		}

		hit := false
		for i := range g.enemies {
			e := &g.enemies[i]
			if e.alive && b.Intersects(e.RectF) {
				e.alive = false
				hit = true
				g.score += g.cfg.KillPoints
				events = append(events, core.ScoreEvent{Score: g.score, Delta: g.cfg.KillPoints})
				break
			}
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	g.bullets = kept

	if g.lives <= 0 {
		g.lives = 0
		g.End()
		events = append(events, g.outcome())
	}
	return events
}

// nextWave spawns a new formation one step faster.
func (g *Game) nextWave() {
	g.wave++
	g.speed = g.baseSpeed + float64(g.wave-1)*g.cfg.WaveSpeedStep
	g.spawnFormation()
}

// formationLanded reports whether any live enemy reached the invasion line.
func (g *Game) formationLanded() bool {
	line := g.invasionLine()
	for _, e := range g.enemies {
		if e.alive && e.Bottom() >= line {
			return true
		}
	}
	return false
}

func (g *Game) aliveIndexes() []int {
	var idx []int
	for i, e := range g.enemies {
		if e.alive {
			idx = append(idx, i)
		}
	}
	return idx
}

func (g *Game) aliveCount() int {
	n := 0
	for _, e := range g.enemies {
		if e.alive {
			n++
		}
	}
	return n
}

func (g *Game) outcome() core.OutcomeEvent {
	return core.OutcomeEvent{
		Score:      g.score,
		Difficulty: g.runtime.Level(),
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	fw, fh := g.cfg.Field.Width, g.cfg.Field.Height
	w, h := dst.Width(), dst.Height()-1
	project := func(r core.RectF) core.Rect {
		pr := r.Project(fw, fh, w, h)
		pr.Y++
		return pr
	}

	hud := fmt.Sprintf(" SCORE %06d   WAVE %02d   LIVES %s", g.score, g.wave, strings.Repeat("♥", g.lives))
	dst.DrawTextColor(0, 0, hud, core.ColorText)

	cols := core.Max(1, g.cfg.Enemy.Cols)
	for i, e := range g.enemies {
		if !e.alive {
			continue
		}
		row := i / cols
		r := project(e.RectF)
		dst.SetColor(r.X, r.Y, enemyGlyphs[row%len(enemyGlyphs)], core.ColorSecondary)
	}

	for _, b := range g.bullets {
		r := project(b.RectF)
		if b.enemy {
			dst.SetColor(r.X, r.Y, EnemyShotChar, core.ColorRed)
		} else {
			dst.SetColor(r.X, r.Y, PlayerShotChar, core.ColorAccent)
		}
	}

	ship := project(g.playerRect())
	dst.SetColor(ship.X, ship.Y, PlayerChar, core.ColorPrimary)

	lineY := project(core.RectF{Y: g.invasionLine(), W: fw, H: 1}).Y
	for x := 0; x < w; x += 2 {
		if dst.Get(x, lineY) == ' ' {
			dst.SetColor(x, lineY, '·', core.ColorGray)
		}
	}

	switch g.Phase() {
	case core.PhaseNotStarted:
		dst.DrawOverlay("SPACE INVADERS", "Press ENTER to start")
	case core.PhasePaused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		reason := "OUT OF LIVES"
		if g.invaded {
			reason = "INVADED"
		}
		dst.DrawOverlay("GAME OVER", reason, fmt.Sprintf("Score %d  Wave %d", g.score, g.wave), "Press R to restart")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.Phase(),
	}
}
