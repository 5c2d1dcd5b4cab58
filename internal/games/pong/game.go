// Package pong implements Pong against a CPU opponent.
// The simulation runs in an 800x600 playfield; the player controls the
// left paddle and the CPU tracks the ball with the right one.
package pong

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Game implements the Pong game logic.
type Game struct {
	core.Lifecycle

	cfg     config.PongConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	playerY float64 // Top edge of the left paddle
	aiY     float64 // Top edge of the right paddle

	ball   core.RectF
	ballVX float64
	ballVY float64

	playerScore int
	aiScore     int

	aiFactor float64
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

// New creates a new Pong game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "First to 10 against the CPU paddle."
}

// Reset loads configuration and puts the game in NotStarted.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if difficultyPreset != "" {
		runtime.Difficulty = difficultyPreset
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0

	cfg, err := config.LoadPong(configPath)
	if err != nil {
		cfg = config.DefaultPong()
	}
	g.cfg = cfg
	g.aiFactor = cfg.Tuning(config.ParsePreset(runtime.Level())).AISpeedFactor

	g.newRound()
	g.SetPhase(core.PhaseNotStarted)
}

// newRound centers the paddles, zeroes the scores and serves.
func (g *Game) newRound() {
	mid := g.cfg.Field.Height/2 - g.cfg.Paddle.Height/2
	g.playerY = mid
	g.aiY = mid
	g.playerScore = 0
	g.aiScore = 0
	g.serve()
}

// serve puts the ball in the center moving along a random diagonal.
func (g *Game) serve() {
	size := g.cfg.Ball.Size
	g.ball = core.RectF{
		X: g.cfg.Field.Width/2 - size/2,
		Y: g.cfg.Field.Height/2 - size/2,
		W: size,
		H: size,
	}
	g.ballVX = g.cfg.Ball.Speed * g.randomSign()
	g.ballVY = g.cfg.Ball.Speed * g.randomSign()
}

func (g *Game) randomSign() float64 {
	if g.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// playerPaddle returns the left paddle's box.
func (g *Game) playerPaddle() core.RectF {
	p := g.cfg.Paddle
	return core.RectF{X: p.Offset, Y: g.playerY, W: p.Width, H: p.Height}
}

// aiPaddle returns the right paddle's box.
func (g *Game) aiPaddle() core.RectF {
	p := g.cfg.Paddle
	return core.RectF{X: g.cfg.Field.Width - p.Offset - p.Width, Y: g.aiY, W: p.Width, H: p.Height}
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

	maxY := g.cfg.Field.Height - g.cfg.Paddle.Height
	if in.Has(core.ActionUp) {
		g.playerY -= g.cfg.Paddle.Speed
	}
	if in.Has(core.ActionDown) {
		g.playerY += g.cfg.Paddle.Speed
	}
	g.playerY = core.ClampF(g.playerY, 0, maxY)

	g.updateAI()
	events = append(events, g.updateBall()...)

	return core.StepResult{State: g.State(), Events: events}
}

// updateAI moves the CPU paddle toward the ball at a fraction of the
// player's speed, holding still inside the dead zone.
func (g *Game) updateAI() {
	target := g.ball.CenterY() - g.cfg.Paddle.Height/2
	speed := g.cfg.Paddle.Speed * g.aiFactor

	switch {
	case g.aiY < target-g.cfg.AIDeadZone:
		g.aiY += speed
	case g.aiY > target+g.cfg.AIDeadZone:
		g.aiY -= speed
	}
	g.aiY = core.ClampF(g.aiY, 0, g.cfg.Field.Height-g.cfg.Paddle.Height)
}

// updateBall handles ball physics, paddle hits and scoring.
func (g *Game) updateBall() []core.Event {
	prev := g.ball
	g.ball.X += g.ballVX
	g.ball.Y += g.ballVY

	// Top and bottom walls
	if g.ball.Y <= 0 && g.ballVY < 0 {
		g.ball.Y = 0
		g.ballVY = -g.ballVY
	}
	if g.ball.Bottom() >= g.cfg.Field.Height && g.ballVY > 0 {
		g.ball.Y = g.cfg.Field.Height - g.ball.H
		g.ballVY = -g.ballVY
	}

	// Paddles only deflect a ball that is moving toward them. A fast ball
	// is caught when its path this tick crossed the paddle face.
	if p := g.playerPaddle(); g.ballVX < 0 && (g.ball.Intersects(p) || g.crossed(prev.X, g.ball.X, p.Right(), p)) {
		g.ball.X = p.Right()
		g.deflect(p)
	}
	if p := g.aiPaddle(); g.ballVX > 0 && (g.ball.Intersects(p) || g.crossed(prev.Right(), g.ball.Right(), p.X, p)) {
		g.ball.X = p.X - g.ball.W
		g.deflect(p)
	}

	switch {
	case g.ball.Right() < 0:
		g.aiScore++
		if g.aiScore >= g.cfg.WinScore {
			g.End()
			return []core.Event{g.outcome()}
		}
		g.serve()
	case g.ball.X > g.cfg.Field.Width:
		g.playerScore++
		events := []core.Event{core.ScoreEvent{Score: g.playerScore, Delta: 1}}
		if g.playerScore >= g.cfg.WinScore {
			g.End()
			return append(events, g.outcome())
		}
		g.serve()
		return events
	}
	return nil
}

// crossed reports whether the ball edge moved from one side of the paddle
// face to the other while the ball was level with the paddle.
func (g *Game) crossed(from, to, face float64, paddle core.RectF) bool {
	if (from-face)*(to-face) > 0 {
		return false
	}
	return g.ball.Bottom() > paddle.Y && g.ball.Y < paddle.Bottom()
}

// deflect reverses and speeds up the ball; the vertical speed comes from
// where on the paddle it landed.
func (g *Game) deflect(paddle core.RectF) {
	g.ballVX = -g.ballVX * g.cfg.Ball.Speedup
	hitPos := (g.ball.CenterY()-paddle.Y)/paddle.H - 0.5
	hitPos = core.ClampF(hitPos, -0.5, 0.5)
	g.ballVY = hitPos * g.cfg.Ball.Spin
}

func (g *Game) outcome() core.OutcomeEvent {
	return core.OutcomeEvent{
		Score:         g.playerScore,
		Won:           g.playerScore > g.aiScore,
		OpponentScore: g.aiScore,
		Difficulty:    g.runtime.Level(),
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

	centerX := w / 2
	for y := 1; y < dst.Height(); y += 2 {
		dst.SetColor(centerX, y, NetChar, core.ColorGray)
	}

	dst.DrawRectColor(project(g.playerPaddle()), PaddleChar, core.ColorPrimary)
	dst.DrawRectColor(project(g.aiPaddle()), PaddleChar, core.ColorSecondary)

	b := project(g.ball)
	dst.SetColor(b.X, b.Y, BallChar, core.ColorAccent)

	dst.DrawTextColor(1, 0, "YOU", core.ColorPrimary)
	dst.DrawTextColor(w-4, 0, "CPU", core.ColorSecondary)
	dst.DrawTextColor(centerX-4, 0, fmt.Sprintf("%2d", g.playerScore), core.ColorText)
	dst.DrawTextColor(centerX+3, 0, fmt.Sprintf("%d", g.aiScore), core.ColorText)

	switch g.Phase() {
	case core.PhaseNotStarted:
		dst.DrawOverlay("PONG", fmt.Sprintf("First to %d. Press ENTER", g.cfg.WinScore))
	case core.PhasePaused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		msg := "CPU WINS!"
		if g.playerScore > g.aiScore {
			msg = "YOU WIN!"
		}
		dst.DrawOverlay(msg, fmt.Sprintf("%d - %d", g.playerScore, g.aiScore), "Press R to restart")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.playerScore,
		Phase: g.Phase(),
		Won:   g.Phase() == core.PhaseGameOver && g.playerScore > g.aiScore,
	}
}

// speed returns the ball's current speed.
func (g *Game) speed() float64 {
	return math.Hypot(g.ballVX, g.ballVY)
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
