// Package snake implements wrap-around Snake on a fixed grid.
// The snake moves one cell every few ticks, passes through the edges and
// dies only by running into itself. Filling the whole grid is a win.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// foodAttempts bounds rejection sampling before falling back to a scan.
const foodAttempts = 64

// Game implements the Snake game.
type Game struct {
	core.Lifecycle

	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	gridW, gridH   int
	moveEveryTicks int
	moveTicker     int
	pointsPerFood  int

	score     int
	foodEaten int
	won       bool

	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
	food      Point
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

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Eat, grow, wrap around the edges. Don't bite yourself."
}

// Reset loads configuration and puts the game in NotStarted.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if difficultyPreset != "" {
		cfg.Difficulty = difficultyPreset
	}
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0

	gc, err := config.LoadSnake(configPath)
	if err != nil {
		gc = config.DefaultSnake()
	}
	g.cfg = gc
	g.gridW = core.Max(2, gc.Grid.Width)
	g.gridH = core.Max(2, gc.Grid.Height)

	tuning := gc.Tuning(config.ParsePreset(cfg.Level()))
	g.moveEveryTicks = cfg.TicksFor(tuning.MoveIntervalMS)
	g.pointsPerFood = tuning.PointsPerFood

	g.newRound()
	g.SetPhase(core.PhaseNotStarted)
}

// newRound restores the initial body, heading, score and food.
func (g *Game) newRound() {
	start := Point{
		X: core.Clamp(g.cfg.Start.X, 0, g.gridW-1),
		Y: core.Clamp(g.cfg.Start.Y, 0, g.gridH-1),
	}
	g.snake = []Point{start}
	g.direction = DirRight
	g.nextDir = DirRight
	g.moveTicker = 0
	g.score = 0
	g.foodEaten = 0
	g.won = false
	g.spawnFood()
}

// spawnFood places food on a random free cell. It samples random cells
// first and scans for the remaining free cells when the grid is crowded.
func (g *Game) spawnFood() {
	if len(g.snake) >= g.gridW*g.gridH {
		g.food = Point{X: -1, Y: -1}
		return
	}

	for range foodAttempts {
		p := Point{X: g.rng.Intn(g.gridW), Y: g.rng.Intn(g.gridH)}
		if !g.isSnakeAt(p) {
			g.food = p
			return
		}
	}

	var free []Point
	for y := range g.gridH {
		for x := range g.gridW {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}
	g.food = free[g.rng.Intn(len(free))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	var events []core.Event
	advance, started := g.HandleLifecycle(input, g.newRound)
	if started {
		events = append(events, core.StartedEvent{Game: g.ID()})
	}
	if !advance {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.processInput(input)

	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		events = append(events, g.moveSnake()...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// processInput buffers a direction change; reversing onto the applied
// heading is ignored.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake moves the snake one cell and returns the events it caused.
func (g *Game) moveSnake() []core.Event {
	g.direction = g.nextDir

	head := g.snake[0]
	newHead := head
	switch g.direction {
	case DirUp:
		newHead.Y--
	case DirDown:
		newHead.Y++
	case DirLeft:
		newHead.X--
	case DirRight:
		newHead.X++
	}
	newHead.X = (newHead.X + g.gridW) % g.gridW
	newHead.Y = (newHead.Y + g.gridH) % g.gridH

	if g.isSnakeAt(newHead) {
		g.End()
		return []core.Event{g.outcome()}
	}

	g.snake = append([]Point{newHead}, g.snake...)

	if newHead != g.food {
		g.snake = g.snake[:len(g.snake)-1]
		return nil
	}

	g.score += g.pointsPerFood
	g.foodEaten++
	events := []core.Event{core.ScoreEvent{Score: g.score, Delta: g.pointsPerFood}}

	if len(g.snake) >= g.gridW*g.gridH {
		g.won = true
		g.food = Point{X: -1, Y: -1}
		g.End()
		return append(events, g.outcome())
	}

	g.spawnFood()
	return events
}

func (g *Game) outcome() core.OutcomeEvent {
	return core.OutcomeEvent{
		Score:      g.score,
		Won:        g.won,
		Difficulty: g.runtime.Level(),
	}
}

// Render draws the game to the screen. Each grid cell is two columns wide
// so the board looks square in a terminal.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" SNAKE  Score: %d  Length: %d  [%s]", g.score, len(g.snake), g.runtime.Level())
	dst.DrawTextColor(0, 0, hud, core.ColorText)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	boardW := g.gridW*2 + 2
	boardH := g.gridH + 2
	board := core.NewRect((dst.Width()-boardW)/2, 2+core.Max(0, (dst.Height()-2-boardH)/2), boardW, boardH)
	dst.DrawBox(board)

	cell := func(p Point, r rune, c core.Color) {
		x := board.X + 1 + p.X*2
		y := board.Y + 1 + p.Y
		dst.SetColor(x, y, r, c)
		dst.SetColor(x+1, y, r, c)
	}

	if g.food.X >= 0 {
		cell(g.food, '●', core.ColorAccent)
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		if i == 0 {
			cell(g.snake[i], '█', core.ColorPrimary)
		} else {
			cell(g.snake[i], '▓', core.ColorSecondary)
		}
	}

	switch g.Phase() {
	case core.PhaseNotStarted:
		dst.DrawOverlay("SNAKE", "Press ENTER to start")
	case core.PhasePaused:
		dst.DrawOverlay("PAUSED", "Press P to continue")
	case core.PhaseGameOver:
		title := "GAME OVER"
		if g.won {
			title = "BOARD CLEARED!"
		}
		dst.DrawOverlay(title, fmt.Sprintf("Final Score: %d", g.score), "Press R to restart")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.Phase(),
		Won:   g.won,
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
