// Package tictactoe implements Tic-Tac-Toe against a simple CPU.
// The player is X and always opens. The CPU answers after a short delay,
// preferring a win, then a block, the center, a corner and any cell.
// The series tally survives new rounds until the game is Reset.
package tictactoe

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Mark is the content of a board cell.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Board is the 3x3 grid in row-major order.
type Board [9]Mark

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

var corners = []int{0, 2, 6, 8}

// Winner returns the mark holding a full line and that line, or Empty.
func (b Board) Winner() (Mark, [3]int) {
	for _, l := range lines {
		if m := b[l[0]]; m != Empty && b[l[1]] == m && b[l[2]] == m {
			return m, l
		}
	}
	return Empty, [3]int{}
}

// Full reports whether every cell is taken.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

func (b Board) free(cells []int) []int {
	var out []int
	for _, i := range cells {
		if b[i] == Empty {
			out = append(out, i)
		}
	}
	return out
}

// Tally counts finished rounds.
type Tally struct {
	X, O, Draws int
}

// Game implements Tic-Tac-Toe.
type Game struct {
	core.Lifecycle

	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	aiDelay int // Ticks between the player's move and the CPU's answer

	board   Board
	cursor  int
	aiWait  int // >0 while the CPU is "thinking"
	winner  Mark
	winLine [3]int
	draw    bool
	tally   Tally
}

// Package-level config path, set by the CLI before play.
var configPath string

// SetConfigPath sets the config file path for subsequently created games.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Tic-Tac-Toe game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Three in a row against the CPU."
}

// Reset clears the board and the series tally.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0

	cfg, err := config.LoadTicTacToe(configPath)
	if err != nil {
		cfg = config.DefaultTicTacToe()
	}
	g.aiDelay = runtime.TicksFor(cfg.AIDelayMS)

	g.tally = Tally{}
	g.newBoard()
	g.SetPhase(core.PhaseNotStarted)
}

// newBoard starts a round; the tally is kept.
func (g *Game) newBoard() {
	g.board = Board{}
	g.cursor = 4
	g.aiWait = 0
	g.winner = Empty
	g.winLine = [3]int{}
	g.draw = false
}

// Tally returns the series score.
func (g *Game) Tally() Tally {
	return g.tally
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	var events []core.Event
	advance, started := g.HandleLifecycle(in, g.newBoard)
	if started {
		events = append(events, core.StartedEvent{Game: g.ID()})
	}
	if !advance {
		return core.StepResult{State: g.State(), Events: events}
	}

	if g.aiWait > 0 {
		g.aiWait--
		if g.aiWait == 0 {
			g.board[g.aiMove()] = O
			if g.settle() {
				events = append(events, g.outcome())
			}
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	g.moveCursor(in)
	if (in.Has(core.ActionConfirm) || in.Has(core.ActionFire)) && g.board[g.cursor] == Empty {
		g.board[g.cursor] = X
		if g.settle() {
			events = append(events, g.outcome())
		} else {
			g.aiWait = g.aiDelay
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor/3, g.cursor%3
	switch {
	case in.Has(core.ActionUp):
		row = max(0, row-1)
	case in.Has(core.ActionDown):
		row = min(2, row+1)
	case in.Has(core.ActionLeft):
		col = max(0, col-1)
	case in.Has(core.ActionRight):
		col = min(2, col+1)
	}
	g.cursor = row*3 + col
}

// settle ends the round on a win or a full board and updates the tally.
func (g *Game) settle() bool {
	if w, line := g.board.Winner(); w != Empty {
		g.winner, g.winLine = w, line
		if w == X {
			g.tally.X++
		} else {
			g.tally.O++
		}
		g.End()
		return true
	}
	if g.board.Full() {
		g.draw = true
		g.tally.Draws++
		g.End()
		return true
	}
	return false
}

// aiMove picks the CPU's cell: win, block, center, a random corner, then
// a random free cell.
func (g *Game) aiMove() int {
	if i, ok := completing(g.board, O); ok {
		return i
	}
	if i, ok := completing(g.board, X); ok {
		return i
	}
	if g.board[4] == Empty {
		return 4
	}
	if free := g.board.free(corners); len(free) > 0 {
		return free[g.rng.Intn(len(free))]
	}
	free := g.board.free([]int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	return free[g.rng.Intn(len(free))]
}

// completing returns the first free cell that gives m three in a row.
func completing(b Board, m Mark) (int, bool) {
	for i := range b {
		if b[i] != Empty {
			continue
		}
		b[i] = m
		w, _ := b.Winner()
		b[i] = Empty
		if w == m {
			return i, true
		}
	}
	return 0, false
}

func (g *Game) outcome() core.OutcomeEvent {
	out := core.OutcomeEvent{
		Won:        g.winner == X,
		Draw:       g.draw,
		Difficulty: g.runtime.Level(),
	}
	if out.Won {
		out.Score = 1
	}
	return out
}

// Render draws the board, tally and status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" TIC-TAC-TOE  You %d  CPU %d  Draws %d", g.tally.X, g.tally.O, g.tally.Draws)
	dst.DrawTextColor(0, 0, hud, core.ColorText)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	const cellW, cellH = 7, 3
	boardW, boardH := cellW*3+2, cellH*3+2
	x0 := (dst.Width() - boardW) / 2
	y0 := 2 + core.Max(0, (dst.Height()-2-boardH)/2)

	for i := 1; i < 3; i++ {
		dst.DrawHLine(x0, y0+i*(cellH+1)-1, boardW, '─')
		dst.DrawVLine(x0+i*(cellW+1)-1, y0, boardH, '│')
	}

	onLine := func(i int) bool {
		return g.winner != Empty && (g.winLine[0] == i || g.winLine[1] == i || g.winLine[2] == i)
	}
	for i, m := range g.board {
		cx := x0 + (i%3)*(cellW+1) + cellW/2
		cy := y0 + (i/3)*(cellH+1) + cellH/2

		color := core.ColorPrimary
		if m == O {
			color = core.ColorSecondary
		}
		if onLine(i) {
			color = core.ColorBrightYellow
		}
		dst.SetColor(cx, cy, []rune(m.String())[0], color)
		if i == g.cursor && g.Running() && g.aiWait == 0 {
			dst.SetColor(cx-2, cy, '[', core.ColorAccent)
			dst.SetColor(cx+2, cy, ']', core.ColorAccent)
		}
	}

	status := "Your move"
	if g.aiWait > 0 {
		status = "CPU is thinking..."
	}
	dst.DrawTextCenteredColor(y0+boardH+1, status, core.ColorText)

	switch g.Phase() {
	case core.PhaseNotStarted:
		dst.DrawOverlay("TIC-TAC-TOE", "You are X. Press ENTER")
	case core.PhasePaused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		title := "DRAW"
		switch g.winner {
		case X:
			title = "YOU WIN!"
		case O:
			title = "CPU WINS"
		}
		dst.DrawOverlay(title, "Press R for another round")
	}
}

// State returns the current game state. Score is the player's round wins.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.tally.X,
		Phase: g.Phase(),
		Won:   g.winner == X,
	}
}
