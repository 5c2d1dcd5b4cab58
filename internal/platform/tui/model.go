package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/leaderboard"
	"github.com/vovakirdan/neon-arcade/internal/progress"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/session"
	"github.com/vovakirdan/neon-arcade/internal/shop"
)

// toastMS is how long an unlock or reward notice stays up.
const toastMS = 3000

// shakeOffsets is the horizontal jitter cycle used while shaking.
var shakeOffsets = []int{-1, 1, 0, 1, -1}

type toast struct {
	text  string
	ticks int
}

// GameModel runs one game: it feeds keys into input frames, steps the game
// on every tick and hands the resulting events to the session recorder.
type GameModel struct {
	game   registry.Game
	rec    *session.Recorder
	store  *progress.Store
	styles Styles
	screen *core.Screen
	config core.RuntimeConfig
	keys   *KeyMapper
	konami *core.KonamiDetector
	watch  *watcher
	gen    int

	input  core.InputFrame
	state  core.GameState
	toasts []toast
	shake  int
	coins  int
	last   session.Report      // Report of the round that just ended
	board  []leaderboard.Entry // Table as it stood when the round started
	paced  bool                // Round already scored onto a full table

	exitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a runner for game and resets it with cfg.
// A nil recorder gets one with default options.
func NewGameModel(game registry.Game, store *progress.Store, cfg core.RuntimeConfig, rec *session.Recorder) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if rec == nil {
		rec = session.New(game.ID(), store)
	}

	game.Reset(cfg)

	return GameModel{
		game:   game,
		rec:    rec,
		store:  store,
		styles: NewStyles(shop.New(store).ActiveTheme()),
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config: cfg,
		keys:   NewKeyMapper(),
		konami: &core.KonamiDetector{},
		input:  core.NewInputFrame(),
		state:  game.State(),
		coins:  store.Coins(),
		last:   session.Report{Rank: -1},
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	if m.watch != nil {
		return tea.Batch(tickCmd(m.config.TickRate, m.gen), m.watch.next())
	}
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()

	case storeChangedMsg:
		m.refresh(msg.Topic)
		if m.watch != nil {
			return m, m.watch.next()
		}
		return m, nil
	}

	return m, nil
}

// refresh reloads the cached view of a changed store topic.
func (m *GameModel) refresh(t progress.Topic) {
	switch t {
	case progress.TopicCoins:
		m.coins = m.store.Coins()
	case progress.TopicTheme:
		m.styles = NewStyles(shop.New(m.store).ActiveTheme())
	}
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.konami.Feed(msg.String()) {
		m.notify(m.rec.Konami())
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Esc pauses a running game and leaves from any other phase.
	if action == core.ActionBack {
		if m.state.Phase == core.PhaseRunning {
			m.input.Set(core.ActionPause)
			return m, nil
		}
		m.backToMenu = true
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.input)
	return m, nil
}

// handleTick steps the simulation once and applies its events.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.input.Clear()
	m.state = result.State

	for _, ev := range result.Events {
		switch ev := ev.(type) {
		case core.StartedEvent:
			m.last = session.Report{Rank: -1}
			m.board = m.store.Leaderboard(m.game.ID())
			m.paced = false
		case core.ScoreEvent:
			m.trackPace(ev.Score)
		case core.ShakeEvent:
			m.shake = max(m.shake, ev.Ticks)
		}
	}

	rep := m.rec.Handle(result.Events)
	if rep.Finished {
		m.last = rep
	}
	m.notify(rep)

	if m.shake > 0 {
		m.shake--
	}
	m.expireToasts()

	return m, tickCmd(m.config.TickRate, m.gen)
}

// notify queues toasts for unlocks and coins in rep.
func (m *GameModel) notify(rep session.Report) {
	ticks := m.config.TicksFor(toastMS)
	for _, def := range rep.Unlocked {
		m.toasts = append(m.toasts, toast{text: "★ Achievement unlocked: " + def.Title, ticks: ticks})
	}
	if rep.Coins > 0 {
		m.toasts = append(m.toasts, toast{text: fmt.Sprintf("+%d coins", rep.Coins), ticks: ticks})
	}
	if rep.Coins > 0 || len(rep.Unlocked) > 0 {
		m.coins = m.store.Coins()
	}
}

// trackPace announces, once per round, that the running score would
// already displace an entry on a full leaderboard.
func (m *GameModel) trackPace(score int) {
	if m.paced || len(m.board) < leaderboard.Limit {
		return
	}
	if !leaderboard.Qualifies(m.board, score, leaderboard.Limit) {
		return
	}
	m.paced = true
	m.toasts = append(m.toasts, toast{text: "▲ On the leaderboard", ticks: m.config.TicksFor(toastMS)})
}

// expireToasts counts down the front toast; only one is shown at a time.
func (m *GameModel) expireToasts() {
	if len(m.toasts) == 0 {
		return
	}
	m.toasts[0].ticks--
	if m.toasts[0].ticks <= 0 {
		m.toasts = m.toasts[1:]
	}
}

// saveScreenshot writes the current frame as plain text to
// ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game plus a status line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.shake > 0 {
		m.screen.SetOffset(shakeOffsets[m.shake%len(shakeOffsets)], 0)
	}
	m.game.Render(m.screen)
	m.screen.SetOffset(0, 0)

	h := m.screen.Height()
	if m.state.Phase == core.PhaseGameOver && m.last.Finished {
		m.screen.DrawTextCenteredColor(h-3, m.resultLine(), core.ColorAccent)
	}
	if len(m.toasts) > 0 {
		m.screen.DrawTextCenteredColor(h-2, m.toasts[0].text, core.ColorBrightYellow)
	}

	return m.styles.Render(m.screen) + "\n" + m.statusLine()
}

func (m GameModel) resultLine() string {
	line := fmt.Sprintf("Score %d", m.last.Score)
	if m.last.Rank >= 0 {
		line += fmt.Sprintf("  ·  Rank #%d", m.last.Rank+1)
	}
	if m.last.Coins > 0 {
		line += fmt.Sprintf("  ·  +%d coins", m.last.Coins)
	}
	return line
}

func (m GameModel) statusLine() string {
	left := fmt.Sprintf(" %s  ◎ %d", m.store.PlayerName(), m.coins)
	right := "p pause  esc menu  q quit "
	gap := m.config.ScreenW - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		return m.styles.Muted().Render(left)
	}
	return m.styles.Muted().Render(left + fmt.Sprintf("%*s", gap, "") + right)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the player quits or leaves it.
func Run(game registry.Game, store *progress.Store, cfg core.RuntimeConfig, rec *session.Recorder) error {
	model := NewGameModel(game, store, cfg, rec)
	model.exitOnBack = true
	model.watch = watch(store, progress.TopicCoins, progress.TopicTheme)
	defer model.watch.stop()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
