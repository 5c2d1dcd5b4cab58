package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/progress"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/session"
	"github.com/vovakirdan/neon-arcade/internal/shop"
)

// AppConfig wires an App to its progression store.
type AppConfig struct {
	Store *progress.Store
	// History feeds the scoreboard's play statistics. Optional.
	History StatsSource
	// Runtime carries screen size, tick rate and seed. Its Difficulty is
	// used for games without a remembered preference.
	Runtime core.RuntimeConfig
	// Session options applied to every game's recorder.
	Session []session.Option
	Logger  *log.Logger
}

// App is the full arcade session: menu, games and progression screens.
// It is the top-level model for `arcade menu` and for every SSH session.
type App struct {
	cfg    AppConfig
	view   View
	styles Styles
	width  int
	height int
	konami *core.KonamiDetector
	watch  *watcher
	gen    int
	notice string
	logger *log.Logger

	menu         MenuModel
	game         *GameModel
	scoreboard   ScoreboardModel
	achievements AchievementsModel
	shopView     ShopModel
	quitting     bool
}

// NewApp creates an App showing the menu.
func NewApp(cfg AppConfig) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Runtime.TickRate <= 0 {
		cfg.Runtime.TickRate = 60
	}

	a := &App{
		cfg:    cfg,
		styles: NewStyles(shop.New(cfg.Store).ActiveTheme()),
		width:  cfg.Runtime.ScreenW,
		height: cfg.Runtime.ScreenH,
		konami: &core.KonamiDetector{},
		logger: logger,
	}
	a.watch = watch(cfg.Store,
		progress.TopicCoins, progress.TopicTheme, progress.TopicAchievements, progress.TopicProfile)
	a.menu = a.newMenu()
	return a
}

func (a *App) newMenu() MenuModel {
	return NewMenuModel(a.cfg.Store, a.styles, a.cfg.Runtime.Difficulty, a.width, a.height)
}

// Close releases the store observers. The App must not be used afterwards.
func (a *App) Close() {
	a.watch.stop()
}

// Init waits for store changes.
func (a *App) Init() tea.Cmd {
	return a.watch.next()
}

// Update routes messages to the active screen.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.cfg.Runtime.ScreenW, a.cfg.Runtime.ScreenH = msg.Width, msg.Height

	case storeChangedMsg:
		if msg.Topic == progress.TopicTheme {
			a.styles = NewStyles(shop.New(a.cfg.Store).ActiveTheme())
			a.menu.styles = a.styles
		}
		cmd := a.forward(msg)
		return a, tea.Batch(cmd, a.watch.next())

	case tea.KeyMsg:
		if a.view != ViewGame && a.konami.Feed(msg.String()) {
			rec := session.New("", a.cfg.Store, a.cfg.Session...)
			if rep := rec.Konami(); len(rep.Unlocked) > 0 {
				a.notice = "★ Achievement unlocked: " + rep.Unlocked[0].Title
			}
		}
	}

	return a, a.forward(msg)
}

// forward hands msg to the active screen and follows its exit flags.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	switch a.view {
	case ViewGame:
		next, cmd := a.game.Update(msg)
		gm := next.(GameModel)
		a.game = &gm
		switch {
		case gm.IsQuitting():
			return a.quit()
		case gm.BackToMenu():
			a.game = nil
			a.show(ViewMenu)
			return nil
		}
		return cmd

	case ViewScoreboard:
		next, cmd := a.scoreboard.Update(msg)
		a.scoreboard = next.(ScoreboardModel)
		return a.afterScreen(a.scoreboard.IsQuitting(), a.scoreboard.IsGoingBack(), cmd)

	case ViewAchievements:
		next, cmd := a.achievements.Update(msg)
		a.achievements = next.(AchievementsModel)
		return a.afterScreen(a.achievements.IsQuitting(), a.achievements.IsGoingBack(), cmd)

	case ViewShop:
		next, cmd := a.shopView.Update(msg)
		a.shopView = next.(ShopModel)
		return a.afterScreen(a.shopView.IsQuitting(), a.shopView.IsGoingBack(), cmd)
	}

	next, cmd := a.menu.Update(msg)
	a.menu = next.(MenuModel)
	if a.menu.IsQuitting() {
		return a.quit()
	}
	if sel := a.menu.Selected(); sel != nil {
		a.menu.selected = nil
		a.notice = ""
		return a.open(*sel)
	}
	return cmd
}

func (a *App) afterScreen(quitting, back bool, cmd tea.Cmd) tea.Cmd {
	switch {
	case quitting:
		return a.quit()
	case back:
		a.show(ViewMenu)
		return nil
	}
	return cmd
}

// open switches to the screen a menu item points at.
func (a *App) open(item MenuItem) tea.Cmd {
	switch item.View {
	case ViewGame:
		game, err := registry.Create(item.GameID)
		if err != nil {
			a.logger.Error("cannot create game", "game", item.GameID, "error", err)
			return nil
		}
		rt := a.cfg.Runtime
		rt.Difficulty = a.menu.Difficulty(item.GameID)
		rt.Seed = time.Now().UnixNano()

		rec := session.New(item.GameID, a.cfg.Store, a.cfg.Session...)
		gm := NewGameModel(game, a.cfg.Store, rt, rec)
		a.gen++
		gm.gen = a.gen
		a.game = &gm
		a.view = ViewGame
		a.logger.Debug("game opened", "game", item.GameID, "difficulty", rt.Difficulty)
		return gm.Init()

	default:
		a.show(item.View)
		return nil
	}
}

// show switches to a non-game screen, rebuilding it from the store.
func (a *App) show(v View) {
	a.view = v
	switch v {
	case ViewMenu:
		cursor := a.menu.cursor
		a.menu = a.newMenu()
		a.menu.cursor = cursor
	case ViewScoreboard:
		a.scoreboard = NewScoreboardModel(a.cfg.Store, a.cfg.History, a.styles, a.width, a.height)
	case ViewAchievements:
		a.achievements = NewAchievementsModel(a.cfg.Store, a.styles, a.width, a.height)
	case ViewShop:
		a.shopView = NewShopModel(a.cfg.Store, a.styles, a.width, a.height)
	}
}

func (a *App) quit() tea.Cmd {
	a.quitting = true
	a.watch.stop()
	return tea.Quit
}

// View renders the active screen.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	switch a.view {
	case ViewGame:
		return a.game.View()
	case ViewScoreboard:
		return a.scoreboard.View()
	case ViewAchievements:
		return a.achievements.View()
	case ViewShop:
		return a.shopView.View()
	}

	out := a.menu.View()
	if a.notice != "" {
		out += "\n" + centerText(a.styles.Style(core.ColorBrightYellow).Render(a.notice), a.width)
	}
	return out
}

// CurrentView reports which screen is showing.
func (a *App) CurrentView() View {
	return a.view
}

// RunApp runs the arcade menu until the player quits.
func RunApp(cfg AppConfig) error {
	app := NewApp(cfg)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
