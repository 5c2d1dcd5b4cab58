package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/progress"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/session"
)

// View identifies one screen of the arcade.
type View int

const (
	ViewMenu View = iota
	ViewGame
	ViewScoreboard
	ViewAchievements
	ViewShop
)

// difficulties is the cycle order for the menu's difficulty selector.
var difficulties = []string{core.DifficultyEasy, core.DifficultyNormal, core.DifficultyHard}

// MenuItem is one selectable entry: a game or a progression screen.
type MenuItem struct {
	View        View
	GameID      string
	Title       string
	Description string
}

// HasDifficulty reports whether the item is a game with difficulty presets.
func (it MenuItem) HasDifficulty() bool {
	return it.View == ViewGame && it.GameID != session.TicTacToe
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	width      int
	height     int
	store      *progress.Store
	styles     Styles
	keys       *KeyMapper
	fallback   string
	difficulty map[string]string
	selected   *MenuItem
	quitting   bool
}

// NewMenuModel creates a new menu model. fallback is the difficulty used
// for games without a remembered preference.
func NewMenuModel(store *progress.Store, styles Styles, fallback string, width, height int) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+3)
	for _, g := range games {
		items = append(items, MenuItem{
			View:        ViewGame,
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		})
	}
	items = append(items,
		MenuItem{View: ViewScoreboard, Title: "High Scores", Description: "Top ten of every cabinet"},
		MenuItem{View: ViewAchievements, Title: "Achievements", Description: "Trophies and progress"},
		MenuItem{View: ViewShop, Title: "Shop", Description: "Spend coins on cosmetics and themes"},
	)

	m := MenuModel{
		items:      items,
		width:      width,
		height:     height,
		store:      store,
		styles:     styles,
		keys:       NewKeyMapper(),
		fallback:   core.RuntimeConfig{Difficulty: fallback}.Level(),
		difficulty: make(map[string]string),
	}
	for _, it := range items {
		if !it.HasDifficulty() {
			continue
		}
		if p, ok := store.Preferences(it.GameID); ok && p.Difficulty != "" {
			m.difficulty[it.GameID] = core.RuntimeConfig{Difficulty: p.Difficulty}.Level()
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycleDifficulty(-1)

	case MenuActionRight:
		m.cycleDifficulty(1)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		for _, it := range m.items {
			if it.View == ViewScoreboard {
				selected := it
				m.selected = &selected
			}
		}
	}

	return m, nil
}

// cycleDifficulty moves the selected game's difficulty and remembers it.
func (m *MenuModel) cycleDifficulty(delta int) {
	if len(m.items) == 0 {
		return
	}
	it := m.items[m.cursor]
	if !it.HasDifficulty() {
		return
	}

	cur := m.Difficulty(it.GameID)
	idx := 1
	for i, d := range difficulties {
		if d == cur {
			idx = i
		}
	}
	idx = (idx + delta + len(difficulties)) % len(difficulties)
	m.difficulty[it.GameID] = difficulties[idx]
	m.store.SetPreferences(it.GameID, progress.Preferences{Difficulty: difficulties[idx]})
}

// Difficulty returns the difficulty the menu would launch game with.
func (m MenuModel) Difficulty(game string) string {
	if d, ok := m.difficulty[game]; ok {
		return d
	}
	return m.fallback
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Style(core.ColorPrimary).Render("N E O N   A R C A D E"), m.width))
	b.WriteString("\n\n")

	profile := fmt.Sprintf("%s  ·  ◎ %d coins  ·  %d/%d achievements",
		m.store.PlayerName(), m.store.Coins(), m.store.UnlockedCount(), len(progress.Catalog()))
	b.WriteString(centerText(m.styles.Style(core.ColorText).Render(profile), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		label := item.Title
		if item.HasDifficulty() {
			label = fmt.Sprintf("%-14s ‹ %-6s ›", item.Title, m.Difficulty(item.GameID))
		} else if item.View == ViewGame {
			label = fmt.Sprintf("%-14s", item.Title)
		}
		if i == len(m.items)-3 {
			b.WriteString("\n")
		}

		line := "  " + label + "  "
		if i == m.cursor {
			line = m.styles.Selected().Render("> " + label + "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		desc := m.styles.Style(core.ColorSecondary).Render(m.items[m.cursor].Description)
		b.WriteString(centerText(desc, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "↑/↓ navigate  ←/→ difficulty  enter select  tab scores  q quit"
	b.WriteString(centerText(m.styles.Muted().Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers a possibly styled line within width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
