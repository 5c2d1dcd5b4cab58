package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/progress"
	"github.com/vovakirdan/neon-arcade/internal/shop"
)

// shopTabs are the category tabs followed by the themes tab.
var shopTabs = append(append([]string{}, categoryNames()...), "Themes")

var categoryTitles = map[progress.Category]string{
	progress.CategoryCursor:    "Cursors",
	progress.CategoryNameColor: "Name Colors",
	progress.CategoryBadgeSlot: "Badge Slots",
	progress.CategoryBadge:     "Badges",
	progress.CategoryTitle:     "Titles",
}

func categoryNames() []string {
	names := make([]string, len(shop.Categories))
	for i, c := range shop.Categories {
		names[i] = categoryTitles[c]
	}
	return names
}

// shopNameWidth is the item name column width in display cells.
const shopNameWidth = 18

// ShopModel is the Bubble Tea model for the shop screen.
type ShopModel struct {
	store     *progress.Store
	shop      *shop.Shop
	styles    Styles
	tab       int
	cursor    int
	message   string
	failed    bool
	help      help.Model
	keys      ListKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewShopModel creates the shop screen.
func NewShopModel(store *progress.Store, styles Styles, width, height int) ShopModel {
	keys := DefaultListKeyMap()
	keys.short = []key.Binding{keys.Up, keys.Down, keys.Left, keys.Right, keys.Buy, keys.Equip, keys.Clear, keys.Back}

	return ShopModel{
		store:  store,
		shop:   shop.New(store),
		styles: styles,
		help:   help.New(),
		keys:   keys,
		width:  width,
		height: height,
	}
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

func (m ShopModel) onThemes() bool {
	return m.tab == len(shopTabs)-1
}

func (m ShopModel) items() []shop.Item {
	if m.onThemes() {
		return nil
	}
	return shop.ByCategory(shop.Categories[m.tab])
}

func (m ShopModel) rows() int {
	if m.onThemes() {
		return len(shop.Themes())
	}
	return len(m.items())
}

// Update handles messages for the shop screen.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case storeChangedMsg:
		if msg.Topic == progress.TopicTheme {
			m.styles = NewStyles(m.shop.ActiveTheme())
		}
	}

	return m, nil
}

func (m ShopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.rows()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		m.tab = (m.tab - 1 + len(shopTabs)) % len(shopTabs)
		m.cursor, m.message = 0, ""
	case key.Matches(msg, m.keys.Right):
		m.tab = (m.tab + 1) % len(shopTabs)
		m.cursor, m.message = 0, ""
	case key.Matches(msg, m.keys.Buy):
		m.buy()
	case key.Matches(msg, m.keys.Equip):
		m.equip()
	case key.Matches(msg, m.keys.Clear):
		m.unequip()
	}
	return m, nil
}

func (m *ShopModel) report(failed bool, format string, args ...any) {
	m.failed = failed
	m.message = fmt.Sprintf(format, args...)
}

// buy purchases the selected item, or unlocks and selects the selected theme.
func (m *ShopModel) buy() {
	if m.onThemes() {
		t := shop.Themes()[m.cursor]
		if !m.shop.ThemeUnlocked(t.Name) && !m.shop.UnlockTheme(t.Name) {
			m.report(true, "Need %d more coins for %s", m.shop.Shortfall(t.Cost), t.Title)
			return
		}
		if err := m.shop.SelectTheme(t.Name); err != nil {
			m.report(true, "%s", describeShopError(err))
			return
		}
		m.report(false, "Theme set to %s", t.Title)
		return
	}

	items := m.items()
	if len(items) == 0 {
		return
	}
	it := items[m.cursor]
	if m.shop.Owned(it) {
		m.report(false, "You already own %s", it.Name)
		return
	}
	if !m.shop.Purchase(it.ID, it.Price) {
		m.report(true, "Need %d more coins for %s", m.shop.Shortfall(it.Price), it.Name)
		return
	}
	m.report(false, "Bought %s for %d coins", it.Name, it.Price)
}

func (m *ShopModel) equip() {
	if m.onThemes() {
		t := shop.Themes()[m.cursor]
		if err := m.shop.SelectTheme(t.Name); err != nil {
			m.report(true, "%s", describeShopError(err))
			return
		}
		m.report(false, "Theme set to %s", t.Title)
		return
	}

	items := m.items()
	if len(items) == 0 {
		return
	}
	it := items[m.cursor]
	if err := m.shop.Equip(it.ID); err != nil {
		m.report(true, "%s", describeShopError(err))
		return
	}
	if it.Category == progress.CategoryBadge && !m.shop.Equipped(it) {
		m.report(false, "Removed %s", it.Name)
		return
	}
	m.report(false, "Equipped %s", it.Name)
}

func (m *ShopModel) unequip() {
	if m.onThemes() {
		return
	}
	switch c := shop.Categories[m.tab]; c {
	case progress.CategoryTitle:
		m.shop.UnequipTitle()
		m.report(false, "Title cleared")
	case progress.CategoryCursor, progress.CategoryNameColor:
		m.shop.EquipDefault(c)
		m.report(false, "Back to the default %s", strings.ToLower(categoryTitles[c]))
	}
}

// describeShopError turns shop sentinel errors into player-facing text.
func describeShopError(err error) string {
	switch {
	case errors.Is(err, shop.ErrNotOwned):
		return "Buy it first"
	case errors.Is(err, shop.ErrNoBadgeSlot):
		return "Every badge slot is in use"
	case errors.Is(err, shop.ErrNotEquipable):
		return "Badge slots are applied on purchase"
	case errors.Is(err, shop.ErrThemeLocked):
		return "Unlock this theme first"
	default:
		return err.Error()
	}
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := fmt.Sprintf("SHOP  ·  ◎ %d coins", m.store.Coins())
	b.WriteString(centerText(m.styles.Title().Render(title), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(shopTabs))
	for i, name := range shopTabs {
		if i == m.tab {
			tabs[i] = m.styles.Selected().Padding(0, 1).Render(name)
		} else {
			tabs[i] = m.styles.Muted().Render(" " + name + " ")
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	if m.onThemes() {
		b.WriteString(m.renderThemes())
	} else {
		b.WriteString(m.renderItems())
	}

	b.WriteString("\n")
	b.WriteString(m.renderLoadout())
	b.WriteString("\n")

	if m.message != "" {
		style := m.styles.Style(core.ColorBrightGreen)
		if m.failed {
			style = m.styles.Style(core.ColorBrightRed)
		}
		b.WriteString("  " + style.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted().Render(m.help.View(m.keys)))
	return b.String()
}

func (m ShopModel) renderItems() string {
	var b strings.Builder
	for i, it := range m.items() {
		var state string
		switch {
		case m.shop.Equipped(it):
			state = m.styles.Style(core.ColorBrightGreen).Render("equipped")
		case m.shop.Owned(it):
			state = m.styles.Style(core.ColorSecondary).Render("owned")
		default:
			state = m.styles.Style(core.ColorBrightYellow).Render(fmt.Sprintf("◎ %d", it.Price))
		}
		b.WriteString(m.row(i, it.Icon, it.Name, state, it.Description))
	}
	return b.String()
}

func (m ShopModel) renderThemes() string {
	active := m.shop.ActiveTheme().Name

	var b strings.Builder
	for i, t := range shop.Themes() {
		var state string
		switch {
		case t.Name == active:
			state = m.styles.Style(core.ColorBrightGreen).Render("active")
		case m.shop.ThemeUnlocked(t.Name):
			state = m.styles.Style(core.ColorSecondary).Render("unlocked")
		default:
			state = m.styles.Style(core.ColorBrightYellow).Render(fmt.Sprintf("◎ %d", t.Cost))
		}

		swatch := ""
		for _, hex := range []string{t.Palette.Primary, t.Palette.Secondary, t.Palette.Accent} {
			swatch += lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
		}
		b.WriteString(m.row(i, t.Icon, t.Title, state, swatch))
	}
	return b.String()
}

// row lays out one list line with emoji-aware column widths.
func (m ShopModel) row(i int, icon, name, state, detail string) string {
	label := runewidth.FillRight(icon, 3) + runewidth.FillRight(runewidth.Truncate(name, shopNameWidth, "…"), shopNameWidth)
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
		label = m.styles.Selected().Render(label)
	}
	stateCol := state + strings.Repeat(" ", max(1, 10-lipgloss.Width(state)))
	return cursor + label + "  " + stateCol + m.styles.Muted().Render(detail) + "\n"
}

func (m ShopModel) renderLoadout() string {
	l := m.shop.Loadout()

	title := l.Title
	if title == "" {
		title = "none"
	}
	badges := make([]string, 0, l.Slots)
	for _, it := range l.Badges {
		badges = append(badges, it.Icon)
	}
	for len(badges) < l.Slots {
		badges = append(badges, "·")
	}

	line := fmt.Sprintf("  cursor %s  ·  name %s  ·  title %s  ·  badges [%s]",
		l.Cursor, l.NameColor, title, strings.Join(badges, " "))
	return m.styles.Style(core.ColorText).Render(line)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ShopModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}
