package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	pbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/progress"
)

// ListKeyMap holds the bindings shared by the list screens.
type ListKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Buy   key.Binding
	Equip key.Binding
	Clear key.Binding
	Back  key.Binding
	Quit  key.Binding

	short []key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ListKeyMap) ShortHelp() []key.Binding {
	return k.short
}

// FullHelp returns key bindings for the full help view.
func (k ListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.short}
}

// DefaultListKeyMap returns the list bindings with no help entries selected.
func DefaultListKeyMap() ListKeyMap {
	return ListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "prev tab"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "next tab"),
		),
		Buy: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "buy"),
		),
		Equip: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "equip"),
		),
		Clear: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unequip"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// achievementRowWidth is the title column width in display cells.
const achievementRowWidth = 22

// AchievementsModel lists the achievement catalog with unlock state.
type AchievementsModel struct {
	store     *progress.Store
	items     []progress.Achievement
	cursor    int
	styles    Styles
	bar       pbar.Model
	help      help.Model
	keys      ListKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewAchievementsModel creates the achievements screen.
func NewAchievementsModel(store *progress.Store, styles Styles, width, height int) AchievementsModel {
	keys := DefaultListKeyMap()
	keys.short = []key.Binding{keys.Up, keys.Down, keys.Back, keys.Quit}

	return AchievementsModel{
		store:  store,
		items:  store.Achievements(),
		styles: styles,
		bar: pbar.New(
			pbar.WithSolidFill(styles.Theme().Palette.Primary),
			pbar.WithWidth(16),
			pbar.WithoutPercentage(),
		),
		help:   help.New(),
		keys:   keys,
		width:  width,
		height: height,
	}
}

// Init initializes the achievements model.
func (m AchievementsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the achievements screen.
func (m AchievementsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
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
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case storeChangedMsg:
		if msg.Topic == progress.TopicAchievements {
			m.items = m.store.Achievements()
		}
	}

	return m, nil
}

// visibleRange returns the slice of rows that fits on screen around the cursor.
func (m AchievementsModel) visibleRange() (from, to int) {
	rows := max(3, m.height-8)
	if len(m.items) <= rows {
		return 0, len(m.items)
	}
	from = core.Clamp(m.cursor-rows/2, 0, len(m.items)-rows)
	return from, from + rows
}

// View renders the achievements list.
func (m AchievementsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	unlocked := 0
	for _, a := range m.items {
		if a.Unlocked {
			unlocked++
		}
	}

	var b strings.Builder
	title := fmt.Sprintf("ACHIEVEMENTS  %d/%d", unlocked, len(m.items))
	b.WriteString(centerText(m.styles.Title().Render(title), m.width))
	b.WriteString("\n\n")

	from, to := m.visibleRange()
	for i := from; i < to; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Style(core.ColorSecondary).Render("  " + m.items[m.cursor].Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted().Render(m.help.View(m.keys)))
	return b.String()
}

func (m AchievementsModel) renderRow(i int) string {
	a := m.items[i]

	icon := runewidth.FillRight(a.Icon, 2)
	name := runewidth.FillRight(runewidth.Truncate(a.Title, achievementRowWidth, "…"), achievementRowWidth)

	var status string
	switch {
	case a.Unlocked:
		status = m.styles.Style(core.ColorBrightGreen).Render("✓ " + a.UnlockedDate.Format("Jan 02 2006"))
	case a.HasProgress():
		pct := float64(a.Progress) / float64(a.MaxProgress)
		status = m.bar.ViewAs(pct) + m.styles.Muted().Render(fmt.Sprintf(" %d/%d", a.Progress, a.MaxProgress))
	default:
		status = m.styles.Muted().Render("locked")
	}

	cursor := "  "
	label := icon + " " + name
	if i == m.cursor {
		cursor = "> "
		label = m.styles.Selected().Render(label)
	} else if !a.Unlocked {
		label = m.styles.Muted().Render(label)
	}
	return cursor + label + "  " + status
}

// IsGoingBack returns true if user wants to go back to menu.
func (m AchievementsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m AchievementsModel) IsQuitting() bool {
	return m.quitting
}
