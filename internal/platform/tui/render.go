package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/shop"
)

// baseStyles maps the fixed core colors to lipgloss styles.
var baseStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Styles resolves cell colors for one theme. Role colors come from the
// theme palette; everything else uses the fixed ANSI table.
type Styles struct {
	theme  shop.Theme
	colors map[core.Color]lipgloss.Style
}

// NewStyles builds the style table for theme.
func NewStyles(theme shop.Theme) Styles {
	colors := make(map[core.Color]lipgloss.Style, len(baseStyles)+4)
	for c, st := range baseStyles {
		colors[c] = st
	}
	p := theme.Palette
	colors[core.ColorPrimary] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Primary)).Bold(true)
	colors[core.ColorSecondary] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Secondary))
	colors[core.ColorAccent] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true)
	colors[core.ColorText] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text))

	return Styles{theme: theme, colors: colors}
}

// Theme returns the theme these styles were built from.
func (st Styles) Theme() shop.Theme {
	return st.theme
}

// Style returns the style for c, falling back to the default style.
func (st Styles) Style(c core.Color) lipgloss.Style {
	if s, ok := st.colors[c]; ok {
		return s
	}
	return st.colors[core.ColorDefault]
}

// Title is the style used for screen headings.
func (st Styles) Title() lipgloss.Style {
	return st.Style(core.ColorAccent).MarginBottom(1)
}

// Selected is the style for the highlighted row of a list.
func (st Styles) Selected() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.theme.Palette.Background)).
		Background(lipgloss.Color(st.theme.Palette.Primary)).
		Bold(true)
}

// Muted is the style for help lines and secondary text.
func (st Styles) Muted() lipgloss.Style {
	return st.Style(core.ColorGray)
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (st Styles) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(st.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
