package main

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Notice   lipgloss.Style
	Mono     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorHexTitle)),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#d1d5db")),
		Label: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#a855f7")),
		Row:      lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("#ec4899")).PaddingLeft(1),
		Button:   lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#a855f7")),
		Disabled: lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#9ca3af")),
		Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ec4899")),
		Mono:     lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
	}
}

const colorHexTitle = "#1f2937"

// Badge renders one number with its band colours.
func (t Theme) Badge(n int) string {
	b := BandOf(n)
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(b.Text)).
		Background(lipgloss.Color(b.Fill)).
		Render(formatNumbers([]int{n}, ""))
}
