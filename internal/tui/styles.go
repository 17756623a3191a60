// Package tui runs the storefront in a terminal: a bubbletea program that
// binds keys and mouse clicks to the storefront controller and draws its
// screen state with lipgloss.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#4F46E5")
	colorAccent  = lipgloss.Color("#059669")
	colorMuted   = lipgloss.Color("#6B7280")
	colorBorder  = lipgloss.Color("#D1D5DB")
	colorDanger  = lipgloss.Color("#DC2626")
	colorOnColor = lipgloss.Color("#FFFFFF")
)

type Styles struct {
	Title     lipgloss.Style
	Badge     lipgloss.Style
	Notice    lipgloss.Style
	Banner    lipgloss.Style
	Card      lipgloss.Style
	CardFocus lipgloss.Style
	Name      lipgloss.Style
	Muted     lipgloss.Style
	Price     lipgloss.Style
	Action    lipgloss.Style
	Modal     lipgloss.Style
	Label     lipgloss.Style
	Help      lipgloss.Style
}

func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(cardWidth)

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Badge:     lipgloss.NewStyle().Bold(true).Foreground(colorOnColor).Background(colorPrimary).Padding(0, 1),
		Notice:    lipgloss.NewStyle().Bold(true).Foreground(colorOnColor).Background(colorAccent).Padding(0, 2),
		Banner:    lipgloss.NewStyle().Foreground(colorOnColor).Background(colorDanger).Padding(0, 1),
		Card:      card,
		CardFocus: card.BorderForeground(colorPrimary),
		Name:      lipgloss.NewStyle().Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(colorMuted),
		Price:     lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Action:    lipgloss.NewStyle().Foreground(colorAccent),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 3).
			Width(modalWidth),
		Label: lipgloss.NewStyle().Foreground(colorMuted),
		Help:  lipgloss.NewStyle().Foreground(colorMuted),
	}
}
