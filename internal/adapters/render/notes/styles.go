package notes

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	id      lipgloss.Style
	round   lipgloss.Style
	motion  lipgloss.Style
	gov     lipgloss.Style
	opp     lipgloss.Style
	heading lipgloss.Style
	bullet  lipgloss.Style
	detail  lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		id:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		round:   lipgloss.NewStyle().Bold(true),
		motion:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252")),
		gov:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		opp:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Underline(true),
		bullet:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
