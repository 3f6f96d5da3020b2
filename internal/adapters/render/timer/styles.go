package timer

import (
	"github.com/bnema/podium/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	clock    map[domain.Urgency]lipgloss.Style
	status   lipgloss.Style
	detail   lipgloss.Style
	muted    lipgloss.Style
	presets  lipgloss.Style
	selected lipgloss.Style
	frame    lipgloss.Style
}

func urgencyColor(u domain.Urgency) lipgloss.Color {
	switch u {
	case domain.UrgencyCritical:
		return lipgloss.Color("203")
	case domain.UrgencyWarning:
		return lipgloss.Color("214")
	default:
		return lipgloss.Color("42")
	}
}

func newStyles() styles {
	clock := map[domain.Urgency]lipgloss.Style{}
	for _, u := range []domain.Urgency{domain.UrgencyNormal, domain.UrgencyWarning, domain.UrgencyCritical} {
		clock[u] = lipgloss.NewStyle().Bold(true).Foreground(urgencyColor(u)).Padding(0, 1)
	}

	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		clock:    clock,
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		muted:    lipgloss.NewStyle().Faint(true),
		presets:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 2),
	}
}
