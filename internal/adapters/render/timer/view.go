package timer

import (
	"fmt"
	"strings"

	"github.com/bnema/podium/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderView(s domain.TimerSnapshot, bar string, footer string, st styles) string {
	clockStyle := st.clock[s.Urgency()]

	lines := []string{
		st.title.Render("Speech timer"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, clockStyle.Render(s.Clock()), " ", st.status.Render(s.Status())),
		bar,
		st.detail.Render(fmt.Sprintf("total %s  ·  sound %s", domain.FormatClock(s.TotalSeconds), onOff(s.SoundEnabled))),
		renderPresets(s.TotalSeconds, st),
	}

	body := st.frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	if footer == "" {
		return body
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func renderPresets(total int, st styles) string {
	parts := make([]string, 0, len(domain.Presets))
	for i, preset := range domain.Presets {
		label := fmt.Sprintf("%d:%dm", i+1, preset/60)
		if preset == total {
			parts = append(parts, st.selected.Render(label))
			continue
		}
		parts = append(parts, st.presets.Render(label))
	}
	return strings.Join(parts, " ")
}

// PlainLine is the unstyled single-line form used when no terminal UI is attached.
func PlainLine(s domain.TimerSnapshot) string {
	line := fmt.Sprintf("%s  %-7s  %3.0f%%", s.Clock(), s.Status(), s.Progress()*100)
	if s.Urgency() != domain.UrgencyNormal {
		line += fmt.Sprintf("  [%s]", s.Urgency())
	}
	return line
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
