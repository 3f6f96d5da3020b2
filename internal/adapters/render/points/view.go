package points

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/podium/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

type RenderOptions struct {
	Now         time.Time
	SummaryOnly bool
}

func renderView(entries []domain.PointEntry, summary domain.PointsSummary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Speaker points"),
		s.header.Render(fmt.Sprintf("scores: %d", summary.Count)),
	}

	if summary.Count == 0 {
		lines = append(lines, s.empty.Render("No scores recorded yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if !opts.SummaryOnly {
		rows := make([]string, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, entryLine(entry, opts, s))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	}

	lines = append(lines, s.section.Render(summaryBlock(summary, s)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func entryLine(entry domain.PointEntry, opts RenderOptions, s styles) string {
	scoreStyle := lipgloss.NewStyle().Foreground(interpolateColor(entry.Score, domain.MinScore, domain.MaxScore))

	parts := []string{
		s.id.Render(fmt.Sprintf("#%-3s", entry.ID)),
		renderScoreBar(entry.Score, barWidth, s),
		scoreStyle.Render(formatScore(entry.Score)),
	}
	if label := entryLabel(entry); label != "" {
		parts = append(parts, s.detail.Render(label))
	}
	if !entry.RecordedAt.IsZero() {
		parts = append(parts, s.header.Render(fmt.Sprintf("(%s)", formatRecordedAt(entry.RecordedAt, opts.Now))))
	}

	return strings.Join(parts, " ")
}

func summaryBlock(summary domain.PointsSummary, s styles) string {
	stats := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render("average "), s.detail.Render(formatScore(summary.Average)),
		s.label.Render("  best "), s.detail.Render(formatScore(summary.Best)),
		s.label.Render("  worst "), s.detail.Render(formatScore(summary.Worst)),
		s.label.Render("  latest "), s.detail.Render(formatScore(summary.Latest)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, stats, trendLine(summary, s))
}

func trendLine(summary domain.PointsSummary, s styles) string {
	if !summary.HasTrend {
		return s.label.Render("trend: ") + s.empty.Render("needs at least 2 scores")
	}

	text := fmt.Sprintf("%s %s (%+.2f)", summary.Trend.Arrow(), summary.Trend, summary.TrendDelta)
	style := s.flat
	switch summary.Trend {
	case domain.TrendUp:
		style = s.up
	case domain.TrendDown:
		style = s.down
	}

	return s.label.Render("trend: ") + style.Render(text)
}

func entryLabel(entry domain.PointEntry) string {
	round := strings.TrimSpace(entry.Round)
	tournament := strings.TrimSpace(entry.Tournament)
	switch {
	case round != "" && tournament != "":
		return fmt.Sprintf("%s @ %s", round, tournament)
	case round != "":
		return round
	default:
		return tournament
	}
}

func renderScoreBar(score float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := clampScore(score) / domain.MaxScore
	filled := int(math.Round(float64(width) * fraction))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampScore(v float64) float64 {
	if v < domain.MinScore {
		return domain.MinScore
	}
	if v > domain.MaxScore {
		return domain.MaxScore
	}
	return v
}

// formatScore drops the fraction for whole scores.
func formatScore(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func formatRecordedAt(at, now time.Time) string {
	if now.IsZero() {
		return at.Format("02 Jan 2006")
	}

	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := at.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return "today " + at.Format("15:04")
	}

	return at.Format("02 Jan 2006")
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI greyscale ramp, 240 at min up to 255 at max.
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
