package points

import (
	"testing"
	"time"

	"github.com/bnema/podium/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries(now time.Time) []domain.PointEntry {
	return []domain.PointEntry{
		{ID: "1", Score: 74, Round: "R1", Tournament: "Oxford IV", RecordedAt: now.Add(-72 * time.Hour)},
		{ID: "2", Score: 75, Round: "R2", RecordedAt: now.Add(-48 * time.Hour)},
		{ID: "3", Score: 78.25, Tournament: "Oxford IV", RecordedAt: now.Add(-time.Hour)},
		{ID: "4", Score: 79.75, RecordedAt: now.Add(-30 * time.Minute)},
	}
}

func TestRenderEntriesAndSummary(t *testing.T) {
	now := time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC)
	entries := sampleEntries(now)

	output, err := Render(entries, domain.Summarize(entries), RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Speaker points")
	assert.Contains(t, output, "scores: 4")
	assert.Contains(t, output, "#1")
	assert.Contains(t, output, "R1 @ Oxford IV")
	assert.Contains(t, output, "78.25")
	assert.Contains(t, output, "04 Mar 2026")
	assert.Contains(t, output, "today 17:00")
	assert.Contains(t, output, "average 76.75")
	assert.Contains(t, output, "best 79.75")
	assert.Contains(t, output, "worst 74")
	assert.Contains(t, output, "↑ up (+4.50)")
}

func TestRenderSummaryOnlySkipsEntries(t *testing.T) {
	now := time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC)
	entries := sampleEntries(now)

	output, err := Render(entries, domain.Summarize(entries), RenderOptions{Now: now, SummaryOnly: true})

	require.NoError(t, err)
	assert.NotContains(t, output, "#1")
	assert.Contains(t, output, "latest 79.75")
}

func TestRenderEmpty(t *testing.T) {
	output, err := Render(nil, domain.Summarize(nil), RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "scores: 0")
	assert.Contains(t, output, "No scores recorded yet.")
	assert.NotContains(t, output, "trend")
}

func TestRenderSingleScoreHasNoTrend(t *testing.T) {
	entries := []domain.PointEntry{{ID: "1", Score: 70}}

	output, err := Render(entries, domain.Summarize(entries), RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "needs at least 2 scores")
}

func TestRenderScoreBar(t *testing.T) {
	s := newStyles()

	assert.Equal(t, 12, countRune(renderScoreBar(50, 24, s), '='))
	assert.Equal(t, 24, countRune(renderScoreBar(150, 24, s), '='))
	assert.Equal(t, 0, countRune(renderScoreBar(-5, 24, s), '='))
	assert.Empty(t, renderScoreBar(50, 0, s))
}

func TestInterpolateColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("240"), interpolateColor(0, 0, 100))
	assert.Equal(t, lipgloss.Color("255"), interpolateColor(100, 0, 100))
	assert.Equal(t, lipgloss.Color("255"), interpolateColor(500, 0, 100))
	assert.Equal(t, lipgloss.Color("255"), interpolateColor(5, 5, 5))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "75", formatScore(75))
	assert.Equal(t, "75.25", formatScore(75.25))
}

func countRune(s string, r rune) int {
	count := 0
	for _, c := range s {
		if c == r {
			count++
		}
	}
	return count
}
