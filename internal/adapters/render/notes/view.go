package notes

import (
	"fmt"
	"strings"

	"github.com/bnema/podium/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const motionPreviewWidth = 48

// RenderList prints one summary row per note.
func RenderList(notes []domain.RoundNote) string {
	s := newStyles()
	lines := []string{
		s.title.Render("Round notes"),
		s.header.Render(fmt.Sprintf("notes: %d", len(notes))),
	}

	if len(notes) == 0 {
		lines = append(lines, s.empty.Render("No notes yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([]string, 0, len(notes))
	for _, note := range notes {
		rows = append(rows, listRow(note, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderNote prints every field of a single note.
func RenderNote(note domain.RoundNote) string {
	s := newStyles()

	head := strings.Join([]string{
		s.id.Render(fmt.Sprintf("#%s", note.ID)),
		s.round.Render(note.Round),
		sideStyle(note.Side, s).Render(note.Side.Label()),
	}, " ")

	blocks := []string{head}
	if motion := strings.TrimSpace(note.Motion); motion != "" {
		blocks = append(blocks, s.motion.Render(motion))
	}
	blocks = append(blocks,
		s.section.Render(bulletBlock("Arguments", note.Arguments, s)),
		s.section.Render(bulletBlock("Rebuttals", note.Rebuttals, s)),
	)
	if feedback := strings.TrimSpace(note.Feedback); feedback != "" {
		blocks = append(blocks, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, s.heading.Render("Feedback"), s.detail.Render(feedback))))
	}
	if !note.UpdatedAt.IsZero() {
		blocks = append(blocks, s.section.Render(s.header.Render("updated "+note.UpdatedAt.Format("02 Jan 2006 15:04"))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func listRow(note domain.RoundNote, s styles) string {
	parts := []string{
		s.id.Render(fmt.Sprintf("#%-3s", note.ID)),
		s.round.Render(note.Round),
		sideStyle(note.Side, s).Render(fmt.Sprintf("[%s]", note.Side.Label())),
		s.header.Render(fmt.Sprintf("args %d  reb %d", len(note.Arguments), len(note.Rebuttals))),
	}
	if motion := strings.TrimSpace(note.Motion); motion != "" {
		parts = append(parts, s.motion.Render(truncate(motion, motionPreviewWidth)))
	}

	return strings.Join(parts, " ")
}

func bulletBlock(title string, items []string, s styles) string {
	lines := []string{s.heading.Render(fmt.Sprintf("%s (%d)", title, len(items)))}
	if len(items) == 0 {
		lines = append(lines, s.empty.Render("none"))
	}
	for i, item := range items {
		lines = append(lines, s.bullet.Render(fmt.Sprintf("%d.", i+1))+" "+s.detail.Render(item))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sideStyle(side domain.Side, s styles) lipgloss.Style {
	switch side {
	case domain.SideGov:
		return s.gov
	case domain.SideOpp:
		return s.opp
	default:
		return s.header
	}
}

func truncate(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return string(runes[:width-1]) + "…"
}
