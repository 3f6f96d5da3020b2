package domain

import (
	"fmt"
	"strings"
	"time"
)

type Side string

const (
	SideNone Side = ""
	SideGov  Side = "gov"
	SideOpp  Side = "opp"
)

func ParseSide(raw string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return SideNone, nil
	case "gov", "government", "prop", "proposition", "aff", "affirmative":
		return SideGov, nil
	case "opp", "opposition", "neg", "negative":
		return SideOpp, nil
	default:
		return SideNone, fmt.Errorf("%w: unsupported side %q", ErrInvalidNote, raw)
	}
}

func (s Side) Label() string {
	switch s {
	case SideGov:
		return "Government"
	case SideOpp:
		return "Opposition"
	default:
		return "-"
	}
}

type NoteID string

type RoundNote struct {
	ID        NoteID
	Round     string
	Motion    string
	Side      Side
	Arguments []string
	Rebuttals []string
	Feedback  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n RoundNote) Validate() error {
	if strings.TrimSpace(string(n.ID)) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidNote)
	}
	if strings.TrimSpace(n.Round) == "" {
		return fmt.Errorf("%w: round is required", ErrInvalidNote)
	}
	switch n.Side {
	case SideNone, SideGov, SideOpp:
	default:
		return fmt.Errorf("%w: unsupported side %q", ErrInvalidNote, n.Side)
	}

	return nil
}

// CompactLines trims entries and drops the empty ones. It returns nil when nothing is left.
func CompactLines(lines []string) []string {
	var result []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}
	return result
}

type NotesDocument struct {
	Notes []RoundNote
}

func (d NotesDocument) Find(id NoteID) (int, bool) {
	for i := range d.Notes {
		if d.Notes[i].ID == id {
			return i, true
		}
	}
	return -1, false
}
