package application

import "github.com/bnema/podium/internal/domain"

type AddNoteCommand struct {
	Round     string
	Motion    string
	Side      domain.Side
	Arguments []string
	Rebuttals []string
	Feedback  string
}

// UpdateNoteCommand patches a note; nil fields are left unchanged.
type UpdateNoteCommand struct {
	ID        domain.NoteID
	Round     *string
	Motion    *string
	Side      *domain.Side
	Arguments []string
	Rebuttals []string
	Feedback  *string
}

type AddPointCommand struct {
	Score      float64
	Round      string
	Tournament string
}
