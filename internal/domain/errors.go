package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrNoteNotFound   = errors.New("note not found")
	ErrPointNotFound  = errors.New("point entry not found")
	ErrInvalidNote    = errors.New("invalid note")
	ErrInvalidScore   = errors.New("invalid score")
)
