package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/podium/internal/domain"
	"github.com/bnema/podium/internal/ports"
)

type NotesService struct {
	store ports.KeyValueStore
	clock ports.Clock
}

func NewNotesService(store ports.KeyValueStore, clock ports.Clock) *NotesService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &NotesService{store: store, clock: clock}
}

func (s *NotesService) List(ctx context.Context) ([]domain.RoundNote, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Notes, nil
}

func (s *NotesService) Get(ctx context.Context, id domain.NoteID) (domain.RoundNote, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return domain.RoundNote{}, err
	}

	i, ok := doc.Find(id)
	if !ok {
		return domain.RoundNote{}, fmt.Errorf("%w: %s", domain.ErrNoteNotFound, id)
	}

	return doc.Notes[i], nil
}

func (s *NotesService) Add(ctx context.Context, cmd AddNoteCommand) (domain.RoundNote, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return domain.RoundNote{}, err
	}

	ids := make([]string, 0, len(doc.Notes))
	for _, note := range doc.Notes {
		ids = append(ids, string(note.ID))
	}

	now := s.clock.Now()
	note := domain.RoundNote{
		ID:        domain.NoteID(domain.NextNumericID(ids)),
		Round:     strings.TrimSpace(cmd.Round),
		Motion:    strings.TrimSpace(cmd.Motion),
		Side:      cmd.Side,
		Arguments: domain.CompactLines(cmd.Arguments),
		Rebuttals: domain.CompactLines(cmd.Rebuttals),
		Feedback:  strings.TrimSpace(cmd.Feedback),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := note.Validate(); err != nil {
		return domain.RoundNote{}, err
	}

	doc.Notes = append(doc.Notes, note)
	if err := s.save(ctx, doc); err != nil {
		return domain.RoundNote{}, err
	}

	return note, nil
}

func (s *NotesService) Update(ctx context.Context, cmd UpdateNoteCommand) (domain.RoundNote, error) {
	return s.mutate(ctx, cmd.ID, func(note *domain.RoundNote) {
		if cmd.Round != nil {
			note.Round = strings.TrimSpace(*cmd.Round)
		}
		if cmd.Motion != nil {
			note.Motion = strings.TrimSpace(*cmd.Motion)
		}
		if cmd.Side != nil {
			note.Side = *cmd.Side
		}
		if cmd.Arguments != nil {
			note.Arguments = domain.CompactLines(cmd.Arguments)
		}
		if cmd.Rebuttals != nil {
			note.Rebuttals = domain.CompactLines(cmd.Rebuttals)
		}
		if cmd.Feedback != nil {
			note.Feedback = strings.TrimSpace(*cmd.Feedback)
		}
	})
}

func (s *NotesService) AppendArgument(ctx context.Context, id domain.NoteID, argument string) (domain.RoundNote, error) {
	return s.mutate(ctx, id, func(note *domain.RoundNote) {
		note.Arguments = domain.CompactLines(append(note.Arguments, argument))
	})
}

func (s *NotesService) AppendRebuttal(ctx context.Context, id domain.NoteID, rebuttal string) (domain.RoundNote, error) {
	return s.mutate(ctx, id, func(note *domain.RoundNote) {
		note.Rebuttals = domain.CompactLines(append(note.Rebuttals, rebuttal))
	})
}

func (s *NotesService) Delete(ctx context.Context, id domain.NoteID) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	i, ok := doc.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNoteNotFound, id)
	}

	doc.Notes = append(doc.Notes[:i], doc.Notes[i+1:]...)
	return s.save(ctx, doc)
}

func (s *NotesService) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, NotesRecordKey); err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}
	return nil
}

func (s *NotesService) mutate(ctx context.Context, id domain.NoteID, apply func(*domain.RoundNote)) (domain.RoundNote, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return domain.RoundNote{}, err
	}

	i, ok := doc.Find(id)
	if !ok {
		return domain.RoundNote{}, fmt.Errorf("%w: %s", domain.ErrNoteNotFound, id)
	}

	note := doc.Notes[i]
	apply(&note)
	note.UpdatedAt = s.clock.Now()
	if err := note.Validate(); err != nil {
		return domain.RoundNote{}, err
	}

	doc.Notes[i] = note
	if err := s.save(ctx, doc); err != nil {
		return domain.RoundNote{}, err
	}

	return note, nil
}

func (s *NotesService) load(ctx context.Context) (domain.NotesDocument, error) {
	var record notesRecord
	found, err := readRecord(ctx, s.store, NotesRecordKey, &record)
	if err != nil || !found {
		return domain.NotesDocument{}, err
	}
	if err := checkVersion(NotesRecordKey, record.Version); err != nil {
		return domain.NotesDocument{}, err
	}

	doc := domain.NotesDocument{Notes: make([]domain.RoundNote, 0, len(record.Notes))}
	for _, entry := range record.Notes {
		doc.Notes = append(doc.Notes, fromNoteRecord(entry))
	}

	return doc, nil
}

func (s *NotesService) save(ctx context.Context, doc domain.NotesDocument) error {
	record := notesRecord{Version: currentRecordVersion, Notes: make([]noteRecord, 0, len(doc.Notes))}
	for _, note := range doc.Notes {
		record.Notes = append(record.Notes, toNoteRecord(note))
	}

	return writeRecord(ctx, s.store, NotesRecordKey, record)
}
