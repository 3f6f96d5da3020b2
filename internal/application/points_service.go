package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/podium/internal/domain"
	"github.com/bnema/podium/internal/ports"
)

type PointsService struct {
	store ports.KeyValueStore
	clock ports.Clock
}

func NewPointsService(store ports.KeyValueStore, clock ports.Clock) *PointsService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &PointsService{store: store, clock: clock}
}

func (s *PointsService) List(ctx context.Context) ([]domain.PointEntry, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Entries, nil
}

func (s *PointsService) Add(ctx context.Context, cmd AddPointCommand) (domain.PointEntry, error) {
	if err := domain.ValidateScore(cmd.Score); err != nil {
		return domain.PointEntry{}, err
	}

	doc, err := s.load(ctx)
	if err != nil {
		return domain.PointEntry{}, err
	}

	ids := make([]string, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		ids = append(ids, string(entry.ID))
	}

	entry := domain.PointEntry{
		ID:         domain.PointID(domain.NextNumericID(ids)),
		Score:      cmd.Score,
		Round:      strings.TrimSpace(cmd.Round),
		Tournament: strings.TrimSpace(cmd.Tournament),
		RecordedAt: s.clock.Now(),
	}
	doc.Entries = append(doc.Entries, entry)

	if err := s.save(ctx, doc); err != nil {
		return domain.PointEntry{}, err
	}

	return entry, nil
}

func (s *PointsService) Remove(ctx context.Context, id domain.PointID) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	i, ok := doc.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrPointNotFound, id)
	}

	doc.Entries = append(doc.Entries[:i], doc.Entries[i+1:]...)
	return s.save(ctx, doc)
}

func (s *PointsService) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, PointsRecordKey); err != nil {
		return fmt.Errorf("clear points: %w", err)
	}
	return nil
}

func (s *PointsService) Summary(ctx context.Context) (domain.PointsSummary, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return domain.PointsSummary{}, err
	}

	return domain.Summarize(doc.Entries), nil
}

func (s *PointsService) load(ctx context.Context) (domain.PointsDocument, error) {
	var record pointsRecord
	found, err := readRecord(ctx, s.store, PointsRecordKey, &record)
	if err != nil || !found {
		return domain.PointsDocument{}, err
	}
	if err := checkVersion(PointsRecordKey, record.Version); err != nil {
		return domain.PointsDocument{}, err
	}

	doc := domain.PointsDocument{Entries: make([]domain.PointEntry, 0, len(record.Entries))}
	for _, entry := range record.Entries {
		doc.Entries = append(doc.Entries, fromPointRecord(entry))
	}

	return doc, nil
}

func (s *PointsService) save(ctx context.Context, doc domain.PointsDocument) error {
	record := pointsRecord{Version: currentRecordVersion, Entries: make([]pointRecord, 0, len(doc.Entries))}
	for _, entry := range doc.Entries {
		record.Entries = append(record.Entries, toPointRecord(entry))
	}

	return writeRecord(ctx, s.store, PointsRecordKey, record)
}
