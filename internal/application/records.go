package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/podium/internal/domain"
	"github.com/bnema/podium/internal/ports"
)

const (
	NotesRecordKey  = "podium.notes"
	PointsRecordKey = "podium.points"

	currentRecordVersion = 1
)

type notesRecord struct {
	Version int          `json:"version"`
	Notes   []noteRecord `json:"notes"`
}

type noteRecord struct {
	ID        string   `json:"id"`
	Round     string   `json:"round"`
	Motion    string   `json:"motion,omitempty"`
	Side      string   `json:"side,omitempty"`
	Arguments []string `json:"arguments,omitempty"`
	Rebuttals []string `json:"rebuttals,omitempty"`
	Feedback  string   `json:"feedback,omitempty"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type pointsRecord struct {
	Version int           `json:"version"`
	Entries []pointRecord `json:"entries"`
}

type pointRecord struct {
	ID         string  `json:"id"`
	Score      float64 `json:"score"`
	Round      string  `json:"round,omitempty"`
	Tournament string  `json:"tournament,omitempty"`
	RecordedAt string  `json:"recordedAt"`
}

// readRecord decodes the JSON record stored under key into out. It reports false when the key is absent.
func readRecord(ctx context.Context, store ports.KeyValueStore, key string, out any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}

	return true, nil
}

func writeRecord(ctx context.Context, store ports.KeyValueStore, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := store.Put(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	return nil
}

func checkVersion(key string, version int) error {
	if version > currentRecordVersion {
		return fmt.Errorf("unsupported %s version %d (current %d)", key, version, currentRecordVersion)
	}
	return nil
}

func toNoteRecord(note domain.RoundNote) noteRecord {
	return noteRecord{
		ID:        string(note.ID),
		Round:     note.Round,
		Motion:    note.Motion,
		Side:      string(note.Side),
		Arguments: note.Arguments,
		Rebuttals: note.Rebuttals,
		Feedback:  note.Feedback,
		CreatedAt: formatTime(note.CreatedAt),
		UpdatedAt: formatTime(note.UpdatedAt),
	}
}

func fromNoteRecord(record noteRecord) domain.RoundNote {
	return domain.RoundNote{
		ID:        domain.NoteID(record.ID),
		Round:     record.Round,
		Motion:    record.Motion,
		Side:      domain.Side(record.Side),
		Arguments: record.Arguments,
		Rebuttals: record.Rebuttals,
		Feedback:  record.Feedback,
		CreatedAt: parseTime(record.CreatedAt),
		UpdatedAt: parseTime(record.UpdatedAt),
	}
}

func toPointRecord(entry domain.PointEntry) pointRecord {
	return pointRecord{
		ID:         string(entry.ID),
		Score:      entry.Score,
		Round:      entry.Round,
		Tournament: entry.Tournament,
		RecordedAt: formatTime(entry.RecordedAt),
	}
}

func fromPointRecord(record pointRecord) domain.PointEntry {
	return domain.PointEntry{
		ID:         domain.PointID(record.ID),
		Score:      record.Score,
		Round:      record.Round,
		Tournament: record.Tournament,
		RecordedAt: parseTime(record.RecordedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
