package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	MinScore = 0
	MaxScore = 100

	trendWindow    = 3
	trendThreshold = 0.25
)

type PointID string

type PointEntry struct {
	ID         PointID
	Score      float64
	Round      string
	Tournament string
	RecordedAt time.Time
}

func ValidateScore(score float64) error {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return fmt.Errorf("%w: score must be a number", ErrInvalidScore)
	}
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("%w: %.2f outside [%d, %d]", ErrInvalidScore, score, MinScore, MaxScore)
	}
	return nil
}

type PointsDocument struct {
	Entries []PointEntry
}

func (d PointsDocument) Find(id PointID) (int, bool) {
	for i := range d.Entries {
		if d.Entries[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

func (t Trend) Arrow() string {
	switch t {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	default:
		return "→"
	}
}

type PointsSummary struct {
	Count      int
	Average    float64
	Best       float64
	Worst      float64
	Latest     float64
	Trend      Trend
	TrendDelta float64
	HasTrend   bool
}

func Summarize(entries []PointEntry) PointsSummary {
	summary := PointsSummary{Count: len(entries), Trend: TrendFlat}
	if len(entries) == 0 {
		return summary
	}

	scores := make([]float64, len(entries))
	for i, entry := range entries {
		scores[i] = entry.Score
	}

	summary.Best = scores[0]
	summary.Worst = scores[0]
	for _, score := range scores {
		summary.Best = math.Max(summary.Best, score)
		summary.Worst = math.Min(summary.Worst, score)
	}
	summary.Average = mean(scores)
	summary.Latest = scores[len(scores)-1]

	window := min(trendWindow, len(scores)/2)
	if window == 0 {
		return summary
	}

	n := len(scores)
	recent := mean(scores[n-window:])
	previous := mean(scores[n-2*window : n-window])
	summary.HasTrend = true
	summary.TrendDelta = recent - previous
	switch {
	case summary.TrendDelta > trendThreshold:
		summary.Trend = TrendUp
	case summary.TrendDelta < -trendThreshold:
		summary.Trend = TrendDown
	}

	return summary
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
