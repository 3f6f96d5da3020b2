package beep

import (
	"fmt"
	"time"

	"github.com/bnema/podium/internal/domain"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond
)

// toneStreamer renders tone as a sine wave with a short attack/release so it does not click.
func toneStreamer(sr beep.SampleRate, tone domain.Tone) (beep.Streamer, error) {
	if tone.Duration <= 0 || tone.FrequencyHz <= 0 {
		return nil, fmt.Errorf("%w: %.0fHz for %s", ErrInvalidTone, tone.FrequencyHz, tone.Duration)
	}

	sine, err := generators.SineTone(sr, tone.FrequencyHz)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTone, err)
	}

	shaped := newEnvelope(beep.Take(sr.N(tone.Duration), sine), tone.Duration, sr)
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: toneVolume}, nil
}

type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration time.Duration, sr beep.SampleRate) *envelope {
	total := sr.N(duration)
	att := min(sr.N(attack), total/2)
	rel := min(sr.N(release), total-att)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attackSamples:
			vol = float64(e.position) / float64(e.attackSamples)
		case e.position >= releaseStart && e.releaseSamples > 0:
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		if vol < 0 {
			vol = 0
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
