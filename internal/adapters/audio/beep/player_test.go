package beep

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/bnema/podium/internal/domain"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOutput struct {
	initErr   error
	resumeErr error
	inits     int
	resumes   int
	closed    int
	played    []beep.Streamer
}

func (o *fakeOutput) Init(beep.SampleRate, int) error {
	o.inits++
	return o.initErr
}

func (o *fakeOutput) Play(s ...beep.Streamer) { o.played = append(o.played, s...) }

func (o *fakeOutput) Resume() error {
	o.resumes++
	return o.resumeErr
}

func (o *fakeOutput) Close() { o.closed++ }

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()

	var all [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			return all
		}
	}
}

func TestPlayerInitializesOnceAndPlays(t *testing.T) {
	out := &fakeOutput{}
	player := &Player{out: out}

	require.NoError(t, player.Play(domain.CueThirtySeconds.Tone()))
	require.NoError(t, player.Play(domain.CueCompletion.Tone()))

	assert.Equal(t, 1, out.inits)
	assert.Len(t, out.played, 2)
}

func TestPlayerReportsInitFailureAndRetries(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no device")}
	player := &Player{out: out}

	err := player.Play(domain.CueTenSeconds.Tone())
	require.Error(t, err)
	assert.ErrorContains(t, err, "init speaker")

	out.initErr = nil
	require.NoError(t, player.Play(domain.CueTenSeconds.Tone()))
	assert.Equal(t, 2, out.inits)
	assert.Len(t, out.played, 1)
}

func TestPlayerResumeBeforeInitIsNoop(t *testing.T) {
	out := &fakeOutput{}
	player := &Player{out: out}

	require.NoError(t, player.Resume())
	assert.Equal(t, 0, out.resumes)

	require.NoError(t, player.Play(domain.CueCompletion.Tone()))
	require.NoError(t, player.Resume())
	assert.Equal(t, 1, out.resumes)
}

func TestPlayerResumeWrapsError(t *testing.T) {
	out := &fakeOutput{resumeErr: errors.New("busy")}
	player := &Player{out: out}
	require.NoError(t, player.Play(domain.CueCompletion.Tone()))

	assert.ErrorContains(t, player.Resume(), "resume speaker: busy")
}

func TestPlayerCloseReleasesDevice(t *testing.T) {
	out := &fakeOutput{}
	player := &Player{out: out}

	player.Close()
	assert.Equal(t, 0, out.closed)

	require.NoError(t, player.Play(domain.CueCompletion.Tone()))
	player.Close()
	assert.Equal(t, 1, out.closed)

	require.NoError(t, player.Play(domain.CueCompletion.Tone()))
	assert.Equal(t, 2, out.inits)
}

func TestToneStreamerLengthMatchesDuration(t *testing.T) {
	tone := domain.Tone{FrequencyHz: 800, Duration: 800 * time.Millisecond}

	s, err := toneStreamer(sampleRate, tone)
	require.NoError(t, err)

	samples := drain(t, s)
	assert.Len(t, samples, sampleRate.N(tone.Duration))
}

func TestToneStreamerEnvelopeStartsAndEndsQuiet(t *testing.T) {
	s, err := toneStreamer(sampleRate, domain.CueThirtySeconds.Tone())
	require.NoError(t, err)

	samples := drain(t, s)
	require.NotEmpty(t, samples)

	assert.InDelta(t, 0, samples[0][0], 1e-9)
	assert.Less(t, math.Abs(samples[len(samples)-1][0]), 0.01)

	peak := 0.0
	for _, sample := range samples {
		peak = math.Max(peak, math.Abs(sample[0]))
		assert.Equal(t, sample[0], sample[1])
	}
	assert.Greater(t, peak, 0.1)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestToneStreamerRejectsInvalidTone(t *testing.T) {
	_, err := toneStreamer(sampleRate, domain.Tone{FrequencyHz: 0, Duration: time.Second})
	assert.ErrorIs(t, err, ErrInvalidTone)

	_, err = toneStreamer(sampleRate, domain.Tone{FrequencyHz: 440})
	assert.ErrorIs(t, err, ErrInvalidTone)

	player := &Player{out: &fakeOutput{}}
	assert.ErrorIs(t, player.Play(domain.Tone{}), ErrInvalidTone)
}
