package beep

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/podium/internal/domain"
	"github.com/bnema/podium/internal/ports"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	bufferLength = 100 * time.Millisecond
	toneVolume   = -1.5
)

var ErrInvalidTone = errors.New("invalid tone")

// output is the speaker surface the player drives.
type output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Resume() error
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error { return speaker.Init(sr, bufferSize) }
func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Resume() error { return speaker.Resume() }
func (speakerOutput) Close() { speaker.Close() }

// Player synthesizes cue tones and plays them on the default audio device.
// The device is opened on first use; a failed open is retried on the next call.
type Player struct {
	mu          sync.Mutex
	out         output
	initialized bool
}

var (
	_ ports.TonePlayer   = (*Player)(nil)
	_ ports.AudioResumer = (*Player)(nil)
)

func NewPlayer() *Player {
	return &Player{out: speakerOutput{}}
}

func (p *Player) Play(tone domain.Tone) error {
	streamer, err := toneStreamer(sampleRate, tone)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.initLocked(); err != nil {
		return err
	}

	p.out.Play(streamer)
	return nil
}

// Resume wakes an output that the platform suspended. It does nothing before the first Play.
func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	if err := p.out.Resume(); err != nil {
		return fmt.Errorf("resume speaker: %w", err)
	}
	return nil
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.out.Close()
	p.initialized = false
}

func (p *Player) initLocked() error {
	if p.initialized {
		return nil
	}
	if err := p.out.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}
