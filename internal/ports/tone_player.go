package ports

import "github.com/bnema/podium/internal/domain"

type TonePlayer interface {
	Play(tone domain.Tone) error
}

// AudioResumer is implemented by players whose output can be suspended by the platform.
type AudioResumer interface {
	Resume() error
}

type SilentPlayer struct{}

func (SilentPlayer) Play(domain.Tone) error { return nil }
