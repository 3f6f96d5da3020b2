package domain

import (
	"fmt"
	"time"
)

const (
	MinTimerSeconds     = 10
	MaxTimerSeconds     = 3600
	DefaultTimerSeconds = 300
	AdjustStepSeconds   = 30
)

// Presets are the canonical speech lengths selectable in one action.
var Presets = []int{60, 120, 180, 240, 300, 360, 420, 480}

type TimerConfig struct {
	TotalSeconds int
}

type TimerState struct {
	RemainingSeconds int
	Running          bool
	SoundEnabled     bool
}

func NewTimerConfig(seconds int) TimerConfig {
	return TimerConfig{TotalSeconds: ClampSeconds(seconds)}
}

func NewTimerState(cfg TimerConfig, soundEnabled bool) TimerState {
	return TimerState{
		RemainingSeconds: cfg.TotalSeconds,
		SoundEnabled:     soundEnabled,
	}
}

func ClampSeconds(seconds int) int {
	if seconds < MinTimerSeconds {
		return MinTimerSeconds
	}
	if seconds > MaxTimerSeconds {
		return MaxTimerSeconds
	}
	return seconds
}

func IsPreset(seconds int) bool {
	for _, preset := range Presets {
		if preset == seconds {
			return true
		}
	}
	return false
}

type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyWarning  Urgency = "warning"
	UrgencyCritical Urgency = "critical"
)

func UrgencyFor(remainingSeconds int) Urgency {
	switch {
	case remainingSeconds <= 10:
		return UrgencyCritical
	case remainingSeconds <= 30:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}

const (
	StatusRunning = "Running"
	StatusDone    = "Time!"
	StatusPaused  = "Paused"
)

func StatusLabel(remainingSeconds int, running bool) string {
	if running {
		return StatusRunning
	}
	if remainingSeconds == 0 {
		return StatusDone
	}
	return StatusPaused
}

func ProgressFraction(remainingSeconds, totalSeconds int) float64 {
	if totalSeconds <= 0 {
		return 0
	}
	return float64(remainingSeconds) / float64(totalSeconds)
}

// FormatClock renders seconds as MM:SS; a full hour reads 60:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

type Cue string

const (
	CueThirtySeconds Cue = "thirty_seconds"
	CueTenSeconds    Cue = "ten_seconds"
	CueCompletion    Cue = "completion"
)

type Tone struct {
	FrequencyHz float64
	Duration    time.Duration
}

func (c Cue) Tone() Tone {
	switch c {
	case CueThirtySeconds:
		return Tone{FrequencyHz: 1000, Duration: 150 * time.Millisecond}
	case CueTenSeconds:
		return Tone{FrequencyHz: 600, Duration: 150 * time.Millisecond}
	default:
		return Tone{FrequencyHz: 800, Duration: 800 * time.Millisecond}
	}
}

// CueBeforeTick reports the warning cue owed when the clock leaves remainingSeconds.
func CueBeforeTick(remainingSeconds int) (Cue, bool) {
	switch remainingSeconds {
	case 31:
		return CueThirtySeconds, true
	case 11:
		return CueTenSeconds, true
	default:
		return "", false
	}
}

// TimerSnapshot is a read-only view handed to presentation code.
type TimerSnapshot struct {
	TotalSeconds     int
	RemainingSeconds int
	Running          bool
	SoundEnabled     bool
}

func (s TimerSnapshot) Progress() float64 {
	return ProgressFraction(s.RemainingSeconds, s.TotalSeconds)
}

func (s TimerSnapshot) Urgency() Urgency {
	return UrgencyFor(s.RemainingSeconds)
}

func (s TimerSnapshot) Status() string {
	return StatusLabel(s.RemainingSeconds, s.Running)
}

func (s TimerSnapshot) Clock() string {
	return FormatClock(s.RemainingSeconds)
}
