package application

import (
	"sync"
	"time"

	"github.com/bnema/podium/internal/domain"
	"github.com/bnema/podium/internal/ports"
	"github.com/rs/zerolog"
)

const TickInterval = time.Second

type TimerOptions struct {
	TotalSeconds int
	SoundEnabled bool
	Logger       *zerolog.Logger
}

// TimerController owns one countdown. All mutation happens under mu; cue playback
// and listener callbacks run after it is released.
type TimerController struct {
	mu        sync.Mutex
	config    domain.TimerConfig
	state     domain.TimerState
	scheduler ports.Scheduler
	player    ports.TonePlayer
	logger    zerolog.Logger

	task  ports.Task
	token *tickToken

	listeners      map[int]func(domain.TimerSnapshot)
	nextListenerID int
}

// tickToken identifies one tick sequence; callbacks holding a stale token are dropped.
type tickToken struct{}

func NewTimerController(scheduler ports.Scheduler, player ports.TonePlayer, opts TimerOptions) *TimerController {
	if player == nil {
		player = ports.SilentPlayer{}
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	if opts.TotalSeconds == 0 {
		opts.TotalSeconds = domain.DefaultTimerSeconds
	}

	cfg := domain.NewTimerConfig(opts.TotalSeconds)

	return &TimerController{
		config:    cfg,
		state:     domain.NewTimerState(cfg, opts.SoundEnabled),
		scheduler: scheduler,
		player:    player,
		logger:    logger.With().Str("component", "timer").Logger(),
		listeners: map[int]func(domain.TimerSnapshot){},
	}
}

func (c *TimerController) Snapshot() domain.TimerSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every change. The returned func unsubscribes.
func (c *TimerController) Subscribe(fn func(domain.TimerSnapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *TimerController) Configure(seconds int) {
	c.mu.Lock()
	c.configureLocked(seconds)
	c.finish(nil)
}

func (c *TimerController) SelectPreset(seconds int) {
	c.mu.Lock()
	c.stopLocked()
	c.configureLocked(seconds)
	c.finish(nil)
}

// Adjust moves the configured total by delta. A running countdown keeps its remaining time until reset.
func (c *TimerController) Adjust(deltaSeconds int) {
	c.mu.Lock()
	c.configureLocked(c.config.TotalSeconds + deltaSeconds)
	c.finish(nil)
}

func (c *TimerController) Start() {
	c.mu.Lock()
	if c.state.Running {
		c.mu.Unlock()
		return
	}

	c.resumeAudio()
	if c.state.RemainingSeconds == 0 {
		c.state.RemainingSeconds = c.config.TotalSeconds
	}
	c.state.Running = true

	token := &tickToken{}
	c.token = token
	if c.scheduler != nil {
		c.task = c.scheduler.Every(TickInterval, func() { c.tick(token) })
	}
	c.finish(nil)
}

func (c *TimerController) Pause() {
	c.mu.Lock()
	if !c.state.Running {
		c.mu.Unlock()
		return
	}
	c.stopLocked()
	c.finish(nil)
}

func (c *TimerController) Toggle() {
	if c.Snapshot().Running {
		c.Pause()
		return
	}
	c.Start()
}

func (c *TimerController) Reset() {
	c.mu.Lock()
	c.stopLocked()
	c.state.RemainingSeconds = c.config.TotalSeconds
	c.finish(nil)
}

func (c *TimerController) SetSoundEnabled(enabled bool) {
	c.mu.Lock()
	c.state.SoundEnabled = enabled
	c.finish(nil)
}

func (c *TimerController) ToggleSound() {
	c.mu.Lock()
	c.state.SoundEnabled = !c.state.SoundEnabled
	c.finish(nil)
}

// Tick applies one elapsed second to a running countdown. It is a no-op while paused.
func (c *TimerController) Tick() {
	c.tick(nil)
}

func (c *TimerController) tick(token *tickToken) {
	c.mu.Lock()
	if !c.state.Running || (token != nil && token != c.token) {
		c.mu.Unlock()
		return
	}

	var cues []domain.Cue
	if cue, ok := domain.CueBeforeTick(c.state.RemainingSeconds); ok {
		cues = append(cues, cue)
	}

	if c.state.RemainingSeconds > 0 {
		c.state.RemainingSeconds--
	}
	if c.state.RemainingSeconds == 0 {
		c.stopLocked()
		cues = append(cues, domain.CueCompletion)
	}

	if !c.state.SoundEnabled {
		cues = nil
	}
	c.finish(cues)
}

func (c *TimerController) configureLocked(seconds int) {
	c.config.TotalSeconds = domain.ClampSeconds(seconds)
	if !c.state.Running {
		c.state.RemainingSeconds = c.config.TotalSeconds
	}
}

func (c *TimerController) stopLocked() {
	c.state.Running = false
	if c.task != nil {
		c.task.Stop()
	}
	c.task = nil
	c.token = nil
}

func (c *TimerController) resumeAudio() {
	resumer, ok := c.player.(ports.AudioResumer)
	if !ok {
		return
	}
	if err := resumer.Resume(); err != nil {
		c.logger.Debug().Err(err).Msg("resume audio output")
	}
}

// finish releases mu, then plays cues and notifies listeners.
func (c *TimerController) finish(cues []domain.Cue) {
	snapshot := c.snapshotLocked()
	listeners := make([]func(domain.TimerSnapshot), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, cue := range cues {
		c.play(cue)
	}
	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (c *TimerController) play(cue domain.Cue) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Debug().Interface("panic", r).Str("cue", string(cue)).Msg("audio cue panicked")
		}
	}()

	if err := c.player.Play(cue.Tone()); err != nil {
		c.logger.Debug().Err(err).Str("cue", string(cue)).Msg("audio cue failed")
	}
}

func (c *TimerController) snapshotLocked() domain.TimerSnapshot {
	return domain.TimerSnapshot{
		TotalSeconds:     c.config.TotalSeconds,
		RemainingSeconds: c.state.RemainingSeconds,
		Running:          c.state.Running,
		SoundEnabled:     c.state.SoundEnabled,
	}
}
