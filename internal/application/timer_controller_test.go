package application

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/podium/internal/domain"
	"github.com/bnema/podium/internal/ports"
	"github.com/bnema/podium/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTask struct {
	fn      func()
	stopped bool
}

func (t *manualTask) Stop() { t.stopped = true }

// manualScheduler records registrations and fires them on demand.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

func (s *manualScheduler) Every(interval time.Duration, fn func()) ports.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := &manualTask{fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

func (s *manualScheduler) active() []*manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*manualTask
	for _, task := range s.tasks {
		if !task.stopped {
			result = append(result, task)
		}
	}
	return result
}

func (s *manualScheduler) fire(n int) {
	for i := 0; i < n; i++ {
		for _, task := range s.active() {
			task.fn()
		}
	}
}

func (s *manualScheduler) registrations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

type resumablePlayer struct {
	resumed int
	played  []domain.Tone
}

func (p *resumablePlayer) Play(tone domain.Tone) error {
	p.played = append(p.played, tone)
	return nil
}

func (p *resumablePlayer) Resume() error {
	p.resumed++
	return nil
}

func newTestController(t *testing.T, total int, sound bool) (*TimerController, *manualScheduler) {
	t.Helper()

	scheduler := &manualScheduler{}
	controller := NewTimerController(scheduler, ports.SilentPlayer{}, TimerOptions{TotalSeconds: total, SoundEnabled: sound})
	return controller, scheduler
}

func TestTimerControllerInitialState(t *testing.T) {
	controller, _ := newTestController(t, 300, true)

	snapshot := controller.Snapshot()
	assert.Equal(t, 300, snapshot.TotalSeconds)
	assert.Equal(t, 300, snapshot.RemainingSeconds)
	assert.False(t, snapshot.Running)
	assert.True(t, snapshot.SoundEnabled)
	assert.Equal(t, "Paused", snapshot.Status())
}

func TestTimerControllerDefaultsToFiveMinutes(t *testing.T) {
	controller := NewTimerController(&manualScheduler{}, nil, TimerOptions{})

	assert.Equal(t, domain.DefaultTimerSeconds, controller.Snapshot().TotalSeconds)
}

func TestTimerControllerConfigureClamps(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    int
	}{
		{name: "below minimum", seconds: 5, want: 10},
		{name: "above maximum", seconds: 9999, want: 3600},
		{name: "in range", seconds: 95, want: 95},
		{name: "zero", seconds: 0, want: 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			controller, _ := newTestController(t, 300, false)

			controller.Configure(tc.seconds)

			snapshot := controller.Snapshot()
			assert.Equal(t, tc.want, snapshot.TotalSeconds)
			assert.Equal(t, tc.want, snapshot.RemainingSeconds)
		})
	}
}

func TestTimerControllerConfigureWhileRunningKeepsRemaining(t *testing.T) {
	controller, scheduler := newTestController(t, 120, false)
	controller.Start()
	scheduler.fire(20)

	controller.Configure(60)

	snapshot := controller.Snapshot()
	assert.Equal(t, 60, snapshot.TotalSeconds)
	assert.Equal(t, 100, snapshot.RemainingSeconds)
	assert.True(t, snapshot.Running)
}

func TestTimerControllerTicksCountDownAndStopAtZero(t *testing.T) {
	for _, n := range []int{1, 15, 44, 45, 46, 200} {
		controller, scheduler := newTestController(t, 45, false)
		controller.Start()

		scheduler.fire(n)

		snapshot := controller.Snapshot()
		want := max(0, 45-n)
		assert.Equal(t, want, snapshot.RemainingSeconds, "ticks=%d", n)
		assert.Equal(t, want > 0, snapshot.Running, "ticks=%d", n)
	}
}

func TestTimerControllerReachingZeroCancelsTask(t *testing.T) {
	controller, scheduler := newTestController(t, 10, false)
	controller.Start()

	scheduler.fire(10)

	assert.Empty(t, scheduler.active())
	assert.Equal(t, "Time!", controller.Snapshot().Status())
}

func TestTimerControllerCuePolicyOverFullRun(t *testing.T) {
	player := mocks.NewMockTonePlayer(t)
	player.EXPECT().Play(domain.CueThirtySeconds.Tone()).Return(nil).Once()
	player.EXPECT().Play(domain.CueTenSeconds.Tone()).Return(nil).Once()
	player.EXPECT().Play(domain.CueCompletion.Tone()).Return(nil).Once()

	scheduler := &manualScheduler{}
	controller := NewTimerController(scheduler, player, TimerOptions{TotalSeconds: 300, SoundEnabled: true})
	controller.Start()

	scheduler.fire(300)
	scheduler.fire(5)

	assert.Equal(t, 0, controller.Snapshot().RemainingSeconds)
}

func TestTimerControllerCueOrderFollowsSentinels(t *testing.T) {
	player := &resumablePlayer{}
	scheduler := &manualScheduler{}
	controller := NewTimerController(scheduler, player, TimerOptions{TotalSeconds: 60, SoundEnabled: true})
	controller.Start()

	scheduler.fire(29)
	assert.Empty(t, player.played)

	scheduler.fire(1)
	require.Len(t, player.played, 1)
	assert.Equal(t, 30, controller.Snapshot().RemainingSeconds)

	scheduler.fire(20)
	require.Len(t, player.played, 2)
	assert.Equal(t, 10, controller.Snapshot().RemainingSeconds)

	scheduler.fire(10)
	assert.Equal(t, []domain.Tone{
		domain.CueThirtySeconds.Tone(),
		domain.CueTenSeconds.Tone(),
		domain.CueCompletion.Tone(),
	}, player.played)
}

func TestTimerControllerSilentWhenSoundDisabled(t *testing.T) {
	player := mocks.NewMockTonePlayer(t)
	scheduler := &manualScheduler{}
	controller := NewTimerController(scheduler, player, TimerOptions{TotalSeconds: 300, SoundEnabled: false})
	controller.Start()

	scheduler.fire(300)

	player.AssertNotCalled(t, "Play")
	assert.Equal(t, 0, controller.Snapshot().RemainingSeconds)
}

func TestTimerControllerNoCueFromAdjustResetOrConfigure(t *testing.T) {
	player := mocks.NewMockTonePlayer(t)
	controller := NewTimerController(&manualScheduler{}, player, TimerOptions{TotalSeconds: 41, SoundEnabled: true})

	controller.Adjust(-10)
	controller.Configure(11)
	controller.Reset()
	controller.SelectPreset(60)

	player.AssertNotCalled(t, "Play")
}

func TestTimerControllerPauseResumeDoesNotRefireThresholds(t *testing.T) {
	player := &resumablePlayer{}
	scheduler := &manualScheduler{}
	controller := NewTimerController(scheduler, player, TimerOptions{TotalSeconds: 40, SoundEnabled: true})
	controller.Start()

	scheduler.fire(10)
	require.Len(t, player.played, 1)

	controller.Pause()
	controller.Start()
	scheduler.fire(5)

	assert.Len(t, player.played, 1)
	assert.Equal(t, 25, controller.Snapshot().RemainingSeconds)
}

func TestTimerControllerAudioFailureIsSwallowed(t *testing.T) {
	player := mocks.NewMockTonePlayer(t)
	player.EXPECT().Play(domain.CueTenSeconds.Tone()).Return(errors.New("no audio device")).Once()
	player.EXPECT().Play(domain.CueCompletion.Tone()).Return(errors.New("no audio device")).Once()

	scheduler := &manualScheduler{}
	controller := NewTimerController(scheduler, player, TimerOptions{TotalSeconds: 20, SoundEnabled: true})
	controller.Start()

	scheduler.fire(20)

	snapshot := controller.Snapshot()
	assert.Equal(t, 0, snapshot.RemainingSeconds)
	assert.False(t, snapshot.Running)
}

type panickingPlayer struct{}

func (panickingPlayer) Play(domain.Tone) error { panic("audio backend exploded") }

func TestTimerControllerAudioPanicIsSwallowed(t *testing.T) {
	scheduler := &manualScheduler{}
	controller := NewTimerController(scheduler, panickingPlayer{}, TimerOptions{TotalSeconds: 10, SoundEnabled: true})
	controller.Start()

	assert.NotPanics(t, func() { scheduler.fire(10) })
	assert.Equal(t, 0, controller.Snapshot().RemainingSeconds)
}

func TestTimerControllerResetRestoresTotal(t *testing.T) {
	controller, scheduler := newTestController(t, 180, false)
	controller.Start()
	scheduler.fire(77)

	controller.Reset()

	snapshot := controller.Snapshot()
	assert.Equal(t, 180, snapshot.RemainingSeconds)
	assert.False(t, snapshot.Running)
	assert.Empty(t, scheduler.active())
}

func TestTimerControllerAdjustRoundTrip(t *testing.T) {
	controller, _ := newTestController(t, 240, false)

	controller.Adjust(30)
	assert.Equal(t, 270, controller.Snapshot().TotalSeconds)
	assert.Equal(t, 270, controller.Snapshot().RemainingSeconds)

	controller.Adjust(-30)
	assert.Equal(t, 240, controller.Snapshot().TotalSeconds)
	assert.Equal(t, 240, controller.Snapshot().RemainingSeconds)
}

func TestTimerControllerAdjustClampsAtBounds(t *testing.T) {
	controller, _ := newTestController(t, 20, false)

	controller.Adjust(-30)
	assert.Equal(t, 10, controller.Snapshot().TotalSeconds)

	controller.Configure(3590)
	controller.Adjust(30)
	assert.Equal(t, 3600, controller.Snapshot().TotalSeconds)
}

func TestTimerControllerAdjustWhileRunningChangesOnlyTotal(t *testing.T) {
	controller, scheduler := newTestController(t, 120, false)
	controller.Start()
	scheduler.fire(10)

	controller.Adjust(30)

	snapshot := controller.Snapshot()
	assert.Equal(t, 150, snapshot.TotalSeconds)
	assert.Equal(t, 110, snapshot.RemainingSeconds)
	assert.True(t, snapshot.Running)

	controller.Reset()
	assert.Equal(t, 150, controller.Snapshot().RemainingSeconds)
}

func TestTimerControllerSelectPresetStopsAndRewinds(t *testing.T) {
	controller, scheduler := newTestController(t, 420, false)
	controller.Start()
	scheduler.fire(33)

	controller.SelectPreset(180)

	snapshot := controller.Snapshot()
	assert.Equal(t, 180, snapshot.TotalSeconds)
	assert.Equal(t, 180, snapshot.RemainingSeconds)
	assert.False(t, snapshot.Running)
	assert.Empty(t, scheduler.active())
}

func TestTimerControllerStartIsIdempotent(t *testing.T) {
	controller, scheduler := newTestController(t, 60, false)

	controller.Start()
	first := controller.Snapshot()
	controller.Start()

	assert.Equal(t, first, controller.Snapshot())
	assert.Equal(t, 1, scheduler.registrations())

	scheduler.fire(1)
	assert.Equal(t, 59, controller.Snapshot().RemainingSeconds)
}

func TestTimerControllerPauseIsIdempotent(t *testing.T) {
	controller, scheduler := newTestController(t, 60, false)
	controller.Start()
	scheduler.fire(3)

	controller.Pause()
	first := controller.Snapshot()
	controller.Pause()

	assert.Equal(t, first, controller.Snapshot())
	assert.Equal(t, 57, first.RemainingSeconds)
	assert.False(t, first.Running)
}

func TestTimerControllerNoTickAfterPauseReturns(t *testing.T) {
	controller, scheduler := newTestController(t, 60, false)
	controller.Start()
	task := scheduler.active()[0]

	controller.Pause()
	task.fn()

	assert.Equal(t, 60, controller.Snapshot().RemainingSeconds)
}

func TestTimerControllerStaleTaskIgnoredAfterRestart(t *testing.T) {
	controller, scheduler := newTestController(t, 60, false)
	controller.Start()
	stale := scheduler.active()[0]
	controller.Pause()
	controller.Start()

	stale.fn()
	scheduler.fire(1)

	assert.Equal(t, 59, controller.Snapshot().RemainingSeconds)
	assert.Equal(t, 2, scheduler.registrations())
}

func TestTimerControllerToggle(t *testing.T) {
	controller, scheduler := newTestController(t, 60, false)

	controller.Toggle()
	assert.True(t, controller.Snapshot().Running)

	controller.Toggle()
	assert.False(t, controller.Snapshot().Running)
	assert.Empty(t, scheduler.active())
}

func TestTimerControllerTickWhilePausedIsNoop(t *testing.T) {
	controller, _ := newTestController(t, 60, false)

	controller.Tick()

	assert.Equal(t, 60, controller.Snapshot().RemainingSeconds)
}

func TestTimerControllerStartAfterCompletionBeginsNewRun(t *testing.T) {
	controller, scheduler := newTestController(t, 10, false)
	controller.Start()
	scheduler.fire(10)
	require.Equal(t, 0, controller.Snapshot().RemainingSeconds)

	controller.Start()

	snapshot := controller.Snapshot()
	assert.Equal(t, 10, snapshot.RemainingSeconds)
	assert.True(t, snapshot.Running)
}

func TestTimerControllerStartResumesAudio(t *testing.T) {
	player := &resumablePlayer{}
	controller := NewTimerController(&manualScheduler{}, player, TimerOptions{TotalSeconds: 60})

	controller.Start()
	controller.Start()

	assert.Equal(t, 1, player.resumed)
}

func TestTimerControllerSoundToggleIsIndependent(t *testing.T) {
	controller, _ := newTestController(t, 60, true)
	controller.Start()

	controller.ToggleSound()
	assert.False(t, controller.Snapshot().SoundEnabled)
	assert.True(t, controller.Snapshot().Running)

	controller.SetSoundEnabled(true)
	assert.True(t, controller.Snapshot().SoundEnabled)
}

func TestTimerControllerSubscribeReceivesChanges(t *testing.T) {
	controller, scheduler := newTestController(t, 60, false)

	var seen []domain.TimerSnapshot
	unsubscribe := controller.Subscribe(func(s domain.TimerSnapshot) {
		seen = append(seen, s)
	})

	controller.Start()
	scheduler.fire(2)
	unsubscribe()
	scheduler.fire(1)

	require.Len(t, seen, 3)
	assert.True(t, seen[0].Running)
	assert.Equal(t, 58, seen[2].RemainingSeconds)
}
