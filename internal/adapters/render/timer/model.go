package timer

import (
	"context"
	"io"

	"github.com/bnema/podium/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minBarWidth = 10
	maxBarWidth = 60
)

// Controller is the timer surface the view drives.
type Controller interface {
	Snapshot() domain.TimerSnapshot
	Subscribe(fn func(domain.TimerSnapshot)) func()
	Start()
	Pause()
	Toggle()
	Reset()
	Adjust(deltaSeconds int)
	SelectPreset(seconds int)
	ToggleSound()
}

// refreshMsg asks the model to re-read the controller.
type refreshMsg struct{}

type Model struct {
	controller Controller
	snapshot   domain.TimerSnapshot
	progress   progress.Model
	help       help.Model
	keys       keyMap
	styles     styles
	quitting   bool
}

func NewModel(controller Controller) Model {
	bar := progress.New(
		progress.WithSolidFill(string(urgencyColor(domain.UrgencyNormal))),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)

	return Model{
		controller: controller,
		snapshot:   controller.Snapshot(),
		progress:   bar,
		help:       help.New(),
		keys:       newKeyMap(),
		styles:     newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.controller.Toggle()
		case key.Matches(msg, m.keys.Reset):
			m.controller.Reset()
		case key.Matches(msg, m.keys.Up):
			m.controller.Adjust(domain.AdjustStepSeconds)
		case key.Matches(msg, m.keys.Down):
			m.controller.Adjust(-domain.AdjustStepSeconds)
		case key.Matches(msg, m.keys.Preset):
			if idx := int(msg.String()[0] - '1'); idx >= 0 && idx < len(domain.Presets) {
				m.controller.SelectPreset(domain.Presets[idx])
			}
		case key.Matches(msg, m.keys.Sound):
			m.controller.ToggleSound()
		}
	case tea.WindowSizeMsg:
		m.progress.Width = min(max(msg.Width-8, minBarWidth), maxBarWidth)
		m.help.Width = msg.Width
	case refreshMsg:
	}

	m.snapshot = m.controller.Snapshot()
	m.progress.FullColor = string(urgencyColor(m.snapshot.Urgency()))
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return renderView(m.snapshot, m.progress.ViewAs(m.snapshot.Progress()), m.help.View(m.keys), m.styles)
}

type RunOptions struct {
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
	AutoStart bool
}

// Run drives the interactive timer until the user quits or ctx is cancelled. The countdown is paused on exit.
func Run(ctx context.Context, controller Controller, opts RunOptions) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(controller), programOpts...)

	// Send blocks until the event loop reads it; listeners can fire from inside Update.
	unsubscribe := controller.Subscribe(func(domain.TimerSnapshot) {
		go p.Send(refreshMsg{})
	})
	defer unsubscribe()
	defer controller.Pause()

	if opts.AutoStart {
		controller.Start()
	}

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	return nil
}
