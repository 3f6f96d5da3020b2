package timer

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Up     key.Binding
	Down   key.Binding
	Preset key.Binding
	Sound  key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "start/pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Up:     key.NewBinding(key.WithKeys("+", "=", "up"), key.WithHelp("+", "+30s")),
		Down:   key.NewBinding(key.WithKeys("-", "_", "down"), key.WithHelp("-", "-30s")),
		Preset: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "preset minutes")),
		Sound:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sound")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Up, k.Down, k.Preset, k.Sound, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Sound},
		{k.Up, k.Down, k.Preset},
		{k.Quit},
	}
}
