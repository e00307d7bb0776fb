package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Submit key.Binding
	Next   key.Binding
	Back   key.Binding
	Replan key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("space/1-9", "choose"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose & next"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "tab", "l"),
			key.WithHelp("→", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "shift+tab", "h", "backspace"),
			key.WithHelp("←", "previous"),
		),
		Replan: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back to planning"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// wizardKeys is the help.KeyMap shown on the questionnaire page.
type wizardKeys struct{ keyMap }

func (k wizardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Submit, k.Next, k.Back, k.Quit}
}

func (k wizardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// dashboardKeys is the help.KeyMap shown on the dashboard page.
type dashboardKeys struct{ keyMap }

func (k dashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replan, k.Quit}
}

func (k dashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
