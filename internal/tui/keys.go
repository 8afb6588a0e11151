package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level key bindings.
// Card, list and dialog keys live with their components.
type KeyMap struct {
	Quit          key.Binding
	Help          key.Binding
	Escape        key.Binding
	SwitchSection key.Binding
	Pager         key.Binding
	CheckIn       key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		SwitchSection: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "workout/meals"),
		),
		Pager: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pages"),
		),
		CheckIn: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "weigh in"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
