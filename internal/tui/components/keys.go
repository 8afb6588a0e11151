package components

import "github.com/charmbracelet/bubbles/key"

// CardKeyMap maps keyboard gestures onto card regions
type CardKeyMap struct {
	Toggle key.Binding
	Open   key.Binding
	Action key.Binding
}

// DefaultCardKeyMap returns the default card key bindings
func DefaultCardKeyMap() CardKeyMap {
	return CardKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "done"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Action: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "later"),
		),
	}
}

// CardListKeyMap defines key bindings for card list navigation
type CardListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Filter key.Binding
	Escape key.Binding
	Accept key.Binding
}

// DefaultCardListKeyMap returns the default card list key bindings
func DefaultCardListKeyMap() CardListKeyMap {
	return CardListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept filter"),
		),
	}
}

// PaginationKeyMap defines key bindings for the page controls
type PaginationKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
}

// DefaultPaginationKeyMap returns the default pagination key bindings
func DefaultPaginationKeyMap() PaginationKeyMap {
	return PaginationKeyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "prev control"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next control"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "go"),
		),
	}
}

// CheckInKeyMap defines key bindings for the weight check-in dialog
type CheckInKeyMap struct {
	Submit     key.Binding
	ToggleUnit key.Binding
	Skip       key.Binding
	Delay      key.Binding
	Close      key.Binding
}

// DefaultCheckInKeyMap returns the default check-in key bindings
func DefaultCheckInKeyMap() CheckInKeyMap {
	return CheckInKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		ToggleUnit: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "kg/lbs"),
		),
		Skip: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "skip today"),
		),
		Delay: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "later"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// MealDetailKeyMap defines key bindings for the meal detail dialog
type MealDetailKeyMap struct {
	Toggle key.Binding
	Close  key.Binding
}

// DefaultMealDetailKeyMap returns the default meal detail key bindings
func DefaultMealDetailKeyMap() MealDetailKeyMap {
	return MealDetailKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "eaten"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "enter"),
			key.WithHelp("esc", "close"),
		),
	}
}

// Package-level key map instances
var (
	CardKeys       = DefaultCardKeyMap()
	CardListKeys   = DefaultCardListKeyMap()
	PaginationKeys = DefaultPaginationKeyMap()
	CheckInKeys    = DefaultCheckInKeyMap()
	MealDetailKeys = DefaultMealDetailKeyMap()
)
