package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mmcdole/podview/internal/tui/components"
)

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Actions
	Open      key.Binding
	Filter    key.Binding
	Sort      key.Binding
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	Grid  components.GridKeyMap
	Modal components.ModalKeyMap
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Grid:  components.DefaultGridKeyMap(),
		Modal: components.DefaultModalKeyMap(),
	}
}

// ShortHelp implements help.KeyMap for the grid footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Filter, k.Sort, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the help overlay
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Grid.Up, k.Grid.Down, k.Grid.Left, k.Grid.Right, k.Grid.Home, k.Grid.End, k.Grid.PageUp, k.Grid.PageDown},
		{k.Open, k.Filter, k.Grid.ClearFilter, k.Sort, k.Refresh},
		{k.Modal.Close, k.Modal.Retry, k.Modal.Up, k.Modal.Down, k.Help, k.Quit},
	}
}

// ModalHelp lists the bindings shown while the detail modal is open
func (k KeyMap) ModalHelp() []key.Binding {
	return []key.Binding{k.Modal.Up, k.Modal.Down, k.Modal.Retry, k.Modal.Close}
}

// RetryHelp lists the bindings shown on the error and empty screens
func (k KeyMap) RetryHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
