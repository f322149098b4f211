package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Primary   key.Binding
	Secondary key.Binding
	Pause     key.Binding
	Quit      key.Binding
	Help      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.Secondary, k.Pause, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Primary, k.Secondary},
		{k.Pause, k.Quit, k.Help},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Primary: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/click", "flap"),
		),
		Secondary: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r/right click", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// MapKey translates a key message to a game event.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return core.EventQuit
	case key.Matches(msg, k.Primary):
		return core.EventPrimary
	case key.Matches(msg, k.Secondary):
		return core.EventSecondary
	case key.Matches(msg, k.Pause):
		return core.EventPause
	}
	return core.EventNone
}

// MapMouse translates a mouse press to a game event. Only presses count, so a
// click is one event.
func MapMouse(msg tea.MouseMsg) core.Event {
	if msg.Action != tea.MouseActionPress {
		return core.EventNone
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return core.EventPrimary
	case tea.MouseButtonRight:
		return core.EventSecondary
	}
	return core.EventNone
}
