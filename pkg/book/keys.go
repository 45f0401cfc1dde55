package book

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jansmrcka/teabook/pkg/sidebar"
)

// KeyMap holds the shell bindings. Sidebar bindings apply while the
// sidebar has focus; the rest apply everywhere unless the active story
// handles the key first.
type KeyMap struct {
	Sidebar sidebar.KeyMap

	Focus  key.Binding
	Back   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default shell bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Sidebar: sidebar.DefaultKeyMap(),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus story")),
		Back:    key.NewBinding(key.WithKeys("esc", "shift+tab"), key.WithHelp("esc", "back")),
		Toggle:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("^t", "theme")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
