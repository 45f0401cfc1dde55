package sidebar

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the sidebar bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Home   key.Binding
	Search key.Binding
	Toggle key.Binding
}

// DefaultKeyMap returns vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "navigate")),
		Down:   key.NewBinding(key.WithKeys("j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", "l", "right"), key.WithHelp("enter", "open")),
		Home:   key.NewBinding(key.WithKeys("H", "home"), key.WithHelp("H", "home")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Toggle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	}
}

// ShortHelp lists the bindings worth showing in a help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Search, k.Toggle, k.Home}
}
