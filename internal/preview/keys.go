package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the preview key bindings.
type KeyMap struct {
	Less  key.Binding
	More  key.Binding
	Min   key.Binding
	Max   key.Binding
	Reset key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Less: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "less soda"),
		),
		More: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "more soda"),
		),
		Min: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "empty"),
		),
		Max: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "full"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Less, k.More, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Less, k.More},
		{k.Min, k.Max},
		{k.Reset, k.Quit},
	}
}
