package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard's keyboard shortcuts.
type KeyMap struct {
	Souls  key.Binding
	Deck   key.Binding
	LoDown key.Binding
	LoUp   key.Binding
	HiDown key.Binding
	HiUp   key.Binding
	Reset  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Souls: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "souls"),
		),
		Deck: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "deck"),
		),
		LoDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "min age −"),
		),
		LoUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "min age +"),
		),
		HiDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "max age −"),
		),
		HiUp: key.NewBinding(
			key.WithKeys("=", "+"),
			key.WithHelp("=", "max age +"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Souls, k.Deck, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Souls, k.Deck},
		{k.LoDown, k.LoUp, k.HiDown, k.HiUp},
		{k.Reset, k.Help, k.Quit},
	}
}
