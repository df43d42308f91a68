package keys

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Mnemonic key.Binding
	Hex      key.Binding
	Left     key.Binding
	Right    key.Binding
	Switch   key.Binding

	Help key.Binding
	Quit key.Binding
}

var Keys = &KeyMap{
	Mnemonic: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mnemonic"),
	),
	Hex: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "hex"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous tab"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next tab"),
	),
	Switch: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch tab"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mnemonic, k.Hex, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mnemonic, k.Hex},
		{k.Left, k.Right, k.Switch},
		{k.Help, k.Quit},
	}
}
