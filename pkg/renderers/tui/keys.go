package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings the editor reacts to outside of text entry.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Save   key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "enter"),
			key.WithHelp("tab/↓/enter", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func (k KeyMap) helpLine() string {
	out := ""
	for i, b := range []key.Binding{k.Next, k.Prev, k.Save, k.Cancel} {
		h := b.Help()
		if i > 0 {
			out += " • "
		}
		out += h.Key + " " + h.Desc
	}
	return out
}
