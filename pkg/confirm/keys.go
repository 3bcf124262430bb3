package confirm

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the navigation keys of a dialog. Button control keys are not
// part of it; they come from the ButtonLabels.
type KeyMap struct {
	Accept  key.Binding
	Dismiss key.Binding
	Left    key.Binding
	Right   key.Binding
}

// DefaultKeyMap returns Enter to accept, Esc to dismiss and the arrow keys
// to move the selection.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "yes"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "no"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Accept, k.Dismiss}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right}, {k.Accept, k.Dismiss}}
}
