package notify

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings of the confirmation prompt.
type KeyMap struct {
	// Accept answers yes immediately.
	Accept key.Binding

	// Dismiss answers no immediately.
	Dismiss key.Binding

	// Toggle moves focus between the two buttons.
	Toggle key.Binding

	// Select answers with the focused button.
	Select key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Accept: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("n", "N", "esc", "ctrl+c"),
			key.WithHelp("n/esc", "no"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("left", "right", "tab", "shift+tab", "h", "l"),
			key.WithHelp("←/→", "switch"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}

// ShortHelp returns the bindings shown under the prompt.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Select, k.Accept, k.Dismiss}
}
