package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo key bindings. Any single-character key press is
// handled separately as a typed character and is not listed here.
type keyMap struct {
	Backspace key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete last character")),
		Help:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+q", "esc"), key.WithHelp("ctrl+q", "quit")),
	}
}

func (k keyMap) helpEntries() []key.Binding {
	return []key.Binding{k.Backspace, k.Help, k.Quit}
}
