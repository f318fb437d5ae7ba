package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit     key.Binding
	quit       key.Binding
	quitLocked key.Binding
	copy       key.Binding
	top        key.Binding
	bottom     key.Binding
}

var keys = keyMap{
	submit:     key.NewBinding(key.WithKeys("enter")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	quitLocked: key.NewBinding(key.WithKeys("ctrl+c", "esc")),
	copy:       key.NewBinding(key.WithKeys("c")),
	top:        key.NewBinding(key.WithKeys("g", "home")),
	bottom:     key.NewBinding(key.WithKeys("G", "end")),
}
