package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit     key.Binding
	refresh  key.Binding
	increase key.Binding
	withdraw key.Binding
	copy     key.Binding
	version  key.Binding
	enter    key.Binding
	esc      key.Binding
}

var keys = keyMap{
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	increase: key.NewBinding(key.WithKeys("i")),
	withdraw: key.NewBinding(key.WithKeys("w")),
	copy:     key.NewBinding(key.WithKeys("c")),
	version:  key.NewBinding(key.WithKeys("v")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
}
