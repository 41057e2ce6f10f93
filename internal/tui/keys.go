package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	approve key.Binding
	revoke  key.Binding
	delete  key.Binding
	refresh key.Binding
	copy    key.Binding
	logout  key.Binding
	quit    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	approve: key.NewBinding(key.WithKeys("a")),
	revoke:  key.NewBinding(key.WithKeys("r")),
	delete:  key.NewBinding(key.WithKeys("ctrl+d")),
	refresh: key.NewBinding(key.WithKeys("s")),
	copy:    key.NewBinding(key.WithKeys("c")),
	logout:  key.NewBinding(key.WithKeys("l")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
