// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the Archive screen bindings.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	back    key.Binding
	tab     key.Binding
	search  key.Binding
	refresh key.Binding
	rate    key.Binding
	copy    key.Binding
	delete  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	back:    key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "shift+tab")),
	search:  key.NewBinding(key.WithKeys("/")),
	refresh: key.NewBinding(key.WithKeys("r")),
	rate:    key.NewBinding(key.WithKeys("s")),
	copy:    key.NewBinding(key.WithKeys("c")),
	delete:  key.NewBinding(key.WithKeys("d")),
}
