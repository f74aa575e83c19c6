// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next      key.Binding
	prev      key.Binding
	submit    key.Binding
	dismiss   key.Binding
	quit      key.Binding
	buildInfo key.Binding
}

// Letters are not bound: every printable key belongs to the focused field.
var keys = keyMap{
	next:      key.NewBinding(key.WithKeys("tab", "down")),
	prev:      key.NewBinding(key.WithKeys("shift+tab", "up")),
	submit:    key.NewBinding(key.WithKeys("enter")),
	dismiss:   key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
}
