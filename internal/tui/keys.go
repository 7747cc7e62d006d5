package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	moveUp    key.Binding
	moveDown  key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	signOut   key.Binding
	newItem   key.Binding
	more      key.Binding
	edit      key.Binding
	pin       key.Binding
	reminder  key.Binding
	filter    key.Binding
	facets    key.Binding
	toggle    key.Binding
	search    key.Binding
	stats     key.Binding
	profile   key.Binding
	reminders key.Binding
	transfer  key.Binding
	taxonomy  key.Binding
	clearAll  key.Binding
	copy      key.Binding
	add       key.Binding
	remove    key.Binding
	period    key.Binding
	rankBy    key.Binding
	sortBy    key.Binding
	template  key.Binding
	exportAll key.Binding
	copyCSV   key.Binding
	importCSV key.Binding
	version   key.Binding
	yes       key.Binding
	no        key.Binding
}

// Letter bindings are only consulted on screens without a focused text input.
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	moveUp:    key.NewBinding(key.WithKeys("K", "shift+up")),
	moveDown:  key.NewBinding(key.WithKeys("J", "shift+down")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	signOut:   key.NewBinding(key.WithKeys("L")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	more:      key.NewBinding(key.WithKeys("m")),
	edit:      key.NewBinding(key.WithKeys("e")),
	pin:       key.NewBinding(key.WithKeys("p")),
	reminder:  key.NewBinding(key.WithKeys("r")),
	filter:    key.NewBinding(key.WithKeys("f")),
	facets:    key.NewBinding(key.WithKeys("F")),
	toggle:    key.NewBinding(key.WithKeys(" ", "x")),
	search:    key.NewBinding(key.WithKeys("/")),
	stats:     key.NewBinding(key.WithKeys("s")),
	profile:   key.NewBinding(key.WithKeys("o")),
	reminders: key.NewBinding(key.WithKeys("t")),
	transfer:  key.NewBinding(key.WithKeys("i")),
	taxonomy:  key.NewBinding(key.WithKeys("c")),
	clearAll:  key.NewBinding(key.WithKeys("X")),
	copy:      key.NewBinding(key.WithKeys("y")),
	add:       key.NewBinding(key.WithKeys("a")),
	remove:    key.NewBinding(key.WithKeys("d")),
	period:    key.NewBinding(key.WithKeys("g")),
	rankBy:    key.NewBinding(key.WithKeys("b")),
	sortBy:    key.NewBinding(key.WithKeys("a")),
	template:  key.NewBinding(key.WithKeys("ctrl+t")),
	exportAll: key.NewBinding(key.WithKeys("ctrl+e")),
	copyCSV:   key.NewBinding(key.WithKeys("ctrl+y")),
	importCSV: key.NewBinding(key.WithKeys("enter")),
	version:   key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
