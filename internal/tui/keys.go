package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	Search      key.Binding
	LeaveSearch key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	View        key.Binding
	Add         key.Binding
	Close       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		LeaveSearch: key.NewBinding(key.WithKeys("esc", "tab", "enter", "down")),
		Up:          key.NewBinding(key.WithKeys("up", "k")),
		Down:        key.NewBinding(key.WithKeys("down", "j")),
		Left:        key.NewBinding(key.WithKeys("left", "h")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←↓↑→", "move")),
		View:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view details")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to cart")),
		Close:       key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close")),
	}
}

func (k keyMap) gridHelp() []key.Binding {
	return []key.Binding{k.Search, k.Right, k.View, k.Add, k.Quit}
}

func (k keyMap) modalHelp() []key.Binding {
	return []key.Binding{k.Add, k.Close}
}
