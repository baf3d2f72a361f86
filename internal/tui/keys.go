package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	menu      key.Binding
	close     key.Binding
	up        key.Binding
	down      key.Binding
	open      key.Binding
	accordion key.Binding
	quit      key.Binding
}

var keys = keyMap{
	menu: key.NewBinding(
		key.WithKeys("tab", "m"),
		key.WithHelp("tab/m", "menu"),
	),
	close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close menu"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open section"),
	),
	accordion: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "expand item"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) help(sidebarOpen bool) []key.Binding {
	if sidebarOpen {
		return []key.Binding{k.up, k.down, k.open, k.close, k.quit}
	}
	return []key.Binding{k.menu, k.accordion, k.quit}
}
