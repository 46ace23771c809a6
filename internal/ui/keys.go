package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown by the help bar. Dispatch itself lives in
// the input modes; these only describe it.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Deselect  key.Binding
	Range     key.Binding
	Filter    key.Binding
	Pay       key.Binding
	Cancel    key.Binding
	Receipt   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all/none")),
		Deselect:  key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "deselect visible")),
		Range:     key.NewBinding(key.WithKeys("V"), key.WithHelp("V", "select range")),
		Filter:    key.NewBinding(key.WithKeys("/", "F"), key.WithHelp("/", "filter")),
		Pay:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pay")),
		Cancel:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel")),
		Receipt:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "receipt")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ToggleAll, k.Filter, k.Pay, k.Cancel, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Receipt},
		{k.Toggle, k.ToggleAll, k.Deselect, k.Range},
		{k.Filter, k.Pay, k.Cancel},
		{k.Help, k.Quit},
	}
}
