package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	NameFilter key.Binding
	DateFilter key.Binding
	Price      key.Binding
	Rating     key.Binding
	Categories key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	Reset      key.Binding
	Export     key.Binding
	NextField  key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NameFilter: key.NewBinding(key.WithKeys("/", "n"), key.WithHelp("/", "name")),
		DateFilter: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "date")),
		Price:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "price")),
		Rating:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rating")),
		Categories: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Delete:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Reset:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset filters")),
		Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Back:       key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NameFilter, k.DateFilter, k.Price, k.Rating, k.Categories, k.Delete, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Delete, k.Export},
		{k.NameFilter, k.DateFilter, k.NextField, k.Back},
		{k.Price, k.Rating, k.Categories, k.Toggle},
		{k.Reset, k.Quit},
	}
}
