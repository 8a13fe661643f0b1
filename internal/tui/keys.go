package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap is every binding the dashboard reacts to outside of forms.
type keyMap struct {
	Up, Down     key.Binding
	Toggle       key.Binding
	Add, Delete  key.Binding
	PrevHabit    key.Binding
	NextHabit    key.Binding
	PrevMonth    key.Binding
	NextMonth    key.Binding
	ThisMonth    key.Binding
	Edit, Cancel key.Binding
	NextTab      key.Binding
	PrevTab      key.Binding
	Theme        key.Binding
	Retry        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle today")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add habit")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete habit")),
		PrevHabit: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev habit")),
		NextHabit: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next habit")),
		PrevMonth: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "next month")),
		ThisMonth: key.NewBinding(key.WithKeys("."), key.WithHelp(".", "this month")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextTab:   key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab/→", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("⇧tab/←", "prev tab")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
		Retry:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "retry save")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Add, k.Delete},
		{k.PrevHabit, k.NextHabit, k.PrevMonth, k.NextMonth, k.ThisMonth},
		{k.NextTab, k.PrevTab, k.Edit, k.Theme, k.Retry, k.Help, k.Quit},
	}
}
