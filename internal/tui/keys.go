package tui

import "github.com/charmbracelet/bubbles/key"

type tableKeys struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Search   key.Binding
	Clear    key.Binding
	SortName key.Binding
	SortProg key.Binding
	SortGPA  key.Binding
	SortDate key.Binding
	View     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newTableKeys() tableKeys {
	return tableKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		SortName: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "sort name")),
		SortProg: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "sort program")),
		SortGPA:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sort gpa")),
		SortDate: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "sort applied")),
		View:     key.NewBinding(key.WithKeys("enter", "v"), key.WithHelp("enter", "view")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k tableKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.View, k.SortName, k.SortDate, k.Help, k.Quit}
}

func (k tableKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Search, k.Clear, k.View},
		{k.SortName, k.SortProg, k.SortGPA, k.SortDate},
		{k.Help, k.Quit},
	}
}

type searchKeys struct {
	Done   key.Binding
	Cancel key.Binding
	Up     key.Binding
	Down   key.Binding
}

func newSearchKeys() searchKeys {
	return searchKeys{
		Done:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave search")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	}
}

func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Done, k.Cancel, k.Up, k.Down}
}

func (k searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type modalKeys struct {
	Close    key.Binding
	Download key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

func newModalKeys() modalKeys {
	return modalKeys{
		Close:    key.NewBinding(key.WithKeys("esc", "q", "x"), key.WithHelp("esc", "close")),
		Download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download application")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdn", "page down")),
	}
}

func (k modalKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Close, k.Download, k.Up, k.Down}
}

func (k modalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Close, k.Download}, {k.Up, k.Down, k.PageUp, k.PageDown}}
}
