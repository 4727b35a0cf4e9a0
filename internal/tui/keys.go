package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	ToggleDone key.Binding
	Refresh    key.Binding

	Quit key.Binding
	Help key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open task"),
		),
		ToggleDone: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle complete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.ToggleDone, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.ToggleDone, k.Refresh},
		{k.Quit, k.Help},
	}
}

// bindings while the task overlay is open
type overlayKeyMap struct {
	EditName        key.Binding
	EditDescription key.Binding
	NextField       key.Binding
	Menu            key.Binding
	MenuUp          key.Binding
	MenuDown        key.Binding
	MenuSelect      key.Binding

	Back         key.Binding
	Save         key.Binding
	HideKeyboard key.Binding

	RequestClose key.Binding // viewing: esc or q
	Cancel       key.Binding // editing: esc only, q is text
	Close        key.Binding
}

func defaultOverlayKeyMap() overlayKeyMap {
	return overlayKeyMap{
		EditName: key.NewBinding(
			key.WithKeys("e", "i"),
			key.WithHelp("e", "edit name"),
		),
		EditDescription: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "edit description"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch field"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		MenuUp: key.NewBinding(
			key.WithKeys("up", "k"),
		),
		MenuDown: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		MenuSelect: key.NewBinding(
			key.WithKeys("enter"),
		),

		Back: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "back"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		HideKeyboard: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "hide keyboard"),
		),

		RequestClose: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "back/close"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel edit"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close"),
		),
	}
}

func (k overlayKeyMap) viewHelp() []key.Binding {
	return []key.Binding{k.EditName, k.EditDescription, k.Menu, k.RequestClose}
}

func (k overlayKeyMap) editHelp() []key.Binding {
	return []key.Binding{k.Save, k.Cancel, k.NextField, k.HideKeyboard, k.Close}
}
