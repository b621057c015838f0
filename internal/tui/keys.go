package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit  key.Binding
	Newline key.Binding
	Clear   key.Binding
	Focus   key.Binding
	Load    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "analyze")),
		Newline: key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "newline")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear"), key.WithDisabled()),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "examples")),
		Load:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load example")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// editorHelp and examplesHelp feed bubbles/help for each focus.
type editorHelp struct{ k keyMap }

func (h editorHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Submit, h.k.Newline, h.k.Clear, h.k.Focus, h.k.Quit}
}

func (h editorHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

type examplesHelp struct{ k keyMap }

func (h examplesHelp) ShortHelp() []key.Binding {
	focus := h.k.Focus
	focus.SetHelp("tab", "editor")
	return []key.Binding{h.k.Load, focus, h.k.Back, h.k.Quit}
}

func (h examplesHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
