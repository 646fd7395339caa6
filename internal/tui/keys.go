package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Add        key.Binding
	AddBatch   key.Binding
	ToggleMode key.Binding
	Convert    key.Binding
	Copy       key.Binding
	RemoveLast key.Binding
	Clear      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		AddBatch:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "add lines")),
		ToggleMode: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "single/batch")),
		Convert:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "convert all")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		RemoveLast: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove last")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.ToggleMode, k.Convert, k.Copy, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.AddBatch, k.ToggleMode},
		{k.Convert, k.Copy, k.RemoveLast, k.Clear},
		{k.Help, k.Quit},
	}
}

// batchShortHelp swaps enter for ctrl+s in the footer while the batch box has focus.
func (k keyMap) batchShortHelp() []key.Binding {
	return []key.Binding{k.AddBatch, k.ToggleMode, k.Convert, k.Copy, k.Clear, k.Help, k.Quit}
}

func keyMatches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}
