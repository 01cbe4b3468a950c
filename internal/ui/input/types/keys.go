package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding of the host UI. Modes match against it and the
// help view renders it.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	Find       key.Binding
	Replace    key.Binding
	Results    key.Binding
	FindNext   key.Binding
	FindPrev   key.Binding
	NextDoc    key.Binding
	PrevDoc    key.Binding
	Save       key.Binding
	Close      key.Binding
	Help       key.Binding
	HelpPager  key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Back       key.Binding
	Activate   key.Binding
	ApplyAll   key.Binding
	SwitchText key.Binding

	ToggleRegex     key.Binding
	ToggleCase      key.Binding
	ToggleWord      key.Binding
	ToggleBackward  key.Binding
	ToggleHighlight key.Binding

	Jump         key.Binding
	Copy         key.Binding
	ResultsPager key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),

		Find:       key.NewBinding(key.WithKeys("/", "ctrl+f"), key.WithHelp("/", "find")),
		Replace:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "replace")),
		Results:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "results")),
		FindNext:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
		FindPrev:   key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous match")),
		NextDoc:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next document")),
		PrevDoc:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous document")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Close:      key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close document")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		HelpPager:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help in pager")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit without saving")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Activate:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "find/replace")),
		ApplyAll:   key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "all")),
		SwitchText: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field")),

		ToggleRegex:     key.NewBinding(key.WithKeys("alt+r"), key.WithHelp("alt+r", "regex")),
		ToggleCase:      key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "match case")),
		ToggleWord:      key.NewBinding(key.WithKeys("alt+w"), key.WithHelp("alt+w", "whole word")),
		ToggleBackward:  key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "backward")),
		ToggleHighlight: key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "highlight")),

		Jump:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go to line")),
		Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy line")),
		ResultsPager: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "results in pager")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Find, k.Replace, k.Results, k.FindNext, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Find, k.Replace, k.Results, k.FindNext, k.FindPrev, k.NextDoc, k.PrevDoc, k.Close},
		{k.Activate, k.ApplyAll, k.SwitchText, k.ToggleRegex, k.ToggleCase, k.ToggleWord, k.ToggleBackward, k.ToggleHighlight},
		{k.Jump, k.Copy, k.ResultsPager, k.Save, k.Help, k.HelpPager, k.Back, k.Quit},
	}
}
