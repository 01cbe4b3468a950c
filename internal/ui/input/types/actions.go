package types

import "findpanel/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type HelpPagerAction struct{}

func (a HelpPagerAction) Type() string { return "help_pager" }

// SearchNavigateAction repeats the last search from the editor
type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

// Document actions
type SwitchDocumentAction struct {
	Delta int
}

func (a SwitchDocumentAction) Type() string { return "switch_document" }

type SaveAction struct{}

func (a SaveAction) Type() string { return "save" }

type CloseDocumentAction struct{}

func (a CloseDocumentAction) Type() string { return "close_document" }

// Search input actions
type ActivateAction struct {
	All bool
}

func (a ActivateAction) Type() string { return "activate" }

type ToggleOptionAction struct {
	Option domain.OptionID
}

func (a ToggleOptionAction) Type() string { return "toggle_option" }

// Results actions
type JumpToResultAction struct{}

func (a JumpToResultAction) Type() string { return "jump_to_result" }

type CopyResultAction struct{}

func (a CopyResultAction) Type() string { return "copy_result" }

type ResultsPagerAction struct{}

func (a ResultsPagerAction) Type() string { return "results_pager" }
