package search

import (
	"findpanel/internal/domain"
)

// SearchInput is the widget holding the live search text, replace text and
// option flags. It is authoritative for what the user sees.
type SearchInput interface {
	SearchText() string
	ReplaceText() string
	Options() domain.SearchOptions
	SetOptions(opts domain.SearchOptions)
	SetSearchText(text string)
	SetReplaceText(text string)
	SetResultsInformation(markup string)
}

// Console is the results panel
type Console interface {
	Clear()
	AppendLine(markup string, severity domain.Severity, meta domain.LineMeta)
	// MetaAt returns the metadata of the line under p
	MetaAt(p domain.Point) (domain.LineMeta, bool)
	ScrollToTop()
	EnsureCursorVisible()
}

// State holds the per-session search state
type State struct {
	// CurrentOptions are the options used by the last handler. Never read
	// them for display; SearchInput.Options is the live value.
	CurrentOptions domain.SearchOptions
	// Editor is the active editor, nil when no document is open
	Editor domain.Editor
}
