package domain

// Searcher is the search capability of an open document
type Searcher interface {
	SearchAll(pattern string, opts SearchOptions) ([]Match, error)
	SearchNext(pattern string, opts SearchOptions) (*Match, error)
	ReplaceAll(pattern, replacement string, opts SearchOptions) (int, error)
	ReplaceNext(pattern, replacement string, opts SearchOptions) (bool, error)
	ClearCurrent()
}

// Editor is the editing surface the panel drives
type Editor interface {
	Search() Searcher
	// ScrollToLine brings the 1-based row into view and puts the cursor on it
	ScrollToLine(row int)
	SetFocus()
}
