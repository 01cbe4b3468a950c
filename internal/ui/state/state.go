package state

// Pane identifies which part of the screen has keyboard focus
type Pane int

const (
	PaneEditor Pane = iota
	PaneSearch
	PaneResults
)

// String returns the pane name
func (p Pane) String() string {
	switch p {
	case PaneSearch:
		return "search"
	case PaneResults:
		return "results"
	default:
		return "editor"
	}
}

// StatusKind selects how the status message is styled
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// AppState contains the host UI state that is not owned by a component
type AppState struct {
	// Layout
	Width         int
	Height        int
	ResultsHeight int // rows given to the results console
	Focus         Pane

	// Status bar
	StatusMessage string
	StatusKind    StatusKind

	// Overlays
	ShowHelp bool
}

// NewAppState creates a new application state
func NewAppState(resultsHeight int) *AppState {
	return &AppState{ResultsHeight: resultsHeight}
}

// SetStatus replaces the status message
func (s *AppState) SetStatus(kind StatusKind, message string) {
	s.StatusKind = kind
	s.StatusMessage = message
}

// EditorHeight is the number of rows left for the editor pane. The search
// input takes two rows; the tab bar, the status bar and the two rules one each.
func (s *AppState) EditorHeight() int {
	return max(1, s.Height-s.ResultsHeight-6)
}
