package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeFind
	ModeReplace
	ModeResults
)

// String returns the mode name shown in the status bar
func (m Mode) String() string {
	switch m {
	case ModeFind:
		return "find"
	case ModeReplace:
		return "replace"
	case ModeResults:
		return "results"
	default:
		return "normal"
	}
}

// IsText reports whether the mode edits one of the search input fields
func (m Mode) IsText() bool {
	return m == ModeFind || m == ModeReplace
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	HasDocument() bool
	ResultCount() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
