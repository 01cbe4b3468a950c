package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOption is returned for an option identifier the panel does not know
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidOptionValue is returned when a value has the wrong type for its option
	ErrInvalidOptionValue = errors.New("invalid option value")
)

// OptionID identifies one of the panel settings exposed to the host
type OptionID string

// Option identifiers
const (
	OptionRegex         OptionID = "regex"
	OptionCaseSensitive OptionID = "case_sensitive"
	OptionWholeWord     OptionID = "whole_word"
	OptionBackward      OptionID = "backward"
	OptionHighlight     OptionID = "highlight"
	OptionSearchText    OptionID = "search_text"
	OptionReplaceText   OptionID = "replace_text"
)

// AllOptions lists every option identifier, flags first
var AllOptions = []OptionID{
	OptionRegex,
	OptionCaseSensitive,
	OptionWholeWord,
	OptionBackward,
	OptionHighlight,
	OptionSearchText,
	OptionReplaceText,
}

// IsFlag reports whether the option holds a boolean
func (id OptionID) IsFlag() bool {
	switch id {
	case OptionRegex, OptionCaseSensitive, OptionWholeWord, OptionBackward, OptionHighlight:
		return true
	}
	return false
}

// SearchOptions are the independent search flags
type SearchOptions struct {
	Regex         bool
	CaseSensitive bool
	WholeWord     bool
	Backward      bool
	Highlight     bool
}

// WithHighlight returns a copy with Highlight forced on
func (o SearchOptions) WithHighlight() SearchOptions {
	o.Highlight = true
	return o
}

// Flag returns the value of a flag option
func (o SearchOptions) Flag(id OptionID) (bool, error) {
	switch id {
	case OptionRegex:
		return o.Regex, nil
	case OptionCaseSensitive:
		return o.CaseSensitive, nil
	case OptionWholeWord:
		return o.WholeWord, nil
	case OptionBackward:
		return o.Backward, nil
	case OptionHighlight:
		return o.Highlight, nil
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownOption, id)
}

// SetFlag sets or clears a flag option
func (o *SearchOptions) SetFlag(id OptionID, on bool) error {
	switch id {
	case OptionRegex:
		o.Regex = on
	case OptionCaseSensitive:
		o.CaseSensitive = on
	case OptionWholeWord:
		o.WholeWord = on
	case OptionBackward:
		o.Backward = on
	case OptionHighlight:
		o.Highlight = on
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOption, id)
	}
	return nil
}

// Changed returns the flags that differ between o and other
func (o SearchOptions) Changed(other SearchOptions) []OptionID {
	var changed []OptionID
	for _, id := range AllOptions {
		if !id.IsFlag() {
			continue
		}
		a, _ := o.Flag(id)
		b, _ := other.Flag(id)
		if a != b {
			changed = append(changed, id)
		}
	}
	return changed
}

// OnlyHighlightChanged is true when Highlight is the single flag that differs.
// Several flags flipping at once, Highlight among them, does not count.
func OnlyHighlightChanged(prev, next SearchOptions) bool {
	changed := prev.Changed(next)
	return len(changed) == 1 && changed[0] == OptionHighlight
}

// Match is one located occurrence of a pattern
type Match struct {
	Line     int    // 0-based line index
	Start    int    // byte offset of the match in LineText
	End      int    // byte offset after the match
	LineText string // full text of the containing line
}

// Row returns the 1-based line number
func (m Match) Row() int {
	return m.Line + 1
}

// Text returns the matched span
func (m Match) Text() string {
	return m.LineText[m.Start:m.End]
}

// Severity of a results console line
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// MetaRow is the console metadata key holding a 1-based document line
const MetaRow = "row"

// LineMeta is metadata attached to a console line
type LineMeta map[string]int

// Row returns the row entry, if any
func (m LineMeta) Row() (int, bool) {
	if m == nil {
		return 0, false
	}
	row, ok := m[MetaRow]
	return row, ok
}

// Point is a pointer position relative to the first visible console row
type Point struct {
	X int
	Y int
}
