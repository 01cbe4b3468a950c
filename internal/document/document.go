// Package document holds an in-memory text document with the search
// capability the panel drives.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"findpanel/internal/domain"
	"findpanel/internal/eventbus"
)

// ErrNoPath is returned when saving a document that was never backed by a file
var ErrNoPath = errors.New("document has no file path")

// Position is a cursor location, 0-based line and byte column
type Position struct {
	Line int
	Col  int
}

// Before reports whether p comes strictly before other
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// Document is a line-oriented text buffer. It is not safe for concurrent
// use; the host drives it from its single update loop.
type Document struct {
	name  string
	path  string
	lines []string
	bus   eventbus.EventBus

	cursor     Position
	selection  *domain.Match // last match found by SearchNext
	marked     bool          // selection is visibly highlighted
	highlights []domain.Match
	dirty      bool
}

// New creates a document from text. bus may be nil.
func New(name, text string, bus eventbus.EventBus) *Document {
	return &Document{
		name:  name,
		lines: strings.Split(text, "\n"),
		bus:   bus,
	}
}

// Open reads a document from disk
func Open(path string, bus eventbus.EventBus) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	d := New(filepath.Base(path), string(data), bus)
	d.path = path
	return d, nil
}

// Name returns the display name
func (d *Document) Name() string {
	return d.name
}

// Path returns the backing file path, empty for scratch documents
func (d *Document) Path() string {
	return d.path
}

// Dirty reports unsaved modifications
func (d *Document) Dirty() bool {
	return d.dirty
}

// Text returns the whole document
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// Lines returns a copy of the document lines
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// LineCount returns the number of lines
func (d *Document) LineCount() int {
	return len(d.lines)
}

// SetText replaces the whole document content
func (d *Document) SetText(text string) {
	d.lines = strings.Split(text, "\n")
	d.cursor = d.clamp(d.cursor)
	d.contentChanged()
}

// Save writes the document to its path
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	if err := os.WriteFile(d.path, []byte(d.Text()), 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	d.dirty = false
	if d.bus != nil {
		d.bus.Publish(domain.DocumentSavedEvent{Path: d.path})
	}
	return nil
}

// Cursor returns the cursor position
func (d *Document) Cursor() Position {
	return d.cursor
}

// MoveCursorBy moves the cursor vertically, clamped to the document
func (d *Document) MoveCursorBy(lines int) {
	d.cursor = d.clamp(Position{Line: d.cursor.Line + lines})
}

// MoveCursorTo puts the cursor at the start of a 0-based line
func (d *Document) MoveCursorTo(line int) {
	d.cursor = d.clamp(Position{Line: line})
}

// ScrollToLine moves the cursor to a 1-based row
func (d *Document) ScrollToLine(row int) {
	d.MoveCursorTo(row - 1)
}

// SetFocus asks the host to give this document input focus
func (d *Document) SetFocus() {
	if d.bus != nil {
		d.bus.Publish(domain.EditorFocusRequestedEvent{Editor: d})
	}
}

// Search returns the document's search capability
func (d *Document) Search() domain.Searcher {
	return d
}

// Current returns the highlighted current match, if any
func (d *Document) Current() *domain.Match {
	if !d.marked || d.selection == nil {
		return nil
	}
	m := *d.selection
	return &m
}

// Highlights returns the matches marked by the last highlighting search
func (d *Document) Highlights() []domain.Match {
	return d.highlights
}

func (d *Document) clamp(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(d.lines) {
		p.Line = len(d.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Col > len(d.lines[p.Line]) {
		p.Col = len(d.lines[p.Line])
	}
	return p
}

// spliceLine replaces line i with text, which may span several lines.
// It returns the number of lines text occupies.
func (d *Document) spliceLine(i int, text string) int {
	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		d.lines[i] = text
		return 1
	}
	lines := make([]string, 0, len(d.lines)+len(parts)-1)
	lines = append(lines, d.lines[:i]...)
	lines = append(lines, parts...)
	lines = append(lines, d.lines[i+1:]...)
	d.lines = lines
	return len(parts)
}

// contentChanged drops position-dependent state and notifies listeners
func (d *Document) contentChanged() {
	d.dirty = true
	d.selection = nil
	d.marked = false
	d.highlights = nil
	if d.bus != nil {
		d.bus.Publish(domain.DocumentContentChangedEvent{Editor: d})
	}
}
