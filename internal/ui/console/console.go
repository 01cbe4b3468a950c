// Package console is the results panel: a scrollable list of styled lines,
// each optionally tagged with metadata such as the document row it refers to.
package console

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"findpanel/internal/domain"
	"findpanel/internal/ui/services/navigation"
	"findpanel/internal/ui/views"
)

// Line is one entry of the results panel
type Line struct {
	Markup   string
	Severity domain.Severity
	Meta     domain.LineMeta
}

// Plain returns the line text without styling
func (l Line) Plain() string {
	return ansi.Strip(l.Markup)
}

// Model is the results console widget
type Model struct {
	lines  []Line
	nav    *navigation.Service
	styles *views.Styles
	width  int

	// copyFn writes to the system clipboard; replaced in tests
	copyFn func(string) error
}

// New creates an empty console
func New(styles *views.Styles) *Model {
	m := &Model{
		nav:    navigation.NewService(),
		styles: styles,
		width:  80,
		copyFn: clipboard.WriteAll,
	}
	m.nav.SetCountFunction(func() int { return len(m.lines) })
	return m
}

// Clear removes every line
func (m *Model) Clear() {
	m.lines = nil
	m.nav.Reset()
}

// AppendLine adds a line at the bottom
func (m *Model) AppendLine(markup string, severity domain.Severity, meta domain.LineMeta) {
	m.lines = append(m.lines, Line{Markup: markup, Severity: severity, Meta: meta})
}

// LineAt returns the line under p, where p.Y counts from the first visible row
func (m *Model) LineAt(p domain.Point) (Line, bool) {
	if p.Y < 0 || p.Y >= m.nav.GetViewportHeight() {
		return Line{}, false
	}
	i := m.nav.GetViewportOffset() + p.Y
	if i >= len(m.lines) {
		return Line{}, false
	}
	return m.lines[i], true
}

// MetaAt returns the metadata of the line under p
func (m *Model) MetaAt(p domain.Point) (domain.LineMeta, bool) {
	line, ok := m.LineAt(p)
	if !ok || line.Meta == nil {
		return nil, false
	}
	return line.Meta, true
}

// ScrollToTop moves the cursor to the first line
func (m *Model) ScrollToTop() {
	m.nav.Reset()
}

// EnsureCursorVisible scrolls so that the cursor line is on screen
func (m *Model) EnsureCursorVisible() {
	m.nav.EnsureVisible()
}

// Move moves the cursor
func (m *Model) Move(direction navigation.Direction) bool {
	return m.nav.Navigate(direction)
}

// CursorPoint returns the cursor position relative to the first visible row
func (m *Model) CursorPoint() domain.Point {
	return domain.Point{Y: m.nav.GetCursor() - m.nav.GetViewportOffset()}
}

// CursorLine returns the line under the cursor
func (m *Model) CursorLine() (Line, bool) {
	return m.LineAt(m.CursorPoint())
}

// Lines returns a copy of all lines
func (m *Model) Lines() []Line {
	out := make([]Line, len(m.lines))
	copy(out, m.lines)
	return out
}

// Len returns the number of lines
func (m *Model) Len() int {
	return len(m.lines)
}

// PlainText returns every line without styling, one per row
func (m *Model) PlainText() string {
	var b strings.Builder
	for _, l := range m.lines {
		b.WriteString(severityPrefix(l.Severity))
		b.WriteString(l.Plain())
		b.WriteByte('\n')
	}
	return b.String()
}

// CopyCursorLine puts the plain text of the cursor line on the clipboard
func (m *Model) CopyCursorLine() (string, error) {
	line, ok := m.CursorLine()
	if !ok {
		return "", fmt.Errorf("no line under cursor")
	}
	text := line.Plain()
	if err := m.copyFn(text); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return text, nil
}

// SetSize sets the visible area
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.nav.SetViewportHeight(height)
}

// View renders the visible lines. The cursor line is marked when focused.
func (m *Model) View(focused bool) string {
	height := m.nav.GetViewportHeight()
	offset := m.nav.GetViewportOffset()
	cursor := m.nav.GetCursor()

	rows := make([]string, 0, height)
	for i := offset; i < len(m.lines) && i < offset+height; i++ {
		l := m.lines[i]
		text := l.Markup
		if l.Severity != domain.SeverityInfo {
			text = m.styles.SeverityStyle(l.Severity).Render(severityPrefix(l.Severity) + l.Plain())
		}
		text = truncate.StringWithTail(text, uint(max(m.width, 1)), "…")
		if focused && i == cursor {
			text = m.styles.SelectionBg.Render(ansi.Strip(text))
		}
		rows = append(rows, text)
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

func severityPrefix(s domain.Severity) string {
	switch s {
	case domain.SeverityWarning:
		return "! "
	case domain.SeverityError:
		return "x "
	default:
		return ""
	}
}
