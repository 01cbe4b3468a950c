// Package editorview renders the active document with its search matches marked.
package editorview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muesli/reflow/truncate"

	"findpanel/internal/document"
	"findpanel/internal/domain"
	"findpanel/internal/ui/services/navigation"
	"findpanel/internal/ui/views"
)

// Model renders a document. The viewport follows the document cursor.
type Model struct {
	doc         *document.Document
	nav         *navigation.Service
	styles      *views.Styles
	width       int
	lineNumbers bool
}

// New creates an editor view
func New(styles *views.Styles, lineNumbers bool) *Model {
	m := &Model{
		nav:         navigation.NewService(),
		styles:      styles,
		width:       80,
		lineNumbers: lineNumbers,
	}
	m.nav.SetCountFunction(func() int {
		if m.doc == nil {
			return 0
		}
		return m.doc.LineCount()
	})
	return m
}

// SetDocument switches the rendered document
func (m *Model) SetDocument(doc *document.Document) {
	m.doc = doc
	m.nav.Reset()
	m.follow()
}

// Document returns the rendered document
func (m *Model) Document() *document.Document {
	return m.doc
}

// SetSize sets the visible area
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.nav.SetViewportHeight(height)
}

// Offset returns the first visible line
func (m *Model) Offset() int {
	return m.nav.GetViewportOffset()
}

// follow keeps the document cursor inside the viewport
func (m *Model) follow() {
	if m.doc == nil {
		return
	}
	m.nav.MoveToIndex(m.doc.Cursor().Line)
}

// View renders the visible part of the document
func (m *Model) View() string {
	height := m.nav.GetViewportHeight()
	if m.doc == nil {
		return m.styles.Dim.Render("No document open") + strings.Repeat("\n", max(height-1, 0))
	}
	m.follow()

	byLine := make(map[int][]domain.Match)
	for _, h := range m.doc.Highlights() {
		byLine[h.Line] = append(byLine[h.Line], h)
	}
	current := m.doc.Current()

	gutterWidth := len(fmt.Sprint(m.doc.LineCount()))
	offset := m.nav.GetViewportOffset()
	cursor := m.doc.Cursor().Line
	lines := m.doc.Lines()

	rows := make([]string, 0, height)
	for i := offset; i < len(lines) && i < offset+height; i++ {
		var b strings.Builder
		if m.lineNumbers {
			marker := " "
			if i == cursor {
				marker = ">"
			}
			b.WriteString(m.styles.Gutter.Render(fmt.Sprintf("%s%*d ", marker, gutterWidth, i+1)))
		}
		b.WriteString(m.renderLine(lines[i], byLine[i], current, i))
		rows = append(rows, truncate.StringWithTail(b.String(), uint(max(m.width, 1)), "…"))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

// renderLine styles the highlighted spans of one line; the current match
// takes precedence over a plain highlight.
func (m *Model) renderLine(text string, highlights []domain.Match, current *domain.Match, line int) string {
	spans := highlights
	if current != nil && current.Line == line {
		spans = append([]domain.Match{*current}, spans...)
	}
	if len(spans) == 0 {
		return text
	}
	sort.SliceStable(spans, func(a, b int) bool { return spans[a].Start < spans[b].Start })

	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s.Start < pos || s.End > len(text) {
			continue
		}
		b.WriteString(text[pos:s.Start])
		style := m.styles.Highlight
		if current != nil && current.Line == line && current.Start == s.Start {
			style = m.styles.CurrentMatch
		}
		b.WriteString(style.Render(text[s.Start:s.End]))
		pos = s.End
	}
	b.WriteString(text[pos:])
	return b.String()
}
