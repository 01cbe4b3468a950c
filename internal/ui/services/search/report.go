package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"findpanel/internal/domain"
	"findpanel/internal/textsearch"
)

// Styles for the markup written to the results console and the label
type Styles struct {
	Pattern     lipgloss.Style
	Row         lipgloss.Style
	Match       lipgloss.Style
	Replacement lipgloss.Style
	Invalid     lipgloss.Style
}

// DefaultStyles returns the styles used by the panel
func DefaultStyles() *Styles {
	return &Styles{
		Pattern:     lipgloss.NewStyle().Italic(true).Bold(true),
		Row:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Replacement: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Invalid:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}

const invalidRegexLabel = "Invalid regular expression!"

func patternKind(opts domain.SearchOptions) string {
	if opts.Regex {
		return "regular expression"
	}
	return "pattern"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func countLabel(n int) string {
	switch n {
	case 0:
		return "No occurrences"
	case 1:
		return "1 occurrence"
	default:
		return fmt.Sprintf("%d occurrences", n)
	}
}

func (st *Styles) pattern(text string, opts domain.SearchOptions) string {
	return patternKind(opts) + " " + st.Pattern.Render(text)
}

func (st *Styles) notFound(text string, opts domain.SearchOptions) string {
	return fmt.Sprintf("No occurrences of %s found", st.pattern(text, opts))
}

func (st *Styles) nothingReplaced(text string, opts domain.SearchOptions) string {
	return fmt.Sprintf("No occurrences of %s found, nothing has been replaced", st.pattern(text, opts))
}

func (st *Styles) summary(n int, text string, opts domain.SearchOptions) string {
	return fmt.Sprintf("%d %s found in document matching %s",
		n, plural(n, "occurrence", "occurrences"), st.pattern(text, opts))
}

func (st *Styles) replaced(n int, text string, opts domain.SearchOptions) string {
	return fmt.Sprintf("%d %s of %s %s been replaced",
		n, plural(n, "occurrence", "occurrences"), st.pattern(text, opts), plural(n, "has", "have"))
}

// detail renders one match line: the row, the line with the match marked and,
// when replacement is set, a preview of the line after replacing the match.
func (st *Styles) detail(m domain.Match, preview string, withPreview bool) string {
	line := m.LineText
	before, after := line[:m.Start], line[m.End:]

	var b strings.Builder
	b.WriteString(st.Row.Render(strconv.Itoa(m.Row()) + ":"))
	b.WriteByte(' ')
	b.WriteString(before)
	b.WriteString(st.Match.Render(m.Text()))
	b.WriteString(after)
	if withPreview {
		b.WriteString(" -> ")
		b.WriteString(before)
		b.WriteString(st.Replacement.Render(preview))
		b.WriteString(after)
	}
	return b.String()
}

// previewer computes replacement previews for the matches of one listing
type previewer struct {
	matcher     *textsearch.Matcher
	replacement string
	regex       bool
}

func newPreviewer(text, replacement string, opts domain.SearchOptions) previewer {
	p := previewer{replacement: replacement, regex: opts.Regex}
	if opts.Regex {
		// on failure the preview is the raw template
		if m, err := textsearch.Compile(text, opts); err == nil {
			p.matcher = m
		}
	}
	return p
}

func (p previewer) preview(m domain.Match) string {
	if !p.regex || p.matcher == nil {
		return p.replacement
	}
	return textsearch.Expand(p.matcher.Regexp(), m.Text(), p.replacement)
}
