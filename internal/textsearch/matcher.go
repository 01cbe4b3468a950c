// Package textsearch turns panel search settings into line matchers and
// expands replacement templates.
package textsearch

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"findpanel/internal/domain"
)

// ErrInvalidPattern wraps regular expression compile failures
var ErrInvalidPattern = errors.New("invalid regular expression")

// Matcher finds occurrences of one pattern in single lines of text
type Matcher struct {
	re        *regexp.Regexp
	wholeWord bool
	empty     bool
}

// Compile builds a matcher for pattern under opts. Literal patterns are
// quoted; Regex patterns are used as-is. An empty pattern compiles to a
// matcher that never matches.
func Compile(pattern string, opts domain.SearchOptions) (*Matcher, error) {
	if pattern == "" {
		return &Matcher{empty: true}, nil
	}

	expr := pattern
	if !opts.Regex {
		expr = regexp.QuoteMeta(pattern)
	}
	if !opts.CaseSensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &Matcher{re: re, wholeWord: opts.WholeWord}, nil
}

// Regexp returns the compiled expression, nil for an empty pattern
func (m *Matcher) Regexp() *regexp.Regexp {
	return m.re
}

// FindAll returns submatch index slices for every non-empty match in line,
// in the layout of regexp.FindAllStringSubmatchIndex.
func (m *Matcher) FindAll(line string) [][]int {
	if m.empty {
		return nil
	}
	var out [][]int
	for _, loc := range m.re.FindAllStringSubmatchIndex(line, -1) {
		if loc[0] == loc[1] {
			continue
		}
		if m.wholeWord && !isWholeWord(line, loc[0], loc[1]) {
			continue
		}
		out = append(out, loc)
	}
	return out
}

// isWholeWord checks the characters on both sides of line[start:end]
func isWholeWord(line string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(line[:start])
		if isWordChar(r) {
			return false
		}
	}
	if end < len(line) {
		r, _ := utf8.DecodeRuneInString(line[end:])
		if isWordChar(r) {
			return false
		}
	}
	return true
}

// isWordChar returns true if r is a word character (letter, digit, or underscore).
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
