package document

import (
	"strings"

	"findpanel/internal/domain"
	"findpanel/internal/textsearch"
)

var (
	_ domain.Editor   = (*Document)(nil)
	_ domain.Searcher = (*Document)(nil)
)

// SearchAll returns every match in document order. With Highlight the
// matches are kept as the document highlights, otherwise highlights are cleared.
func (d *Document) SearchAll(pattern string, opts domain.SearchOptions) ([]domain.Match, error) {
	m, err := textsearch.Compile(pattern, opts)
	if err != nil {
		d.highlights = nil
		return nil, err
	}
	matches := d.findAll(m)
	if opts.Highlight {
		d.highlights = matches
	} else {
		d.highlights = nil
	}
	return matches, nil
}

// SearchNext finds the match after the current one (or the cursor), wrapping
// around the document. Backward searches toward the start.
func (d *Document) SearchNext(pattern string, opts domain.SearchOptions) (*domain.Match, error) {
	m, err := textsearch.Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	matches := d.findAll(m)
	if len(matches) == 0 {
		d.selection = nil
		d.marked = false
		return nil, nil
	}

	var found domain.Match
	if opts.Backward {
		found = d.previous(matches)
	} else {
		found = d.next(matches)
	}

	d.selection = &found
	d.marked = opts.Highlight
	d.cursor = Position{Line: found.Line, Col: found.Start}
	result := found
	return &result, nil
}

// ReplaceNext replaces the current match, or the next one from the cursor
func (d *Document) ReplaceNext(pattern, replacement string, opts domain.SearchOptions) (bool, error) {
	m, err := textsearch.Compile(pattern, opts)
	if err != nil {
		return false, err
	}
	matches := d.findAll(m)
	if len(matches) == 0 {
		return false, nil
	}

	target, ok := d.selected(matches)
	if !ok {
		if opts.Backward {
			target = d.previous(matches)
		} else {
			target = d.next(matches)
		}
	}

	line := d.lines[target.Line]
	var loc []int
	for _, l := range m.FindAll(line) {
		if l[0] == target.Start {
			loc = l
			break
		}
	}
	if loc == nil {
		return false, nil
	}

	repl := replacement
	if opts.Regex {
		repl = textsearch.ExpandGroups(submatches(line, loc), replacement)
	}

	n := d.spliceLine(target.Line, line[:loc[0]]+repl+line[loc[1]:])
	last := strings.LastIndex(repl, "\n")
	switch {
	case opts.Backward:
		// before the inserted text so the next match is an earlier one
		d.cursor = Position{Line: target.Line, Col: loc[0]}
	case last < 0:
		d.cursor = Position{Line: target.Line, Col: loc[0] + len(repl)}
	default:
		d.cursor = Position{Line: target.Line + n - 1, Col: len(repl) - last - 1}
	}
	d.contentChanged()
	return true, nil
}

// ReplaceAll replaces every match and returns how many were replaced
func (d *Document) ReplaceAll(pattern, replacement string, opts domain.SearchOptions) (int, error) {
	m, err := textsearch.Compile(pattern, opts)
	if err != nil {
		return 0, err
	}

	count := 0
	// Back to front so multi-line replacements do not shift pending lines
	for i := len(d.lines) - 1; i >= 0; i-- {
		line := d.lines[i]
		locs := m.FindAll(line)
		if len(locs) == 0 {
			continue
		}

		var b strings.Builder
		prev := 0
		for _, loc := range locs {
			b.WriteString(line[prev:loc[0]])
			if opts.Regex {
				b.WriteString(textsearch.ExpandGroups(submatches(line, loc), replacement))
			} else {
				b.WriteString(replacement)
			}
			prev = loc[1]
		}
		b.WriteString(line[prev:])

		d.spliceLine(i, b.String())
		count += len(locs)
	}

	if count > 0 {
		d.cursor = d.clamp(d.cursor)
		d.contentChanged()
	}
	return count, nil
}

// ClearCurrent forgets the current match
func (d *Document) ClearCurrent() {
	d.selection = nil
	d.marked = false
}

func (d *Document) findAll(m *textsearch.Matcher) []domain.Match {
	var matches []domain.Match
	for i, line := range d.lines {
		for _, loc := range m.FindAll(line) {
			matches = append(matches, domain.Match{
				Line:     i,
				Start:    loc[0],
				End:      loc[1],
				LineText: line,
			})
		}
	}
	return matches
}

// next returns the first match after the selection, or at/after the cursor
func (d *Document) next(matches []domain.Match) domain.Match {
	for _, m := range matches {
		pos := Position{Line: m.Line, Col: m.Start}
		if d.selection != nil {
			sel := Position{Line: d.selection.Line, Col: d.selection.Start}
			if sel.Before(pos) {
				return m
			}
			continue
		}
		if !pos.Before(d.cursor) {
			return m
		}
	}
	return matches[0]
}

// previous returns the last match before the selection or the cursor
func (d *Document) previous(matches []domain.Match) domain.Match {
	anchor := d.cursor
	if d.selection != nil {
		anchor = Position{Line: d.selection.Line, Col: d.selection.Start}
	}
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		if (Position{Line: m.Line, Col: m.Start}).Before(anchor) {
			return m
		}
	}
	return matches[len(matches)-1]
}

// selected returns the match that is still at the selection's position
func (d *Document) selected(matches []domain.Match) (domain.Match, bool) {
	if d.selection == nil {
		return domain.Match{}, false
	}
	for _, m := range matches {
		if m.Line == d.selection.Line && m.Start == d.selection.Start {
			return m, true
		}
	}
	return domain.Match{}, false
}

func submatches(line string, loc []int) []string {
	groups := make([]string, len(loc)/2)
	for g := range groups {
		if loc[2*g] >= 0 {
			groups[g] = line[loc[2*g]:loc[2*g+1]]
		}
	}
	return groups
}
