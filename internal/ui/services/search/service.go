package search

import (
	"errors"
	"fmt"
	"log"

	"findpanel/internal/domain"
	"findpanel/internal/textsearch"
)

// Service drives searches and replacements against the active editor and
// reports the outcome in the search input label and the results console.
//
// Every handler is a no-op while no editor is bound.
type Service struct {
	state   *State
	input   SearchInput
	console Console
	styles  *Styles
}

// NewService creates a new search service
func NewService(input SearchInput, console Console) *Service {
	return &Service{
		state:   &State{},
		input:   input,
		console: console,
		styles:  DefaultStyles(),
	}
}

// Editor returns the active editor
func (s *Service) Editor() domain.Editor {
	return s.state.Editor
}

// CurrentOptions returns the options of the last handled request
func (s *Service) CurrentOptions() domain.SearchOptions {
	return s.state.CurrentOptions
}

// OnDocumentChanged binds editor as the active one and refreshes the count.
// editor is nil when the last document was closed.
func (s *Service) OnDocumentChanged(editor domain.Editor) {
	s.state.Editor = editor
	if editor == nil {
		return
	}

	opts := s.input.Options()
	s.refreshCount(s.input.SearchText(), opts)
	s.state.CurrentOptions = opts
}

// OnDocumentContentChanged forgets the current match, whose position may be
// stale after an edit, and refreshes the count.
func (s *Service) OnDocumentContentChanged() {
	if s.state.Editor == nil {
		return
	}

	s.state.Editor.Search().ClearCurrent()
	opts := s.input.Options()
	s.refreshCount(s.input.SearchText(), opts)
	s.state.CurrentOptions = opts
}

// OnSearchTextOrOptionsChanged refreshes the count for text
func (s *Service) OnSearchTextOrOptionsChanged(text string, opts domain.SearchOptions) {
	if s.state.Editor == nil {
		return
	}

	s.refreshCount(text, opts)
	s.state.CurrentOptions = opts
}

// OnOptionToggled refreshes the count and moves to the next match under the
// new options. Toggling Highlight alone only changes what is marked.
func (s *Service) OnOptionToggled(text string, opts domain.SearchOptions) {
	if s.state.Editor == nil {
		return
	}

	valid := s.refreshCount(text, opts)
	if valid && !domain.OnlyHighlightChanged(s.state.CurrentOptions, opts) {
		if _, err := s.state.Editor.Search().SearchNext(text, opts.WithHighlight()); err != nil {
			log.Printf("Search: failed to move to next match: %v", err)
		}
	}
	s.state.CurrentOptions = opts
}

// OnSearchActivated finds the next match, or lists every match when all is set
func (s *Service) OnSearchActivated(text string, opts domain.SearchOptions, all bool) {
	if s.state.Editor == nil {
		return
	}
	defer func() { s.state.CurrentOptions = opts }()

	if !all {
		s.findNext(text, opts)
		return
	}

	searcher := s.state.Editor.Search()
	matches, err := searcher.SearchAll(text, opts)
	if err != nil {
		s.reportFailure(err)
		return
	}

	s.console.Clear()
	if len(matches) == 0 {
		s.console.AppendLine(s.styles.notFound(text, opts), domain.SeverityWarning, nil)
		return
	}

	s.console.AppendLine(s.styles.summary(len(matches), text, opts), domain.SeverityInfo, nil)

	replacement := s.input.ReplaceText()
	p := newPreviewer(text, replacement, opts)
	for _, m := range matches {
		line := s.styles.detail(m, p.preview(m), replacement != "")
		s.console.AppendLine(line, domain.SeverityInfo, domain.LineMeta{domain.MetaRow: m.Row()})
	}

	s.console.ScrollToTop()
	s.console.EnsureCursorVisible()
	log.Printf("Search: listed %d matches for %q", len(matches), text)
}

// OnFindAgain repeats the search from the editor. With reverse it runs
// against the configured direction, but opts are kept as given so a later
// option toggle compares against what the input holds.
func (s *Service) OnFindAgain(text string, opts domain.SearchOptions, reverse bool) {
	if s.state.Editor == nil {
		return
	}
	defer func() { s.state.CurrentOptions = opts }()

	searchOpts := opts
	if reverse {
		searchOpts.Backward = !searchOpts.Backward
	}
	s.findNext(text, searchOpts)
}

func (s *Service) findNext(text string, opts domain.SearchOptions) {
	match, err := s.state.Editor.Search().SearchNext(text, opts.WithHighlight())
	if err != nil {
		s.reportFailure(err)
		return
	}
	if match == nil {
		s.console.Clear()
		s.console.AppendLine(s.styles.notFound(text, opts), domain.SeverityWarning, nil)
	}
}

// OnReplaceActivated replaces the next match, or every match when all is set
func (s *Service) OnReplaceActivated(searchText, replaceText string, opts domain.SearchOptions, all bool) {
	if s.state.Editor == nil {
		return
	}
	defer func() { s.state.CurrentOptions = opts }()

	searcher := s.state.Editor.Search()
	if _, err := searcher.SearchAll(searchText, opts); err != nil {
		s.reportFailure(err)
		return
	}

	if all {
		n, err := searcher.ReplaceAll(searchText, replaceText, opts)
		if err != nil {
			s.reportFailure(err)
			return
		}
		s.console.Clear()
		if n == 0 {
			s.console.AppendLine(s.styles.nothingReplaced(searchText, opts), domain.SeverityWarning, nil)
			return
		}
		s.console.AppendLine(s.styles.replaced(n, searchText, opts), domain.SeverityInfo, nil)
		log.Printf("Search: replaced %d matches of %q", n, searchText)
		return
	}

	replaced, err := searcher.ReplaceNext(searchText, replaceText, opts.WithHighlight())
	if err != nil {
		s.reportFailure(err)
		return
	}
	if !replaced {
		s.console.Clear()
		s.console.AppendLine(s.styles.nothingReplaced(searchText, opts), domain.SeverityWarning, nil)
	}
}

// OnResultLineClicked moves the editor to the row of the clicked results line
func (s *Service) OnResultLineClicked(p domain.Point) {
	if s.state.Editor == nil {
		return
	}

	meta, ok := s.console.MetaAt(p)
	if !ok {
		return
	}
	row, ok := meta.Row()
	if !ok {
		return
	}

	s.state.Editor.ScrollToLine(row)
	s.state.Editor.SetFocus()
}

// Option reads a panel setting from the search input. Flags return a bool,
// the two texts a string.
func (s *Service) Option(id domain.OptionID) (any, error) {
	switch id {
	case domain.OptionSearchText:
		return s.input.SearchText(), nil
	case domain.OptionReplaceText:
		return s.input.ReplaceText(), nil
	}
	return s.input.Options().Flag(id)
}

// SetOption writes a panel setting to the search input. It does not search;
// the input's own change notification does that.
func (s *Service) SetOption(id domain.OptionID, value any) error {
	if id.IsFlag() {
		on, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s wants bool, got %T", domain.ErrInvalidOptionValue, id, value)
		}
		opts := s.input.Options()
		if err := opts.SetFlag(id, on); err != nil {
			return err
		}
		s.input.SetOptions(opts)
		return nil
	}

	switch id {
	case domain.OptionSearchText, domain.OptionReplaceText:
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownOption, id)
	}

	text, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s wants string, got %T", domain.ErrInvalidOptionValue, id, value)
	}
	if id == domain.OptionSearchText {
		s.input.SetSearchText(text)
	} else {
		s.input.SetReplaceText(text)
	}
	return nil
}

// refreshCount updates the label with the number of matches. It reports
// whether the pattern was usable.
func (s *Service) refreshCount(text string, opts domain.SearchOptions) bool {
	matches, err := s.state.Editor.Search().SearchAll(text, opts)
	if err != nil {
		if errors.Is(err, textsearch.ErrInvalidPattern) {
			s.input.SetResultsInformation(s.styles.Invalid.Render(invalidRegexLabel))
		} else {
			log.Printf("Search: failed to count matches: %v", err)
		}
		return false
	}

	s.input.SetResultsInformation(countLabel(len(matches)))
	return true
}

// reportFailure shows an error the document raised for an activated request
func (s *Service) reportFailure(err error) {
	log.Printf("Search: request failed: %v", err)
	s.console.Clear()
	s.console.AppendLine(fmt.Sprintf("Search failed: %v", err), domain.SeverityError, nil)
}
