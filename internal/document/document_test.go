package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findpanel/internal/domain"
	"findpanel/internal/eventbus"
)

const sample = "Foo bar\nfoo baz\nqux foo foo"

func TestSearchAll(t *testing.T) {
	doc := New("sample", sample, nil)

	matches, err := doc.SearchAll("foo", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Len(t, matches, 4)

	matches, err = doc.SearchAll("foo", domain.SearchOptions{CaseSensitive: true})
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, 2, matches[0].Row())
	assert.Equal(t, "foo baz", matches[0].LineText)
	assert.Equal(t, "foo", matches[0].Text())
}

func TestSearchAllHighlight(t *testing.T) {
	doc := New("sample", sample, nil)

	_, err := doc.SearchAll("foo", domain.SearchOptions{Highlight: true})
	require.NoError(t, err)
	assert.Len(t, doc.Highlights(), 4)

	_, err = doc.SearchAll("foo", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, doc.Highlights())
}

func TestSearchAllEmptyAndInvalid(t *testing.T) {
	doc := New("sample", sample, nil)

	matches, err := doc.SearchAll("", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, err = doc.SearchAll("f(o", domain.SearchOptions{Regex: true})
	assert.Error(t, err)
}

func TestInvalidPatternClearsHighlights(t *testing.T) {
	doc := New("sample", sample, nil)

	_, err := doc.SearchAll("foo", domain.SearchOptions{Highlight: true})
	require.NoError(t, err)
	require.NotEmpty(t, doc.Highlights())

	_, err = doc.SearchAll("foo(", domain.SearchOptions{Regex: true, Highlight: true})
	require.Error(t, err)
	assert.Empty(t, doc.Highlights())
}

func TestSearchNextWraps(t *testing.T) {
	doc := New("sample", sample, nil)
	opts := domain.SearchOptions{CaseSensitive: true, Highlight: true}

	var rows []int
	for i := 0; i < 4; i++ {
		m, err := doc.SearchNext("foo", opts)
		require.NoError(t, err)
		require.NotNil(t, m)
		rows = append(rows, m.Row())
	}
	assert.Equal(t, []int{2, 3, 3, 2}, rows)

	cur := doc.Current()
	require.NotNil(t, cur)
	assert.Equal(t, 1, cur.Line)
	assert.Equal(t, Position{Line: 1, Col: 0}, doc.Cursor())
}

func TestSearchNextBackward(t *testing.T) {
	doc := New("sample", sample, nil)
	opts := domain.SearchOptions{CaseSensitive: true, Backward: true}

	m, err := doc.SearchNext("foo", opts)
	require.NoError(t, err)
	require.NotNil(t, m)
	// nothing before the cursor at 0:0, wraps to the last match
	assert.Equal(t, domain.Match{Line: 2, Start: 8, End: 11, LineText: "qux foo foo"}, *m)

	m, err = doc.SearchNext("foo", opts)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Start)
}

func TestSearchNextWithoutHighlightIsNotMarked(t *testing.T) {
	doc := New("sample", sample, nil)

	m, err := doc.SearchNext("baz", domain.SearchOptions{})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Nil(t, doc.Current())

	m, err = doc.SearchNext("missing", domain.SearchOptions{Highlight: true})
	require.NoError(t, err)
	assert.Nil(t, m)
	assert.Nil(t, doc.Current())
}

func TestClearCurrent(t *testing.T) {
	doc := New("sample", sample, nil)
	_, err := doc.SearchNext("foo", domain.SearchOptions{Highlight: true})
	require.NoError(t, err)
	require.NotNil(t, doc.Current())

	doc.ClearCurrent()
	assert.Nil(t, doc.Current())
}

func TestReplaceAll(t *testing.T) {
	doc := New("sample", sample, nil)

	n, err := doc.ReplaceAll("foo", "bar", domain.SearchOptions{CaseSensitive: true})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "Foo bar\nbar baz\nqux bar bar", doc.Text())
	assert.True(t, doc.Dirty())
}

func TestReplaceAllRegexGroups(t *testing.T) {
	doc := New("sample", "foo fooo\nfo", nil)

	n, err := doc.ReplaceAll("f(o+)", "$1!", domain.SearchOptions{Regex: true})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "oo! ooo!\no!", doc.Text())
}

func TestReplaceAllNewlines(t *testing.T) {
	doc := New("sample", "a;b\nc;d", nil)

	n, err := doc.ReplaceAll(";", "\n", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a", "b", "c", "d"}, doc.Lines())
}

func TestReplaceAllNoMatchLeavesDocumentClean(t *testing.T) {
	doc := New("sample", sample, nil)

	n, err := doc.ReplaceAll("zzz", "x", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, doc.Dirty())
}

func TestReplaceNext(t *testing.T) {
	doc := New("sample", sample, nil)
	opts := domain.SearchOptions{CaseSensitive: true, Highlight: true}

	ok, err := doc.ReplaceNext("foo", "X", opts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Foo bar\nX baz\nqux foo foo", doc.Text())
	assert.Equal(t, Position{Line: 1, Col: 1}, doc.Cursor())

	ok, err = doc.ReplaceNext("foo", "X", opts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Foo bar\nX baz\nqux X foo", doc.Text())
}

func TestReplaceNextBackward(t *testing.T) {
	doc := New("t", "a x a", nil)
	doc.cursor = Position{Col: 5}
	opts := domain.SearchOptions{Backward: true, Highlight: true}

	ok, err := doc.ReplaceNext("a", "aa", opts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a x aa", doc.Text())
	assert.Equal(t, Position{Col: 4}, doc.Cursor())

	// the inserted text also matches but lies after the cursor
	ok, err = doc.ReplaceNext("a", "aa", opts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "aa x aa", doc.Text())
	assert.Equal(t, Position{Col: 0}, doc.Cursor())
}

func TestReplaceNextUsesSelection(t *testing.T) {
	doc := New("sample", sample, nil)
	opts := domain.SearchOptions{CaseSensitive: true}

	_, err := doc.SearchNext("foo", opts)
	require.NoError(t, err)
	_, err = doc.SearchNext("foo", opts)
	require.NoError(t, err)

	ok, err := doc.ReplaceNext("foo", "X", opts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Foo bar\nfoo baz\nqux X foo", doc.Text())
}

func TestReplaceNextNoMatch(t *testing.T) {
	doc := New("sample", sample, nil)

	ok, err := doc.ReplaceNext("zzz", "x", domain.SearchOptions{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMutationPublishesContentChanged(t *testing.T) {
	bus := eventbus.New()
	doc := New("sample", sample, bus)

	var events []domain.DocumentContentChangedEvent
	bus.Subscribe(eventbus.EventDocumentContentChanged, func(e eventbus.DomainEvent) {
		events = append(events, e.(domain.DocumentContentChangedEvent))
	})

	_, err := doc.SearchNext("foo", domain.SearchOptions{Highlight: true})
	require.NoError(t, err)
	assert.Empty(t, events, "searching does not mutate")

	_, err = doc.ReplaceAll("foo", "bar", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Same(t, doc, events[0].Editor)
	assert.Nil(t, doc.Current())
}

func TestScrollToLineAndFocus(t *testing.T) {
	bus := eventbus.New()
	doc := New("sample", sample, bus)

	focused := false
	bus.Subscribe(eventbus.EventEditorFocusRequested, func(e eventbus.DomainEvent) {
		focused = e.(domain.EditorFocusRequestedEvent).Editor == doc
	})

	doc.ScrollToLine(3)
	assert.Equal(t, Position{Line: 2}, doc.Cursor())

	doc.ScrollToLine(99)
	assert.Equal(t, Position{Line: 2}, doc.Cursor())

	doc.SetFocus()
	assert.True(t, focused)
}

func TestOpenAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.lua")
	require.NoError(t, os.WriteFile(path, []byte("print('foo')\n"), 0644))

	doc, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "script.lua", doc.Name())
	assert.Equal(t, 2, doc.LineCount())

	_, err = doc.ReplaceAll("foo", "bar", domain.SearchOptions{})
	require.NoError(t, err)
	require.NoError(t, doc.Save())
	assert.False(t, doc.Dirty())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "print('bar')\n", string(data))
}

func TestSaveScratchDocument(t *testing.T) {
	doc := New("scratch", "x", nil)
	assert.ErrorIs(t, doc.Save(), ErrNoPath)
}
