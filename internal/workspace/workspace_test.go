package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findpanel/internal/document"
	"findpanel/internal/domain"
	"findpanel/internal/eventbus"
)

func recordChanges(bus eventbus.EventBus) *[]domain.DocumentChangedEvent {
	var events []domain.DocumentChangedEvent
	bus.Subscribe(eventbus.EventDocumentChanged, func(e eventbus.DomainEvent) {
		events = append(events, e.(domain.DocumentChangedEvent))
	})
	return &events
}

func TestAddActivatesFirst(t *testing.T) {
	bus := eventbus.New()
	changes := recordChanges(bus)
	w := New(bus)

	assert.Nil(t, w.Active())
	a := document.New("a", "", bus)
	b := document.New("b", "", bus)
	w.Add(a)
	w.Add(b)

	assert.Same(t, a, w.Active())
	require.Len(t, *changes, 1)
	assert.Equal(t, "a", (*changes)[0].Name)
}

func TestNextPrevWrap(t *testing.T) {
	w := New(nil)
	for _, name := range []string{"a", "b", "c"} {
		w.Add(document.New(name, "", nil))
	}

	w.Next()
	assert.Equal(t, "b", w.Active().Name())
	w.Next()
	w.Next()
	assert.Equal(t, "a", w.Active().Name())
	w.Prev()
	assert.Equal(t, "c", w.Active().Name())
}

func TestCloseActive(t *testing.T) {
	bus := eventbus.New()
	changes := recordChanges(bus)
	w := New(bus)
	w.Add(document.New("a", "", bus))
	w.Add(document.New("b", "", bus))

	w.Next()
	w.CloseActive()
	assert.Equal(t, "a", w.Active().Name())

	w.CloseActive()
	assert.Nil(t, w.Active())
	assert.Equal(t, -1, w.ActiveIndex())

	last := (*changes)[len(*changes)-1]
	assert.Nil(t, last.Editor)

	assert.NotPanics(t, w.CloseActive)
}

func TestOpenAndSaveAll(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("foo"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("bar"), 0644))

	w := New(nil)
	require.NoError(t, w.Open([]string{a, b}))
	require.Len(t, w.Documents(), 2)

	_, err := w.Active().ReplaceAll("foo", "baz", domain.SearchOptions{})
	require.NoError(t, err)
	w.Add(document.New("scratch", "dirty", nil))

	saved, err := w.SaveAll()
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	data, err := os.ReadFile(a)
	require.NoError(t, err)
	assert.Equal(t, "baz", string(data))
}

func TestOpenMissingFile(t *testing.T) {
	w := New(nil)
	err := w.Open([]string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorContains(t, err, "failed to open")
}
