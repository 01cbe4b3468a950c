package searchinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findpanel/internal/domain"
	"findpanel/internal/eventbus"
	"findpanel/internal/ui/views"
)

func setup(t *testing.T) (*Model, *[]eventbus.DomainEvent) {
	t.Helper()
	bus := eventbus.New()
	var events []eventbus.DomainEvent
	record := func(e eventbus.DomainEvent) { events = append(events, e) }
	for _, typ := range []eventbus.EventType{
		eventbus.EventSearchModified,
		eventbus.EventSearchOptionModified,
		eventbus.EventSearchActivated,
		eventbus.EventReplaceActivated,
	} {
		bus.Subscribe(typ, record)
	}
	return New(bus, views.NewStyles()), &events
}

func TestSetSearchTextPublishesOnChange(t *testing.T) {
	m, events := setup(t)

	m.SetSearchText("foo")
	m.SetSearchText("foo")

	require.Len(t, *events, 1)
	assert.Equal(t, domain.SearchModifiedEvent{Text: "foo"}, (*events)[0])
	assert.Equal(t, "foo", m.SearchText())
}

func TestSetReplaceTextIsQuiet(t *testing.T) {
	m, events := setup(t)

	m.SetReplaceText("bar")

	assert.Empty(t, *events)
	assert.Equal(t, "bar", m.ReplaceText())
}

func TestToggleOption(t *testing.T) {
	m, events := setup(t)
	m.SetSearchText("x")

	require.NoError(t, m.ToggleOption(domain.OptionCaseSensitive))
	assert.True(t, m.Options().CaseSensitive)

	require.NoError(t, m.ToggleOption(domain.OptionCaseSensitive))
	assert.False(t, m.Options().CaseSensitive)

	require.Len(t, *events, 3)
	assert.Equal(t, domain.SearchOptionModifiedEvent{
		Text:    "x",
		Options: domain.SearchOptions{CaseSensitive: true},
	}, (*events)[1])

	assert.ErrorIs(t, m.ToggleOption(domain.OptionSearchText), domain.ErrUnknownOption)
}

func TestSetOptionsUnchangedIsQuiet(t *testing.T) {
	m, events := setup(t)

	m.SetOptions(domain.SearchOptions{})
	assert.Empty(t, *events)
}

func TestActivate(t *testing.T) {
	m, events := setup(t)
	m.SetSearchText("foo")
	m.SetReplaceText("bar")
	m.SetOptions(domain.SearchOptions{Regex: true})
	*events = nil

	m.Focus(FieldSearch)
	m.Activate(true)
	m.Focus(FieldReplace)
	m.Activate(false)

	require.Len(t, *events, 2)
	assert.Equal(t, domain.SearchActivatedEvent{
		Text: "foo", Options: domain.SearchOptions{Regex: true}, All: true,
	}, (*events)[0])
	assert.Equal(t, domain.ReplaceActivatedEvent{
		SearchText: "foo", ReplaceText: "bar", Options: domain.SearchOptions{Regex: true},
	}, (*events)[1])
}

func TestTypingPublishesSearchModified(t *testing.T) {
	m, events := setup(t)

	// unfocused input ignores keys
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, m.SearchText())

	m.Focus(FieldSearch)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})

	assert.Equal(t, "fo", m.SearchText())
	require.Len(t, *events, 2)
	assert.Equal(t, domain.SearchModifiedEvent{Text: "fo"}, (*events)[1])

	m.Focus(FieldReplace)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	assert.Equal(t, "z", m.ReplaceText())
	assert.Len(t, *events, 2)
}

func TestView(t *testing.T) {
	m, _ := setup(t)
	m.SetResultsInformation("3 occurrences")
	m.SetOptions(domain.SearchOptions{Regex: true})

	out := ansi.Strip(m.View(80))
	assert.Contains(t, out, "Find:")
	assert.Contains(t, out, "Replace:")
	assert.Contains(t, out, "[.*] [Aa]")
	assert.Contains(t, out, "3 occurrences")
}

func TestNilBus(t *testing.T) {
	m := New(nil, views.NewStyles())
	assert.NotPanics(t, func() {
		m.SetSearchText("a")
		m.Activate(true)
	})
}
