// Package searchinput is the find/replace input bar: two text fields, the
// option toggles and the results information label.
package searchinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"findpanel/internal/domain"
	"findpanel/internal/eventbus"
	"findpanel/internal/ui/views"
)

// Field identifies one of the two text fields
type Field int

const (
	FieldSearch Field = iota
	FieldReplace
)

// Model is the search input widget. Changes to the search text or the
// options are announced on the bus, as is activating a search or replace.
type Model struct {
	bus     eventbus.EventBus
	styles  *views.Styles
	search  textinput.Model
	replace textinput.Model
	opts    domain.SearchOptions
	info    string
	field   Field
	focused bool
}

// New creates the widget. bus may be nil.
func New(bus eventbus.EventBus, styles *views.Styles) *Model {
	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "search"

	replace := textinput.New()
	replace.Prompt = ""
	replace.Placeholder = "replace"

	return &Model{
		bus:     bus,
		styles:  styles,
		search:  search,
		replace: replace,
	}
}

// SearchText returns the text in the search field
func (m *Model) SearchText() string {
	return m.search.Value()
}

// ReplaceText returns the text in the replace field
func (m *Model) ReplaceText() string {
	return m.replace.Value()
}

// Options returns the live option flags
func (m *Model) Options() domain.SearchOptions {
	return m.opts
}

// SetOptions replaces the option flags, announcing a change
func (m *Model) SetOptions(opts domain.SearchOptions) {
	if opts == m.opts {
		return
	}
	m.opts = opts
	m.publish(domain.SearchOptionModifiedEvent{Text: m.SearchText(), Options: m.opts})
}

// ToggleOption flips one flag
func (m *Model) ToggleOption(id domain.OptionID) error {
	opts := m.opts
	on, err := opts.Flag(id)
	if err != nil {
		return err
	}
	if err := opts.SetFlag(id, !on); err != nil {
		return err
	}
	m.SetOptions(opts)
	return nil
}

// SetSearchText replaces the search text, announcing a change
func (m *Model) SetSearchText(text string) {
	if text == m.search.Value() {
		return
	}
	m.search.SetValue(text)
	m.publish(domain.SearchModifiedEvent{Text: text, Options: m.opts})
}

// SetReplaceText replaces the replace text
func (m *Model) SetReplaceText(text string) {
	m.replace.SetValue(text)
}

// SetResultsInformation sets the label shown next to the search field
func (m *Model) SetResultsInformation(markup string) {
	m.info = markup
}

// ResultsInformation returns the label markup
func (m *Model) ResultsInformation() string {
	return m.info
}

// Focus gives keyboard focus to a field
func (m *Model) Focus(field Field) tea.Cmd {
	m.field = field
	m.focused = true
	if field == FieldReplace {
		m.search.Blur()
		return m.replace.Focus()
	}
	m.replace.Blur()
	return m.search.Focus()
}

// Blur drops keyboard focus
func (m *Model) Blur() {
	m.focused = false
	m.search.Blur()
	m.replace.Blur()
}

// Focused reports whether one of the fields has focus
func (m *Model) Focused() bool {
	return m.focused
}

// Field returns the field that has or last had focus
func (m *Model) Field() Field {
	return m.field
}

// Activate triggers a search, or a replace when the replace field is focused
func (m *Model) Activate(all bool) {
	if m.field == FieldReplace {
		m.publish(domain.ReplaceActivatedEvent{
			SearchText:  m.SearchText(),
			ReplaceText: m.ReplaceText(),
			Options:     m.opts,
			All:         all,
		})
		return
	}
	m.publish(domain.SearchActivatedEvent{Text: m.SearchText(), Options: m.opts, All: all})
}

// Update forwards key input to the focused field
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.focused {
		return nil
	}

	var cmd tea.Cmd
	if m.field == FieldReplace {
		m.replace, cmd = m.replace.Update(msg)
		return cmd
	}

	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.publish(domain.SearchModifiedEvent{Text: after, Options: m.opts})
	}
	return cmd
}

// View renders the two fields, the option toggles and the label
func (m *Model) View(width int) string {
	fieldWidth := width - 40
	if fieldWidth < 10 {
		fieldWidth = 10
	}
	m.search.Width = fieldWidth
	m.replace.Width = fieldWidth

	find := lipgloss.JoinHorizontal(lipgloss.Top,
		m.label("Find:", FieldSearch),
		m.search.View(),
		"  ",
		m.toggles(),
		"  ",
		m.info,
	)
	repl := lipgloss.JoinHorizontal(lipgloss.Top,
		m.label("Replace:", FieldReplace),
		m.replace.View(),
	)
	return find + "\n" + repl
}

func (m *Model) label(text string, field Field) string {
	if m.focused && m.field == field {
		return m.styles.Label.Bold(true).Render(text)
	}
	return m.styles.Label.Render(text)
}

func (m *Model) toggles() string {
	parts := make([]string, 0, 5)
	for _, id := range domain.AllOptions {
		if !id.IsFlag() {
			continue
		}
		on, _ := m.opts.Flag(id)
		style := m.styles.OptionOff
		if on {
			style = m.styles.OptionOn
		}
		parts = append(parts, style.Render("["+views.OptionLabel(id)+"]"))
	}
	return strings.Join(parts, " ")
}

func (m *Model) publish(event domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
