package views

import (
	"github.com/charmbracelet/lipgloss"

	"findpanel/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Label         lipgloss.Style
	Pane          lipgloss.Style
	PaneFocused   lipgloss.Style
	Gutter        lipgloss.Style
	Highlight     lipgloss.Style
	CurrentMatch  lipgloss.Style
	OptionOn      lipgloss.Style
	OptionOff     lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	SelectionBg   lipgloss.Style
	InfoBox       lipgloss.Style
	Section       lipgloss.Style
	Key           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help:  lipgloss.NewStyle().Faint(true),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Width(9),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		PaneFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")),
		Gutter:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		CurrentMatch:  lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
		OptionOn:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		OptionOff:     lipgloss.NewStyle().Faint(true),
		TabActive:     lipgloss.NewStyle().Bold(true).Underline(true),
		TabInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// SeverityStyle returns the style for a results line of the given severity
func (s *Styles) SeverityStyle(severity domain.Severity) lipgloss.Style {
	switch severity {
	case domain.SeverityError:
		return s.StatusError
	case domain.SeverityWarning:
		return s.StatusWarning
	default:
		return lipgloss.NewStyle()
	}
}

// OptionLabel returns the short toggle label shown for a flag option
func OptionLabel(id domain.OptionID) string {
	switch id {
	case domain.OptionRegex:
		return ".*"
	case domain.OptionCaseSensitive:
		return "Aa"
	case domain.OptionWholeWord:
		return "\\b"
	case domain.OptionBackward:
		return "<-"
	case domain.OptionHighlight:
		return "Hl"
	default:
		return string(id)
	}
}
