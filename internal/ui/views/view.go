package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"findpanel/internal/ui/input/types"
	"findpanel/internal/ui/state"
)

// Tab is one open document in the tab bar
type Tab struct {
	Name  string
	Dirty bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Tabs          []Tab
	ActiveTab     int
	Editor        string
	SearchInput   string
	Results       string
	ResultCount   int
	Focus         state.Pane
	Mode          types.Mode
	StatusMessage string
	StatusKind    state.StatusKind
	ShowHelp      bool
	HelpModel     help.Model
	Keys          types.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	width := vs.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}

	sections := []string{
		r.renderTabBar(vs, width),
		vs.Editor,
		r.rule(width, vs.Focus == state.PaneSearch),
		vs.SearchInput,
		r.rule(width, vs.Focus == state.PaneResults),
		vs.Results,
		r.renderStatusBar(vs, width),
	}
	content := strings.Join(sections, "\n")

	if vs.ShowHelp {
		return r.popupRender.RenderPopupOverlay(content, r.RenderHelpContent(vs.Keys, vs.HelpModel), vs.Height, width, r.styles.InfoBox)
	}
	return content
}

func (r *Renderer) renderTabBar(vs ViewState, width int) string {
	logo := r.styles.Title.Render("findpanel")
	if len(vs.Tabs) == 0 {
		return logo
	}

	tabs := make([]string, 0, len(vs.Tabs))
	for i, tab := range vs.Tabs {
		name := tab.Name
		if tab.Dirty {
			name += "*"
		}
		if i == vs.ActiveTab {
			tabs = append(tabs, r.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, r.styles.TabInactive.Render(name))
		}
	}
	line := fmt.Sprintf("%s  %s", logo, strings.Join(tabs, " │ "))
	return truncate.StringWithTail(line, uint(width), "…")
}

// rule separates two panes. The rule above the focused pane is accented.
func (r *Renderer) rule(width int, focused bool) string {
	line := strings.Repeat("─", width)
	if focused {
		return r.styles.Title.Render(line)
	}
	return r.styles.Dim.Render(line)
}

func (r *Renderer) renderStatusBar(vs ViewState, width int) string {
	left := r.styles.Status.Render(fmt.Sprintf("[%s]", vs.Mode))
	if vs.ResultCount > 0 {
		left += r.styles.Status.Render(fmt.Sprintf(" %d lines", vs.ResultCount))
	}
	if vs.StatusMessage != "" {
		left += " " + r.statusStyle(vs.StatusKind).Render(vs.StatusMessage)
	}

	right := r.styles.Help.Render("Press ? for help")
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		return truncate.StringWithTail(left, uint(width), "…")
	}
	return left + strings.Repeat(" ", padding) + right
}

func (r *Renderer) statusStyle(kind state.StatusKind) lipgloss.Style {
	switch kind {
	case state.StatusError:
		return r.styles.StatusError
	case state.StatusSuccess:
		return r.styles.StatusSuccess
	default:
		return r.styles.Status
	}
}

// RenderHelpContent renders the key bindings for the help overlay
func (r *Renderer) RenderHelpContent(keys types.KeyMap, model help.Model) string {
	model.ShowAll = true

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("findpanel Help"))
	b.WriteString("\n\n")
	b.WriteString(model.View(keys))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("Press ? to close, H for the full help in a pager"))
	return b.String()
}
