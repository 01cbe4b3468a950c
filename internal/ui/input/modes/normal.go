package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"findpanel/internal/ui/input/types"
)

// NormalMode drives the editor pane
type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.HelpPager):
		return []types.Action{types.HelpPagerAction{}}, true
	case key.Matches(msg, k.Find):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFind}}, true
	case key.Matches(msg, k.Replace):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeReplace}}, true
	case key.Matches(msg, k.Results):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeResults}}, true
	case key.Matches(msg, k.NextDoc):
		return []types.Action{types.SwitchDocumentAction{Delta: 1}}, true
	case key.Matches(msg, k.PrevDoc):
		return []types.Action{types.SwitchDocumentAction{Delta: -1}}, true
	case key.Matches(msg, k.Save):
		return []types.Action{types.SaveAction{}}, true
	}

	// Everything below needs a document
	if !ctx.HasDocument() {
		return nil, false
	}

	switch {
	case key.Matches(msg, k.FindNext):
		return []types.Action{types.SearchNavigateAction{Direction: "next"}}, true
	case key.Matches(msg, k.FindPrev):
		return []types.Action{types.SearchNavigateAction{Direction: "prev"}}, true
	case key.Matches(msg, k.Close):
		return []types.Action{types.CloseDocumentAction{}}, true
	}

	if direction := navigation(k, msg); direction != "" {
		return []types.Action{types.NavigateAction{Direction: direction}}, true
	}
	return nil, false
}

// navigation maps a movement key to its direction
func navigation(k types.KeyMap, msg tea.KeyMsg) string {
	switch {
	case key.Matches(msg, k.Up):
		return "up"
	case key.Matches(msg, k.Down):
		return "down"
	case key.Matches(msg, k.PageUp):
		return "pageup"
	case key.Matches(msg, k.PageDown):
		return "pagedown"
	case key.Matches(msg, k.Home):
		return "home"
	case key.Matches(msg, k.End):
		return "end"
	}
	return ""
}
