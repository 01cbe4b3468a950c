package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"findpanel/internal/ui/input/types"
)

// ResultsMode moves through the console lines
type ResultsMode struct {
	keys types.KeyMap
}

func NewResultsMode(keys types.KeyMap) *ResultsMode {
	return &ResultsMode{keys: keys}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Back), key.Matches(msg, k.Results):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case key.Matches(msg, k.Find):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFind}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	if ctx.ResultCount() == 0 {
		return nil, false
	}

	switch {
	case key.Matches(msg, k.Jump):
		return []types.Action{types.JumpToResultAction{}}, true
	case key.Matches(msg, k.Copy):
		return []types.Action{types.CopyResultAction{}}, true
	case key.Matches(msg, k.ResultsPager):
		return []types.Action{types.ResultsPagerAction{}}, true
	}

	if direction := navigation(k, msg); direction != "" {
		return []types.Action{types.NavigateAction{Direction: direction}}, true
	}
	return nil, false
}
