package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"findpanel/internal/domain"
	"findpanel/internal/ui/input/types"
)

// TextInputMode edits one field of the search input. Keys it does not bind
// are left to the text field.
type TextInputMode struct {
	mode  types.Mode
	other types.Mode
	name  string
	keys  types.KeyMap
}

func NewTextInputMode(mode, other types.Mode, name string, keys types.KeyMap) TextInputMode {
	return TextInputMode{
		mode:  mode,
		other: other,
		name:  name,
		keys:  keys,
	}
}

// NewFindMode edits the search text
func NewFindMode(keys types.KeyMap) *TextInputMode {
	m := NewTextInputMode(types.ModeFind, types.ModeReplace, "find", keys)
	return &m
}

// NewReplaceMode edits the replacement text
func NewReplaceMode(keys types.KeyMap) *TextInputMode {
	m := NewTextInputMode(types.ModeReplace, types.ModeFind, "replace", keys)
	return &m
}

func (m TextInputMode) Name() string {
	return m.name
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Back):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case key.Matches(msg, k.SwitchText):
		return []types.Action{types.ChangeModeAction{Mode: m.other}}, true
	case key.Matches(msg, k.Activate):
		return []types.Action{types.ActivateAction{}}, true
	case key.Matches(msg, k.ApplyAll):
		return []types.Action{types.ActivateAction{All: true}}, true
	}

	if option, ok := toggledOption(k, msg); ok {
		return []types.Action{types.ToggleOptionAction{Option: option}}, true
	}

	// Let the main handler update the text field
	return nil, false
}

func toggledOption(k types.KeyMap, msg tea.KeyMsg) (domain.OptionID, bool) {
	switch {
	case key.Matches(msg, k.ToggleRegex):
		return domain.OptionRegex, true
	case key.Matches(msg, k.ToggleCase):
		return domain.OptionCaseSensitive, true
	case key.Matches(msg, k.ToggleWord):
		return domain.OptionWholeWord, true
	case key.Matches(msg, k.ToggleBackward):
		return domain.OptionBackward, true
	case key.Matches(msg, k.ToggleHighlight):
		return domain.OptionHighlight, true
	}
	return "", false
}
