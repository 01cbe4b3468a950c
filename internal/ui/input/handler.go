package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"findpanel/internal/ui/input/modes"
	"findpanel/internal/ui/input/types"
)

// TextTarget receives the keys a text mode leaves unhandled
type TextTarget interface {
	Update(msg tea.Msg) tea.Cmd
}

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        types.KeyMap
	text        TextTarget
}

func New(keys types.KeyMap, text TextTarget) *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		keys:        keys,
		text:        text,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeFind] = modes.NewFindMode(keys)
	h.modes[types.ModeReplace] = modes.NewReplaceMode(keys)
	h.modes[types.ModeResults] = modes.NewResultsMode(keys)

	return h
}

// HandleKey runs msg through the current mode. Mode changes are applied here
// and still returned so the model can move focus.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed {
		// Text modes hand everything else to the focused field
		if h.currentMode.IsText() && h.text != nil {
			return nil, h.text.Update(msg)
		}
		return nil, nil
	}

	var allActions []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.changeMode(changeMode.Mode, ctx)...)
		}
		allActions = append(allActions, action)
	}

	return allActions, nil
}

func (h *Handler) changeMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// ChangeMode switches mode without a key, e.g. after a mouse click
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	return h.changeMode(mode, ctx)
}

// CurrentMode returns the current input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// Keys returns the bindings the modes match against
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
}
