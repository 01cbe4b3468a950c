package handlers

import (
	"fmt"
	"path/filepath"

	"findpanel/internal/domain"
	"findpanel/internal/eventbus"
	"findpanel/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// Subscribe registers the handler for the events it reacts to
func (h *EventHandler) Subscribe(bus eventbus.EventBus) []func() {
	events := []eventbus.EventType{
		eventbus.EventDocumentOpened,
		eventbus.EventDocumentSaved,
		eventbus.EventEditorFocusRequested,
		eventbus.EventError,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	}
	unsubscribe := make([]func(), 0, len(events))
	for _, t := range events {
		unsubscribe = append(unsubscribe, bus.Subscribe(t, h.HandleEvent))
	}
	return unsubscribe
}

// HandleEvent processes domain events
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case domain.DocumentOpenedEvent:
		h.state.SetStatus(state.StatusInfo, fmt.Sprintf("Opened %s", e.Name))

	case domain.DocumentSavedEvent:
		h.state.SetStatus(state.StatusSuccess, fmt.Sprintf("Saved %s", filepath.Base(e.Path)))

	case domain.EditorFocusRequestedEvent:
		h.state.Focus = state.PaneEditor

	case domain.ErrorEvent:
		message := e.Message
		if e.Err != nil {
			message = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		h.state.SetStatus(state.StatusError, fmt.Sprintf("Error: %s", message))

	case domain.ConfigLoadedEvent:
		if e.Path != "" {
			h.state.SetStatus(state.StatusInfo, fmt.Sprintf("Loaded settings from %s", e.Path))
		}

	case domain.ConfigSavedEvent:
		h.state.SetStatus(state.StatusSuccess, "Settings saved")
	}
}
