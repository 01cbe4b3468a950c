package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDocumentOpened         EventType = "DocumentOpened"
	EventDocumentChanged        EventType = "DocumentChanged"
	EventDocumentContentChanged EventType = "DocumentContentChanged"
	EventDocumentSaved          EventType = "DocumentSaved"
	EventEditorFocusRequested   EventType = "EditorFocusRequested"
	EventSearchModified         EventType = "SearchModified"
	EventSearchOptionModified   EventType = "SearchOptionModified"
	EventSearchActivated        EventType = "SearchActivated"
	EventReplaceActivated       EventType = "ReplaceActivated"
	EventResultLineClicked      EventType = "ResultLineClicked"
	EventError                  EventType = "Error"
	EventConfigLoaded           EventType = "ConfigLoaded"
	EventConfigSaved            EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DocumentOpenedEvent is emitted when a document joins the workspace
type DocumentOpenedEvent struct {
	Name string
	Path string
}

func (e DocumentOpenedEvent) Type() EventType { return EventDocumentOpened }

// DocumentChangedEvent is emitted when the host switches the active document.
// Editor is nil when no document is open.
type DocumentChangedEvent struct {
	Editor Editor
	Name   string
}

func (e DocumentChangedEvent) Type() EventType { return EventDocumentChanged }

// DocumentContentChangedEvent is emitted whenever a document's text mutates
type DocumentContentChangedEvent struct {
	Editor Editor
}

func (e DocumentContentChangedEvent) Type() EventType { return EventDocumentContentChanged }

// DocumentSavedEvent is emitted after a document is written to disk
type DocumentSavedEvent struct {
	Path string
}

func (e DocumentSavedEvent) Type() EventType { return EventDocumentSaved }

// EditorFocusRequestedEvent is emitted when an editor asks for input focus
type EditorFocusRequestedEvent struct {
	Editor Editor
}

func (e EditorFocusRequestedEvent) Type() EventType { return EventEditorFocusRequested }

// SearchModifiedEvent is emitted when the search text changes
type SearchModifiedEvent struct {
	Text    string
	Options SearchOptions
}

func (e SearchModifiedEvent) Type() EventType { return EventSearchModified }

// SearchOptionModifiedEvent is emitted when a search option is toggled
type SearchOptionModifiedEvent struct {
	Text    string
	Options SearchOptions
}

func (e SearchOptionModifiedEvent) Type() EventType { return EventSearchOptionModified }

// SearchActivatedEvent is emitted when the user triggers a search
type SearchActivatedEvent struct {
	Text    string
	Options SearchOptions
	All     bool
}

func (e SearchActivatedEvent) Type() EventType { return EventSearchActivated }

// ReplaceActivatedEvent is emitted when the user triggers a replacement
type ReplaceActivatedEvent struct {
	SearchText  string
	ReplaceText string
	Options     SearchOptions
	All         bool
}

func (e ReplaceActivatedEvent) Type() EventType { return EventReplaceActivated }

// ResultLineClickedEvent is emitted when a results console line is clicked
type ResultLineClickedEvent struct {
	Position Point
}

func (e ResultLineClickedEvent) Type() EventType { return EventResultLineClicked }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
