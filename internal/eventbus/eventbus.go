package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"findpanel/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventDocumentOpened         = domain.EventDocumentOpened
	EventDocumentChanged        = domain.EventDocumentChanged
	EventDocumentContentChanged = domain.EventDocumentContentChanged
	EventDocumentSaved          = domain.EventDocumentSaved
	EventEditorFocusRequested   = domain.EventEditorFocusRequested
	EventSearchModified         = domain.EventSearchModified
	EventSearchOptionModified   = domain.EventSearchOptionModified
	EventSearchActivated        = domain.EventSearchActivated
	EventReplaceActivated       = domain.EventReplaceActivated
	EventResultLineClicked      = domain.EventResultLineClicked
	EventError                  = domain.EventError
	EventConfigLoaded           = domain.EventConfigLoaded
	EventConfigSaved            = domain.EventConfigSaved
)

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers events synchronously on the publishing goroutine.
// Events published while a handler runs are queued and delivered
// after the current event has reached every subscriber.
type bus struct {
	mu          sync.Mutex
	handlers    map[EventType][]subscription
	nextID      uint64
	queue       []DomainEvent
	dispatching bool
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventDocumentContentChanged, EventSearchModified:
		// too chatty to log
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	b.mu.Lock()
	b.queue = append(b.queue, event)
	if b.dispatching {
		b.mu.Unlock()
		return
	}
	b.dispatching = true
	b.mu.Unlock()

	b.drain()
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// drain delivers queued events until the queue is empty
func (b *bus) drain() {
	for {
		b.mu.Lock()
		if len(b.queue) == 0 {
			b.dispatching = false
			b.mu.Unlock()
			return
		}
		event := b.queue[0]
		b.queue = b.queue[1:]
		// Copy so handlers may (un)subscribe while we iterate
		subs := make([]subscription, len(b.handlers[event.Type()]))
		copy(subs, b.handlers[event.Type()])
		b.mu.Unlock()

		for _, s := range subs {
			b.call(s.handler, event)
		}
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}
