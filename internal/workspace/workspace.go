// Package workspace tracks the open documents and which one is active.
package workspace

import (
	"fmt"
	"log"

	"findpanel/internal/document"
	"findpanel/internal/domain"
	"findpanel/internal/eventbus"
)

// Workspace is the set of open documents. Every change of the active
// document is announced with a DocumentChangedEvent.
type Workspace struct {
	bus    eventbus.EventBus
	docs   []*document.Document
	active int
}

// New creates an empty workspace
func New(bus eventbus.EventBus) *Workspace {
	return &Workspace{bus: bus, active: -1}
}

// Open reads every path and adds it. The first opened document becomes active.
func (w *Workspace) Open(paths []string) error {
	for _, path := range paths {
		doc, err := document.Open(path, w.bus)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		w.Add(doc)
	}
	return nil
}

// Add appends a document, activating it if nothing was active
func (w *Workspace) Add(doc *document.Document) {
	w.docs = append(w.docs, doc)
	if w.bus != nil {
		w.bus.Publish(domain.DocumentOpenedEvent{Name: doc.Name(), Path: doc.Path()})
	}
	if w.active < 0 {
		w.activate(len(w.docs) - 1)
	}
}

// Active returns the active document, nil when none is open
func (w *Workspace) Active() *document.Document {
	if w.active < 0 {
		return nil
	}
	return w.docs[w.active]
}

// ActiveIndex returns the index of the active document, -1 when none is open
func (w *Workspace) ActiveIndex() int {
	return w.active
}

// Documents returns the open documents in opening order
func (w *Workspace) Documents() []*document.Document {
	out := make([]*document.Document, len(w.docs))
	copy(out, w.docs)
	return out
}

// Next activates the following document, wrapping around
func (w *Workspace) Next() {
	if len(w.docs) < 2 {
		return
	}
	w.activate((w.active + 1) % len(w.docs))
}

// Prev activates the preceding document, wrapping around
func (w *Workspace) Prev() {
	if len(w.docs) < 2 {
		return
	}
	w.activate((w.active - 1 + len(w.docs)) % len(w.docs))
}

// CloseActive removes the active document and activates its neighbour
func (w *Workspace) CloseActive() {
	if w.active < 0 {
		return
	}
	w.docs = append(w.docs[:w.active], w.docs[w.active+1:]...)
	if len(w.docs) == 0 {
		w.activate(-1)
		return
	}
	w.activate(min(w.active, len(w.docs)-1))
}

// SaveAll writes every modified document that has a path
func (w *Workspace) SaveAll() (int, error) {
	saved := 0
	for _, doc := range w.docs {
		if !doc.Dirty() || doc.Path() == "" {
			continue
		}
		if err := doc.Save(); err != nil {
			return saved, err
		}
		saved++
	}
	return saved, nil
}

func (w *Workspace) activate(i int) {
	w.active = i
	event := domain.DocumentChangedEvent{}
	if doc := w.Active(); doc != nil {
		event.Editor = doc
		event.Name = doc.Name()
		log.Printf("Workspace: active document %s", doc.Name())
	}
	if w.bus != nil {
		w.bus.Publish(event)
	}
}
