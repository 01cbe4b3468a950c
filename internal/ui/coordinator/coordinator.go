package coordinator

import (
	"findpanel/internal/config"
	"findpanel/internal/domain"
	"findpanel/internal/eventbus"
	"findpanel/internal/ui/services/search"
)

// Coordinator connects the search service to the notifications of the
// document host and the search input
type Coordinator struct {
	// Services
	Search *search.Service

	// Dependencies
	bus         eventbus.EventBus
	unsubscribe []func()
}

// NewCoordinator creates the search service and subscribes it to bus
func NewCoordinator(bus eventbus.EventBus, input search.SearchInput, console search.Console) *Coordinator {
	c := &Coordinator{
		Search: search.NewService(input, console),
		bus:    bus,
	}

	c.subscribeToEvents()

	return c
}

// subscribeToEvents sets up event handlers
func (c *Coordinator) subscribeToEvents() {
	c.on(eventbus.EventDocumentChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.DocumentChangedEvent); ok {
			c.Search.OnDocumentChanged(event.Editor)
		}
	})

	// Edits to documents in the background do not concern the panel
	c.on(eventbus.EventDocumentContentChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.DocumentContentChangedEvent); ok && c.isActive(event.Editor) {
			c.Search.OnDocumentContentChanged()
		}
	})

	c.on(eventbus.EventSearchModified, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.SearchModifiedEvent); ok {
			c.Search.OnSearchTextOrOptionsChanged(event.Text, event.Options)
		}
	})

	c.on(eventbus.EventSearchOptionModified, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.SearchOptionModifiedEvent); ok {
			c.Search.OnOptionToggled(event.Text, event.Options)
		}
	})

	c.on(eventbus.EventSearchActivated, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.SearchActivatedEvent); ok {
			c.Search.OnSearchActivated(event.Text, event.Options, event.All)
		}
	})

	c.on(eventbus.EventReplaceActivated, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.ReplaceActivatedEvent); ok {
			c.Search.OnReplaceActivated(event.SearchText, event.ReplaceText, event.Options, event.All)
		}
	})

	c.on(eventbus.EventResultLineClicked, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.ResultLineClickedEvent); ok {
			c.Search.OnResultLineClicked(event.Position)
		}
	})
}

func (c *Coordinator) on(eventType eventbus.EventType, handler eventbus.EventHandler) {
	c.unsubscribe = append(c.unsubscribe, c.bus.Subscribe(eventType, handler))
}

func (c *Coordinator) isActive(editor domain.Editor) bool {
	active := c.Search.Editor()
	return active != nil && editor == active
}

// FindAgain repeats the search from the editor, reversed for find previous
func (c *Coordinator) FindAgain(text string, opts domain.SearchOptions, reverse bool) {
	c.Search.OnFindAgain(text, opts, reverse)
}

// Option reads a panel setting
func (c *Coordinator) Option(id domain.OptionID) (any, error) {
	return c.Search.Option(id)
}

// SetOption writes a panel setting
func (c *Coordinator) SetOption(id domain.OptionID, value any) error {
	return c.Search.SetOption(id, value)
}

// RestoreSettings applies saved panel settings, flags before texts
func (c *Coordinator) RestoreSettings(settings config.PanelSettings) error {
	for _, id := range domain.AllOptions {
		value, err := settings.Value(id)
		if err != nil {
			return err
		}
		if err := c.SetOption(id, value); err != nil {
			return err
		}
	}
	return nil
}

// CaptureSettings reads the live panel settings for saving
func (c *Coordinator) CaptureSettings() (config.PanelSettings, error) {
	var settings config.PanelSettings
	for _, id := range domain.AllOptions {
		value, err := c.Option(id)
		if err != nil {
			return settings, err
		}
		if err := settings.Set(id, value); err != nil {
			return settings, err
		}
	}
	return settings, nil
}

// Close unsubscribes from the bus
func (c *Coordinator) Close() {
	for _, unsubscribe := range c.unsubscribe {
		unsubscribe()
	}
	c.unsubscribe = nil
}
