package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"poemdeck/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventNavigationDropped = domain.EventNavigationDropped
	EventSearchExecuted    = domain.EventSearchExecuted
	EventSearchCleared     = domain.EventSearchCleared
	EventSearchPanel       = domain.EventSearchPanel
	EventCollectionLoaded  = domain.EventCollectionLoaded
)

// Re-export domain event types
type NavigationDroppedEvent = domain.NavigationDroppedEvent
type SearchExecutedEvent = domain.SearchExecutedEvent
type SearchClearedEvent = domain.SearchClearedEvent
type SearchPanelEvent = domain.SearchPanelEvent
type CollectionLoadedEvent = domain.CollectionLoadedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	SubscribeAll(handler EventHandler) func()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run synchronously on the publisher's goroutine, in subscription order.
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType][]subscription
	all      []subscription
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	slog.Debug("eventbus: publish", slog.String("event", string(event.Type())))

	b.mu.RLock()
	// Copy to avoid holding the lock during handler execution
	handlers := make([]subscription, 0, len(b.handlers[event.Type()])+len(b.all))
	handlers = append(handlers, b.handlers[event.Type()]...)
	handlers = append(handlers, b.all...)
	b.mu.RUnlock()

	for _, s := range handlers {
		b.call(s.handler, event)
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.handlers[eventType] = remove(b.handlers[eventType], id)
	}
}

// SubscribeAll subscribes to every event type
func (b *bus) SubscribeAll(handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.all = append(b.all, subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.all = remove(b.all, id)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("eventbus: handler panic",
				slog.String("event", string(event.Type())),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()
	h(event)
}

func remove(subs []subscription, id int) []subscription {
	out := subs[:0:0]
	for _, s := range subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	return out
}

// Publisher returns a nil-safe publish function for optional buses
func Publisher(b EventBus) func(DomainEvent) {
	if b == nil {
		return func(DomainEvent) {}
	}
	return b.Publish
}
