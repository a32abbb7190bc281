// Package events provides a small in-process publish/subscribe bus.
// Mutating services publish entity-changed events; read-side caches
// subscribe to invalidate instead of being refetched by callers.
package events

import "sync"

// Topics published by the domain services.
const (
	TopicOrganizationChanged     = "organization.changed"
	TopicRequestChanged          = "request.changed"
	TopicVolunteerRequestChanged = "volunteer_request.changed"
)

// Event describes a change to a single entity.
type Event struct {
	// Entity is the entity kind, e.g. "organization".
	Entity string
	// ID is the changed entity's identifier.
	ID uint
}

// Handler receives published events. Handlers run synchronously on the
// publisher's goroutine and must be cheap.
type Handler func(Event)

// Bus is a topic-keyed fan-out of events to subscribed handlers.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish delivers an event to every handler subscribed to topic.
func (b *Bus) Publish(topic string, e Event) {
	b.mu.RLock()
	handlers := b.handlers[topic]
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}
