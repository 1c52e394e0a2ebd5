package eventbus

import (
	"sync"

	"hearsay/internal/domain"
	"hearsay/internal/logging"
)

// EventHandler is a function that handles domain events
type EventHandler func(domain.DomainEvent)

// EventBus is the interface for the event bus.
//
// Delivery is synchronous: Publish invokes every live handler for the event
// type, in subscription order, before returning. The unsubscribe function
// returned by Subscribe takes effect immediately: a handler removed while a
// dispatch is in flight is skipped, so no callback fires against a torn-down
// subscriber.
type EventBus interface {
	Publish(event domain.DomainEvent)
	Subscribe(eventType domain.EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[domain.EventType][]subscription
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[domain.EventType][]subscription),
	}
}

var log = logging.NewLogger("eventbus")

// Publish delivers an event to all subscribers of its type, in order.
func (b *bus) Publish(event domain.DomainEvent) {
	switch event.Type() {
	case domain.EventJobProgressed, domain.EventDeviceChanged:
		// too frequent to log
	default:
		log.Debugf("publish %s", event.Type())
	}

	b.mu.Lock()
	subs := b.handlers[event.Type()]
	ids := make([]uint64, len(subs))
	for i, s := range subs {
		ids[i] = s.id
	}
	b.mu.Unlock()

	// Re-resolve each handler at call time so an unsubscribe that happened
	// after the snapshot (possibly from an earlier handler in this same
	// dispatch) suppresses the call.
	for _, id := range ids {
		if h := b.lookup(event.Type(), id); h != nil {
			h(event)
		}
	}
}

// Subscribe registers a handler for an event type and returns an
// unsubscribe function. Unsubscribing is idempotent.
func (b *bus) Subscribe(eventType domain.EventType, handler EventHandler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

func (b *bus) lookup(eventType domain.EventType, id uint64) EventHandler {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.handlers[eventType] {
		if s.id == id {
			return s.handler
		}
	}
	return nil
}
