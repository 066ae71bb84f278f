package events

import (
	"context"
	"sync"
)

// EventHandler consumes a published event. Handlers run synchronously on
// the publishing goroutine.
type EventHandler func(context.Context, Event) error

// Dispatcher fans domain events out to subscribed handlers.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

type memoryDispatcher struct {
	mu          sync.RWMutex
	subscribers map[EventType][]EventHandler
}

// NewInMemoryDispatcher returns a synchronous in-process dispatcher.
func NewInMemoryDispatcher() Dispatcher {
	return &memoryDispatcher{subscribers: make(map[EventType][]EventHandler)}
}

// Publish delivers the event to every handler subscribed to its type.
// Notification side effects are best-effort: a failing handler does not
// stop delivery to the rest, and the triggering operation has already
// committed.
func (d *memoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	subscribed := make([]EventHandler, len(d.subscribers[event.Type]))
	copy(subscribed, d.subscribers[event.Type])
	d.mu.RUnlock()

	for _, handle := range subscribed {
		_ = handle(ctx, event)
	}
	return nil
}

// Subscribe registers a handler for the given event type.
func (d *memoryDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	d.subscribers[eventType] = append(d.subscribers[eventType], handler)
	d.mu.Unlock()
}
