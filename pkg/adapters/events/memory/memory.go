package memory

import (
	"context"
	"sync"

	"github.com/nsm-dev/webdemo/pkg/ports"
)

// EventBus implements ports.EventBus with in-process handler fan-out.
// Suitable for the single-process demo server; a broker-backed bus
// would replace it for multi-instance deployments.
type EventBus struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[string]map[int]ports.EventHandler
}

// NewEventBus creates a new in-memory event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string]map[int]ports.EventHandler),
	}
}

// Publish delivers an event to all subscribers of a topic. Handlers
// run asynchronously; handler errors are ignored.
func (e *EventBus) Publish(ctx context.Context, topic string, event ports.Event) error {
	e.mu.RLock()
	handlers := make([]ports.EventHandler, 0, len(e.subscribers[topic]))
	for _, h := range e.subscribers[topic] {
		handlers = append(handlers, h)
	}
	e.mu.RUnlock()

	for _, handler := range handlers {
		go func(h ports.EventHandler) {
			_ = h(ctx, event)
		}(handler)
	}

	return nil
}

// Subscribe registers a handler for a topic. The subscription is
// removed when ctx is cancelled.
func (e *EventBus) Subscribe(ctx context.Context, topic string, handler ports.EventHandler) error {
	e.mu.Lock()
	id := e.nextID
	e.nextID++

	if e.subscribers[topic] == nil {
		e.subscribers[topic] = make(map[int]ports.EventHandler)
	}
	e.subscribers[topic][id] = handler
	e.mu.Unlock()

	go func() {
		<-ctx.Done()
		e.unsubscribe(topic, id)
	}()

	return nil
}

// Close removes all subscriptions
func (e *EventBus) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.subscribers = make(map[string]map[int]ports.EventHandler)
	return nil
}

func (e *EventBus) unsubscribe(topic string, id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.subscribers[topic], id)
	if len(e.subscribers[topic]) == 0 {
		delete(e.subscribers, topic)
	}
}
