package ports

import (
	"context"
	"time"

	"github.com/nsm-dev/webdemo/pkg/domain"
)

// Event is a notification distributed over the event bus
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// EventHandler processes a single event
type EventHandler func(ctx context.Context, event Event) error

// EventBus distributes events to topic subscribers
type EventBus interface {
	// Publish delivers an event to all subscribers of a topic
	Publish(ctx context.Context, topic string, event Event) error

	// Subscribe registers a handler for a topic. The subscription is
	// removed when ctx is cancelled.
	Subscribe(ctx context.Context, topic string, handler EventHandler) error

	// Close releases all subscriptions
	Close() error
}

// MessageStore keeps a bounded history of processed messages
type MessageStore interface {
	// Append records a processed message, evicting the oldest entry
	// when the history is full
	Append(ctx context.Context, msg *domain.ProcessedMessage) error

	// Recent returns up to limit messages, newest first
	Recent(ctx context.Context, limit int) ([]*domain.ProcessedMessage, error)

	// Close releases storage resources
	Close() error
}

// MetricsCollector records operational metrics
type MetricsCollector interface {
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
	RecordMessageProcessed()
	RecordMessageFailed(reason string)
	WebSocketConnected()
	WebSocketDisconnected()
}
