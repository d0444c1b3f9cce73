package memory

import (
	"context"
	"sync"

	"github.com/nsm-dev/webdemo/pkg/domain"
)

// MessageStore implements ports.MessageStore with a mutex-guarded
// bounded slice. This is the default backend.
type MessageStore struct {
	mu       sync.RWMutex
	messages []*domain.ProcessedMessage
	capacity int
}

// NewMessageStore creates an in-memory message store holding at most
// capacity entries
func NewMessageStore(capacity int) *MessageStore {
	if capacity < 1 {
		capacity = 1
	}
	return &MessageStore{
		messages: make([]*domain.ProcessedMessage, 0, capacity),
		capacity: capacity,
	}
}

// Append records a processed message, evicting the oldest entry when
// the history is full
func (s *MessageStore) Append(ctx context.Context, msg *domain.ProcessedMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msg)
	if len(s.messages) > s.capacity {
		s.messages = s.messages[len(s.messages)-s.capacity:]
	}

	return nil
}

// Recent returns up to limit messages, newest first
func (s *MessageStore) Recent(ctx context.Context, limit int) ([]*domain.ProcessedMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit < 1 || limit > len(s.messages) {
		limit = len(s.messages)
	}

	out := make([]*domain.ProcessedMessage, 0, limit)
	for i := len(s.messages) - 1; i >= len(s.messages)-limit; i-- {
		out = append(out, s.messages[i])
	}

	return out, nil
}

// Close implements ports.MessageStore; nothing to release
func (s *MessageStore) Close() error {
	return nil
}
