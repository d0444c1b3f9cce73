package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nsm-dev/webdemo/pkg/domain"
)

const historyKey = "webdemo:messages"

// MessageStore implements ports.MessageStore on a Redis list. Entries
// are JSON-encoded, trimmed to capacity on every append and expire
// after the configured TTL.
type MessageStore struct {
	client   *redis.Client
	capacity int64
	ttl      time.Duration
	logger   *zap.Logger
}

// NewMessageStore creates a Redis-backed message store
func NewMessageStore(client *redis.Client, capacity int, ttl time.Duration, logger *zap.Logger) *MessageStore {
	return &MessageStore{
		client:   client,
		capacity: int64(capacity),
		ttl:      ttl,
		logger:   logger,
	}
}

// Append records a processed message, evicting the oldest entry when
// the history is full
func (s *MessageStore) Append(ctx context.Context, msg *domain.ProcessedMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, historyKey, data)
	pipe.LTrim(ctx, historyKey, 0, s.capacity-1)
	pipe.Expire(ctx, historyKey, s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	return nil
}

// Recent returns up to limit messages, newest first
func (s *MessageStore) Recent(ctx context.Context, limit int) ([]*domain.ProcessedMessage, error) {
	if limit < 1 || int64(limit) > s.capacity {
		limit = int(s.capacity)
	}

	entries, err := s.client.LRange(ctx, historyKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load message history: %w", err)
	}

	messages := make([]*domain.ProcessedMessage, 0, len(entries))
	for _, entry := range entries {
		var msg domain.ProcessedMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			// Skip unreadable entries rather than failing the request
			s.logger.Warn("skipping malformed history entry", zap.Error(err))
			continue
		}
		messages = append(messages, &msg)
	}

	return messages, nil
}

// Close implements ports.MessageStore. The Redis client is shared and
// closed by the owner, not here.
func (s *MessageStore) Close() error {
	return nil
}
