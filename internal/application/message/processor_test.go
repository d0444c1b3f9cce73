package message_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nsm-dev/webdemo/internal/application/message"
	"github.com/nsm-dev/webdemo/pkg/domain"
	"github.com/nsm-dev/webdemo/pkg/ports"
)

type stubStore struct {
	mu       sync.Mutex
	appended []*domain.ProcessedMessage
	err      error
}

func (s *stubStore) Append(ctx context.Context, msg *domain.ProcessedMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appended = append(s.appended, msg)
	return s.err
}

func (s *stubStore) Recent(ctx context.Context, limit int) ([]*domain.ProcessedMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appended, nil
}

func (s *stubStore) Close() error { return nil }

type stubBus struct {
	mu        sync.Mutex
	published []ports.Event
}

func (b *stubBus) Publish(ctx context.Context, topic string, event ports.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, event)
	return nil
}

func (b *stubBus) Subscribe(ctx context.Context, topic string, handler ports.EventHandler) error {
	return nil
}

func (b *stubBus) Close() error { return nil }

type noopMetrics struct{}

func (noopMetrics) RecordHTTPRequest(string, string, int, time.Duration) {}
func (noopMetrics) RecordMessageProcessed()                             {}
func (noopMetrics) RecordMessageFailed(string)                          {}
func (noopMetrics) WebSocketConnected()                                 {}
func (noopMetrics) WebSocketDisconnected()                              {}

func newProcessor(store *stubStore, bus *stubBus) *message.Processor {
	return message.NewProcessor(store, bus, noopMetrics{}, zap.NewNop())
}

func TestProcessSuccess(t *testing.T) {
	store := &stubStore{}
	bus := &stubBus{}
	p := newProcessor(store, bus)

	msg, err := p.Process(context.Background(), &domain.MessageRequest{
		Message: "hello world",
		Author:  "Ann",
	})
	require.NoError(t, err)

	assert.Equal(t, "HELLO WORLD", msg.ProcessedMessage)
	assert.Equal(t, "hello world", msg.OriginalMessage)
	assert.Equal(t, "Ann", msg.Author)
	assert.Equal(t, 11, msg.Length)
	assert.Equal(t, 2, msg.WordCount)
	assert.Regexp(t, `^msg_\d+$`, msg.ID)
	assert.WithinDuration(t, time.Now().UTC(), msg.Timestamp, 5*time.Second)
	assert.Equal(t, time.UTC, msg.Timestamp.Location())

	require.Len(t, store.appended, 1)
	assert.Same(t, msg, store.appended[0])

	require.Len(t, bus.published, 1)
	assert.Equal(t, domain.EventMessageProcessed, bus.published[0].Type)
	assert.Same(t, msg, bus.published[0].Data)
}

func TestProcessDefaultAuthor(t *testing.T) {
	p := newProcessor(&stubStore{}, &stubBus{})

	msg, err := p.Process(context.Background(), &domain.MessageRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", msg.Author)
}

func TestProcessMissingMessage(t *testing.T) {
	store := &stubStore{}
	p := newProcessor(store, &stubBus{})

	_, err := p.Process(context.Background(), &domain.MessageRequest{Author: "Ann"})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Message is required", validationErr.Message)
	assert.Empty(t, store.appended)
}

func TestProcessNonStringMessage(t *testing.T) {
	store := &stubStore{}
	p := newProcessor(store, &stubBus{})

	_, err := p.Process(context.Background(), &domain.MessageRequest{Message: float64(123)})
	require.Error(t, err)

	var processingErr *domain.ProcessingError
	require.ErrorAs(t, err, &processingErr)
	assert.Equal(t, "message must be a string", processingErr.Reason)
	// The internal detail stays behind the tagged error for logging
	assert.Contains(t, err.Error(), "float64")
	assert.Empty(t, store.appended)
}

func TestProcessUnicodeLength(t *testing.T) {
	p := newProcessor(&stubStore{}, &stubBus{})

	msg, err := p.Process(context.Background(), &domain.MessageRequest{Message: "héllo wörld"})
	require.NoError(t, err)
	assert.Equal(t, 11, msg.Length)
	assert.Equal(t, "HÉLLO WÖRLD", msg.ProcessedMessage)
}

func TestProcessWordCountWhitespaceRuns(t *testing.T) {
	p := newProcessor(&stubStore{}, &stubBus{})

	msg, err := p.Process(context.Background(), &domain.MessageRequest{Message: "  hello \t world  "})
	require.NoError(t, err)
	assert.Equal(t, 2, msg.WordCount)
	assert.Equal(t, 17, msg.Length)
}

func TestProcessStoreFailureDoesNotFailRequest(t *testing.T) {
	store := &stubStore{err: errors.New("disk full")}
	bus := &stubBus{}
	p := newProcessor(store, bus)

	msg, err := p.Process(context.Background(), &domain.MessageRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "HELLO", msg.ProcessedMessage)
	assert.Len(t, bus.published, 1)
}
