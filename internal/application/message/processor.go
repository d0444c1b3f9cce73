package message

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nsm-dev/webdemo/pkg/domain"
	"github.com/nsm-dev/webdemo/pkg/ports"
)

// Processor validates and transforms message requests
type Processor struct {
	store   ports.MessageStore
	events  ports.EventBus
	metrics ports.MetricsCollector
	logger  *zap.Logger
	now     func() time.Time
}

// NewProcessor creates a new message processor
func NewProcessor(
	store ports.MessageStore,
	events ports.EventBus,
	metrics ports.MetricsCollector,
	logger *zap.Logger,
) *Processor {
	return &Processor{
		store:   store,
		events:  events,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Process validates a message request and computes the derived fields.
// On success the result is appended to the history store and published
// on the event bus; failures there are logged but do not fail the
// request.
//
// A missing message yields a *domain.ValidationError, a wrong-typed
// message a *domain.ProcessingError whose Reason is safe to return to
// the caller.
func (p *Processor) Process(ctx context.Context, req *domain.MessageRequest) (*domain.ProcessedMessage, error) {
	if req.Message == nil {
		p.metrics.RecordMessageFailed("validation")
		return nil, &domain.ValidationError{Message: "Message is required"}
	}

	text, ok := req.Message.(string)
	if !ok {
		p.metrics.RecordMessageFailed("processing")
		return nil, &domain.ProcessingError{
			Reason: "message must be a string",
			Err:    fmt.Errorf("unexpected message type %T", req.Message),
		}
	}

	author := req.Author
	if author == "" {
		author = domain.DefaultAuthor
	}

	now := p.now().UTC()
	msg := &domain.ProcessedMessage{
		ProcessedMessage: strings.ToUpper(text),
		OriginalMessage:  text,
		Author:           author,
		Length:           utf8.RuneCountInString(text),
		WordCount:        len(strings.Fields(text)),
		Timestamp:        now,
		// Second granularity, collisions under concurrent requests
		// are accepted for the demo.
		ID: fmt.Sprintf("msg_%d", now.Unix()),
	}

	if err := p.store.Append(ctx, msg); err != nil {
		p.logger.Warn("failed to record message history",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}

	event := ports.Event{
		ID:        uuid.NewString(),
		Type:      domain.EventMessageProcessed,
		Timestamp: now,
		Data:      msg,
	}
	if err := p.events.Publish(ctx, domain.TopicMessages, event); err != nil {
		p.logger.Warn("failed to publish message event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}

	p.metrics.RecordMessageProcessed()

	return msg, nil
}
