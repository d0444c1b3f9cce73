package websocket

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/nsm-dev/webdemo/pkg/domain"
	"github.com/nsm-dev/webdemo/pkg/ports"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // development demo, any origin may connect
	},
}

// Handler streams processed messages to WebSocket clients
type Handler struct {
	events  ports.EventBus
	metrics ports.MetricsCollector
	logger  *zap.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(events ports.EventBus, metrics ports.MetricsCollector, logger *zap.Logger) *Handler {
	return &Handler{
		events:  events,
		metrics: metrics,
		logger:  logger,
	}
}

// HandleMessageStream upgrades the connection and forwards every
// processed message to the client as a JSON text frame
func (h *Handler) HandleMessageStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	h.metrics.WebSocketConnected()
	defer h.metrics.WebSocketDisconnected()

	h.logger.Info("WebSocket connection established",
		zap.String("client", c.ClientIP()))

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// The demo client never sends frames; the read loop only notices
	// the peer going away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	eventChan := make(chan ports.Event, 10)
	handler := func(ctx context.Context, event ports.Event) error {
		select {
		case eventChan <- event:
		case <-ctx.Done():
			return ctx.Err()
		default:
			h.logger.Warn("event channel full, dropping event",
				zap.String("event_id", event.ID))
		}
		return nil
	}

	if err := h.events.Subscribe(ctx, domain.TopicMessages, handler); err != nil {
		h.logger.Error("failed to subscribe to message events", zap.Error(err))
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-eventChan:
			data, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("failed to marshal event", zap.Error(err))
				continue
			}

			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.logger.Error("failed to write message", zap.Error(err))
				return
			}
		}
	}
}
