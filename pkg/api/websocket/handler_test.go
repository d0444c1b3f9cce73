package websocket_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	eventsmemory "github.com/nsm-dev/webdemo/pkg/adapters/events/memory"
	"github.com/nsm-dev/webdemo/pkg/api/websocket"
	"github.com/nsm-dev/webdemo/pkg/domain"
	"github.com/nsm-dev/webdemo/pkg/ports"
)

type noopMetrics struct{}

func (noopMetrics) RecordHTTPRequest(string, string, int, time.Duration) {}
func (noopMetrics) RecordMessageProcessed()                             {}
func (noopMetrics) RecordMessageFailed(string)                          {}
func (noopMetrics) WebSocketConnected()                                 {}
func (noopMetrics) WebSocketDisconnected()                              {}

func TestMessageStream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bus := eventsmemory.NewEventBus()
	defer bus.Close()

	handler := websocket.NewHandler(bus, noopMetrics{}, zap.NewNop())

	router := gin.New()
	router.GET("/api/messages/ws", handler.HandleMessageStream)

	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/messages/ws"
	conn, resp, err := gorilla.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	defer resp.Body.Close()

	// The handler subscribes shortly after the upgrade completes, so
	// keep publishing until a frame arrives.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bus.Publish(context.Background(), domain.TopicMessages, ports.Event{
					ID:        "e1",
					Type:      domain.EventMessageProcessed,
					Timestamp: time.Now().UTC(),
					Data:      &domain.ProcessedMessage{ProcessedMessage: "HELLO"},
				})
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var event ports.Event
	require.NoError(t, json.Unmarshal(frame, &event))
	assert.Equal(t, domain.EventMessageProcessed, event.Type)

	data, err := json.Marshal(event.Data)
	require.NoError(t, err)
	assert.Contains(t, string(data), "HELLO")
}
