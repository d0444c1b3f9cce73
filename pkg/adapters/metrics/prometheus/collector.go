package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector implements ports.MetricsCollector using Prometheus
type Collector struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	messagesProcessed prometheus.Counter
	messagesFailed    *prometheus.CounterVec
	wsConnections     prometheus.Gauge
}

// NewCollector creates a new Prometheus metrics collector. Metrics are
// registered on the default registry, so only one collector may exist
// per process.
func NewCollector() *Collector {
	return &Collector{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webdemo_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "webdemo_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "path"},
		),
		messagesProcessed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "webdemo_messages_processed_total",
				Help: "Total number of messages processed successfully",
			},
		),
		messagesFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webdemo_messages_failed_total",
				Help: "Total number of message requests rejected or failed",
			},
			[]string{"reason"},
		),
		wsConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "webdemo_websocket_connections",
				Help: "Current number of open WebSocket connections",
			},
		),
	}
}

// RecordHTTPRequest records a served HTTP request
func (c *Collector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordMessageProcessed records a successfully processed message
func (c *Collector) RecordMessageProcessed() {
	c.messagesProcessed.Inc()
}

// RecordMessageFailed records a rejected or failed message request
func (c *Collector) RecordMessageFailed(reason string) {
	c.messagesFailed.WithLabelValues(reason).Inc()
}

// WebSocketConnected increments the open connection gauge
func (c *Collector) WebSocketConnected() {
	c.wsConnections.Inc()
}

// WebSocketDisconnected decrements the open connection gauge
func (c *Collector) WebSocketDisconnected() {
	c.wsConnections.Dec()
}
