package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Metrics holds every Prometheus metric the transport boundary exposes.
type Metrics struct {
	// HTTP metrics
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestSize     *prometheus.HistogramVec
	responseSize    *prometheus.HistogramVec

	// WebSocket metrics
	activeConnections prometheus.Gauge
	wsConnections     *prometheus.CounterVec
	wsMessages        *prometheus.CounterVec

	// Battle metrics
	activeSessions  prometheus.Gauge
	choicesSubmitted *prometheus.CounterVec
	battleEvents    *prometheus.CounterVec

	// System metrics
	serverStartTime prometheus.Gauge
	healthChecks    *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates and registers every Prometheus metric.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "battlesim_http_requests_total",
				Help: "Total number of HTTP requests processed by method and status",
			},
			[]string{"method", "endpoint", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "battlesim_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		requestSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "battlesim_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 8), // 100B to 1GB
			},
			[]string{"method", "endpoint"},
		),

		responseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "battlesim_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 8), // 100B to 1GB
			},
			[]string{"method", "endpoint"},
		),

		activeConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "battlesim_websocket_connections_active",
				Help: "Number of active WebSocket connections",
			},
		),

		wsConnections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "battlesim_websocket_connections_total",
				Help: "Total number of WebSocket connections by type",
			},
			[]string{"type"}, // "connected", "disconnected", "failed"
		),

		wsMessages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "battlesim_websocket_messages_total",
				Help: "Total number of WebSocket messages by direction and type",
			},
			[]string{"direction", "type"}, // direction: "inbound"/"outbound"; type: inbound envelope type, or "turnresult" outbound
		),

		activeSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "battlesim_sessions_active",
				Help: "Number of connected battle sessions",
			},
		),

		choicesSubmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "battlesim_choices_submitted_total",
				Help: "Total number of per-turn choices submitted by kind",
			},
			[]string{"kind", "status"}, // status: "accepted", "rejected"
		),

		battleEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "battlesim_battle_events_total",
				Help: "Total number of emitted battle log entries by kind",
			},
			[]string{"kind"},
		),

		serverStartTime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "battlesim_server_start_time_seconds",
				Help: "Unix timestamp when the server started",
			},
		),

		healthChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "battlesim_health_checks_total",
				Help: "Total number of health checks by name and status",
			},
			[]string{"check_name", "status"}, // status: "success", "failure"
		),

		registry: registry,
	}

	m.registry.MustRegister(
		m.requestCount,
		m.requestDuration,
		m.requestSize,
		m.responseSize,
		m.activeConnections,
		m.wsConnections,
		m.wsMessages,
		m.activeSessions,
		m.choicesSubmitted,
		m.battleEvents,
		m.serverStartTime,
		m.healthChecks,
	)

	m.serverStartTime.SetToCurrentTime()

	return m
}

// GetHandler returns an HTTP handler for exposing metrics.
func (m *Metrics) GetHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		Registry:          m.registry,
	})
}

// RecordHTTPRequest records metrics for an HTTP request.
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration, requestSize, responseSize int64) {
	status := strconv.Itoa(statusCode)

	m.requestCount.WithLabelValues(method, endpoint, status).Inc()
	m.requestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())

	if requestSize > 0 {
		m.requestSize.WithLabelValues(method, endpoint).Observe(float64(requestSize))
	}
	if responseSize > 0 {
		m.responseSize.WithLabelValues(method, endpoint).Observe(float64(responseSize))
	}
}

// RecordWebSocketConnection records WebSocket connection events.
func (m *Metrics) RecordWebSocketConnection(connectionType string) {
	m.wsConnections.WithLabelValues(connectionType).Inc()

	if connectionType == "connected" {
		m.activeConnections.Inc()
	} else if connectionType == "disconnected" {
		m.activeConnections.Dec()
	}
}

// RecordWebSocketMessage records WebSocket message events.
func (m *Metrics) RecordWebSocketMessage(direction, messageType string) {
	m.wsMessages.WithLabelValues(direction, messageType).Inc()
}

// RecordChoiceSubmitted records a per-turn choice submission outcome.
func (m *Metrics) RecordChoiceSubmitted(kind, status string) {
	m.choicesSubmitted.WithLabelValues(kind, status).Inc()
}

// RecordBattleEvent records one emitted battle log entry.
func (m *Metrics) RecordBattleEvent(kind string) {
	m.battleEvents.WithLabelValues(kind).Inc()
}

// UpdateActiveSessions updates the active sessions gauge.
func (m *Metrics) UpdateActiveSessions(count int) {
	m.activeSessions.Set(float64(count))
}

// RecordHealthCheck records health check results.
func (m *Metrics) RecordHealthCheck(checkName, status string) {
	m.healthChecks.WithLabelValues(checkName, status).Inc()
}

// MetricsMiddleware provides HTTP middleware for recording request metrics.
func (m *Metrics) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		recorder := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		var requestSize int64
		if r.ContentLength > 0 {
			requestSize = r.ContentLength
		}

		next.ServeHTTP(recorder, r)

		duration := time.Since(start)
		endpoint := sanitizeEndpoint(r.URL.Path)

		m.RecordHTTPRequest(
			r.Method,
			endpoint,
			recorder.statusCode,
			duration,
			requestSize,
			recorder.responseSize,
		)

		logrus.WithFields(logrus.Fields{
			"method":        r.Method,
			"endpoint":      endpoint,
			"status":        recorder.statusCode,
			"duration_ms":   duration.Milliseconds(),
			"request_size":  requestSize,
			"response_size": recorder.responseSize,
			"user_agent":    r.UserAgent(),
		}).Debug("HTTP request processed")
	})
}

// responseRecorder wraps http.ResponseWriter to capture response details.
type responseRecorder struct {
	http.ResponseWriter
	statusCode   int
	responseSize int64
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	size, err := r.ResponseWriter.Write(data)
	r.responseSize += int64(size)
	return size, err
}

// sanitizeEndpoint normalizes endpoint paths for metrics.
func sanitizeEndpoint(path string) string {
	switch path {
	case "/":
		return "root"
	case "/healthz":
		return "healthz"
	case "/metrics":
		return "metrics"
	case "/ws":
		return "websocket"
	default:
		if len(path) > 20 {
			return "other"
		}
		return path
	}
}
