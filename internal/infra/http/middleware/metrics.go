package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	syncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_runs_total",
			Help: "Total number of sync runs by outcome",
		},
		[]string{"provider", "object", "outcome"},
	)

	syncRowsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_rows_applied_total",
			Help: "Total number of staged rows applied to the normalized store",
		},
		[]string{"provider", "object"},
	)

	syncEventsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_events_accepted_total",
			Help: "Total number of webhook events accepted for processing",
		},
		[]string{"provider", "object"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordSyncRun(provider, object, outcome string) {
	syncRunsTotal.WithLabelValues(provider, object, outcome).Inc()
}

func RecordRowsApplied(provider, object string, rows int) {
	syncRowsApplied.WithLabelValues(provider, object).Add(float64(rows))
}

func RecordEventAccepted(provider, object string) {
	syncEventsAccepted.WithLabelValues(provider, object).Inc()
}
