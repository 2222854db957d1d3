// Package metrics provides Prometheus metrics collection for the segment insights service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QueryDuration tracks downstream query duration per metric computation.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "metric_query_duration_seconds",
			Help:    "Federated query duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"metric"},
	)

	// QueryErrorsTotal tracks downstream query failures by metric and error kind.
	QueryErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metric_query_errors_total",
			Help: "Total number of failed federated queries",
		},
		[]string{"metric", "kind"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// GateInFlight tracks the number of currently held admission slots.
	GateInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gate_in_flight",
			Help: "Number of queries currently admitted to the engine",
		},
	)

	// GateWaitingTotal tracks callers that had to wait for an admission slot.
	GateWaitingTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gate_waits_total",
			Help: "Total number of callers that blocked waiting for a slot",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuery records the duration of a completed downstream query.
func RecordQuery(metric string, duration time.Duration) {
	QueryDuration.WithLabelValues(metric).Observe(duration.Seconds())
}

// RecordQueryError records a failed downstream query.
func RecordQueryError(metric, kind string) {
	QueryErrorsTotal.WithLabelValues(metric, kind).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
