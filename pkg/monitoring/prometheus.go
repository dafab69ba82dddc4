package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests served",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	aggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_aggregations_total",
			Help: "Analytics rollup runs by service and operation",
		},
		[]string{"service", "operation", "status"},
	)

	aggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_aggregation_duration_seconds",
			Help:    "Wall time of composed analytics rollups",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"service", "operation"},
	)

	snapshotCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_snapshot_cache_total",
			Help: "Dashboard snapshot cache lookups",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware records per-request counters and latency.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		method := c.Request.Method

		httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// ObserveAggregation records one composed rollup run.
func ObserveAggregation(service, operation string, started time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	aggregationsTotal.WithLabelValues(service, operation, status).Inc()
	aggregationDuration.WithLabelValues(service, operation).Observe(time.Since(started).Seconds())
}

// RecordSnapshotCache counts a snapshot cache hit or miss.
func RecordSnapshotCache(hit bool) {
	if hit {
		snapshotCacheHits.WithLabelValues("hit").Inc()
		return
	}
	snapshotCacheHits.WithLabelValues("miss").Inc()
}
