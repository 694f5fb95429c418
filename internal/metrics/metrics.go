package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "technotes_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "technotes_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RecordMutations counts successful writes by entity (user, note) and
	// operation (create, update, delete).
	RecordMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "technotes_record_mutations_total",
			Help: "Total number of successful record mutations by entity and operation.",
		},
		[]string{"entity", "operation"},
	)

	// RequestRejections counts requests refused by business rules, by reason.
	RequestRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "technotes_request_rejections_total",
			Help: "Total number of rejected requests by entity and reason.",
		},
		[]string{"entity", "reason"},
	)
)

// Middleware records request count and latency, keyed by the matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
