package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records request counts and latency per route under the service
// namespace. Collectors go on the injected registry, so every engine (and
// every test) gets its own set.
func Metrics(reg prometheus.Registerer) gin.HandlerFunc {
	reqTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "user_address",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requests served, by route, method and status.",
		},
		[]string{"path", "method", "status"},
	)
	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "user_address",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Request latency, by route and method.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
	reg.MustRegister(reqTotal, latency)

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		reqTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		latency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
