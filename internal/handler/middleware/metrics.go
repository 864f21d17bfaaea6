package middleware

import (
	"strconv"
	"time"

	"vouch-backend/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records per-route request counts and latencies. The route
// template (not the raw path) is used as the label so UUID params don't blow
// up cardinality.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		m.HTTPRequests.WithLabelValues(route, method, status).Inc()
		m.HTTPDurations.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
