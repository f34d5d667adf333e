package middleware

import (
	"time"

	"ootd-commerce/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// HTTPMetrics labels requests by route template so ids do not explode cardinality.
func HTTPMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
