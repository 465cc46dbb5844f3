package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agrofix/storefront-api/internal/metrics"
)

// Metrics records request count and latency into the collector.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	if collector == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordRequest(c.Request.Method, route, c.Writer.Status())
		collector.RecordLatency(time.Since(start))
	}
}
