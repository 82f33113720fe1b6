package middleware

import (
	"strconv"
	"time"

	"chitrakala-api/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Metrics records request count and latency per route template, and logs
// server errors.
func Metrics(m *observability.Metrics, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())

		if status >= 500 {
			log.WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   path,
				"status": status,
			}).Warn("⚠️  Request failed")
		}
	}
}
