package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"nodex-club.backend/pkg/logger"
)

// LoggerMiddleware logs HTTP requests using the structured logger. Probe
// endpoints are excluded to keep scrape noise out of the request log.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/healthz" || path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), latency, c.ClientIP())
	}
}
