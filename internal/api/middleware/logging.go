package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// LoggingMiddleware assigns a request id and logs each HTTP request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		// Format: [method] path?query - status (latency) rid
		status := c.Writer.Status()
		if status >= 500 {
			logger.Errorf("[%s] %s - %d (%v) %s", c.Request.Method, path, status, time.Since(start), requestID)
			return
		}
		logger.Debugf("[%s] %s - %d (%v) %s", c.Request.Method, path, status, time.Since(start), requestID)
	}
}
