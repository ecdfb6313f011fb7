package middleware

import (
	"claims-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request correlation id in both directions
const RequestIDHeader = "X-Request-ID"

// longer ids from clients are replaced to keep log lines bounded
const requestIDMaxLen = 64

// RequestID reuses the caller's X-Request-ID or generates one, stores it for
// the context logger and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(logger.ContextKeyRequestID, rid)
		c.Header(RequestIDHeader, rid)

		c.Next()
	}
}
