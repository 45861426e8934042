package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gemini-chat/pkg/log"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// RequestID stores the incoming X-Request-ID, or a fresh uuid, in the request
// context so every log line of the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog logs one line per request once the handler is done.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			m.l.Errorf(ctx, "internal.middleware.AccessLog: %s %s %d %s errors=%s", c.Request.Method, c.Request.URL.Path, status, latency, c.Errors.String())
		case status >= 400:
			m.l.Warnf(ctx, "internal.middleware.AccessLog: %s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			m.l.Debugf(ctx, "internal.middleware.AccessLog: %s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
