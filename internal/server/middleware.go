package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/graphtrace/internal/logging"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// getOrCreateRequestID echoes the client's X-Request-ID or mints one.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)
	return requestID
}

// requestScope tags the request with an id and a logger carrying it, and
// writes one access record once the handler chain returns.
func requestScope(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := getOrCreateRequestID(c)
		log := base.With(slog.String(requestIDKey, id))
		c.Set(requestIDKey, id)
		c.Request = c.Request.WithContext(logging.WithLogger(c.Request.Context(), log))

		started := time.Now()
		c.Next()

		log.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(started)))
	}
}

// requestLogger returns the logger requestScope attached, or fallback.
func requestLogger(c *gin.Context, fallback *slog.Logger) *slog.Logger {
	return logging.FromContext(c.Request.Context(), fallback)
}

// rateLimit rejects requests beyond a shared token bucket with 429.
func rateLimit(l *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "rate limit exceeded",
				Code:  CodeRateLimited,
			})
			return
		}
		c.Next()
	}
}
