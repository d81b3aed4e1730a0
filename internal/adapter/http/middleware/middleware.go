package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/RuslanName/P2PBot-sub000/pkg/apperror"
	"github.com/RuslanName/P2PBot-sub000/pkg/metrics"
	"github.com/RuslanName/P2PBot-sub000/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderActorID identifies the acting user. Authentication is handled
	// upstream; this boundary trusts the header.
	HeaderActorID = "X-Actor-Id"

	// CtxActorID is the context key the actor id is stored under.
	CtxActorID = "actor_id"
)

// ActorID extracts the acting user id from the request header and stores it
// in the context. Requests without a valid positive id are rejected.
func ActorID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderActorID)
		if raw == "" {
			response.Error(c, apperror.Validation("missing "+HeaderActorID+" header"))
			c.Abort()
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, apperror.Validation("invalid "+HeaderActorID+" header"))
			c.Abort()
			return
		}
		c.Set(CtxActorID, id)
		c.Next()
	}
}

// Actor returns the actor id placed by ActorID, or false when absent.
func Actor(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxActorID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Metrics records the request counter and latency histogram. Uses the
// route template rather than the raw path to keep label cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.RequestCount.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
