// Package middleware holds the gin middleware shared by every route.
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// HeaderRequestID carries the correlation id in and out of a request.
	HeaderRequestID = "X-Request-ID"
	// RequestIDKey is the gin context key holding the correlation id.
	RequestIDKey = "request_id"
)

// RequestID reuses the caller's X-Request-ID or generates one, echoes it in
// the response and attaches a request scoped zerolog logger to the request
// context, so log.Ctx(ctx) further down carries the id.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			if id, err := uuid.NewV7(); err == nil {
				requestID = id.String()
			} else {
				requestID = uuid.NewString()
			}
		}

		c.Set(RequestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)

		logger := log.With().Str(RequestIDKey, requestID).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))

		c.Next()
	}
}

// Logger writes one structured entry per request once the handler chain
// returns.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str(RequestIDKey, c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery turns a panic into a 500 response. render writes the body; when it
// is nil a plain status is sent.
func Recovery(render func(c *gin.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error().
					Str(RequestIDKey, c.GetString(RequestIDKey)).
					Interface("panic", recovered).
					Msg("panic recovered")

				if render == nil || c.Writer.Written() {
					c.AbortWithStatus(http.StatusInternalServerError)
					return
				}
				render(c)
				c.Abort()
			}
		}()

		c.Next()
	}
}
