package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// assigns a request id, stores a request-scoped logger in the request
// context and logs one line per request once the handler chain returns
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Header(RequestIDHeader, requestID)
		c.Set("request_id", requestID)

		reqLogger := defaultLogger.With("request_id", requestID)
		c.Request = c.Request.WithContext(WithContext(c.Request.Context(), reqLogger))

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}

		if userID, ok := c.Get("user_id"); ok {
			args = append(args, "user_id", userID)
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			reqLogger.Error("request completed", args...)
		case status >= 400:
			reqLogger.Warn("request completed", args...)
		default:
			reqLogger.Info("request completed", args...)
		}
	}
}
