package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/M0nkiiii/Screentime-Management/pkg/encode"
	"github.com/M0nkiiii/Screentime-Management/pkg/logger"
)

// RequestContextMiddleware assigns every request an ID (honoring an
// inbound X-Request-ID from the gateway) and threads it through the
// request context so logs can be correlated.
func RequestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := logger.ContextWithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogMiddleware logs one line per request after it completes.
// Bearer tokens are reduced to an md5 fingerprint; the raw token is never
// written to logs.
func RequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithContext(c.Request.Context())
		entry.Infof("HTTP %s %s status=%d latency=%s client=%s auth=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			tokenFingerprint(c.GetHeader("Authorization")),
		)
	}
}

// tokenFingerprint produces a short stable identifier for a bearer token.
func tokenFingerprint(header string) string {
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	if token == "" {
		return "-"
	}
	sum := encode.CalMd5([]byte(token))
	if len(sum) > 8 {
		sum = sum[:8]
	}
	return sum
}
