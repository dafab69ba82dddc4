package middleware

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parkpulse-analytics/pkg/response"
)

// Recovery turns panics into the unified error envelope instead of a
// dropped connection.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err := fmt.Sprintf("panic recovered: %v", recovered)
		stack := string(debug.Stack())

		log.Printf("[PANIC RECOVERY] %s\n%s", err, stack)

		response.Error(c, response.INTERNAL_ERROR, "internal server error")
	})
}

// ErrorHandler reports errors attached to the context by handlers that
// returned without writing a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			log.Printf("[ERROR] %s %s - %v", c.Request.Method, c.Request.URL.Path, err.Err)

			if !c.Writer.Written() {
				switch err.Type {
				case gin.ErrorTypeBind:
					response.Error(c, response.INVALID_PARAMS, "invalid request parameters: "+err.Error())
				case gin.ErrorTypePublic:
					response.Error(c, response.ERROR, err.Error())
				default:
					response.Error(c, response.INTERNAL_ERROR, "internal service error")
				}
			}
		}
	}
}

// RequestID tags each request so log lines and feed events correlate.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// SecureHeaders sets the usual hardening headers.
func SecureHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
