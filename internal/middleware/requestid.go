package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/quotientlabs/contfrac/internal/id"
)

// RequestIDHeader carries the request ID to and from clients.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key the handlers read.
const requestIDKey = "request_id"

// RequestID assigns each request a ULID, honoring one supplied by the
// client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = id.NewRequestID().String()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Next()
	}
}

// GetRequestID returns the request ID assigned by RequestID, if any.
func GetRequestID(c *gin.Context) (string, bool) {
	rid, ok := c.Get(requestIDKey)
	if !ok {
		return "", false
	}
	s, ok := rid.(string)
	return s, ok
}
