package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header used to propagate request ids.
const RequestIDHeader = "X-Request-ID"

// RequestID ensures every request carries a request id: incoming X-Request-ID
// is reused, otherwise a new UUID is generated. The id is stored in the context
// for response envelopes and echoed back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("RequestID", id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
