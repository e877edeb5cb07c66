package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-jobpilot-backend/internal/domain"
)

// RequestID tags every request with an id for log correlation. An inbound
// X-Request-ID is trusted as-is so ids survive proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(string(domain.KeyRequestID), reqID)
		c.Header("X-Request-ID", reqID)
		c.Next()
	}
}
