package middleware

import (
	"crypto/subtle"
	"strings"

	"citron-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// InternalAuth accepts requests carrying the configured internal key, either
// as "Authorization: Bearer <key>" or in the X-Internal-Key header.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Internal-Key")
		if key == "" {
			authHeader := c.GetHeader("Authorization")
			if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
				key = authHeader[7:]
			}
		}

		if m.internalKey == "" || key == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Do not log key values
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "InternalAuth: key mismatch from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
