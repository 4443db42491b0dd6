package auth

import (
	"crypto/subtle"

	"codeberg.org/quickai/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const AdminKeyHeader = "X-Admin-Key"

// guards administrative routes with a shared key
func AdminAuthMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(AdminKeyHeader)

		if adminKey == "" || provided == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
			errors.Unauthorized(c, "admin key required")
			c.Abort()
			return
		}

		c.Next()
	}
}
