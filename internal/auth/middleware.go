package auth

import (
	"strings"

	"codeberg.org/quickai/server/internal/errors"
	"codeberg.org/quickai/server/internal/logger"
	"codeberg.org/quickai/server/internal/pipeline"
	"github.com/gin-gonic/gin"
)

// validates JWT tokens and adds user id to context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.Unauthorized(c, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			errors.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := ValidateJWT(parts[1])
		if err != nil {
			errors.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)

		c.Next()
	}
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(userIDKey)
	return userID, userID != ""
}

// resolves the authenticated user's plan and free usage counter.
// must run after AuthMiddleware.
func IdentityMiddleware(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		user, err := resolver.FindOrCreate(c.Request.Context(), userID)
		if err != nil {
			logger.FromContext(c.Request.Context()).Error("failed to resolve identity",
				"error", err,
				"user_id", userID,
			)

			errors.ActionFailed(c, "", err)
			c.Abort()
			return
		}

		c.Set(identityKey, pipeline.Identity{
			UserID:    user.ID,
			Plan:      user.Plan,
			FreeUsage: user.FreeUsage,
		})

		c.Next()
	}
}

// extracts the identity stored by IdentityMiddleware
func GetIdentity(c *gin.Context) (pipeline.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return pipeline.Identity{}, false
	}

	identity, ok := value.(pipeline.Identity)
	return identity, ok
}
