package users

import (
	"codeberg.org/quickai/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, resolver auth.IdentityResolver, limit int) {
	users := rg.Group("/user")
	users.Use(auth.AuthMiddleware(), auth.IdentityMiddleware(resolver))

	users.GET("/usage", GetUsage(limit))
}
