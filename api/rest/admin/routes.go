package admin

import (
	"codeberg.org/quickai/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, repo UserStore, adminKey string) {
	admin := router.Group("/admin")
	admin.Use(auth.AdminAuthMiddleware(adminKey))

	admin.GET("/users/:id", GetUser(repo))
	admin.PUT("/users/:id/plan", SetPlan(repo))
}
