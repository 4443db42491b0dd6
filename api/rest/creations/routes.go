package creations

import (
	"codeberg.org/quickai/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, repo Lister) {
	user := router.Group("/user")
	user.Use(auth.AuthMiddleware())
	{
		user.GET("/get-user-creations", ListUserCreations(repo))
		user.GET("/get-published-creations", ListPublishedCreations(repo))
	}
}
