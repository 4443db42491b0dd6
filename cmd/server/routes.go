package main

import (
	"time"

	"codeberg.org/quickai/server/api/rest/admin"
	"codeberg.org/quickai/server/api/rest/ai"
	"codeberg.org/quickai/server/api/rest/creations"
	"codeberg.org/quickai/server/api/rest/health"
	"codeberg.org/quickai/server/api/rest/users"
	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(gin.Recovery())
	router.Use(logger.Middleware())
	router.Use(CORSMiddleware(server.config.AllowedOrigins))
	router.Use(server.limiter.Middleware())

	health.RegisterRoutes(router, server.db)

	api := router.Group("/api")

	{
		ai.RegisterRoutes(api, server.services.Pipeline, server.userRepo)
		creations.RegisterRoutes(api, server.creationRepo)
		users.RegisterRoutes(api, server.userRepo, server.services.Deps.FreeUsageLimit)

		if server.config.AdminAPIKey != "" {
			admin.RegisterRoutes(api, server.userRepo, server.config.AdminAPIKey)
		}
	}
}

func CORSMiddleware(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", logger.RequestIDHeader, auth.AdminKeyHeader},
		ExposeHeaders:    []string{logger.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
