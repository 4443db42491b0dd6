package main

import (
	"codeberg.org/quickai/server/internal/config"
	"codeberg.org/quickai/server/internal/pipeline"
	"codeberg.org/quickai/server/internal/ratelimit"
	"codeberg.org/quickai/server/quickai/creations"
	"codeberg.org/quickai/server/quickai/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	redis        *redis.Client
	config       *config.Config
	userRepo     *users.Repository
	creationRepo *creations.Repository
	services     *Services
	limiter      *ratelimit.Manager
	router       *gin.Engine
}

// holds the pipeline and the external service clients behind it
type Services struct {
	Pipeline *pipeline.Pipeline
	Deps     pipeline.Dependencies
}
