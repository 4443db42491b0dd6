package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/quickai/server/internal/config"
	"codeberg.org/quickai/server/internal/logger"
	"codeberg.org/quickai/server/internal/ratelimit"
	"codeberg.org/quickai/server/quickai/creations"
	"codeberg.org/quickai/server/quickai/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// multipart parts above this spill to temp files. ai request bodies are capped
// below it by the ai route group.
const maxMultipartMemory = 16 << 20

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	db, err := connectDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = connectRedis(ctx, cfg.RedisURL)
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	var limiterStore redis.UniversalClient
	if redisClient != nil {
		limiterStore = redisClient
	}

	limiter, err := ratelimit.NewManager(ratelimit.Config{
		Rate:          cfg.RateLimit,
		ExcludedPaths: []string{"/health", "/api/ping"},
	}, limiterStore)
	if err != nil {
		closeAll(db, redisClient)
		return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
	}

	logger.Info("rate limiter initialized", "backend", limiter.Backend(), "rate", cfg.RateLimit)

	userRepo := users.NewRepository(db)
	creationRepo := creations.NewRepository(db)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = maxMultipartMemory

	server := &Server{
		db:           db,
		redis:        redisClient,
		config:       cfg,
		userRepo:     userRepo,
		creationRepo: creationRepo,
		services:     InitializeServices(cfg, userRepo, creationRepo),
		limiter:      limiter,
		router:       router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

// releases the database pool and redis connection
func (s *Server) Close() {
	closeAll(s.db, s.redis)
}

func connectDatabase(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// transaction-mode poolers (PgBouncer, Neon) don't support prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("connected to database")

	return db, nil
}

func connectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis")

	return client, nil
}

func closeAll(db *pgxpool.Pool, redisClient *redis.Client) {
	if redisClient != nil {
		redisClient.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	if db != nil {
		db.Close()
	}
}
