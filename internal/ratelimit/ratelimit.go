package ratelimit

import (
	"fmt"
	"strings"

	"codeberg.org/quickai/server/internal/errors"
	"codeberg.org/quickai/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const (
	defaultPrefix   = "quickai:ratelimit:"
	defaultMaxRetry = 3
)

// ingress rate limiting configuration
type Config struct {
	// formatted rate, e.g. "60-M"
	Rate string

	// paths that are never limited
	ExcludedPaths []string

	Prefix   string
	MaxRetry int
}

// owns the limiter store and builds the gin middleware
type Manager struct {
	limiter       *limiter.Limiter
	excludedPaths []string
	backend       string
}

// creates a manager. a nil redis client selects the in-memory store.
func NewManager(cfg Config, client redis.UniversalClient) (*Manager, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", cfg.Rate, err)
	}

	if cfg.Prefix == "" {
		cfg.Prefix = defaultPrefix
	}

	if cfg.MaxRetry <= 0 {
		cfg.MaxRetry = defaultMaxRetry
	}

	options := limiter.StoreOptions{
		Prefix:   cfg.Prefix,
		MaxRetry: cfg.MaxRetry,
	}

	var store limiter.Store
	backend := "memory"

	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, options)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}

		backend = "redis"
	} else {
		store = memory.NewStoreWithOptions(options)
	}

	return &Manager{
		limiter:       limiter.New(store, rate),
		excludedPaths: cfg.ExcludedPaths,
		backend:       backend,
	}, nil
}

// which store backs the limiter: "redis" or "memory"
func (m *Manager) Backend() string {
	return m.backend
}

// returns the gin middleware enforcing the configured rate per client ip
func (m *Manager) Middleware() gin.HandlerFunc {
	limited := mgin.NewMiddleware(m.limiter,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.FromContext(c.Request.Context()).Warn("rate limit exceeded",
				"client_ip", c.ClientIP(),
				"path", c.Request.URL.Path,
			)

			errors.TooManyRequests(c, "")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			errors.InternalError(c, "rate limiter unavailable", err)
		}),
	)

	return func(c *gin.Context) {
		if m.excluded(c.Request.URL.Path) {
			c.Next()
			return
		}

		limited(c)
	}
}

func (m *Manager) excluded(path string) bool {
	for _, prefix := range m.excludedPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
