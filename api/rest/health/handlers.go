package health

import (
	"context"
	"net/http"
	"time"

	"codeberg.org/quickai/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

// reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// represents the health check response
type Response struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database"`
}

type PingResponse struct {
	Message string `json:"message"`
}

// Handler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get]
func Handler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()

		response := Response{
			Status:   "healthy",
			Service:  "quickai",
			Version:  "1.0.0",
			Database: "up",
		}

		if err := db.Ping(ctx); err != nil {
			logger.FromContext(c.Request.Context()).Warn("database ping failed", "error", err)

			response.Status = "degraded"
			response.Database = "down"
			c.JSON(http.StatusServiceUnavailable, response)

			return
		}

		c.JSON(http.StatusOK, response)
	}
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}

func RegisterRoutes(router *gin.Engine, db Pinger) {
	router.GET("/health", Handler(db))
	router.GET("/api/ping", PingHandler)
}
