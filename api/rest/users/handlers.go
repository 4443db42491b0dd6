package users

import (
	"net/http"

	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/internal/errors"
	"codeberg.org/quickai/server/internal/quota"
	"github.com/gin-gonic/gin"
)

// GetUsage godoc
// @Summary Get user's usage statistics
// @Description Returns the authenticated user's plan and remaining free actions
// @Tags users
// @Produce json
// @Success 200 {object} UsageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/user/usage [get]
// @Security BearerAuth
func GetUsage(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.GetIdentity(c)
		if !ok {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		response := UsageResponse{
			Success:   true,
			Plan:      identity.Plan,
			FreeUsage: identity.FreeUsage,
			Limit:     limit,
			Remaining: max(limit-identity.FreeUsage, 0),
		}

		if identity.Plan == quota.PlanPremium {
			response.Limit = -1
			response.Remaining = -1
		}

		c.JSON(http.StatusOK, response)
	}
}
