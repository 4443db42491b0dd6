package admin

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/quickai/server/internal/errors"
	"codeberg.org/quickai/server/internal/logger"
	"codeberg.org/quickai/server/internal/quota"
	"codeberg.org/quickai/server/quickai/users"
	"github.com/gin-gonic/gin"
)

// GetUser godoc
// @Summary Get a user's plan and usage (admin)
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} users.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/admin/users/{id} [get]
// @Security AdminKeyAuth
func GetUser(repo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := repo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if stderrors.Is(err, users.ErrUserNotFound) {
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to fetch user", err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// SetPlan godoc
// @Summary Change a user's plan (admin)
// @Description Upgrades or downgrades a user. Premium users are never metered.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body SetPlanRequest true "Target plan"
// @Success 200 {object} users.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/admin/users/{id}/plan [put]
// @Security AdminKeyAuth
func SetPlan(repo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")

		var req SetPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "plan must be free or premium", err)
			return
		}

		plan := quota.ParsePlan(req.Plan)

		if err := repo.SetPlan(c.Request.Context(), userID, plan); err != nil {
			if stderrors.Is(err, users.ErrUserNotFound) {
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to update plan", err)
			return
		}

		user, err := repo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to fetch user", err)
			return
		}

		logger.FromContext(c.Request.Context()).Info("user plan changed", "user_id", userID, "plan", plan)

		c.JSON(http.StatusOK, user)
	}
}
