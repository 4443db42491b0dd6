package creations

import (
	"net/http"

	"codeberg.org/quickai/server/api/rest/pagination"
	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListUserCreations godoc
// @Summary List the caller's creations
// @Description Returns the authenticated user's creations, newest first
// @Tags creations
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/user/get-user-creations [get]
// @Security BearerAuth
func ListUserCreations(repo Lister) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		params := pagination.FromQuery(c)

		list, total, err := repo.ListByUser(c.Request.Context(), userID, params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list creations", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{
			Success:    true,
			Creations:  list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// ListPublishedCreations godoc
// @Summary List published creations
// @Description Returns creations their owners chose to publish, newest first
// @Tags creations
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/user/get-published-creations [get]
// @Security BearerAuth
func ListPublishedCreations(repo Lister) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c)

		list, total, err := repo.ListPublished(c.Request.Context(), params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list published creations", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{
			Success:    true,
			Creations:  list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}
