package errors

import (
	"net/http"

	"codeberg.org/quickai/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For ai action handlers:
//   - Every outcome is HTTP 200 with a flat {success, content|message} body
//   - Use errors.ActionFailed() and errors.LimitReached(); the pipeline has
//     already logged the failure
//
// For other REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc.
//     These functions handle both logging and HTTP response automatically
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For services/repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}

	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeUnauthorized,
		Message: message,
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = Sanitize(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"category", Category(err),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: Sanitize(err),
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

// answers an unsuccessful ai action. when err is set its sanitized text
// replaces message.
func ActionFailed(c *gin.Context, message string, err error) {
	if err != nil {
		message = Sanitize(err)
	}

	c.JSON(http.StatusOK, ActionFailure{
		Success: false,
		Message: message,
	})
}

// answers an ai action refused by the usage quota
func LimitReached(c *gin.Context, message string) {
	c.JSON(http.StatusOK, ActionFailure{
		Success: false,
		Message: message,
	})
}

// answers a successful ai action
func ActionSucceeded(c *gin.Context, content string) {
	c.JSON(http.StatusOK, ActionResponse{
		Success: true,
		Content: content,
	})
}
