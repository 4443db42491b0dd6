package bodylimit

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// caps the request body of every route in the group at limit bytes. reads
// past the cap fail with *http.MaxBytesError.
func Middleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// reports whether err came from reading past the body cap
func Exceeded(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
