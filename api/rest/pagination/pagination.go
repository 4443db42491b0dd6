package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// creates pagination metadata from params and total count
func NewMeta(params Params, total int) Meta {
	return Meta{
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
		HasMore: params.Offset+params.Limit < total,
	}
}

// returns pagination params with defaults applied
func DefaultParams(limit, offset, defaultLimit, maxLimit int) Params {
	if limit <= 0 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	if offset < 0 {
		offset = 0
	}

	return Params{
		Limit:  limit,
		Offset: offset,
	}
}

// reads ?limit and ?offset, ignoring values that are not integers
func FromQuery(c *gin.Context) Params {
	limit, _ := strconv.Atoi(c.Query("limit"))   //nolint:errcheck // falls back to default
	offset, _ := strconv.Atoi(c.Query("offset")) //nolint:errcheck // falls back to zero

	return DefaultParams(limit, offset, DefaultLimit, MaxLimit)
}
