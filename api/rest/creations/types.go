package creations

import (
	"context"

	"codeberg.org/quickai/server/api/rest/pagination"
	"codeberg.org/quickai/server/quickai/creations"
)

// read side of the creation store
type Lister interface {
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]creations.Creation, int, error)
	ListPublished(ctx context.Context, limit, offset int) ([]creations.Creation, int, error)
}

type ListResponse struct {
	Success    bool                 `json:"success"`
	Creations  []creations.Creation `json:"creations"`
	Pagination pagination.Meta      `json:"pagination"`
}
