package admin

import (
	"context"

	"codeberg.org/quickai/server/internal/quota"
	"codeberg.org/quickai/server/quickai/users"
)

// administrative access to identity metadata
type UserStore interface {
	FindByID(ctx context.Context, userID string) (*users.User, error)
	SetPlan(ctx context.Context, userID string, plan quota.Plan) error
}

type SetPlanRequest struct {
	Plan string `json:"plan" binding:"required,oneof=free premium"`
}
