package users

import (
	"context"
	"time"

	"codeberg.org/quickai/server/internal/quota"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// the subset of pgxpool.Pool used by the repository
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// handles identity metadata (plan and free usage) owned by the identity provider
type Repository struct {
	db DB
}

// an authenticated caller's plan and metered usage
type User struct {
	ID        string     `json:"id"`
	Plan      quota.Plan `json:"plan"`
	FreeUsage int        `json:"free_usage"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
