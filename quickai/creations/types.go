package creations

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// the subset of pgxpool.Pool used by the repository
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// handles creation database operations
type Repository struct {
	db DB
}

// kind of content a creation holds
type Type string

const (
	TypeArticle      Type = "article"
	TypeBlogTitle    Type = "blog-title"
	TypeImage        Type = "image"
	TypeResumeReview Type = "resume-review"
)

func (t Type) Valid() bool {
	switch t {
	case TypeArticle, TypeBlogTitle, TypeImage, TypeResumeReview:
		return true
	default:
		return false
	}
}

// an immutable record of one successful action
type Creation struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Prompt    string    `json:"prompt"`
	Content   string    `json:"content"`
	Type      Type      `json:"type"`
	Publish   bool      `json:"publish"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateRequest struct {
	UserID  string
	Prompt  string
	Content string
	Type    Type
	Publish bool
}
