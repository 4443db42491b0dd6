package users

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/quickai/server/internal/quota"
	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// returns the user's plan and usage, creating a free record on first sight
func (r *Repository) FindOrCreate(ctx context.Context, userID string) (*User, error) {
	if _, err := r.db.Exec(ctx, queryEnsure, userID); err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}

	return r.FindByID(ctx, userID)
}

func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	var (
		user User
		plan string
	)

	err := r.db.QueryRow(ctx, queryFindByID, userID).Scan(
		&user.ID,
		&plan,
		&user.FreeUsage,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	user.Plan = quota.ParsePlan(plan)
	return &user, nil
}

// bumps the free usage counter by one and returns the new value
func (r *Repository) IncrementFreeUsage(ctx context.Context, userID string) (int, error) {
	var freeUsage int

	err := r.db.QueryRow(ctx, queryIncrementFreeUsage, userID).Scan(&freeUsage)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrUserNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("failed to increment free usage: %w", err)
	}

	return freeUsage, nil
}

func (r *Repository) SetPlan(ctx context.Context, userID string, plan quota.Plan) error {
	tag, err := r.db.Exec(ctx, querySetPlan, string(plan), userID)
	if err != nil {
		return fmt.Errorf("failed to set plan: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
