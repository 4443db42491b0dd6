package creations

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var (
	ErrInvalidType   = errors.New("invalid creation type")
	ErrMissingUserID = errors.New("creation requires a user id")
)

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// inserts a creation in a single statement; either the row exists and is
// returned, or an error is returned and nothing was written
func (r *Repository) Create(ctx context.Context, req CreateRequest) (*Creation, error) {
	if req.UserID == "" {
		return nil, ErrMissingUserID
	}

	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}

	creation := Creation{
		UserID:  req.UserID,
		Prompt:  req.Prompt,
		Content: req.Content,
		Type:    req.Type,
		Publish: req.Publish,
	}

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		req.UserID,
		req.Prompt,
		req.Content,
		string(req.Type),
		req.Publish,
	).Scan(&creation.ID, &creation.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert creation: %w", err)
	}

	return &creation, nil
}

// lists a user's creations, newest first, with the total count
func (r *Repository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Creation, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCountByUser, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count creations: %w", err)
	}

	rows, err := r.db.Query(ctx, queryListByUser, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list creations: %w", err)
	}

	list, err := scanCreations(rows)
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// lists published creations from every user, newest first
func (r *Repository) ListPublished(ctx context.Context, limit, offset int) ([]Creation, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCountPublished).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count published creations: %w", err)
	}

	rows, err := r.db.Query(ctx, queryListPublished, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list published creations: %w", err)
	}

	list, err := scanCreations(rows)
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func scanCreations(rows pgx.Rows) ([]Creation, error) {
	defer rows.Close()

	list := []Creation{}

	for rows.Next() {
		var (
			creation Creation
			kind     string
		)

		if err := rows.Scan(
			&creation.ID,
			&creation.UserID,
			&creation.Prompt,
			&creation.Content,
			&kind,
			&creation.Publish,
			&creation.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan creation: %w", err)
		}

		creation.Type = Type(kind)
		list = append(list, creation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate creations: %w", err)
	}

	return list, nil
}
