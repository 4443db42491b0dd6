package auth

import (
	"context"

	"codeberg.org/quickai/server/quickai/users"
	"github.com/golang-jwt/jwt/v5"
)

// represents JWT claims issued by the identity provider
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// loads plan and usage for an authenticated user
type IdentityResolver interface {
	FindOrCreate(ctx context.Context, userID string) (*users.User, error)
}

const (
	userIDKey   = "user_id"
	identityKey = "identity"
)
