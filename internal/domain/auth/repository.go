package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository - interface for refresh_tokens table
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, token string, expiresAt time.Time) error
	Get(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
