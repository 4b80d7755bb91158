package auth

import "time"

// RefreshToken is a persisted refresh token. Tokens live in the database, not
// in process memory, so a restart or a second instance sees the same state.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
