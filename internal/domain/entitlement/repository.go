package entitlement

import "context"

// Repository - interface for entitlements table
type Repository interface {
	// GetByUserID returns the user's configured allotments ordered by leave type.
	// An empty slice means the user has no configuration.
	GetByUserID(ctx context.Context, userID string) ([]Entitlement, error)

	// ReplaceForUser atomically replaces the user's whole entitlement scheme.
	ReplaceForUser(ctx context.Context, userID string, allotments map[string]int) error
}
