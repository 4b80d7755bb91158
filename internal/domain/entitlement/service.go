package entitlement

import "context"

type Service interface {
	// ComputeBalances cross-references the user's entitlement config with their
	// approved leave usage. Falls back to the injected default scheme when the
	// user has no configuration. Returns user.ErrUserNotFound for unknown users.
	ComputeBalances(ctx context.Context, userID string) (BalanceReport, error)

	// GetConfig returns the raw configured allotments. Admin surface.
	GetConfig(ctx context.Context, userID string) ([]Entitlement, error)

	// SetConfig replaces the user's entitlement scheme. Admin surface.
	SetConfig(ctx context.Context, userID string, allotments map[string]int) error
}
