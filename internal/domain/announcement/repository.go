package announcement

import "context"

// Repository - interface for announcements table
type Repository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)

	// ListActive returns active announcements ordered by creation time
	// descending. A limit of 0 means no row cap.
	ListActive(ctx context.Context, limit int) ([]Announcement, error)

	Deactivate(ctx context.Context, id string) error
}
