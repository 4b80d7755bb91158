package announcement

import "context"

type Service interface {
	// Active returns every active announcement, newest first.
	Active(ctx context.Context) ([]Announcement, error)

	// Preview returns the 3 most recent active announcements, for the
	// dashboard overview section.
	Preview(ctx context.Context) ([]Announcement, error)

	Create(ctx context.Context, createdBy string, req CreateAnnouncementRequest) (Announcement, error)
	Deactivate(ctx context.Context, id string) error
}
