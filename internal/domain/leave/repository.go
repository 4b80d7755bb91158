package leave

import "context"

// RequestRepository - interface for leave_requests table.
// List methods order by creation time descending. An empty status means no
// status filter; a limit of 0 means no row cap.
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByUser(ctx context.Context, userID string, status Status, limit int) ([]Request, error)
	ListAll(ctx context.Context, status Status, limit int) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy *string, rejectionReason *string) error
}
