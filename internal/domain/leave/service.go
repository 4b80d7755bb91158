package leave

import "context"

type Service interface {
	// Submit validates the date range and creates a pending request.
	Submit(ctx context.Context, userID string, req SubmitLeaveRequest) (Request, error)

	// ListMine returns the user's own requests, newest first.
	ListMine(ctx context.Context, userID string, status Status, limit int) ([]Request, error)

	// ListAll returns every request, newest first. Admin surface.
	ListAll(ctx context.Context, status Status, limit int) ([]Request, error)

	// Approve transitions a pending request to approved. Terminal.
	Approve(ctx context.Context, id, approverID string) error

	// Reject transitions a pending request to rejected with a note. Terminal.
	Reject(ctx context.Context, id, approverID, reason string) error

	// History projects the user's requests into display entries, newest first,
	// at most limit rows. Re-invokable with any limit; no iteration state.
	History(ctx context.Context, userID string, limit int) ([]HistoryEntry, error)
}
