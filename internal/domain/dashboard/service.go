package dashboard

import "context"

type Service interface {
	// Batch fetches all four dashboard sections concurrently for userID.
	// callerID must equal userID or the call fails with ErrForbidden before
	// any data access. A failure in one section never fails the others or
	// the batch itself.
	Batch(ctx context.Context, userID, callerID string) (*BatchResponse, error)

	// Overview derives the summary section from the user's full request set.
	Overview(ctx context.Context, userID string) (*Overview, error)
}
