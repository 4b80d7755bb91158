package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request entity. The leave type is an open string, not an enum; companies can
// introduce categories without a schema change.
//
// Start and end dates are kept as "YYYY-MM-DD" strings and parsed at the point
// of computation. Historical rows imported from the previous system are not
// guaranteed to parse, and a single malformed row must degrade gracefully
// instead of failing every balance computation for the user.
type Request struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	LeaveType string `json:"leaveType"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	Reason string `json:"reason"`

	Status          Status  `json:"status"`
	ApprovedBy      *string `json:"approvedBy,omitempty"`
	RejectionReason *string `json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
