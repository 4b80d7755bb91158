package leave

type SubmitLeaveRequest struct {
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

type RejectLeaveRequest struct {
	Reason string `json:"reason"`
}

// HistoryEntry is the display-ready projection of a request. Days is 0 when
// the stored dates do not parse; the history view never drops rows.
type HistoryEntry struct {
	ID              string  `json:"id"`
	LeaveType       string  `json:"leaveType"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Days            int     `json:"days"`
	Status          Status  `json:"status"`
	Reason          string  `json:"reason"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
}
