package dashboard

import (
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/announcement"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/entitlement"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
)

// ========== OVERVIEW SECTION ==========

// OverviewCounts holds request counts by status over the user's full history.
type OverviewCounts struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

// UpcomingLeave is an approved request whose end date is still in the future,
// projected for calendar display.
type UpcomingLeave struct {
	Date    string       `json:"date"`
	EndDate string       `json:"endDate"`
	Type    string       `json:"type"`
	Status  leave.Status `json:"status"`
}

// Overview is the dashboard's summary section.
type Overview struct {
	Counts         OverviewCounts              `json:"counts"`
	RecentRequests []leave.Request             `json:"recentRequests"`
	UpcomingLeaves []UpcomingLeave             `json:"upcomingLeaves"`
	Announcements  []announcement.Announcement `json:"announcements"`
}

// ========== BATCH ENVELOPE ==========

// SectionData holds the four independently fetched sections. A nil section
// means that lookup failed; the matching SectionErrors field says why.
type SectionData struct {
	Overview       *Overview                   `json:"overview"`
	Entitlement    *entitlement.BalanceReport  `json:"entitlement"`
	PreviousLeaves []leave.HistoryEntry        `json:"previousLeaves"`
	Announcements  []announcement.Announcement `json:"announcements"`
}

// SectionErrors mirrors SectionData: exactly one of value and error is set
// per section.
type SectionErrors struct {
	Overview       *string `json:"overview"`
	Entitlement    *string `json:"entitlement"`
	PreviousLeaves *string `json:"previousLeaves"`
	Announcements  *string `json:"announcements"`
}

// Meta carries timing metadata for the whole fan-out.
type Meta struct {
	FetchTime int64  `json:"fetchTime"` // milliseconds
	Timestamp string `json:"timestamp"` // RFC3339
}

// BatchResponse is the envelope returned by the batch endpoint. Success means
// the batch itself ran; individual sections may still have failed.
type BatchResponse struct {
	Success bool          `json:"success"`
	Data    SectionData   `json:"data"`
	Errors  SectionErrors `json:"errors"`
	Meta    Meta          `json:"meta"`
}
