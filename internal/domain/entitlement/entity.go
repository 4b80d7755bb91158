package entitlement

import "time"

// Entitlement is one configured per-user annual allotment for a leave category.
type Entitlement struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	LeaveType    string    `json:"leaveType"`
	AllottedDays int       `json:"allottedDays"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
