package leave

import (
	"context"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.RequestRepository
}

func NewLeaveService(requestRepo leave.RequestRepository) leave.Service {
	return &LeaveServiceImpl{RequestRepository: requestRepo}
}

// Submit implements leave.Service.
func (s *LeaveServiceImpl) Submit(ctx context.Context, userID string, req leave.SubmitLeaveRequest) (leave.Request, error) {
	if err := leave.ValidateDateRange(req.StartDate, req.EndDate); err != nil {
		return leave.Request{}, err
	}

	return s.RequestRepository.Create(ctx, leave.Request{
		UserID:    userID,
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
}

// ListMine implements leave.Service.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, userID string, status leave.Status, limit int) ([]leave.Request, error) {
	return s.RequestRepository.ListByUser(ctx, userID, status, limit)
}

// ListAll implements leave.Service.
func (s *LeaveServiceImpl) ListAll(ctx context.Context, status leave.Status, limit int) ([]leave.Request, error) {
	return s.RequestRepository.ListAll(ctx, status, limit)
}

// Approve implements leave.Service.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id, approverID string) error {
	return s.RequestRepository.UpdateStatus(ctx, id, leave.StatusApproved, &approverID, nil)
}

// Reject implements leave.Service.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id, approverID, reason string) error {
	return s.RequestRepository.UpdateStatus(ctx, id, leave.StatusRejected, &approverID, &reason)
}

// History implements leave.Service. Unlike balance computation, unparseable
// dates project to a day count of 0 instead of dropping the row; the history
// view must show every request.
func (s *LeaveServiceImpl) History(ctx context.Context, userID string, limit int) ([]leave.HistoryEntry, error) {
	requests, err := s.RequestRepository.ListByUser(ctx, userID, "", limit)
	if err != nil {
		return nil, err
	}

	entries := make([]leave.HistoryEntry, 0, len(requests))
	for _, req := range requests {
		days, ok := leave.DaySpan(req.StartDate, req.EndDate)
		if !ok {
			days = 0
		}
		entry := leave.HistoryEntry{
			ID:        req.ID,
			LeaveType: req.LeaveType,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Days:      days,
			Status:    req.Status,
			Reason:    req.Reason,
		}
		if req.Status == leave.StatusRejected {
			entry.RejectionReason = req.RejectionReason
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
