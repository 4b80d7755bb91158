package dashboard

import (
	"context"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/announcement"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/dashboard"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/entitlement"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"golang.org/x/sync/errgroup"
)

const (
	historyLimit        = 5
	recentRequestsLimit = 5
)

type DashboardServiceImpl struct {
	leaveRequestRepo   leave.RequestRepository
	leaveService       leave.Service
	entitlementService entitlement.Service
	announcementSvc    announcement.Service
	fetchTimeout       time.Duration
}

// NewDashboardService builds the batch aggregator. fetchTimeout bounds the
// whole four-way fan-out; a section that exceeds it reports a section error
// rather than stalling the batch indefinitely.
func NewDashboardService(
	leaveRequestRepo leave.RequestRepository,
	leaveService leave.Service,
	entitlementService entitlement.Service,
	announcementSvc announcement.Service,
	fetchTimeout time.Duration,
) dashboard.Service {
	return &DashboardServiceImpl{
		leaveRequestRepo:   leaveRequestRepo,
		leaveService:       leaveService,
		entitlementService: entitlementService,
		announcementSvc:    announcementSvc,
		fetchTimeout:       fetchTimeout,
	}
}

// Batch implements dashboard.Service.
//
// The four lookups run concurrently and settle independently: each goroutine
// records its own value-or-error and always returns nil to the group, so one
// failing section never cancels or fails the others. Only the authorization
// gate can fail the call itself. Caller cancellation still propagates through
// ctx to every in-flight lookup.
func (s *DashboardServiceImpl) Batch(ctx context.Context, userID, callerID string) (*dashboard.BatchResponse, error) {
	if callerID == "" || callerID != userID {
		return nil, dashboard.ErrForbidden
	}

	start := time.Now()
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	var resp dashboard.BatchResponse

	// Each goroutine writes a distinct pair of fields; no shared state.
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		overview, err := s.Overview(gCtx, userID)
		if err != nil {
			resp.Errors.Overview = errString(err)
			return nil
		}
		resp.Data.Overview = overview
		return nil
	})

	g.Go(func() error {
		report, err := s.entitlementService.ComputeBalances(gCtx, userID)
		if err != nil {
			resp.Errors.Entitlement = errString(err)
			return nil
		}
		resp.Data.Entitlement = &report
		return nil
	})

	g.Go(func() error {
		history, err := s.leaveService.History(gCtx, userID, historyLimit)
		if err != nil {
			resp.Errors.PreviousLeaves = errString(err)
			return nil
		}
		resp.Data.PreviousLeaves = history
		return nil
	})

	g.Go(func() error {
		announcements, err := s.announcementSvc.Active(gCtx)
		if err != nil {
			resp.Errors.Announcements = errString(err)
			return nil
		}
		resp.Data.Announcements = announcements
		return nil
	})

	_ = g.Wait()

	resp.Success = true
	resp.Meta = dashboard.Meta{
		FetchTime: time.Since(start).Milliseconds(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return &resp, nil
}

// Overview implements dashboard.Service. It works over the user's full
// request set, not only approved ones.
func (s *DashboardServiceImpl) Overview(ctx context.Context, userID string) (*dashboard.Overview, error) {
	requests, err := s.leaveRequestRepo.ListByUser(ctx, userID, "", 0)
	if err != nil {
		return nil, err
	}

	announcements, err := s.announcementSvc.Preview(ctx)
	if err != nil {
		return nil, err
	}

	overview := &dashboard.Overview{
		RecentRequests: make([]leave.Request, 0, recentRequestsLimit),
		UpcomingLeaves: make([]dashboard.UpcomingLeave, 0),
		Announcements:  announcements,
	}

	today := time.Now().Truncate(24 * time.Hour)
	for i, req := range requests {
		overview.Counts.Total++
		switch req.Status {
		case leave.StatusApproved:
			overview.Counts.Approved++
		case leave.StatusPending:
			overview.Counts.Pending++
		case leave.StatusRejected:
			overview.Counts.Rejected++
		}

		if i < recentRequestsLimit {
			overview.RecentRequests = append(overview.RecentRequests, req)
		}

		if req.Status == leave.StatusApproved {
			if end, parseErr := leave.ParseDate(req.EndDate); parseErr == nil && end.After(today) {
				overview.UpcomingLeaves = append(overview.UpcomingLeaves, dashboard.UpcomingLeave{
					Date:    req.StartDate,
					EndDate: req.EndDate,
					Type:    req.LeaveType,
					Status:  req.Status,
				})
			}
		}
	}

	return overview, nil
}

func errString(err error) *string {
	msg := err.Error()
	return &msg
}
