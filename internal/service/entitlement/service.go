package entitlement

import (
	"context"
	"sort"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/entitlement"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/user"
)

type EntitlementServiceImpl struct {
	entitlement.Repository
	user.UserRepository
	leaveRequestRepo leave.RequestRepository
	defaults         map[string]int
}

// NewEntitlementService builds the balance calculator. defaults is the
// fallback allotment scheme applied to users with no configured entitlements.
func NewEntitlementService(
	repo entitlement.Repository,
	userRepo user.UserRepository,
	leaveRequestRepo leave.RequestRepository,
	defaults map[string]int,
) entitlement.Service {
	return &EntitlementServiceImpl{
		Repository:       repo,
		UserRepository:   userRepo,
		leaveRequestRepo: leaveRequestRepo,
		defaults:         defaults,
	}
}

// ComputeBalances implements entitlement.Service.
//
// Every configured category gets a balance entry even with zero usage.
// Categories that carry historical usage but have no config row do not appear
// in the report. Remaining floors at zero.
func (s *EntitlementServiceImpl) ComputeBalances(ctx context.Context, userID string) (entitlement.BalanceReport, error) {
	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		return entitlement.BalanceReport{}, err
	}

	allotments, err := s.configuredAllotments(ctx, userID)
	if err != nil {
		return entitlement.BalanceReport{}, err
	}

	approved, err := s.leaveRequestRepo.ListByUser(ctx, userID, leave.StatusApproved, 0)
	if err != nil {
		return entitlement.BalanceReport{}, err
	}
	used := leave.AccumulateUsage(approved)

	names := make([]string, 0, len(allotments))
	for name := range allotments {
		names = append(names, name)
	}
	sort.Strings(names)

	report := entitlement.BalanceReport{
		Balances: make([]entitlement.Balance, 0, len(names)),
	}
	for _, name := range names {
		total := allotments[name]
		remaining := total - used[name]
		if remaining < 0 {
			remaining = 0
		}
		report.Balances = append(report.Balances, entitlement.Balance{
			Name:      name,
			Total:     total,
			Used:      used[name],
			Remaining: remaining,
		})
		report.TotalLeaves += total
		report.UsedLeaves += used[name]
		report.RemainingLeaves += remaining
	}

	return report, nil
}

func (s *EntitlementServiceImpl) configuredAllotments(ctx context.Context, userID string) (map[string]int, error) {
	configured, err := s.Repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(configured) == 0 {
		return s.defaults, nil
	}

	allotments := make(map[string]int, len(configured))
	for _, e := range configured {
		allotments[e.LeaveType] = e.AllottedDays
	}
	return allotments, nil
}

// GetConfig implements entitlement.Service.
func (s *EntitlementServiceImpl) GetConfig(ctx context.Context, userID string) ([]entitlement.Entitlement, error) {
	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.Repository.GetByUserID(ctx, userID)
}

// SetConfig implements entitlement.Service.
func (s *EntitlementServiceImpl) SetConfig(ctx context.Context, userID string, allotments map[string]int) error {
	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.Repository.ReplaceForUser(ctx, userID, allotments)
}
