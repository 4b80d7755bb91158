package entitlement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/entitlement"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/user"
)

type fakeEntitlementRepo struct {
	getByUserIDFn    func(ctx context.Context, userID string) ([]entitlement.Entitlement, error)
	replaceForUserFn func(ctx context.Context, userID string, allotments map[string]int) error
}

func (f *fakeEntitlementRepo) GetByUserID(ctx context.Context, userID string) ([]entitlement.Entitlement, error) {
	return f.getByUserIDFn(ctx, userID)
}

func (f *fakeEntitlementRepo) ReplaceForUser(ctx context.Context, userID string, allotments map[string]int) error {
	return f.replaceForUserFn(ctx, userID, allotments)
}

type fakeUserRepo struct {
	getByIDFn func(ctx context.Context, id string) (user.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	panic("not used")
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	panic("not used")
}

type fakeLeaveRepo struct {
	listByUserFn func(ctx context.Context, userID string, status leave.Status, limit int) ([]leave.Request, error)
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	panic("not used")
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	panic("not used")
}

func (f *fakeLeaveRepo) ListByUser(ctx context.Context, userID string, status leave.Status, limit int) ([]leave.Request, error) {
	return f.listByUserFn(ctx, userID, status, limit)
}

func (f *fakeLeaveRepo) ListAll(ctx context.Context, status leave.Status, limit int) ([]leave.Request, error) {
	panic("not used")
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy *string, rejectionReason *string) error {
	panic("not used")
}

func existingUser(id string) *fakeUserRepo {
	return &fakeUserRepo{
		getByIDFn: func(ctx context.Context, got string) (user.User, error) {
			if got != id {
				return user.User{}, user.ErrUserNotFound
			}
			return user.User{ID: id, Name: "Alice", Email: "alice@leaveflow.dev"}, nil
		},
	}
}

func TestComputeBalances(t *testing.T) {
	repo := &fakeEntitlementRepo{
		getByUserIDFn: func(ctx context.Context, userID string) ([]entitlement.Entitlement, error) {
			return []entitlement.Entitlement{
				{UserID: userID, LeaveType: "Annual", AllottedDays: 30},
				{UserID: userID, LeaveType: "Sick", AllottedDays: 15},
			}, nil
		},
	}
	leaveRepo := &fakeLeaveRepo{
		listByUserFn: func(ctx context.Context, userID string, status leave.Status, limit int) ([]leave.Request, error) {
			assert.Equal(t, leave.StatusApproved, status)
			assert.Equal(t, 0, limit)
			return []leave.Request{
				{LeaveType: "Sick", StartDate: "2099-03-01", EndDate: "2099-03-06", Status: leave.StatusApproved},
			}, nil
		},
	}

	svc := NewEntitlementService(repo, existingUser("u1"), leaveRepo, nil)

	report, err := svc.ComputeBalances(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, report.Balances, 2)
	assert.Equal(t, entitlement.Balance{Name: "Annual", Total: 30, Used: 0, Remaining: 30}, report.Balances[0])
	assert.Equal(t, entitlement.Balance{Name: "Sick", Total: 15, Used: 6, Remaining: 9}, report.Balances[1])
	assert.Equal(t, 45, report.TotalLeaves)
	assert.Equal(t, 6, report.UsedLeaves)
	assert.Equal(t, 39, report.RemainingLeaves)
}

func TestComputeBalances_DefaultsWhenUnconfigured(t *testing.T) {
	repo := &fakeEntitlementRepo{
		getByUserIDFn: func(ctx context.Context, userID string) ([]entitlement.Entitlement, error) {
			return nil, nil
		},
	}
	leaveRepo := &fakeLeaveRepo{
		listByUserFn: func(ctx context.Context, userID string, status leave.Status, limit int) ([]leave.Request, error) {
			return nil, nil
		},
	}
	defaults := map[string]int{"Annual": 20, "Casual": 5}

	svc := NewEntitlementService(repo, existingUser("u1"), leaveRepo, defaults)

	report, err := svc.ComputeBalances(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, report.Balances, 2)
	assert.Equal(t, "Annual", report.Balances[0].Name)
	assert.Equal(t, "Casual", report.Balances[1].Name)
	assert.Equal(t, 25, report.TotalLeaves)
	assert.Equal(t, 25, report.RemainingLeaves)
}

func TestComputeBalances_RemainingFloorsAtZero(t *testing.T) {
	repo := &fakeEntitlementRepo{
		getByUserIDFn: func(ctx context.Context, userID string) ([]entitlement.Entitlement, error) {
			return []entitlement.Entitlement{{UserID: userID, LeaveType: "Sick", AllottedDays: 5}}, nil
		},
	}
	leaveRepo := &fakeLeaveRepo{
		listByUserFn: func(ctx context.Context, userID string, status leave.Status, limit int) ([]leave.Request, error) {
			return []leave.Request{
				{LeaveType: "Sick", StartDate: "2099-03-01", EndDate: "2099-03-08", Status: leave.StatusApproved},
			}, nil
		},
	}

	svc := NewEntitlementService(repo, existingUser("u1"), leaveRepo, nil)

	report, err := svc.ComputeBalances(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, report.Balances, 1)
	assert.Equal(t, 8, report.Balances[0].Used)
	assert.Equal(t, 0, report.Balances[0].Remaining)
	assert.Equal(t, 0, report.RemainingLeaves)
}

func TestComputeBalances_UnconfiguredUsageExcluded(t *testing.T) {
	repo := &fakeEntitlementRepo{
		getByUserIDFn: func(ctx context.Context, userID string) ([]entitlement.Entitlement, error) {
			return []entitlement.Entitlement{{UserID: userID, LeaveType: "Annual", AllottedDays: 20}}, nil
		},
	}
	leaveRepo := &fakeLeaveRepo{
		listByUserFn: func(ctx context.Context, userID string, status leave.Status, limit int) ([]leave.Request, error) {
			return []leave.Request{
				{LeaveType: "Sabbatical", StartDate: "2099-03-01", EndDate: "2099-03-10", Status: leave.StatusApproved},
			}, nil
		},
	}

	svc := NewEntitlementService(repo, existingUser("u1"), leaveRepo, nil)

	report, err := svc.ComputeBalances(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, report.Balances, 1)
	assert.Equal(t, "Annual", report.Balances[0].Name)
	assert.Equal(t, 0, report.UsedLeaves)
}

func TestComputeBalances_UserNotFound(t *testing.T) {
	svc := NewEntitlementService(&fakeEntitlementRepo{}, existingUser("u1"), &fakeLeaveRepo{}, nil)

	_, err := svc.ComputeBalances(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestSetConfig_ValidatesUserFirst(t *testing.T) {
	replaced := false
	repo := &fakeEntitlementRepo{
		replaceForUserFn: func(ctx context.Context, userID string, allotments map[string]int) error {
			replaced = true
			return nil
		},
	}

	svc := NewEntitlementService(repo, existingUser("u1"), &fakeLeaveRepo{}, nil)

	err := svc.SetConfig(context.Background(), "missing", map[string]int{"Annual": 10})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.False(t, replaced)

	err = svc.SetConfig(context.Background(), "u1", map[string]int{"Annual": 10})
	assert.NoError(t, err)
	assert.True(t, replaced)
}
