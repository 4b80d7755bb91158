package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, user_id, leave_type, start_date, end_date, reason, status, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		req.UserID, req.LeaveType, req.StartDate, req.EndDate, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return leave.Request{}, err
	}

	return req, nil
}

// GetByID implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, start_date, end_date, reason,
			   status, approved_by, rejection_reason, created_at
		FROM leave_requests
		WHERE id = $1
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.Reason,
		&req.Status, &req.ApprovedBy, &req.RejectionReason, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, err
	}

	return req, nil
}

// ListByUser implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string, status leave.Status, limit int) ([]leave.Request, error) {
	query := `
		SELECT id, user_id, leave_type, start_date, end_date, reason,
			   status, approved_by, rejection_reason, created_at
		FROM leave_requests
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	return r.queryRequests(ctx, query, args...)
}

// ListAll implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context, status leave.Status, limit int) ([]leave.Request, error) {
	query := `
		SELECT id, user_id, leave_type, start_date, end_date, reason,
			   status, approved_by, rejection_reason, created_at
		FROM leave_requests
	`
	var args []interface{}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	return r.queryRequests(ctx, query, args...)
}

func (r *leaveRequestRepositoryImpl) queryRequests(ctx context.Context, query string, args ...interface{}) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.Request, 0)
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.Reason,
			&req.Status, &req.ApprovedBy, &req.RejectionReason, &req.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UpdateStatus implements leave.RequestRepository. Only pending requests can
// transition; approved and rejected are terminal.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy *string, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, rejection_reason = $4
		WHERE id = $1 AND status = 'pending'
	`

	result, err := q.Exec(ctx, query, id, status, approvedBy, rejectionReason)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		// Either missing or already processed; disambiguate for the caller.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return leave.ErrAlreadyProcessed
	}

	return nil
}
