package postgresql

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/entitlement"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/database"
)

type entitlementRepositoryImpl struct {
	db *database.DB
}

func NewEntitlementRepository(db *database.DB) entitlement.Repository {
	return &entitlementRepositoryImpl{db: db}
}

// GetByUserID implements entitlement.Repository.
func (r *entitlementRepositoryImpl) GetByUserID(ctx context.Context, userID string) ([]entitlement.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, allotted_days, created_at, updated_at
		FROM entitlements
		WHERE user_id = $1
		ORDER BY leave_type
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entitlements := make([]entitlement.Entitlement, 0)
	for rows.Next() {
		var e entitlement.Entitlement
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.LeaveType, &e.AllottedDays, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entitlements = append(entitlements, e)
	}

	return entitlements, rows.Err()
}

// ReplaceForUser implements entitlement.Repository. The delete and re-insert
// run in one transaction so readers never observe a partial scheme.
func (r *entitlementRepositoryImpl) ReplaceForUser(ctx context.Context, userID string, allotments map[string]int) error {
	leaveTypes := make([]string, 0, len(allotments))
	for leaveType := range allotments {
		leaveTypes = append(leaveTypes, leaveType)
	}
	sort.Strings(leaveTypes)

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM entitlements WHERE user_id = $1`, userID); err != nil {
			return err
		}

		query := `
			INSERT INTO entitlements (id, user_id, leave_type, allotted_days, created_at, updated_at)
			VALUES (gen_random_uuid(), $1, $2, $3, NOW(), NOW())
		`
		for _, leaveType := range leaveTypes {
			if _, err := tx.Exec(ctx, query, userID, leaveType, allotments[leaveType]); err != nil {
				return err
			}
		}
		return nil
	})
}
