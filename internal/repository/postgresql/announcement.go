package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/announcement"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/database"
)

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.Repository {
	return &announcementRepositoryImpl{db: db}
}

// Create implements announcement.Repository.
func (r *announcementRepositoryImpl) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	query := `
		INSERT INTO announcements (id, title, body, is_active, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.Title, a.Body, a.IsActive, a.CreatedBy).Scan(&a.CreatedAt)
	if err != nil {
		return announcement.Announcement{}, err
	}

	return a, nil
}

// ListActive implements announcement.Repository.
func (r *announcementRepositoryImpl) ListActive(ctx context.Context, limit int) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, body, is_active, created_by, created_at
		FROM announcements
		WHERE is_active = TRUE
		ORDER BY created_at DESC
	`
	var args []interface{}
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := make([]announcement.Announcement, 0)
	for rows.Next() {
		var a announcement.Announcement
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Body, &a.IsActive, &a.CreatedBy, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}

// Deactivate implements announcement.Repository.
func (r *announcementRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE announcements
		SET is_active = FALSE
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}
