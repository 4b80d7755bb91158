package announcement

import (
	"context"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/announcement"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/cache"
)

const (
	activeCacheKey = "announcements:active"
	previewLimit   = 3
)

type AnnouncementServiceImpl struct {
	announcement.Repository
	cache    *cache.Cache[[]announcement.Announcement]
	cacheTTL time.Duration
}

// NewAnnouncementService wraps the repository with a short-lived read cache
// for the active feed. c may be nil to disable caching.
func NewAnnouncementService(repo announcement.Repository, c *cache.Cache[[]announcement.Announcement], cacheTTL time.Duration) announcement.Service {
	return &AnnouncementServiceImpl{
		Repository: repo,
		cache:      c,
		cacheTTL:   cacheTTL,
	}
}

// Active implements announcement.Service.
func (s *AnnouncementServiceImpl) Active(ctx context.Context) ([]announcement.Announcement, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(activeCacheKey); ok {
			return cached, nil
		}
	}

	announcements, err := s.Repository.ListActive(ctx, 0)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(activeCacheKey, announcements, s.cacheTTL)
	}
	return announcements, nil
}

// Preview implements announcement.Service.
func (s *AnnouncementServiceImpl) Preview(ctx context.Context) ([]announcement.Announcement, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(activeCacheKey); ok {
			if len(cached) > previewLimit {
				return cached[:previewLimit], nil
			}
			return cached, nil
		}
	}
	return s.Repository.ListActive(ctx, previewLimit)
}

// Create implements announcement.Service.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, createdBy string, req announcement.CreateAnnouncementRequest) (announcement.Announcement, error) {
	created, err := s.Repository.Create(ctx, announcement.Announcement{
		Title:     req.Title,
		Body:      req.Body,
		IsActive:  true,
		CreatedBy: createdBy,
	})
	if err != nil {
		return announcement.Announcement{}, err
	}

	if s.cache != nil {
		s.cache.Delete(activeCacheKey)
	}
	return created, nil
}

// Deactivate implements announcement.Service.
func (s *AnnouncementServiceImpl) Deactivate(ctx context.Context, id string) error {
	if err := s.Repository.Deactivate(ctx, id); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Delete(activeCacheKey)
	}
	return nil
}
