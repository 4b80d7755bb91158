package announcement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/announcement"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/cache"
)

type fakeAnnouncementRepo struct {
	listCalls    int
	createFn     func(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error)
	listActiveFn func(ctx context.Context, limit int) ([]announcement.Announcement, error)
	deactivateFn func(ctx context.Context, id string) error
}

func (f *fakeAnnouncementRepo) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	return f.createFn(ctx, a)
}

func (f *fakeAnnouncementRepo) ListActive(ctx context.Context, limit int) ([]announcement.Announcement, error) {
	f.listCalls++
	return f.listActiveFn(ctx, limit)
}

func (f *fakeAnnouncementRepo) Deactivate(ctx context.Context, id string) error {
	return f.deactivateFn(ctx, id)
}

func newTestCache(t *testing.T) *cache.Cache[[]announcement.Announcement] {
	t.Helper()
	c, err := cache.New[[]announcement.Announcement](64)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func feed(n int) []announcement.Announcement {
	out := make([]announcement.Announcement, n)
	for i := range out {
		out[i] = announcement.Announcement{ID: string(rune('a' + i)), Title: "Notice", IsActive: true}
	}
	return out
}

func TestActive_CachesFeed(t *testing.T) {
	repo := &fakeAnnouncementRepo{
		listActiveFn: func(ctx context.Context, limit int) ([]announcement.Announcement, error) {
			assert.Equal(t, 0, limit)
			return feed(2), nil
		},
	}
	svc := NewAnnouncementService(repo, newTestCache(t), time.Minute)

	first, err := svc.Active(context.Background())
	require.NoError(t, err)
	second, err := svc.Active(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
}

func TestActive_NilCacheHitsRepoEveryTime(t *testing.T) {
	repo := &fakeAnnouncementRepo{
		listActiveFn: func(ctx context.Context, limit int) ([]announcement.Announcement, error) {
			return feed(1), nil
		},
	}
	svc := NewAnnouncementService(repo, nil, time.Minute)

	_, err := svc.Active(context.Background())
	require.NoError(t, err)
	_, err = svc.Active(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, repo.listCalls)
}

func TestPreview_CapsCachedFeedAtThree(t *testing.T) {
	repo := &fakeAnnouncementRepo{
		listActiveFn: func(ctx context.Context, limit int) ([]announcement.Announcement, error) {
			return feed(5), nil
		},
	}
	svc := NewAnnouncementService(repo, newTestCache(t), time.Minute)

	// prime the cache with the full feed
	_, err := svc.Active(context.Background())
	require.NoError(t, err)

	preview, err := svc.Preview(context.Background())
	require.NoError(t, err)

	assert.Len(t, preview, 3)
	assert.Equal(t, 1, repo.listCalls)
}

func TestPreview_ColdCacheAsksRepoForThree(t *testing.T) {
	repo := &fakeAnnouncementRepo{
		listActiveFn: func(ctx context.Context, limit int) ([]announcement.Announcement, error) {
			assert.Equal(t, 3, limit)
			return feed(2), nil
		},
	}
	svc := NewAnnouncementService(repo, newTestCache(t), time.Minute)

	preview, err := svc.Preview(context.Background())
	require.NoError(t, err)
	assert.Len(t, preview, 2)
}

func TestCreate_InvalidatesCache(t *testing.T) {
	repo := &fakeAnnouncementRepo{
		listActiveFn: func(ctx context.Context, limit int) ([]announcement.Announcement, error) {
			return feed(1), nil
		},
		createFn: func(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
			a.ID = "new"
			return a, nil
		},
	}
	svc := NewAnnouncementService(repo, newTestCache(t), time.Minute)

	_, err := svc.Active(context.Background())
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), "admin-1", announcement.CreateAnnouncementRequest{
		Title: "Maintenance window",
		Body:  "Saturday 02:00 UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, "admin-1", created.CreatedBy)

	_, err = svc.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestDeactivate_InvalidatesCache(t *testing.T) {
	repo := &fakeAnnouncementRepo{
		listActiveFn: func(ctx context.Context, limit int) ([]announcement.Announcement, error) {
			return feed(1), nil
		},
		deactivateFn: func(ctx context.Context, id string) error {
			assert.Equal(t, "a", id)
			return nil
		},
	}
	svc := NewAnnouncementService(repo, newTestCache(t), time.Minute)

	_, err := svc.Active(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), "a"))

	_, err = svc.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestDeactivate_NotFoundPassesThrough(t *testing.T) {
	repo := &fakeAnnouncementRepo{
		deactivateFn: func(ctx context.Context, id string) error {
			return announcement.ErrAnnouncementNotFound
		},
	}
	svc := NewAnnouncementService(repo, nil, time.Minute)

	err := svc.Deactivate(context.Background(), "missing")
	assert.ErrorIs(t, err, announcement.ErrAnnouncementNotFound)
}
