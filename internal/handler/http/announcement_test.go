package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/announcement"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/middleware"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/jwt"
)

type fakeAnnouncementService struct {
	calls int
}

func (f *fakeAnnouncementService) Active(ctx context.Context) ([]announcement.Announcement, error) {
	f.calls++
	return nil, nil
}

func (f *fakeAnnouncementService) Preview(ctx context.Context) ([]announcement.Announcement, error) {
	f.calls++
	return nil, nil
}

func (f *fakeAnnouncementService) Create(ctx context.Context, createdBy string, req announcement.CreateAnnouncementRequest) (announcement.Announcement, error) {
	f.calls++
	return announcement.Announcement{}, nil
}

func (f *fakeAnnouncementService) Deactivate(ctx context.Context, id string) error {
	f.calls++
	return nil
}

func announcementTestServer(t *testing.T, svc announcement.Service) (*httptest.Server, jwt.Service) {
	t.Helper()
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	handler := NewAnnouncementHandler(svc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtSvc.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtSvc.JWTAuth()))
		r.Use(middleware.AdminOnly)
		r.Patch("/api/v1/announcements/{id}/deactivate", handler.Deactivate)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, jwtSvc
}

func TestAnnouncementHandler_Deactivate_MalformedIDIsNotFound(t *testing.T) {
	svc := &fakeAnnouncementService{}
	srv, jwtSvc := announcementTestServer(t, svc)

	resp := adminRequest(t, srv, jwtSvc, http.MethodPatch, "/api/v1/announcements/not-a-uuid/deactivate", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, svc.calls)
}

func TestAnnouncementHandler_Deactivate_ValidID(t *testing.T) {
	svc := &fakeAnnouncementService{}
	srv, jwtSvc := announcementTestServer(t, svc)

	resp := adminRequest(t, srv, jwtSvc, http.MethodPatch, "/api/v1/announcements/"+validRequestID+"/deactivate", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, svc.calls)
}
