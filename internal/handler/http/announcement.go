package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/announcement"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/validator"
)

type AnnouncementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type announcementHandlerImpl struct {
	service announcement.Service
}

func NewAnnouncementHandler(service announcement.Service) AnnouncementHandler {
	return &announcementHandlerImpl{service: service}
}

// List handles GET /announcements
func (h *announcementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.service.Active(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, announcements)
}

// Create handles POST /announcements (admin)
func (h *announcementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req announcement.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if validator.IsEmpty(req.Title) {
		response.HandleError(w, validator.ValidationErrors{
			{Field: "title", Message: "title is required"},
		})
		return
	}

	created, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement created", created)
}

// Deactivate handles PATCH /announcements/{id}/deactivate (admin)
func (h *announcementHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.NotFound(w, "Announcement not found")
		return
	}

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement deactivated", nil)
}
