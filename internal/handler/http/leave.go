package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	service leave.Service
}

func NewLeaveHandler(service leave.Service) LeaveHandler {
	return &leaveHandlerImpl{service: service}
}

// Submit handles POST /leaves
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if validator.IsEmpty(req.LeaveType) {
		response.HandleError(w, validator.ValidationErrors{
			{Field: "leaveType", Message: "leave type is required"},
		})
		return
	}

	created, err := h.service.Submit(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// ListMine handles GET /leaves/my
// Query params:
//   - status: pending | approved | rejected (default: all)
//   - limit: max rows (default: no cap)
func (h *leaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	requests, err := h.service.ListMine(r.Context(), userID, statusParam(r), limitParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListAll handles GET /leaves (admin)
func (h *leaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListAll(r.Context(), statusParam(r), limitParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve handles PATCH /leaves/{id}/approve (admin)
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	approverID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.NotFound(w, "Leave request not found")
		return
	}

	if err := h.service.Approve(r.Context(), id, approverID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", nil)
}

// Reject handles PATCH /leaves/{id}/reject (admin)
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	approverID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.NotFound(w, "Leave request not found")
		return
	}

	var req leave.RejectLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Reject(r.Context(), id, approverID, req.Reason); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", nil)
}

func statusParam(r *http.Request) leave.Status {
	return leave.Status(r.URL.Query().Get("status"))
}

func limitParam(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
