package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/entitlement"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/validator"
)

type EntitlementHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Put(w http.ResponseWriter, r *http.Request)
}

type entitlementHandlerImpl struct {
	service entitlement.Service
}

func NewEntitlementHandler(service entitlement.Service) EntitlementHandler {
	return &entitlementHandlerImpl{service: service}
}

// Get handles GET /entitlements/{userID} (admin)
func (h *entitlementHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !validator.IsValidUUID(userID) {
		response.NotFound(w, "User not found")
		return
	}

	config, err := h.service.GetConfig(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, config)
}

// Put handles PUT /entitlements/{userID} (admin)
func (h *entitlementHandlerImpl) Put(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !validator.IsValidUUID(userID) {
		response.NotFound(w, "User not found")
		return
	}

	var req entitlement.UpsertEntitlementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if len(req.Entitlements) == 0 {
		response.BadRequest(w, "At least one entitlement is required", nil)
		return
	}
	for leaveType, days := range req.Entitlements {
		if leaveType == "" || days < 0 {
			response.BadRequest(w, "Entitlements must have a leave type and a non-negative day count", nil)
			return
		}
	}

	if err := h.service.SetConfig(r.Context(), userID, req.Entitlements); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entitlements updated", nil)
}
