package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/dashboard"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/entitlement"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
)

const historyPageLimit = 5

type DashboardHandler interface {
	// Batch returns all four dashboard sections in one response
	Batch(w http.ResponseWriter, r *http.Request)
	// Overview returns the caller's own overview section
	Overview(w http.ResponseWriter, r *http.Request)
	// Entitlement returns the caller's own balance report
	Entitlement(w http.ResponseWriter, r *http.Request)
	// History returns the caller's own recent leave history
	History(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	service        dashboard.Service
	entitlementSvc entitlement.Service
	leaveSvc       leave.Service
}

func NewDashboardHandler(service dashboard.Service, entitlementSvc entitlement.Service, leaveSvc leave.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		service:        service,
		entitlementSvc: entitlementSvc,
		leaveSvc:       leaveSvc,
	}
}

// Batch handles GET /dashboard/batch/{userID}.
//
// The response is the batch envelope, not the standard API envelope: data and
// errors carry one entry per section, and a section-level failure still
// returns 200 with success=true. Only the authorization gate (403) or an
// unexpected failure (500) fails the call.
func (h *dashboardHandlerImpl) Batch(w http.ResponseWriter, r *http.Request) {
	callerID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.service.Batch(r.Context(), chi.URLParam(r, "userID"), callerID)
	if err != nil {
		if errors.Is(err, dashboard.ErrForbidden) {
			response.JSON(w, http.StatusForbidden, map[string]interface{}{
				"success": false,
				"error":   "Forbidden",
			})
			return
		}
		response.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to fetch dashboard data",
		})
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Overview handles GET /dashboard/overview
func (h *dashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	callerID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	overview, err := h.service.Overview(r.Context(), callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// Entitlement handles GET /dashboard/entitlement
func (h *dashboardHandlerImpl) Entitlement(w http.ResponseWriter, r *http.Request) {
	callerID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	report, err := h.entitlementSvc.ComputeBalances(r.Context(), callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// History handles GET /dashboard/history
// Query params:
//   - limit: max rows (default 5)
func (h *dashboardHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	callerID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	limit := limitParam(r)
	if limit == 0 {
		limit = historyPageLimit
	}

	history, err := h.leaveSvc.History(r.Context(), callerID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}
