package http

import (
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	Users(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Overview implements DashboardHandler.
func (h *DashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardService.Overview(r.Context())
	if err != nil {
		slog.Error("Dashboard overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// Users implements DashboardHandler.
func (h *DashboardHandlerImpl) Users(w http.ResponseWriter, r *http.Request) {
	roster, err := h.dashboardService.Users(r.Context())
	if err != nil {
		slog.Error("Dashboard users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, roster)
}
