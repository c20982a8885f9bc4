package handler

import (
	"net/http"

	"go-clinic-management/internal/delivery/http/view"
	"go-clinic-management/internal/usecase"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	view             *view.Renderer
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, view *view.Renderer) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		view:             view,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context())
	if err != nil {
		h.view.Error(w, r)
		return
	}

	h.view.Render(w, r, http.StatusOK, view.PageDashboard, dashboard)
}
