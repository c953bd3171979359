package transport

import (
	"net/http"

	"gocart-be/internal/dashboard"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboards dashboard.Service
}

func NewDashboardHandler(dashboards dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.dashboards.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return Success(c, http.StatusOK, summary)
}
