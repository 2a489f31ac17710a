package handler

import (
	"log/slog"
	"net/http"
	"time"

	"boxtrack/internal/delivery/api/middleware"
	"boxtrack/internal/delivery/api/response"
	"boxtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the summary screens.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

func (h *DashboardHandler) User(c echo.Context) error {
	summary, err := h.dashboardUC.UserDashboard(c.Request().Context(), middleware.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

func (h *DashboardHandler) Admin(c echo.Context) error {
	summary, err := h.dashboardUC.AdminDashboard(c.Request().Context(), middleware.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// AnalyticsQuery bounds analytics by creation day. Both days are inclusive.
type AnalyticsQuery struct {
	StartDate string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

func (q *AnalyticsQuery) toFilter() usecase.AnalyticsFilter {
	var filter usecase.AnalyticsFilter
	if start, err := time.Parse(dateLayout, q.StartDate); err == nil {
		filter.From = &start
	}
	if end, err := time.Parse(dateLayout, q.EndDate); err == nil {
		nextDay := end.AddDate(0, 0, 1)
		filter.To = &nextDay
	}

	return filter
}

func (h *DashboardHandler) Analytics(c echo.Context) error {
	var query AnalyticsQuery
	if ok, err := bindAndValidate(c, &query); !ok {
		return err
	}

	analytics, err := h.dashboardUC.Analytics(c.Request().Context(), middleware.GetActor(c), query.toFilter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analytics)
}
