package http

import (
	"net/http"

	"sellerdesk/internal/core/application/usecases/queries"
	"sellerdesk/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	summary, err := s.handlers.GetDashboard.Handle(ctx.Request().Context(), queries.NewGetDashboardSummaryQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	statusCounts := summary.StatusCounts
	if statusCounts == nil {
		statusCounts = map[string]int{}
	}

	return ctx.JSON(http.StatusOK, servers.DashboardSummary{
		TotalRevenue:    float32(summary.TotalRevenue),
		OrderCount:      summary.OrderCount,
		ProductCount:    summary.ProductCount,
		UniqueCustomers: summary.UniqueCustomers,
		StatusCounts:    statusCounts,
		RecentOrders:    toOrders(summary.RecentOrders),
		LowStock:        toProducts(summary.LowStock),
	})
}

// GetSettings handles GET /api/v1/settings.
func (s *Server) GetSettings(ctx echo.Context) error {
	settings, err := s.handlers.GetSettings.Handle(ctx.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	categories := settings.Categories
	if categories == nil {
		categories = map[string]string{}
	}

	return ctx.JSON(http.StatusOK, servers.Settings{
		UpstreamApiUrl:       settings.UpstreamAPIURL,
		UnknownStatusPolicy:  settings.UnrecognizedStatusPolicy,
		PaidFlagPolicy:       settings.PaidFlagPolicy,
		RecentOrdersLimit:    settings.RecentOrdersLimit,
		LowStockThreshold:    settings.LowStockThreshold,
		LowStockLimit:        settings.LowStockLimit,
		SessionTtlSeconds:    int(settings.SessionTTL.Seconds()),
		Categories:           categories,
		Theme:                settings.Theme,
		NotificationsEnabled: settings.NotificationsEnabled,
	})
}
