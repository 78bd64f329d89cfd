package queries

import (
	"context"
	"errors"

	"sellerdesk/internal/core/domain/model/product"
	"sellerdesk/internal/core/domain/services"
	"sellerdesk/internal/core/ports"
	"sellerdesk/internal/pkg/guard"
)

var ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
	"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
)

// GetDashboardSummaryQuery requests the dashboard figures.
type GetDashboardSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardSummaryQuery() GetDashboardSummaryQuery {
	return GetDashboardSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// GetDashboardSummaryQueryResponse holds the derived dashboard views.
type GetDashboardSummaryQueryResponse struct {
	TotalRevenue    float64
	OrderCount      int
	ProductCount    int
	UniqueCustomers int
	StatusCounts    map[string]int
	RecentOrders    []OrderView
	LowStock        []ProductView
}

// GetDashboardSummaryQueryHandler derives the dashboard from the order cache
// and the catalog. The order cache is loaded on first use; products are
// fetched on every call.
type GetDashboardSummaryQueryHandler struct {
	orders     OrderReader
	catalog    ports.ProductCatalog
	categories product.CategoryDirectory
	stats      services.OrderStatistics
	stock      services.StockMonitor
}

func NewGetDashboardSummaryQueryHandler(
	orders OrderReader,
	catalog ports.ProductCatalog,
	categories product.CategoryDirectory,
	stats services.OrderStatistics,
	stock services.StockMonitor,
) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{
		orders:     orders,
		catalog:    catalog,
		categories: categories,
		stats:      stats,
		stock:      stock,
	}
}

func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (GetDashboardSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	orders, err := h.orders.EnsureLoaded(ctx)
	if err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	products, err := h.catalog.List(ctx)
	if err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	statusCounts := make(map[string]int)
	for status, n := range h.stats.CountByStatus(orders) {
		statusCounts[status.String()] = n
	}

	lowStock := h.stock.LowStock(products)
	lowStockViews := make([]ProductView, 0, len(lowStock))
	for _, p := range lowStock {
		lowStockViews = append(lowStockViews, newProductView(p, h.categories, h.stock.Threshold()))
	}

	return GetDashboardSummaryQueryResponse{
		TotalRevenue:    h.stats.TotalRevenue(orders).Float(),
		OrderCount:      len(orders),
		ProductCount:    len(products),
		UniqueCustomers: h.stats.UniqueCustomers(orders),
		StatusCounts:    statusCounts,
		RecentOrders:    newOrderViews(h.stats.RecentOrders(orders), h.orders.InFlight()),
		LowStock:        lowStockViews,
	}, nil
}
