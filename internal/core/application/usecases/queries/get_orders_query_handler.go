package queries

import (
	"context"

	"sellerdesk/internal/core/domain/model/order"
)

// GetOrdersQueryHandler serves the order list in server order.
type GetOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetOrdersQueryHandler(orders OrderReader) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		orders []order.Order
		err    error
	)
	if query.Refresh() {
		orders, err = h.orders.ListOrders(ctx)
	} else {
		orders, err = h.orders.EnsureLoaded(ctx)
	}
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders, h.orders.InFlight()), nil
}
