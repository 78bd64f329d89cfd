package queries

import (
	"context"
	"time"

	"sellerdesk/internal/core/application/workflow"
	"sellerdesk/internal/core/domain/model/order"
)

// OrderReader exposes the cached orders of the workflow engine.
type OrderReader interface {
	ListOrders(ctx context.Context) ([]order.Order, error)
	EnsureLoaded(ctx context.Context) ([]order.Order, error)
	Snapshot() workflow.Snapshot
	InFlight() []string
}

// OrderView is an order prepared for display.
type OrderView struct {
	ID           string
	Reference    string
	CustomerName string
	City         string
	Country      string
	Total        float64
	CreatedAt    time.Time
	Status       string
	RawStatus    order.Status
	IsPaid       bool
	IsDelivered  bool
	CanAdvance   bool
	InFlight     bool
}

// NewOrderView prepares a single order for display.
func NewOrderView(o order.Order, inFlight bool) OrderView {
	return OrderView{
		ID:           o.ID(),
		Reference:    o.Reference(),
		CustomerName: o.CustomerName(),
		City:         o.Shipping().City,
		Country:      o.Shipping().Country,
		Total:        o.Total().Float(),
		CreatedAt:    o.CreatedAt(),
		Status:       o.Status().Display().String(),
		RawStatus:    o.Status(),
		IsPaid:       o.IsPaid(),
		IsDelivered:  o.IsDelivered(),
		CanAdvance:   o.CanAdvance(),
		InFlight:     inFlight,
	}
}

func newOrderViews(orders []order.Order, inFlightIDs []string) []OrderView {
	inFlight := make(map[string]bool, len(inFlightIDs))
	for _, id := range inFlightIDs {
		inFlight[id] = true
	}
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o, inFlight[o.ID()]))
	}
	return views
}
