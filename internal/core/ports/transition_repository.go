package ports

import (
	"context"

	"sellerdesk/internal/core/domain/model/order"
)

// TransitionRepository is the append-only journal of confirmed status changes.
type TransitionRepository interface {
	Add(ctx context.Context, t order.Transition) error

	// ListByOrder returns the journal of orderID, newest first.
	ListByOrder(ctx context.Context, orderID string) ([]order.Transition, error)
}
