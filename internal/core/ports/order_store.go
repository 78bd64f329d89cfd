package ports

import (
	"context"

	"sellerdesk/internal/core/domain/model/order"
)

// OrderStore is the remote system of record for orders. Calls are
// authenticated with the upstream token carried by ctx.
type OrderStore interface {
	// List fetches every order visible to the operator, in server order.
	List(ctx context.Context) ([]order.Order, error)

	// UpdateStatus asks the store to move orderID to target and set the paid
	// flag. A nil error means the store acknowledged the change.
	UpdateStatus(ctx context.Context, orderID string, target order.Status, paid bool) error
}
