package queries

import (
	"errors"
	"strings"
	"time"

	"sellerdesk/internal/pkg/errs"
	"sellerdesk/internal/pkg/guard"
)

var ErrGetOrderTransitionsQueryIsNotConstructed = errors.New(
	"GetOrderTransitionsQuery must be created via NewGetOrderTransitionsQuery constructor",
)

// GetOrderTransitionsQuery reads the journal of one order.
type GetOrderTransitionsQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderTransitionsQuery(orderID string) (GetOrderTransitionsQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return GetOrderTransitionsQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return GetOrderTransitionsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderTransitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTransitionsQueryIsNotConstructed)
}

func (q GetOrderTransitionsQuery) OrderID() string {
	return q.orderID
}

// GetOrderTransitionsQueryResponse is one journal entry.
type GetOrderTransitionsQueryResponse struct {
	ID         string
	OrderID    string
	From       string
	To         string
	Paid       bool
	ActorID    string
	OccurredAt time.Time
}
