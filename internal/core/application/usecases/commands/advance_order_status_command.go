package commands

import (
	"errors"
	"strings"

	"sellerdesk/internal/pkg/errs"
	"sellerdesk/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand requests moving an order to its next status on
// behalf of an operator.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID string
	actorID string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand validates that orderID is set. actorID is the
// remote user id of the operator and may be empty.
func NewAdvanceOrderStatusCommand(orderID, actorID string) (AdvanceOrderStatusCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return AdvanceOrderStatusCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return AdvanceOrderStatusCommand{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() string {
	return c.orderID
}

func (c AdvanceOrderStatusCommand) ActorID() string {
	return c.actorID
}
