package order

import (
	"errors"
	"strings"
	"time"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/pkg/errs"
	"sellerdesk/internal/pkg/guard"
)

// ErrTransitionIsNotConstructed is returned when a Transition was not built by a constructor.
var ErrTransitionIsNotConstructed = errors.New("Transition must be created via NewTransition or RestoreTransition constructor")

// Transition is a journal entry for a status change confirmed by the remote store.
type Transition struct { //nolint:recvcheck //using for validation
	id         kernel.UUID
	orderID    string
	from       Status
	to         Status
	paid       bool
	actorID    string
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewTransition records that orderID moved from -> to at occurredAt.
func NewTransition(orderID string, from, to Status, paid bool, actorID string, occurredAt time.Time) (Transition, error) {
	return RestoreTransition(kernel.NewUUID(), orderID, from, to, paid, actorID, occurredAt)
}

// RestoreTransition rebuilds a journal entry from storage. The source status
// may be Unknown; the target must be a valid status.
func RestoreTransition(
	id kernel.UUID,
	orderID string,
	from, to Status,
	paid bool,
	actorID string,
	occurredAt time.Time,
) (Transition, error) {
	var orderErr error
	if strings.TrimSpace(orderID) == "" {
		orderErr = errs.NewValueIsRequiredError("order id")
	}
	if err := errors.Join(id.Validate(), orderErr, to.Validate()); err != nil {
		return Transition{}, err
	}

	return Transition{
		id:         id,
		orderID:    orderID,
		from:       from,
		to:         to,
		paid:       paid,
		actorID:    actorID,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (t Transition) Validate() error {
	return t.guard.Validate(ErrTransitionIsNotConstructed)
}

func (t Transition) ID() kernel.UUID       { return t.id }
func (t Transition) OrderID() string       { return t.orderID }
func (t Transition) From() Status          { return t.from }
func (t Transition) To() Status            { return t.to }
func (t Transition) Paid() bool            { return t.paid }
func (t Transition) ActorID() string       { return t.actorID }
func (t Transition) OccurredAt() time.Time { return t.occurredAt }
