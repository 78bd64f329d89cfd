package order

import (
	"errors"
	"strings"
	"time"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/pkg/errs"
	"sellerdesk/internal/pkg/guard"
)

// GuestCustomerName is displayed when an order carries no customer name.
const GuestCustomerName = "Guest"

// ErrOrderIsNotConstructed is returned when an Order was not built by RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

// ShippingSnapshot is the customer data captured when the order was placed.
// The console never changes it.
type ShippingSnapshot struct {
	FullName string
	City     string
	Country  string
}

// CustomerName returns the full name or GuestCustomerName when it is blank.
func (s ShippingSnapshot) CustomerName() string {
	if name := strings.TrimSpace(s.FullName); name != "" {
		return name
	}
	return GuestCustomerName
}

// Flags carries the payment and delivery markers reported by the remote API.
type Flags struct {
	Paid      bool
	Delivered bool
}

// Order is an immutable snapshot of a remote order. Status changes produce a
// new value through WithConfirmedStatus, so cached copies can be shared safely.
type Order struct { //nolint:recvcheck //using for validation
	id        string
	shipping  ShippingSnapshot
	total     kernel.Money
	createdAt time.Time
	status    Status
	flags     Flags

	guard guard.ConstructorGuard
}

// RestoreOrder rebuilds an order from data returned by the remote order store.
// The identifier must be non-empty and the total a constructed Money value.
// An Unknown status is kept so that the configured policy can act on it.
func RestoreOrder(
	id string,
	shipping ShippingSnapshot,
	total kernel.Money,
	createdAt time.Time,
	status Status,
	flags Flags,
) (Order, error) {
	o := Order{
		shipping:  shipping,
		createdAt: createdAt,
		status:    status,
		flags:     flags,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(o.setID(id), o.setTotal(total)); err != nil {
		return Order{}, err
	}

	return o, nil
}

func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o Order) ID() string {
	return o.id
}

// Reference is the short operator-facing reference, e.g. "#A1B2C3".
func (o Order) Reference() string {
	ref := o.id
	if len(ref) > 6 {
		ref = ref[len(ref)-6:]
	}
	return "#" + strings.ToUpper(ref)
}

func (o Order) Shipping() ShippingSnapshot {
	return o.shipping
}

func (o Order) CustomerName() string {
	return o.shipping.CustomerName()
}

func (o Order) Total() kernel.Money {
	return o.total
}

func (o Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status is the status as received; use Status().Display() for presentation.
func (o Order) Status() Status {
	return o.status
}

func (o Order) IsPaid() bool {
	return o.flags.Paid
}

func (o Order) IsDelivered() bool {
	return o.flags.Delivered
}

// CanAdvance reports whether an advance action should be offered.
func (o Order) CanAdvance() bool {
	return !o.status.IsFinal()
}

// NextStatus computes the transition target under policy.
func (o Order) NextStatus(policy UnrecognizedStatusPolicy) (Status, error) {
	return policy.Next(o.status)
}

// WithConfirmedStatus returns a copy carrying a status the remote store has
// acknowledged. Delivered is derived from the target; paid is taken as sent.
func (o Order) WithConfirmedStatus(target Status, paid bool) (Order, error) {
	if err := o.Validate(); err != nil {
		return Order{}, err
	}
	if err := target.Validate(); err != nil {
		return Order{}, err
	}

	updated := o
	updated.status = target
	updated.flags = Flags{
		Paid:      paid,
		Delivered: target == Delivered,
	}
	return updated, nil
}

func (o *Order) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}
