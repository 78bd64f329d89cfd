package order

import (
	"fmt"
	"strings"

	"sellerdesk/internal/pkg/errs"
)

// PaidFlagPolicy decides the isPaid flag sent with a status update.
type PaidFlagPolicy int

const (
	// PaidOnEveryTransition marks the order paid on every status update.
	PaidOnEveryTransition PaidFlagPolicy = iota
	// PaidOnDelivery marks the order paid only when it reaches Delivered and
	// otherwise repeats the order's current flag.
	PaidOnDelivery
)

// ParsePaidFlagPolicy reads "every-transition" (default) or "on-delivery".
func ParsePaidFlagPolicy(raw string) (PaidFlagPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "every-transition":
		return PaidOnEveryTransition, nil
	case "on-delivery":
		return PaidOnDelivery, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"paid flag policy", fmt.Errorf("%q is not one of every-transition, on-delivery", raw))
	}
}

func (p PaidFlagPolicy) String() string {
	if p == PaidOnDelivery {
		return "on-delivery"
	}
	return "every-transition"
}

// PaidFlag returns the isPaid value to send when moving o to target.
func (p PaidFlagPolicy) PaidFlag(o Order, target Status) bool {
	if p == PaidOnDelivery {
		return o.IsPaid() || target == Delivered
	}
	return true
}
