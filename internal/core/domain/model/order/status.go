package order

import (
	"errors"
	"fmt"
	"strings"

	"sellerdesk/internal/pkg/errs"
)

// Status is the fulfillment state of an order.
type Status int

const (
	// Unknown is any non-empty wire value outside the closed set.
	Unknown Status = iota
	Pending
	Processing
	Shipped
	// Delivered is final; no transition leaves it.
	Delivered
)

// ErrStatusIsFinal is returned when advancing a Delivered order.
var ErrStatusIsFinal = errors.New("order is already delivered")

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
	}
}

// transitions is the forward edge of every known, non-final status.
func transitions() map[Status]Status {
	return map[Status]Status{
		Pending:    Processing,
		Processing: Shipped,
		Shipped:    Delivered,
	}
}

// ParseStatus maps a wire value to a Status by exact name. A missing value
// means Pending; anything else outside the closed set becomes Unknown.
func ParseStatus(raw string) Status {
	if raw == "" {
		return Pending
	}
	for status, name := range getStatusStrings() {
		if status != Unknown && name == raw {
			return status
		}
	}
	return Unknown
}

// Validate accepts only the four fulfillment states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Display is the label shown to operators; unrecognized statuses read as Pending.
func (s Status) Display() Status {
	if s.Validate() != nil {
		return Pending
	}
	return s
}

func (s Status) IsFinal() bool {
	return s == Delivered
}

// Next returns the following status under CoerceUnrecognizedForward.
//
//	Pending    -> Processing
//	Processing -> Shipped
//	Shipped    -> Delivered
//	Delivered  -> ErrStatusIsFinal
//	Unknown    -> Processing
func (s Status) Next() (Status, error) {
	return CoerceUnrecognizedForward.Next(s)
}

// UnrecognizedStatusPolicy decides how an Unknown status is advanced.
type UnrecognizedStatusPolicy int

const (
	// CoerceUnrecognizedForward advances any unrecognized status to Processing,
	// as if it were Pending.
	CoerceUnrecognizedForward UnrecognizedStatusPolicy = iota
	// RejectUnrecognized refuses to advance an unrecognized status.
	RejectUnrecognized
)

// ParseUnrecognizedStatusPolicy reads "coerce" (default) or "reject".
func ParseUnrecognizedStatusPolicy(raw string) (UnrecognizedStatusPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "coerce":
		return CoerceUnrecognizedForward, nil
	case "reject":
		return RejectUnrecognized, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"unknown status policy", fmt.Errorf("%q is not one of coerce, reject", raw))
	}
}

func (p UnrecognizedStatusPolicy) String() string {
	if p == RejectUnrecognized {
		return "reject"
	}
	return "coerce"
}

// Next applies the transition table to s.
func (p UnrecognizedStatusPolicy) Next(s Status) (Status, error) {
	if s.IsFinal() {
		return 0, ErrStatusIsFinal
	}
	if next, ok := transitions()[s]; ok {
		return next, nil
	}
	if p == RejectUnrecognized {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to advance", s.String()),
		)
	}
	return Processing, nil
}
