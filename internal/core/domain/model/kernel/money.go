package kernel

import (
	"fmt"
	"math"

	"sellerdesk/internal/pkg/errs"
	"sellerdesk/internal/pkg/guard"
)

// MaxMoneyCents bounds a single amount; anything larger is treated as corrupt input.
const MaxMoneyCents int64 = 1_000_000_000_00

// ErrMoneyIsNotConstructed is returned when a zero-value Money is validated.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromFloat or ZeroMoney")

// Money is a non-negative amount stored in cents so that aggregates such as
// revenue add up exactly.
//
// Example:
//
//	total, err := kernel.MoneyFromFloat(149.99)
//	revenue := kernel.ZeroMoney().Add(total)
//	fmt.Println(revenue) // 149.99
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates Money from a cent amount in [0, MaxMoneyCents].
func NewMoney(cents int64) (Money, error) {
	if cents < 0 || cents > MaxMoneyCents {
		return Money{}, errs.NewValueIsOutOfRangeError("money", cents, 0, MaxMoneyCents)
	}
	return Money{cents: cents, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromFloat converts a wire amount (major units) to Money, rounding to the
// nearest cent.
func MoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%v is not a finite amount", amount))
	}
	return NewMoney(int64(math.Round(amount * 100)))
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Float returns the amount in major units, as sent over the wire.
func (m Money) Float() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of both amounts. The sum saturates at MaxMoneyCents.
func (m Money) Add(other Money) Money {
	sum := m.cents + other.cents
	if sum > MaxMoneyCents {
		sum = MaxMoneyCents
	}
	return Money{cents: sum, guard: guard.NewConstructorGuard()}
}

func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// String renders the amount with two decimals, e.g. "1250.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
