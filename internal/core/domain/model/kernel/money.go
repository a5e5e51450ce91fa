package kernel

import (
	"fmt"
	"math"

	"parcelhub/internal/pkg/errs"
)

// MaxAmount is the largest whole amount Money can hold.
const MaxAmount = math.MaxInt64 / 100

// Money is a non-negative amount in the service currency, held in whole cents so that
// sums and comparisons are exact.
type Money struct {
	cents int64
}

// NewMoneyFromCents builds Money from a cent amount. Negative amounts are rejected.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", cents, 0, int64(math.MaxInt64))
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat rounds amount half-up to two decimals. Amounts whose cents do not
// fit in an int64 are rejected.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}
	if amount*100 >= math.MaxInt64 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, MaxAmount)
	}
	return NewMoneyFromCents(RoundHalfUpToCents(amount))
}

// RoundHalfUpToCents converts a decimal amount to cents, rounding halves up.
// A small epsilon absorbs binary representation error such as 2.675 being stored as 2.67499...
func RoundHalfUpToCents(amount float64) int64 {
	const epsilon = 1e-9
	return int64(math.Floor(amount*100 + 0.5 + epsilon))
}

// Zero is the empty amount.
func Zero() Money {
	return Money{}
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units, e.g. 13.00 for 1300 cents.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimals.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
