package kernel

import (
	"fmt"
	"math"

	"printshop/internal/pkg/errs"
)

// Money is a value object representing a non-negative currency amount.
// Order totals, tax, shipping, and discount amounts are stored exactly as
// entered by the operator, so Money preserves the given value and only
// enforces that it is a finite, non-negative number.
//
// Comparison is done at cent precision: two amounts closer than half a cent
// are considered equal.
//
// Example usage:
//
//	total, err := kernel.NewMoney(100.00)
//	if err != nil {
//	    // handle negative or non-finite amount
//	}
//	fmt.Println(total.Amount()) // 100
type Money struct {
	amount float64
}

// centEpsilon is the tolerance used when comparing amounts.
const centEpsilon = 0.005

// ZeroMoney returns the zero amount. Monetary fields default to zero when
// unset, so the zero value of Money is valid.
func ZeroMoney() Money {
	return Money{amount: 0}
}

// NewMoney creates a Money amount. The amount must be finite and
// non-negative; negative amounts are never stored.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the raw amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference of two amounts, floored at zero. Money never
// goes negative, so subtracting a larger amount yields zero.
func (m Money) Sub(other Money) Money {
	result := m.amount - other.amount
	if result < 0 {
		return Money{amount: 0}
	}
	return Money{amount: result}
}

// IsEqual compares two amounts at cent precision.
func (m Money) IsEqual(other Money) bool {
	return math.Abs(m.amount-other.amount) < centEpsilon
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}
