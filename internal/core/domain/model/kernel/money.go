package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a monetary amount such as a unit price,
// a line total, or an order total. It wraps a decimal to avoid the rounding
// errors of binary floating point, and is immutable: arithmetic returns new values.
//
// The zero value of Money is a valid zero amount, which matches how the order
// store reports orders that have no charge (for example comped walk-in sales).
// Negative amounts are rejected because nothing in the fulfillment flow refunds.
//
// Example usage:
//
//	unitPrice, _ := kernel.NewMoneyFromString("4.50")
//	lineTotal := unitPrice.Mul(3)
//	fmt.Println(lineTotal.String()) // "13.5"
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a Money value from its decimal string representation,
// such as "19.99". This is the typical path when reconstructing amounts from
// persistence or external payloads.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a zero monetary amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two monetary amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns the amount multiplied by an integer quantity.
// Used to derive line totals from unit prices.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two monetary amounts for numeric equality.
// "4.5" and "4.50" compare equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation with trailing zeros
// trimmed, e.g. "13.5". Implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.String()
}
