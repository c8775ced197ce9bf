package kernel

import (
	"fmt"
	"math"

	"printdrop/internal/pkg/errs"
)

// minorUnitsPerMajor is the number of paise in one rupee.
const minorUnitsPerMajor = 100

// MaxAmount is the largest amount whose MinorUnits still fits in an int64.
const MaxAmount int64 = math.MaxInt64 / minorUnitsPerMajor

// Money is a non-negative amount in whole rupees. Order totals never carry
// fractional paise; gateways that want minor units use MinorUnits.
type Money struct {
	amount int64
}

// NewMoney returns an amount of whole rupees between 0 and MaxAmount.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", amount),
		)
	}
	if amount > MaxAmount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, MaxAmount)
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns an amount of zero rupees.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the value in whole rupees.
func (m Money) Amount() int64 {
	return m.amount
}

// MinorUnits returns the value in paise.
func (m Money) MinorUnits() int64 {
	return m.amount * minorUnitsPerMajor
}

// Add returns the sum of both amounts. A sum above MaxAmount is out of range.
func (m Money) Add(other Money) (Money, error) {
	if other.amount > MaxAmount-m.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", fmt.Sprintf("%d + %d", m.amount, other.amount), 0, MaxAmount)
	}
	return Money{amount: m.amount + other.amount}, nil
}

// Multiply scales the amount by a non-negative factor. A product above
// MaxAmount is out of range.
func (m Money) Multiply(factor int64) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"factor",
			fmt.Errorf("%d is negative", factor),
		)
	}
	if factor != 0 && m.amount > MaxAmount/factor {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", fmt.Sprintf("%d * %d", m.amount, factor), 0, MaxAmount)
	}
	return Money{amount: m.amount * factor}, nil
}

// IsEqual reports whether both amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

func (m Money) String() string {
	return fmt.Sprintf("%d INR", m.amount)
}
