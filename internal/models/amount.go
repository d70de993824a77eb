package models

import (
	"github.com/shopspring/decimal"
)

// Amounts are stored with two fractional digits.
const AmountPlaces int32 = 2

// MaxAmount is the largest magnitude that keeps its cents on every
// supported database. SQLite stores DECIMAL columns as REAL, which is
// exact to 15 significant digits.
var MaxAmount = decimal.New(1, 13).Sub(decimal.New(1, -AmountPlaces))

// RoundAmount rounds an amount to the stored precision.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}

// ValidateAmounts verifies that user supplied amounts are not negative and
// are representable.
func ValidateAmounts(amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if a.IsNegative() || a.Abs().GreaterThan(MaxAmount) {
			return ErrInvalidAmount
		}
	}

	return nil
}

// CheckRange verifies that computed aggregates are representable.
func CheckRange(amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if a.Abs().GreaterThan(MaxAmount) {
			return ErrRecomputeOverflow
		}
	}

	return nil
}
