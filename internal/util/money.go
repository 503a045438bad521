package util

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount bounds follow a decimal(10,2) column: at most ten significant
// digits, two of them fractional.
var maxAmount = decimal.New(1, 8)

var (
	ErrAmountPrecision = errors.New("amount has more than two decimal places")
	ErrAmountTooLarge  = errors.New("amount exceeds 10 digits")
)

// ParseAmountCent parses a decimal amount string into cents.
// Negative amounts (refunds) are accepted.
func ParseAmountCent(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	cents := d.Mul(decimal.New(1, 2))
	if !cents.IsInteger() {
		return 0, ErrAmountPrecision
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return 0, ErrAmountTooLarge
	}
	return cents.IntPart(), nil
}

// FormatCent renders cents as a decimal string with two fractional digits.
func FormatCent(cent int64) string {
	return decimal.New(cent, -2).StringFixed(2)
}
