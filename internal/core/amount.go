// Package core holds the transaction record value object and the pure
// aggregation functions derived from it.
//
// Amounts are decimal values, never floats. Parsing accepts both dot and
// comma decimal separators since users type either.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user-supplied amount string into a decimal.
//
// It rejects empty input, non-numeric input, zero and negative values.
// Explicit signs are not allowed: every record amount is strictly positive
// and the transaction type carries the direction.
//
// Examples:
//
//	ParseAmount("1250.50") -> 1250.50, nil
//	ParseAmount("1250,50") -> 1250.50, nil
//	ParseAmount("-5")      -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
