// Package core holds the domain types, validators and error taxonomy.
//
// This file covers monetary amounts. Amounts are stored as integer cents
// so report sums stay exact; floats never enter the arithmetic.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in cents.
type Money struct {
	Cents int64
}

// ParseAmount parses a user-supplied decimal amount, accepting either a
// decimal comma or a decimal point. The third decimal digit rounds half-up
// into cents.
//
// Positivity is deliberately not checked here; callers reject non-positive
// amounts through Money.Validate.
//
// Examples:
//
//	ParseAmount("12.34") -> 1234 cents
//	ParseAmount("12,34") -> 1234 cents
//	ParseAmount("20.005") -> 2001 cents (half-up)
func ParseAmount(raw string) (Money, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: d.Shift(2).Round(0).IntPart()}, nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// String renders the amount with exactly two decimals, e.g. "30.01".
func (m Money) String() string {
	return decimal.New(m.Cents, -2).StringFixed(2)
}
