// Package money holds the cent-level arithmetic shared by settlement and reports.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	half    = decimal.NewFromFloat(0.5)
	hundred = decimal.NewFromInt(100)
)

// FromCents converts a whole number of cents to dollars.
func FromCents(cents int) decimal.Decimal {
	return decimal.NewFromInt(int64(cents)).Div(hundred)
}

// Dollars builds an amount from a dollar literal such as "2.00".
// It panics on malformed input and is meant for constants.
func Dollars(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// RoundCents rounds to the nearest cent, halves going up (toward +inf).
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Add(half).Floor().Shift(-2)
}

// Format renders an amount as dollars and cents, e.g. $3.60 or -$0.45.
func Format(d decimal.Decimal) string {
	r := RoundCents(d)
	if r.IsNegative() {
		return "-$" + r.Neg().StringFixed(2)
	}
	return "$" + r.StringFixed(2)
}

// FormatCost renders a per-glass cost below one dollar the way the daily
// banner shows it, e.g. $.04.
func FormatCost(cents int) string {
	if cents >= 100 || cents < 0 {
		return Format(FromCents(cents))
	}
	return fmt.Sprintf("$.%02d", cents)
}

// Parse reads a dollar amount typed by a player. A leading "$" is allowed.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}
