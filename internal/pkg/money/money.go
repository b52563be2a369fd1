// Package money holds the display helpers for decimal currency amounts.
// Amounts are carried at full precision and only rounded here.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("money: invalid amount")

var hundred = decimal.NewFromInt(100)

// Display renders an amount with two decimals (half away from zero).
func Display(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Parse reads a currency string such as "2950" or "2950.50".
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// MustParse panics on malformed input; for constants and fixtures.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Percent returns pct/100 as a fraction.
func Percent(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred)
}

// Ptr is a convenience for optional amounts.
func Ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
