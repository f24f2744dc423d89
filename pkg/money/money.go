// Package money provides small decimal helpers for currency and rate
// formatting shared by the report formatters.
package money

import (
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value with financial precision.
type Amount struct {
	decimal.Decimal
}

// New creates an Amount from a float64.
func New(value float64) Amount {
	return Amount{decimal.NewFromFloat(value)}
}

// FromDecimal wraps an existing decimal.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

// FromString parses an Amount from a string.
func FromString(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

// Round rounds to the nearest cent.
func (a Amount) Round() Amount {
	return Amount{a.Decimal.Round(2)}
}

// PerYear converts a monthly amount to annual.
func (a Amount) PerYear() Amount {
	return Amount{a.Decimal.Mul(decimal.NewFromInt(12))}
}

// PerMonth converts an annual amount to monthly.
func (a Amount) PerMonth() Amount {
	return Amount{a.Decimal.Div(decimal.NewFromInt(12))}
}

// String returns the bare fixed-point representation.
func (a Amount) String() string {
	return a.Decimal.StringFixed(2)
}

// Format returns the currency representation, negative amounts in
// accounting style: -$12.50 renders as ($12.50).
func (a Amount) Format() string {
	if a.Decimal.IsNegative() {
		return "($" + a.Decimal.Abs().StringFixed(2) + ")"
	}
	return "$" + a.String()
}

// FormatCurrency formats a raw decimal as currency.
func FormatCurrency(d decimal.Decimal) string {
	return FromDecimal(d).Format()
}

// FormatPercent formats a percent-scaled decimal (already multiplied by 100)
// with two decimal places.
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// FormatRateAsPercent formats a fractional rate (0.055) as a percentage
// (5.50%).
func FormatRateAsPercent(d decimal.Decimal) string {
	return FormatPercent(d.Mul(decimal.NewFromInt(100)))
}

// FormatYears formats a fractional year count with one decimal place.
func FormatYears(d decimal.Decimal) string {
	return d.StringFixed(1) + "y"
}
