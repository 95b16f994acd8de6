// Package types provides common type aliases and utilities.
package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// MoneyScale is the number of fractional digits stored for money columns (NUMERIC(11,2)).
const MoneyScale int32 = 2

// moneyMaxDigits mirrors NUMERIC(11,2): at most 9 integer digits.
const moneyMaxDigits = 11

var moneyLimit = decimal.New(1, moneyMaxDigits-MoneyScale)

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewMoneyFromInt converts an integer amount or quantity to Money.
func NewMoneyFromInt(n int64) Money {
	return decimal.NewFromInt(n)
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// FormatMoney renders m with exactly two fractional digits ("150.00").
func FormatMoney(m Money) string {
	return m.StringFixed(MoneyScale)
}

// ValidateMoney checks that m fits NUMERIC(11,2) and carries at most two decimals.
// allowZero controls whether 0.00 is accepted.
func ValidateMoney(m Money, allowZero bool) error {
	if m.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	if !allowZero && m.IsZero() {
		return fmt.Errorf("must be greater than zero")
	}
	if !m.Equal(m.Round(MoneyScale)) {
		return fmt.Errorf("must have at most %d decimal places", MoneyScale)
	}
	if m.GreaterThanOrEqual(moneyLimit) {
		return fmt.Errorf("must have at most %d digits", moneyMaxDigits)
	}
	return nil
}
