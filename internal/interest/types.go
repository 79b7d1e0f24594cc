// ============================================================================
// fvcalc - Simple Interest Future Value Calculator
// ============================================================================
//
// Package:     interest
// Description: Validated value types of a simple interest calculation
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package interest

import (
	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every reported future value.
const CurrencySymbol = "$"

// currencyPlaces is the number of fractional digits of amounts and rates.
const currencyPlaces = 2

var hundred = decimal.NewFromInt(100)

// PresentValue is a non-negative amount with at most two fractional digits.
// Only ValidatePresentValue produces one.
type PresentValue struct {
	amount decimal.Decimal
}

// Decimal returns the exact amount.
func (p PresentValue) Decimal() decimal.Decimal {
	return p.amount
}

// String renders the amount with exactly two fractional digits.
func (p PresentValue) String() string {
	return p.amount.StringFixed(currencyPlaces)
}

// InterestRate is a fraction in [0, 1] with at most two fractional digits.
// 0.05 means 5% per year.
type InterestRate struct {
	rate decimal.Decimal
}

// Decimal returns the exact fraction.
func (r InterestRate) Decimal() decimal.Decimal {
	return r.rate
}

// String renders the fraction with exactly two fractional digits.
func (r InterestRate) String() string {
	return r.rate.StringFixed(currencyPlaces)
}

// Percent renders the rate as a percentage, e.g. "5%" for 0.05.
func (r InterestRate) Percent() string {
	return r.rate.Mul(hundred).String() + "%"
}

// Term is a positive whole number of years.
type Term int

// Years returns the term as an int.
func (t Term) Years() int {
	return int(t)
}

// FutureValue is the computed amount, rounded half-up to two fractional digits.
type FutureValue struct {
	amount decimal.Decimal
}

// Decimal returns the exact rounded amount.
func (f FutureValue) Decimal() decimal.Decimal {
	return f.amount
}

// String renders the amount with exactly two fractional digits.
func (f FutureValue) String() string {
	return f.amount.StringFixed(currencyPlaces)
}

// Currency renders the amount with the currency symbol, e.g. "$1150.00".
func (f FutureValue) Currency() string {
	return CurrencySymbol + f.String()
}

// Calculation ties a future value to the validated inputs it was derived from.
type Calculation struct {
	PresentValue PresentValue
	Rate         InterestRate
	Term         Term
	FutureValue  FutureValue
}

// AccruedInterest is the future value minus the present value.
func (c Calculation) AccruedInterest() decimal.Decimal {
	return c.FutureValue.amount.Sub(c.PresentValue.amount)
}
