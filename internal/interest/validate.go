package interest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	fverror "github.com/msto63/fvcalc/foundation/core/error"
)

// Parameter names as they appear in messages and error details.
const (
	ParamPresentValue = "PV (present value)"
	ParamRate         = "r (interest rate)"
	ParamTerm         = "n (number of years)"
)

// maxExponent bounds the decimal exponent of parsed input. Rounding and
// comparing rescale the coefficient by 10^|exponent|, so inputs such as
// "1e-30000000" are rejected before any arithmetic touches them.
const maxExponent = 28

var one = decimal.NewFromInt(1)

// ValidatePresentValue parses text as a non-negative decimal amount with at
// most two fractional digits.
func ValidatePresentValue(text string) (PresentValue, error) {
	const op = "interest.ValidatePresentValue"

	amount, err := parseDecimal(text)
	if err != nil {
		return PresentValue{}, invalidInput(op, ParamPresentValue, text,
			"must be a non-negative number with at most 2 decimal places", err)
	}
	if amount.IsNegative() {
		return PresentValue{}, invalidInput(op, ParamPresentValue, text,
			"must not be negative", nil)
	}
	if !hasCurrencyPrecision(amount) {
		return PresentValue{}, invalidInput(op, ParamPresentValue, text,
			"too many decimal places, at most 2 are allowed", nil)
	}

	return PresentValue{amount: amount}, nil
}

// ValidateInterestRate parses text as a fraction between 0 and 1 inclusive
// with at most two fractional digits.
func ValidateInterestRate(text string) (InterestRate, error) {
	const op = "interest.ValidateInterestRate"

	rate, err := parseDecimal(text)
	if err != nil {
		return InterestRate{}, invalidInput(op, ParamRate, text,
			"must be a number between 0 and 1 with at most 2 decimal places", err)
	}
	if rate.IsNegative() || rate.GreaterThan(one) {
		return InterestRate{}, invalidInput(op, ParamRate, text,
			"out of range, must be between 0 and 1", nil)
	}
	if !hasCurrencyPrecision(rate) {
		return InterestRate{}, invalidInput(op, ParamRate, text,
			"too many decimal places, at most 2 are allowed", nil)
	}

	return InterestRate{rate: rate}, nil
}

// ValidateTerm parses text as a whole number of years greater than zero.
// Fractional input such as "3.5" is rejected, not truncated.
func ValidateTerm(text string) (Term, error) {
	const op = "interest.ValidateTerm"

	years, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, invalidInput(op, ParamTerm, text,
			"must be a positive whole number", err)
	}
	if years <= 0 {
		return 0, invalidInput(op, ParamTerm, text,
			"must be greater than zero", nil)
	}

	return Term(years), nil
}

func parseDecimal(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Decimal{}, fmt.Errorf("exponent %d out of range", exp)
	}
	return d, nil
}

// hasCurrencyPrecision reports whether d survives rounding to two places
// unchanged. Trailing zeros ("10.500") do not count as extra precision.
func hasCurrencyPrecision(d decimal.Decimal) bool {
	return d.Round(currencyPlaces).Equal(d)
}

func invalidInput(op, parameter, value, reason string, cause error) *fverror.Error {
	var err *fverror.Error
	if cause != nil {
		err = fverror.Wrap(cause, "invalid "+parameter+": "+reason)
	} else {
		err = fverror.New("invalid " + parameter + ": " + reason)
	}
	return err.
		WithCode(fverror.CodeInvalidInput).
		WithOperation(op).
		WithDetail("parameter", parameter).
		WithDetail("value", value)
}
