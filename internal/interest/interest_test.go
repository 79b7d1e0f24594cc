package interest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fverror "github.com/msto63/fvcalc/foundation/core/error"
)

func TestValidatePresentValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "two decimals", input: "1000.00", want: "1000.00"},
		{name: "zero", input: "0.00", want: "0.00"},
		{name: "whole number", input: "100", want: "100.00"},
		{name: "one decimal", input: "10.5", want: "10.50"},
		{name: "trailing zeros", input: "10.500", want: "10.50"},
		{name: "surrounding whitespace", input: " 250.25 ", want: "250.25"},
		{name: "exponent form", input: "1e3", want: "1000.00"},
		{name: "negative exponent", input: "1E-2", want: "0.01"},
		{name: "plus sign", input: "+12.30", want: "12.30"},
		{name: "huge negative exponent", input: "1e-30000000", wantErr: "present value"},
		{name: "huge positive exponent", input: "1e30000000", wantErr: "present value"},
		{name: "negative", input: "-0.01", wantErr: "must not be negative"},
		{name: "three decimals", input: "10.005", wantErr: "decimal places"},
		{name: "not a number", input: "abc", wantErr: "present value"},
		{name: "empty", input: "", wantErr: "present value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pv, err := ValidatePresentValue(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Contains(t, err.Error(), ParamPresentValue)
				assert.True(t, fverror.HasCode(err, fverror.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, pv.String())
		})
	}
}

func TestValidateInterestRate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "five percent", input: "0.05", want: "0.05"},
		{name: "lower bound", input: "0", want: "0.00"},
		{name: "upper bound", input: "1.00", want: "1.00"},
		{name: "one decimal", input: "0.5", want: "0.50"},
		{name: "exponent form", input: "1E-2", want: "0.01"},
		{name: "plus sign", input: "+1.00", want: "1.00"},
		{name: "exponent above one", input: "1e3", wantErr: "between 0 and 1"},
		{name: "huge negative exponent", input: "1e-30000000", wantErr: "interest rate"},
		{name: "huge positive exponent", input: "1e30000000", wantErr: "interest rate"},
		{name: "above one", input: "1.01", wantErr: "between 0 and 1"},
		{name: "negative", input: "-0.01", wantErr: "between 0 and 1"},
		{name: "three decimals", input: "0.005", wantErr: "decimal places"},
		{name: "not a number", input: "five", wantErr: "interest rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ValidateInterestRate(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Contains(t, err.Error(), ParamRate)
				assert.True(t, fverror.HasCode(err, fverror.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestValidateTerm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Term
		wantErr bool
	}{
		{name: "three years", input: "3", want: 3},
		{name: "one year", input: "1", want: 1},
		{name: "whitespace", input: " 10 ", want: 10},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-2", wantErr: true},
		{name: "fractional", input: "3.5", wantErr: true},
		{name: "whole decimal", input: "3.0", wantErr: true},
		{name: "exponent form", input: "3e0", wantErr: true},
		{name: "plus sign", input: "+3", want: 3},
		{name: "not a number", input: "three", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ValidateTerm(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), ParamTerm)
				assert.True(t, fverror.HasCode(err, fverror.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
			assert.Equal(t, int(tt.want), n.Years())
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	_, err := ValidateInterestRate("1.01")
	require.Error(t, err)

	fvErr, ok := fverror.As(err)
	require.True(t, ok)

	parameter, _ := fvErr.Detail("parameter")
	value, _ := fvErr.Detail("value")
	assert.Equal(t, ParamRate, parameter)
	assert.Equal(t, "1.01", value)
	assert.Equal(t, "interest.ValidateInterestRate", fvErr.Operation())
	assert.Equal(t, fverror.SeverityLow, fvErr.Severity())
}

func mustCalculate(t *testing.T, pvText, rText, nText string) Calculation {
	t.Helper()
	pv, err := ValidatePresentValue(pvText)
	require.NoError(t, err)
	r, err := ValidateInterestRate(rText)
	require.NoError(t, err)
	n, err := ValidateTerm(nText)
	require.NoError(t, err)
	return Calculate(pv, r, n)
}

func TestComputeFutureValue(t *testing.T) {
	tests := []struct {
		pv, r, n string
		want     string
	}{
		{"1000.00", "0.05", "3", "1150.00"},
		{"500.00", "0.00", "10", "500.00"},
		{"0.01", "1.00", "1", "0.02"},
		{"0.00", "0.75", "40", "0.00"},
		{"100.00", "0.10", "1", "110.00"},
		// 0.03 * 1.5 = 0.045, half-up gives 0.05 where half-even would give 0.04
		{"0.03", "0.50", "1", "0.05"},
		// 2.50 * 1.01 = 2.525
		{"2.50", "0.01", "1", "2.53"},
	}

	for _, tt := range tests {
		t.Run(tt.pv+"/"+tt.r+"/"+tt.n, func(t *testing.T) {
			calc := mustCalculate(t, tt.pv, tt.r, tt.n)
			assert.Equal(t, tt.want, calc.FutureValue.String())
			assert.Equal(t, CurrencySymbol+tt.want, calc.FutureValue.Currency())
		})
	}
}

func TestFutureValueProperties(t *testing.T) {
	inputs := [][3]string{
		{"1000.00", "0.05", "3"},
		{"999.99", "0.99", "7"},
		{"12.34", "0.00", "1"},
		{"0.01", "0.01", "100"},
		{"250000.00", "1.00", "30"},
	}

	for _, in := range inputs {
		calc := mustCalculate(t, in[0], in[1], in[2])
		fv := calc.FutureValue.Decimal()

		assert.True(t, fv.GreaterThanOrEqual(calc.PresentValue.Decimal()), "FV >= PV for %v", in)
		assert.True(t, fv.Round(2).Equal(fv), "FV has at most two decimals for %v", in)
		if calc.Rate.Decimal().IsZero() {
			assert.True(t, fv.Equal(calc.PresentValue.Decimal()), "FV == PV at zero rate for %v", in)
		}
	}
}

func TestAccruedInterest(t *testing.T) {
	calc := mustCalculate(t, "1000.00", "0.05", "3")
	assert.Equal(t, "150.00", calc.AccruedInterest().StringFixed(2))
	assert.Equal(t, "5%", calc.Rate.Percent())
	assert.Equal(t, 3, calc.Term.Years())
}

func TestRoundCurrency(t *testing.T) {
	tests := map[string]string{
		"0.125":  "0.13",
		"0.135":  "0.14",
		"2.345":  "2.35",
		"2.3449": "2.34",
		"1.005":  "1.01",
		"7":      "7.00",
	}

	for in, want := range tests {
		d, err := decimal.NewFromString(in)
		require.NoError(t, err)
		assert.Equal(t, want, roundCurrency(d).StringFixed(2), "round(%s)", in)
	}
}
