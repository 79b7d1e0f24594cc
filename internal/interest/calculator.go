package interest

import (
	"github.com/shopspring/decimal"
)

// ComputeFutureValue returns PV * (1 + r*n), rounded half-up to two places.
// The product is formed exactly before the single rounding step.
func ComputeFutureValue(pv PresentValue, r InterestRate, n Term) FutureValue {
	growth := one.Add(r.rate.Mul(decimal.NewFromInt(int64(n))))
	return FutureValue{amount: roundCurrency(pv.amount.Mul(growth))}
}

// Calculate bundles validated inputs with their future value.
func Calculate(pv PresentValue, r InterestRate, n Term) Calculation {
	return Calculation{
		PresentValue: pv,
		Rate:         r,
		Term:         n,
		FutureValue:  ComputeFutureValue(pv, r, n),
	}
}

// roundCurrency rounds half away from zero, which is half-up for the
// non-negative amounts produced here.
func roundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(currencyPlaces)
}
