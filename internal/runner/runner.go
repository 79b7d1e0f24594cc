// Package runner drives a single calculation: it checks the argument count,
// validates the inputs in order, computes the future value and logs the
// outcome through the injected logger.
package runner

import (
	"fmt"

	fvlog "github.com/msto63/fvcalc/foundation/core/log"
	"github.com/msto63/fvcalc/internal/interest"
)

// Runner executes calculations and reports them to its logger
type Runner struct {
	logger *fvlog.Logger
}

// New creates a Runner writing to logger
func New(logger *fvlog.Logger) *Runner {
	return &Runner{logger: logger.WithField("component", "runner")}
}

// Run takes the positional arguments (present value, rate, term) and returns
// the finished calculation. Validation stops at the first invalid input; the
// error is logged once before it is returned.
func (r *Runner) Run(args []string) (interest.Calculation, error) {
	if len(args) != ExpectedArgs {
		err := NewArgumentCountError(args)
		r.logger.LogError(err)
		return interest.Calculation{}, err
	}

	pvText, rateText, termText := args[0], args[1], args[2]
	r.logger.Info(
		fmt.Sprintf("Arguments entered: %s = %s, %s = %s, %s = %s",
			interest.ParamPresentValue, pvText,
			interest.ParamRate, rateText,
			interest.ParamTerm, termText),
	)

	timer := r.logger.StartTimer("calculation")
	calc, err := calculate(pvText, rateText, termText)
	timer.Stop()
	if err != nil {
		r.logger.LogError(err)
		return interest.Calculation{}, err
	}

	r.logger.Info("Future Value (FV): "+calc.FutureValue.Currency(), fvlog.Fields{
		"accrued_interest": calc.AccruedInterest().StringFixed(2),
	})
	return calc, nil
}

func calculate(pvText, rateText, termText string) (interest.Calculation, error) {
	pv, err := interest.ValidatePresentValue(pvText)
	if err != nil {
		return interest.Calculation{}, err
	}
	rate, err := interest.ValidateInterestRate(rateText)
	if err != nil {
		return interest.Calculation{}, err
	}
	term, err := interest.ValidateTerm(termText)
	if err != nil {
		return interest.Calculation{}, err
	}
	return interest.Calculate(pv, rate, term), nil
}
