package runner

import (
	"fmt"

	fverror "github.com/msto63/fvcalc/foundation/core/error"
	"github.com/msto63/fvcalc/internal/interest"
)

// ExpectedArgs is the number of positional arguments a run takes.
const ExpectedArgs = 3

// NewArgumentCountError reports a positional argument count other than three.
// The message describes the expected inputs and echoes what was received.
func NewArgumentCountError(args []string) *fverror.Error {
	return fverror.Newf(
		"expected %d arguments: %s (non-negative with 2 decimal places), %s (0-1 with 2 decimal places), and %s (positive integer); received %d arguments: %q",
		ExpectedArgs, interest.ParamPresentValue, interest.ParamRate, interest.ParamTerm, len(args), args,
	).
		WithCode(fverror.CodeArgumentCount).
		WithOperation("runner.Run").
		WithDetail("received", len(args)).
		WithDetail("args", fmt.Sprintf("%q", args))
}
