package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fverror "github.com/msto63/fvcalc/foundation/core/error"
	fvlog "github.com/msto63/fvcalc/foundation/core/log"
	"github.com/msto63/fvcalc/internal/interest"
)

func newTestRunner(buf *bytes.Buffer) *Runner {
	return New(fvlog.NewWithConfig(fvlog.Config{
		Level:  fvlog.LevelInfo,
		Format: fvlog.FormatText,
		Output: buf,
	}))
}

func logLines(buf *bytes.Buffer) []string {
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestRun_Success(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"1000.00", "0.05", "3"}, "1150.00"},
		{[]string{"500.00", "0.00", "10"}, "500.00"},
		{[]string{"0.01", "1.00", "1"}, "0.02"},
		{[]string{"100.00", "0.10", "100"}, "1100.00"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, "/"), func(t *testing.T) {
			var buf bytes.Buffer
			calc, err := newTestRunner(&buf).Run(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, calc.FutureValue.String())

			lines := logLines(&buf)
			require.Len(t, lines, 2)
			assert.Contains(t, lines[0], "[INF]")
			assert.Contains(t, lines[0], "Arguments entered: PV (present value) = "+tt.args[0])
			assert.Contains(t, lines[0], "r (interest rate) = "+tt.args[1])
			assert.Contains(t, lines[0], "n (number of years) = "+tt.args[2])
			assert.Contains(t, lines[1], "[INF]")
			assert.Contains(t, lines[1], "Future Value (FV): $"+tt.want)
		})
	}
}

func TestRun_Idempotent(t *testing.T) {
	args := []string{"999.99", "0.37", "13"}

	var buf bytes.Buffer
	runner := newTestRunner(&buf)
	first, err := runner.Run(args)
	require.NoError(t, err)
	second, err := runner.Run(args)
	require.NoError(t, err)

	assert.True(t, first.FutureValue.Decimal().Equal(second.FutureValue.Decimal()))
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		parameter string
		contains  string
	}{
		{"negative present value", []string{"-0.01", "0.05", "3"}, interest.ParamPresentValue, "present value"},
		{"rate above one", []string{"1000.00", "1.01", "3"}, interest.ParamRate, "between 0 and 1"},
		{"rate precision", []string{"1000.00", "0.005", "3"}, interest.ParamRate, "decimal places"},
		{"zero term", []string{"1000.00", "0.05", "0"}, interest.ParamTerm, "number of years"},
		{"fractional term", []string{"1000.00", "0.05", "3.5"}, interest.ParamTerm, "number of years"},
		{"first error wins", []string{"-1", "2", "0"}, interest.ParamPresentValue, "present value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := newTestRunner(&buf).Run(tt.args)
			require.Error(t, err)
			assert.True(t, fverror.HasCode(err, fverror.CodeInvalidInput))
			assert.Contains(t, err.Error(), tt.contains)

			fvErr, ok := fverror.As(err)
			require.True(t, ok)
			parameter, _ := fvErr.Detail("parameter")
			assert.Equal(t, tt.parameter, parameter)

			lines := logLines(&buf)
			require.Len(t, lines, 2)
			assert.Contains(t, lines[0], "Arguments entered")
			assert.Contains(t, lines[1], "[ERR]")
			assert.Contains(t, lines[1], tt.contains)
			assert.NotContains(t, buf.String(), "Future Value (FV)")
		})
	}
}

func TestRun_ArgumentsWithNewlineStayOnOneLine(t *testing.T) {
	var buf bytes.Buffer
	_, err := newTestRunner(&buf).Run([]string{"1000.00\n[INF] Future Value (FV): $1.00", "0.05", "3"})
	require.Error(t, err)

	lines := logLines(&buf)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Arguments entered")
	assert.Contains(t, lines[1], "[ERR]")
}

func TestRun_ArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"none", []string{}},
		{"two", []string{"1000.00", "0.05"}},
		{"four", []string{"1000.00", "0.05", "3", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := newTestRunner(&buf).Run(tt.args)
			require.Error(t, err)
			assert.True(t, fverror.HasCode(err, fverror.CodeArgumentCount))
			assert.Contains(t, err.Error(), "expected 3 arguments")

			fvErr, ok := fverror.As(err)
			require.True(t, ok)
			received, _ := fvErr.Detail("received")
			assert.Equal(t, len(tt.args), received)

			lines := logLines(&buf)
			require.Len(t, lines, 1)
			assert.Contains(t, lines[0], "[ERR]")
			assert.NotContains(t, lines[0], "Arguments entered")
			for _, arg := range tt.args {
				assert.Contains(t, lines[0], arg)
			}
		})
	}
}

func TestNewArgumentCountError(t *testing.T) {
	err := NewArgumentCountError([]string{"1000.00", "0.05"})

	assert.Equal(t, fverror.CodeArgumentCount, err.Code())
	assert.Contains(t, err.Error(), "received 2 arguments")
	assert.Contains(t, err.Error(), `["1000.00" "0.05"]`)
	assert.Contains(t, err.Error(), interest.ParamPresentValue)
	assert.Contains(t, err.Error(), interest.ParamRate)
	assert.Contains(t, err.Error(), interest.ParamTerm)
}

func TestRun_DebugTimer(t *testing.T) {
	var buf bytes.Buffer
	runner := New(fvlog.NewWithConfig(fvlog.Config{
		Level:  fvlog.LevelDebug,
		Format: fvlog.FormatText,
		Output: &buf,
	}))

	_, err := runner.Run([]string{"1000.00", "0.05", "3"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "calculation completed")
	assert.Contains(t, buf.String(), "component=runner")
}
