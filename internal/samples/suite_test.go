package samples

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	unitassert "unitlite/assert"
	"unitlite/discovery"
	"unitlite/is"
	"unitlite/runner"
)

func TestMaxProfit(t *testing.T) {
	tests := []struct {
		name   string
		prices []int
		want   int
	}{
		{"best trade", []int{10, 7, 5, 8, 11, 9}, 6},
		{"falling", []int{9, 7, 4, 1}, 0},
		{"empty", nil, 0},
		{"single", []int{5}, 0},
		{"low after high", []int{2, 10, 1, 4}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxProfit(tt.prices))
		})
	}
}

func TestQuotient(t *testing.T) {
	q, err := Quotient(7, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, q)

	_, err = Quotient(1, 0)
	var dz *DivideByZeroError
	require.ErrorAs(t, err, &dz)
	assert.Equal(t, 1, dz.Dividend)
}

func TestSuiteRegisteredAndPassing(t *testing.T) {
	var cases []discovery.TestCase
	for _, tc := range discovery.Discover() {
		if strings.HasPrefix(tc.Name, "samples.") {
			cases = append(cases, tc)
		}
	}
	require.Len(t, cases, 9)
	assert.Equal(t, "samples.maxProfitFindsBestTrade", cases[0].Name)

	var c runner.Collector
	report := runner.New(runner.WithSink(c.Sink)).Run(cases)

	assert.Equal(t, runner.Summary{Total: 9, Passed: 9}, report.Summary, c.Text())
	assert.Equal(t, "Total tests: 9. Passed: 9. Failed: 0.", c.Lines[len(c.Lines)-1])
}

func TestDivideRaisingOtherKindIsUnexpected(t *testing.T) {
	reg := discovery.NewRegistry()
	require.NoError(t, reg.Add("samples.wrongKind", func() {
		unitassert.Throws[*DivideByZeroError](func() { _ = []int{}[Divide(1, 1)] })
	}))
	require.NoError(t, reg.Add("samples.wrongProfit", func() {
		unitassert.That(MaxProfit([]int{10, 7, 5, 8, 11, 9})-1, is.EqualTo(6))
	}))

	report := runner.New(runner.WithSink(func(string) {})).Run(reg.Discover())

	require.Len(t, report.Results, 2)
	assert.Equal(t, runner.FailedUnexpectedError, report.Results[0].Outcome)
	assert.Equal(t, "boundsError", report.Results[0].ErrorKind)
	assert.Equal(t, runner.FailedAssertion, report.Results[1].Outcome)
	assert.Equal(t, "Output is incorrect, expected is 6, output is 5!", report.Results[1].Message)
}
