package runner

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	uassert "unitlite/assert"
	"unitlite/discovery"
	"unitlite/is"
)

// The console format is parsed by external tooling; any change to it must be
// deliberate. Regenerate with: go test ./runner -update
func TestRun_ConsoleFormat(t *testing.T) {
	cases := []discovery.TestCase{
		{Name: "golden.Passing", Func: func() {
			uassert.That([]int{1, 2, 3}, is.EqualTo([]int{1, 2, 3}))
		}},
		{Name: "golden.AssertionFails", Func: func() {
			uassert.That(5, is.EqualTo(6))
		}},
		{Name: "golden.ListMismatch", Func: func() {
			uassert.That([]int{1, 2}, is.EqualTo([]int{1, 2, 3}))
		}},
		{Name: "golden.Crashes", Func: func() {
			divide(1, 0)
		}},
		{Name: "golden.NeverRaises", Func: func() {
			uassert.Throws[*DivideByZeroError](func() { divide(4, 2) })
		}},
		{Name: "golden.PanicsWithString", Func: func() {
			panic("boom")
		}},
	}

	var out Collector
	New(WithSink(out.Sink)).Run(cases)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "console_format", []byte(out.Text()))
}
