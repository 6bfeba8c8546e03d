// Package runner invokes discovered test cases one after another, classifies
// each outcome and streams result lines to a sink.
//
// A run never stops early: every case is invoked exactly once, whatever the
// earlier cases did. Cases run synchronously on the calling goroutine, so a
// case that blocks forever blocks the whole run.
package runner

import (
	"fmt"
	"reflect"

	"code.cloudfoundry.org/clock"
	"go.uber.org/zap"

	"unitlite/constraint"
	"unitlite/discovery"
)

// Runner executes test cases.
type Runner struct {
	sink        Sink
	logger      *zap.Logger
	clock       clock.Clock
	observers   []Observer
	padFailures bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithSink sets the line sink. A nil sink selects Console.
func WithSink(sink Sink) Option {
	return func(r *Runner) {
		if sink != nil {
			r.sink = sink
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock sets the clock used to time cases.
func WithClock(c clock.Clock) Option {
	return func(r *Runner) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithObserver adds observers notified after each result line is emitted.
func WithObserver(observers ...Observer) Option {
	return func(r *Runner) {
		r.observers = append(r.observers, observers...)
	}
}

// WithFailurePadding makes the runner emit one empty line per failed test
// after the summary. Some web consoles cut off the tail of the output.
func WithFailurePadding(enabled bool) Option {
	return func(r *Runner) {
		r.padFailures = enabled
	}
}

// New creates a Runner reporting to Console unless configured otherwise.
func New(opts ...Option) *Runner {
	r := &Runner{
		sink:   Console,
		logger: zap.NewNop(),
		clock:  clock.NewClock(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunAllTests discovers every registered test and runs it, reporting to sink
// (Console when nil). The process exit code is left to the caller.
func RunAllTests(sink Sink) Summary {
	return New(WithSink(sink)).Run(discovery.Discover()).Summary
}

// Run invokes cases in order and reports each result, then the summary.
func (r *Runner) Run(cases []discovery.TestCase) Report {
	start := r.clock.Now()
	r.logger.Debug("test run started", zap.Int("cases", len(cases)))

	report := Report{Results: make([]Result, 0, len(cases))}
	for _, tc := range cases {
		result := r.invoke(tc)
		report.Results = append(report.Results, result)
		report.Summary.add(result)

		r.logger.Debug("test finished",
			zap.String("test", result.Name),
			zap.Stringer("outcome", result.Outcome),
			zap.Duration("duration", result.Duration),
		)

		r.sink(result.Line())
		for _, o := range r.observers {
			o.Observe(result)
		}
	}

	report.Duration = r.clock.Since(start)
	r.sink(report.Summary.String())
	if r.padFailures {
		for i := 0; i < report.Summary.Failed; i++ {
			r.sink("")
		}
	}

	r.logger.Info("test run finished",
		zap.Int("total", report.Summary.Total),
		zap.Int("passed", report.Summary.Passed),
		zap.Int("failed", report.Summary.Failed),
		zap.Duration("duration", report.Duration),
	)
	return report
}

// invoke runs one case inside the failure boundary.
func (r *Runner) invoke(tc discovery.TestCase) Result {
	start := r.clock.Now()
	raised, panicked := call(tc.Func)
	result := classify(tc.Name, raised, panicked)
	result.Duration = r.clock.Since(start)
	return result
}

// call runs fn and recovers anything it raises. panicked is false when fn
// returned normally.
func call(fn discovery.TestFunc) (raised any, panicked bool) {
	panicked = true
	defer func() {
		if panicked {
			raised = recover()
		}
	}()
	fn()
	return nil, false
}

func classify(name string, raised any, panicked bool) Result {
	if !panicked {
		return Result{Name: name, Outcome: Passed}
	}
	if failure, ok := constraint.AsFailure(raised); ok {
		return Result{Name: name, Outcome: FailedAssertion, Message: failure.Error()}
	}
	return Result{
		Name:      name,
		Outcome:   FailedUnexpectedError,
		ErrorKind: constraint.TypeName(reflect.TypeOf(raised)),
		Message:   message(raised),
	}
}

func message(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(v)
}
