package runner

import (
	"fmt"
	"time"
)

// Outcome classifies a single test invocation.
type Outcome int

const (
	// Passed means the test returned without raising anything.
	Passed Outcome = iota
	// FailedAssertion means the test raised a constraint.Failure.
	FailedAssertion
	// FailedUnexpectedError means the test raised anything else.
	FailedUnexpectedError
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case FailedAssertion:
		return "failed_assertion"
	case FailedUnexpectedError:
		return "failed_unexpected_error"
	default:
		return "unknown"
	}
}

// Result is the outcome of invoking one test case.
type Result struct {
	Name      string
	Outcome   Outcome
	Message   string // failure diagnostic, or the raised error's message
	ErrorKind string // type name of the raised value, FailedUnexpectedError only
	Duration  time.Duration
}

// Failed reports whether the result is not a pass.
func (r Result) Failed() bool {
	return r.Outcome != Passed
}

// Line formats the result the way it is reported to the sink.
func (r Result) Line() string {
	switch r.Outcome {
	case Passed:
		return fmt.Sprintf("✓ Pass - %s", r.Name)
	case FailedAssertion:
		return fmt.Sprintf("✖ Fail - %s\n    Reason: %s", r.Name, r.Message)
	default:
		return fmt.Sprintf("✖ Fail - %s\n    Reason: Threw unhandled exception - %s: %s", r.Name, r.ErrorKind, r.Message)
	}
}

// Summary holds the counters of one run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

func (s *Summary) add(r Result) {
	s.Total++
	if r.Failed() {
		s.Failed++
	} else {
		s.Passed++
	}
}

// String formats the summary line.
func (s Summary) String() string {
	return fmt.Sprintf("Total tests: %d. Passed: %d. Failed: %d.", s.Total, s.Passed, s.Failed)
}

// Report is everything a run produced.
type Report struct {
	Results  []Result
	Summary  Summary
	Duration time.Duration
}
