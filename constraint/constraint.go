// Package constraint holds the predicate objects used by the assert package.
//
// A constraint captures an expectation at construction time and checks one
// actual value per call. A mismatch is reported as a *Failure, the only error
// kind the runner treats as a deliberate test failure.
package constraint

import (
	"errors"
	"fmt"
)

// ErrAssertionFailed is the sentinel every Failure unwraps to.
var ErrAssertionFailed = errors.New("assertion failed")

// Constraint checks an actual value against an expectation.
type Constraint interface {
	// CheckSatisfiedBy returns nil when actual satisfies the constraint and a
	// *Failure describing the mismatch otherwise.
	CheckSatisfiedBy(actual any) error
}

// Func adapts a plain function to the Constraint interface.
type Func func(actual any) error

// CheckSatisfiedBy calls f(actual).
func (f Func) CheckSatisfiedBy(actual any) error {
	return f(actual)
}

// Failure is raised when a constraint does not hold.
type Failure struct {
	Constraint string // kind of constraint that failed, e.g. "equal_to"
	Message    string // diagnostic shown in the test report
}

// Error returns the diagnostic message unchanged.
func (f *Failure) Error() string {
	if f == nil {
		return ErrAssertionFailed.Error()
	}
	return f.Message
}

// Unwrap returns ErrAssertionFailed so errors.Is recognises every failure.
func (f *Failure) Unwrap() error {
	return ErrAssertionFailed
}

// Failf builds a Failure for the given constraint kind.
func Failf(kind, format string, args ...any) *Failure {
	return &Failure{Constraint: kind, Message: fmt.Sprintf(format, args...)}
}

// AsFailure reports whether v is, or wraps, a *Failure.
func AsFailure(v any) (*Failure, bool) {
	err, ok := v.(error)
	if !ok {
		return nil, false
	}
	var failure *Failure
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}
