// Package assert is the assertion facade used inside test bodies.
//
// Assertions raise (panic with) a *constraint.Failure when a check does not
// hold. The runner recovers it and reports a clean failure; anything else a
// test raises is reported as an unhandled error.
package assert

import (
	"errors"
	"reflect"

	"unitlite/constraint"
)

// That checks actual against c and raises the resulting error, if any.
func That(actual any, c constraint.Constraint) {
	if err := c.CheckSatisfiedBy(actual); err != nil {
		panic(err)
	}
}

// Fail raises a Failure with a formatted message.
func Fail(format string, args ...any) {
	panic(constraint.Failf("fail", format, args...))
}

// Throws runs body and expects it to raise an error matching E.
//
// A matching error is swallowed. Any other raised value is raised again
// unchanged so the runner reports it as an unhandled error. If body returns
// normally a Failure is raised.
func Throws[E error](body func()) {
	raised, ok := capture(body)
	if !ok {
		panic(neverRaised[E]())
	}
	if err, isErr := raised.(error); isErr && matches[E](err) {
		return
	}
	panic(raised)
}

// ThrowsError is Throws for bodies that return their error instead of
// raising it. A non-matching error is raised as is.
func ThrowsError[E error](body func() error) {
	err := body()
	if err == nil {
		panic(neverRaised[E]())
	}
	if matches[E](err) {
		return
	}
	panic(err)
}

// capture runs body and returns whatever it raised. ok is false when body
// returned normally.
func capture(body func()) (raised any, ok bool) {
	ok = true
	defer func() {
		if ok {
			raised = recover()
		}
	}()
	body()
	ok = false
	return nil, false
}

func matches[E error](err error) bool {
	var target E
	return errors.As(err, &target)
}

func neverRaised[E error]() *constraint.Failure {
	return constraint.Failf("throws", "Failed to throw exception of type %s!", constraint.TypeName(reflect.TypeFor[E]()))
}
