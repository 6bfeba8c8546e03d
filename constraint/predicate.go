package constraint

import (
	"fmt"
	"reflect"
)

const (
	// KindPredicate labels failures raised by Predicate.
	KindPredicate = "predicate"
	// KindTypeOf labels failures raised by TypeCheck.
	KindTypeOf = "type_of"
	// KindNot labels failures raised by Negation.
	KindNot = "not"
)

// Predicate is satisfied when its function returns true.
type Predicate struct {
	name string
	fn   func(actual any) bool
}

// Satisfying returns a Predicate described by name in failure messages.
func Satisfying(name string, fn func(actual any) bool) *Predicate {
	return &Predicate{name: name, fn: fn}
}

// CheckSatisfiedBy implements Constraint.
func (p *Predicate) CheckSatisfiedBy(actual any) error {
	if !p.fn(actual) {
		return Failf(KindPredicate, "Output does not satisfy %s, output is %v!", p.name, actual)
	}
	return nil
}

// TypeCheck is satisfied by values whose dynamic type is, or implements, a
// given type.
type TypeCheck struct {
	want reflect.Type
}

// OfType returns a TypeCheck for T. Interface types match any implementation.
func OfType[T any]() *TypeCheck {
	return &TypeCheck{want: reflect.TypeFor[T]()}
}

// CheckSatisfiedBy implements Constraint.
func (c *TypeCheck) CheckSatisfiedBy(actual any) error {
	got := reflect.TypeOf(actual)
	if got == nil {
		return Failf(KindTypeOf, "Output is null, expected type is %s!", c.want)
	}
	if got == c.want || (c.want.Kind() == reflect.Interface && got.Implements(c.want)) {
		return nil
	}
	return Failf(KindTypeOf, "Output is different type, expected type is %s, output type is %s!", c.want, got)
}

// Negation inverts another constraint.
type Negation struct {
	inner Constraint
}

// Not returns a constraint satisfied exactly when inner is not.
func Not(inner Constraint) *Negation {
	return &Negation{inner: inner}
}

// CheckSatisfiedBy implements Constraint. Errors other than a Failure from
// the inner constraint are passed through.
func (n *Negation) CheckSatisfiedBy(actual any) error {
	err := n.inner.CheckSatisfiedBy(actual)
	if err == nil {
		return Failf(KindNot, "Output unexpectedly satisfied %s, output is %v!", describe(n.inner), actual)
	}
	if _, ok := AsFailure(err); ok {
		return nil
	}
	return err
}

func describe(c Constraint) string {
	switch c := c.(type) {
	case *Equality:
		return fmt.Sprintf("equal to %v", c.expected)
	case *Predicate:
		return c.name
	case *TypeCheck:
		return fmt.Sprintf("type %s", c.want)
	}
	return fmt.Sprintf("%T", c)
}
