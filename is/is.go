// Package is provides the constraint factories used with assert.That, e.g.
//
//	assert.That(MaxProfit(prices), is.EqualTo(6))
package is

import (
	"cmp"

	"unitlite/constraint"
)

// EqualTo is satisfied by values equal to expected. Slices and arrays are
// compared element by element.
func EqualTo(expected any) constraint.Constraint {
	return constraint.EqualTo(expected)
}

// InRange is satisfied by values of type T between low and high inclusive.
func InRange[T cmp.Ordered](low, high T) constraint.Constraint {
	return constraint.InRange(low, high)
}

// Satisfying is satisfied when fn returns true. name describes fn in failure
// messages.
func Satisfying(name string, fn func(actual any) bool) constraint.Constraint {
	return constraint.Satisfying(name, fn)
}

// OfType is satisfied by values of type T, or implementing T when T is an
// interface.
func OfType[T any]() constraint.Constraint {
	return constraint.OfType[T]()
}

// Not is satisfied exactly when c is not.
func Not(c constraint.Constraint) constraint.Constraint {
	return constraint.Not(c)
}
