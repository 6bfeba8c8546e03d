package constraint

import "cmp"

// KindInRange labels failures raised by Range.
const KindInRange = "in_range"

// Range is satisfied by values of type T within [Low, High].
type Range[T cmp.Ordered] struct {
	Low, High T
}

// InRange returns a Range constraint with inclusive bounds.
func InRange[T cmp.Ordered](low, high T) *Range[T] {
	return &Range[T]{Low: low, High: high}
}

// CheckSatisfiedBy implements Constraint.
func (r *Range[T]) CheckSatisfiedBy(actual any) error {
	v, ok := actual.(T)
	if !ok {
		var zero T
		return Failf(KindInRange, "Output is different type, expected type is %T, output type is %T!", zero, actual)
	}
	if cmp.Less(v, r.Low) || cmp.Less(r.High, v) {
		return Failf(KindInRange, "Output is out of range, expected is [%v, %v], output is %v!", r.Low, r.High, v)
	}
	return nil
}
