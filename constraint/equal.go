package constraint

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// KindEqualTo labels failures raised by Equality.
const KindEqualTo = "equal_to"

// Equality is satisfied by values equal to the expected one. Slices and
// arrays are compared element by element.
type Equality struct {
	expected any
}

// EqualTo returns an Equality constraint for expected.
func EqualTo(expected any) *Equality {
	return &Equality{expected: expected}
}

// Expected returns the value captured at construction.
func (e *Equality) Expected() any {
	return e.expected
}

// CheckSatisfiedBy implements Constraint.
func (e *Equality) CheckSatisfiedBy(actual any) error {
	actualAbsent, expectedAbsent := isAbsent(actual), isAbsent(e.expected)
	switch {
	case actualAbsent && !expectedAbsent:
		return Failf(KindEqualTo, "Output is null, expected is %v!", e.expected)
	case actualAbsent && expectedAbsent:
		return nil
	case expectedAbsent:
		return Failf(KindEqualTo, "Output is %v, expected is null!", actual)
	}

	expectedType, actualType := reflect.TypeOf(e.expected), reflect.TypeOf(actual)
	if expectedType != actualType {
		return Failf(KindEqualTo, "Output is different type, expected type is %s, output type is %s!",
			expectedType, actualType)
	}

	if isSequence(expectedType) {
		expectedSeq, actualSeq := reflect.ValueOf(e.expected), reflect.ValueOf(actual)
		if !sequencesMatch(expectedSeq, actualSeq) {
			want, got := renderPair(e.expected, actual, func(v any, verb string) string {
				return stringifySequence(reflect.ValueOf(v), verb)
			})
			return Failf(KindEqualTo, "Output list does not match expected list, expected is [%s], output is [%s]!", want, got)
		}
		return nil
	}

	if !valuesEqual(e.expected, actual) {
		want, got := renderPair(e.expected, actual, func(v any, verb string) string {
			return fmt.Sprintf(verb, v)
		})
		return Failf(KindEqualTo, "Output is incorrect, expected is %s, output is %s!", want, got)
	}
	return nil
}

// isAbsent reports whether v is nil or a nil reference value.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func isSequence(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

// sequencesMatch stops at the first length mismatch or differing element.
func sequencesMatch(expected, actual reflect.Value) bool {
	if expected.Len() != actual.Len() {
		return false
	}
	for i := 0; i < expected.Len(); i++ {
		if !valuesEqual(expected.Index(i).Interface(), actual.Index(i).Interface()) {
			return false
		}
	}
	return true
}

// renderVerbs go from plain to most detailed. The first verb that tells the
// two values apart is used.
var renderVerbs = []string{"%v", "%#v", "%[1]T(%#[1]v)"}

// renderPair renders two unequal values so that the texts differ whenever a
// verb can show the difference.
func renderPair(expected, actual any, render func(v any, verb string) string) (string, string) {
	var want, got string
	for _, verb := range renderVerbs {
		want, got = render(expected, verb), render(actual, verb)
		if want != got {
			break
		}
	}
	return want, got
}

// stringifySequence renders each element with verb, joined by ", ".
func stringifySequence(seq reflect.Value, verb string) string {
	elements := make([]string, seq.Len())
	for i := range elements {
		elements[i] = fmt.Sprintf(verb, seq.Index(i).Interface())
	}
	return strings.Join(elements, ", ")
}

// valuesEqual compares structurally, honouring Equal methods and looking
// into unexported fields.
func valuesEqual(a, b any) bool {
	return cmp.Equal(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}
