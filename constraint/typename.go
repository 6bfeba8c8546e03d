package constraint

import "reflect"

// TypeName names t without pointer indirections: *pkg.DivideByZeroError
// becomes "DivideByZeroError". Unnamed types use their type string and a nil
// type is "nil".
func TypeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
