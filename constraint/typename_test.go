package constraint

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type divideByZero struct{}

func (*divideByZero) Error() string { return "divide by zero" }

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"nil", nil, "nil"},
		{"named pointer", reflect.TypeOf(&divideByZero{}), "divideByZero"},
		{"double pointer", reflect.TypeOf(new(*divideByZero)), "divideByZero"},
		{"stdlib error", reflect.TypeOf(errors.New("x")), "errorString"},
		{"builtin", reflect.TypeOf("boom"), "string"},
		{"unnamed", reflect.TypeOf([]int{}), "[]int"},
		{"interface", reflect.TypeFor[error](), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeName(tt.typ))
		})
	}
}
