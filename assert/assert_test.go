package assert

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"unitlite/constraint"
	"unitlite/is"
)

type DivideByZeroError struct{}

func (*DivideByZeroError) Error() string { return "attempted to divide by zero" }

type OverflowError struct{}

func (OverflowError) Error() string { return "arithmetic overflow" }

func divide(a, b int) int {
	if b == 0 {
		panic(&DivideByZeroError{})
	}
	return a / b
}

// raisedBy returns what fn raised, or nil.
func raisedBy(fn func()) (raised any) {
	defer func() { raised = recover() }()
	fn()
	return nil
}

func TestThat(t *testing.T) {
	t.Run("satisfied constraint returns normally", func(t *testing.T) {
		require.Nil(t, raisedBy(func() { That(6, is.EqualTo(6)) }))
	})

	t.Run("unsatisfied constraint raises a Failure", func(t *testing.T) {
		raised := raisedBy(func() { That(5, is.EqualTo(6)) })
		failure, ok := constraint.AsFailure(raised)
		require.True(t, ok)
		require.Equal(t, "Output is incorrect, expected is 6, output is 5!", failure.Message)
	})

	t.Run("non-failure errors propagate unchanged", func(t *testing.T) {
		boom := errors.New("boom")
		raised := raisedBy(func() {
			That(1, constraint.Func(func(any) error { return boom }))
		})
		require.Same(t, boom, raised)
	})
}

func TestFail(t *testing.T) {
	raised := raisedBy(func() { Fail("bad value %d", 3) })
	failure, ok := constraint.AsFailure(raised)
	require.True(t, ok)
	require.Equal(t, "bad value 3", failure.Message)
}

func TestThrows(t *testing.T) {
	t.Run("matching error is swallowed", func(t *testing.T) {
		require.Nil(t, raisedBy(func() {
			Throws[*DivideByZeroError](func() { divide(1, 0) })
		}))
	})

	t.Run("wrapped matching error is swallowed", func(t *testing.T) {
		require.Nil(t, raisedBy(func() {
			Throws[*DivideByZeroError](func() {
				panic(fmt.Errorf("calc: %w", &DivideByZeroError{}))
			})
		}))
	})

	t.Run("different error is raised unchanged", func(t *testing.T) {
		overflow := OverflowError{}
		raised := raisedBy(func() {
			Throws[*DivideByZeroError](func() { panic(overflow) })
		})
		require.Equal(t, overflow, raised)
		_, isFailure := constraint.AsFailure(raised)
		require.False(t, isFailure)
	})

	t.Run("non-error panic value is raised unchanged", func(t *testing.T) {
		raised := raisedBy(func() {
			Throws[*DivideByZeroError](func() { panic("index out of range") })
		})
		require.Equal(t, "index out of range", raised)
	})

	t.Run("no error raises a Failure", func(t *testing.T) {
		raised := raisedBy(func() {
			Throws[*DivideByZeroError](func() { divide(4, 2) })
		})
		failure, ok := constraint.AsFailure(raised)
		require.True(t, ok)
		require.Equal(t, "Failed to throw exception of type DivideByZeroError!", failure.Message)
	})
}

func TestThrowsError(t *testing.T) {
	safeDivide := func(a, b int) (int, error) {
		if b == 0 {
			return 0, &DivideByZeroError{}
		}
		return a / b, nil
	}

	t.Run("matching error", func(t *testing.T) {
		require.Nil(t, raisedBy(func() {
			ThrowsError[*DivideByZeroError](func() error {
				_, err := safeDivide(1, 0)
				return err
			})
		}))
	})

	t.Run("different error is raised", func(t *testing.T) {
		raised := raisedBy(func() {
			ThrowsError[*DivideByZeroError](func() error { return OverflowError{} })
		})
		require.Equal(t, OverflowError{}, raised)
	})

	t.Run("nil error raises a Failure", func(t *testing.T) {
		raised := raisedBy(func() {
			ThrowsError[OverflowError](func() error {
				_, err := safeDivide(4, 2)
				return err
			})
		})
		failure, ok := constraint.AsFailure(raised)
		require.True(t, ok)
		require.Equal(t, "Failed to throw exception of type OverflowError!", failure.Message)
	})
}
