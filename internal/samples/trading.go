// Package samples holds a small suite of registered tests so the unitlite
// binary has something to run. Importing it for side effects registers the
// suite with the global registry.
package samples

// MaxProfit returns the best gain from buying at one price and selling at a
// later one. It returns 0 when no trade makes money.
func MaxProfit(prices []int) int {
	if len(prices) == 0 {
		return 0
	}

	best := 0
	low := prices[0]
	for _, p := range prices[1:] {
		if p-low > best {
			best = p - low
		}
		if p < low {
			low = p
		}
	}
	return best
}

// DivideByZeroError is raised by Divide and returned by Quotient for a zero
// divisor.
type DivideByZeroError struct {
	Dividend int
}

func (e *DivideByZeroError) Error() string {
	return "attempted to divide by zero"
}

// Divide returns a / b and panics with *DivideByZeroError when b is zero.
func Divide(a, b int) int {
	q, err := Quotient(a, b)
	if err != nil {
		panic(err)
	}
	return q
}

// Quotient returns a / b.
func Quotient(a, b int) (int, error) {
	if b == 0 {
		return 0, &DivideByZeroError{Dividend: a}
	}
	return a / b, nil
}
