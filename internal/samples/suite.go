package samples

import (
	"errors"
	"strings"

	"unitlite/assert"
	"unitlite/discovery"
	"unitlite/is"
)

func init() {
	discovery.Test(maxProfitFindsBestTrade)
	discovery.Test(maxProfitFallingPrices)
	discovery.Test(maxProfitNoPrices)
	discovery.Test(maxProfitWithinSpread)
	discovery.Test(divideByZeroRaises)
	discovery.Test(quotientReturnsDivideByZero)
	discovery.Test(divideReturnsInt)
	discovery.Test(divideIsTruncating)
	discovery.TestNamed("samples.zeroDivisorReported", func() {
		_, err := Quotient(3, 0)
		var dz *DivideByZeroError
		assert.That(errors.As(err, &dz), is.EqualTo(true))
		assert.That(dz.Dividend, is.EqualTo(3))
		assert.That(err.Error(), is.Satisfying("mentions zero", func(v any) bool {
			return strings.Contains(v.(string), "zero")
		}))
	})
}

func maxProfitFindsBestTrade() {
	assert.That(MaxProfit([]int{10, 7, 5, 8, 11, 9}), is.EqualTo(6))
}

func maxProfitFallingPrices() {
	assert.That(MaxProfit([]int{9, 7, 4, 1}), is.EqualTo(0))
}

func maxProfitNoPrices() {
	assert.That(MaxProfit(nil), is.EqualTo(0))
}

func maxProfitWithinSpread() {
	prices := []int{3, 8, 2, 9}
	assert.That(MaxProfit(prices), is.InRange(0, 9-2))
}

func divideByZeroRaises() {
	assert.Throws[*DivideByZeroError](func() { Divide(1, 0) })
}

func quotientReturnsDivideByZero() {
	assert.ThrowsError[*DivideByZeroError](func() error {
		_, err := Quotient(1, 0)
		return err
	})
}

func divideReturnsInt() {
	assert.That(Divide(7, 2), is.OfType[int]())
}

func divideIsTruncating() {
	assert.That([]int{Divide(7, 2), Divide(-7, 2)}, is.EqualTo([]int{3, -3}))
	assert.That(Divide(9, 3), is.Not(is.EqualTo(4)))
}
