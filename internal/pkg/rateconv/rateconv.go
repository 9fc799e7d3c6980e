// Package rateconv holds the pure rate arithmetic shared by the adapters and
// the ranking engine.
package rateconv

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrOutOfDomain marks numeric inputs the formulas are not defined for.
var ErrOutOfDomain = errors.New("input outside valid domain")

// DollarReturn computes the dollar return of an investment at a simple
// (non-compounded) per-annum rate, pro-rated over the tenure in months.
func DollarReturn(investment decimal.Decimal, rate float64, tenureMonths int) (decimal.Decimal, error) {
	if investment.IsNegative() {
		return decimal.Zero, fmt.Errorf("investment %s is negative: %w", investment, ErrOutOfDomain)
	}
	if rate < 0 {
		return decimal.Zero, fmt.Errorf("rate %v is negative: %w", rate, ErrOutOfDomain)
	}
	if tenureMonths <= 0 {
		return decimal.Zero, fmt.Errorf("tenure %d months is not positive: %w", tenureMonths, ErrOutOfDomain)
	}

	// investment * rate/100 * months/12
	factor := decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(int64(tenureMonths))).Div(decimal.NewFromInt(1200))
	return investment.Mul(factor).Round(2), nil
}

// PerAnnumRate converts a total percentage return earned over tenureMonths
// into its compound annual equivalent, in percent.
func PerAnnumRate(totalPctReturn float64, tenureMonths int) (float64, error) {
	if tenureMonths <= 0 {
		return 0, fmt.Errorf("tenure %d months is not positive: %w", tenureMonths, ErrOutOfDomain)
	}
	return (math.Pow(1+totalPctReturn/100, 12/float64(tenureMonths)) - 1) * 100, nil
}
