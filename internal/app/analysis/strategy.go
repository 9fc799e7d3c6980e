package analysis

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wltan/sgfi-compare/internal/pkg/model"
	"github.com/wltan/sgfi-compare/internal/pkg/rateconv"
)

// Allocation is one leg of a mixed deposit strategy.
type Allocation struct {
	Provider     model.Provider
	Product      string
	Amount       decimal.Decimal
	Rate         float64 // % p.a.
	DollarReturn decimal.Decimal
}

// MixedStrategy is a greedy split of one investment across products at a
// single tenure.
type MixedStrategy struct {
	Tenure       int
	Allocations  []Allocation
	Invested     decimal.Decimal
	DollarReturn decimal.Decimal
	PerAnnumRate float64 // effective % p.a. over the whole amount
}

// BestMixedStrategy allocates amount across the products offered at the given
// tenure, highest rate first, each leg capped by the product's deposit upper
// bound, until the amount runs out. Required multiples are not enforced here;
// this is the ceiling a mixed deployment could reach.
func BestMixedStrategy(offers []model.Offer, amount decimal.Decimal, tenure int) (MixedStrategy, error) {
	if !amount.IsPositive() {
		return MixedStrategy{}, fmt.Errorf("investment amount %s must be positive", amount)
	}

	candidates := make([]model.Offer, 0, len(offers))
	for _, o := range offers {
		if o.Tenure == tenure && o.DepositLowerBound.LessThanOrEqual(amount) {
			candidates = append(candidates, o)
		}
	}
	if len(candidates) == 0 {
		return MixedStrategy{}, fmt.Errorf("no products available at tenure %d months for amount %s", tenure, amount)
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Rate > candidates[j].Rate })

	strategy := MixedStrategy{Tenure: tenure, Invested: amount}
	remaining := amount
	for _, o := range candidates {
		if !remaining.IsPositive() {
			break
		}
		leg := decimal.Min(remaining, o.DepositUpperBound)
		ret, err := rateconv.DollarReturn(leg, o.Rate, tenure)
		if err != nil {
			return MixedStrategy{}, err
		}
		strategy.Allocations = append(strategy.Allocations, Allocation{
			Provider:     o.Provider,
			Product:      o.Product,
			Amount:       leg,
			Rate:         o.Rate,
			DollarReturn: ret,
		})
		strategy.DollarReturn = strategy.DollarReturn.Add(ret)
		remaining = remaining.Sub(leg)
	}

	totalPct, _ := strategy.DollarReturn.Div(amount).Mul(decimal.NewFromInt(100)).Float64()
	rate, err := rateconv.PerAnnumRate(totalPct, tenure)
	if err != nil {
		return MixedStrategy{}, err
	}
	strategy.PerAnnumRate = rate
	return strategy, nil
}
