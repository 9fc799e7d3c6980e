package analysis

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wltan/sgfi-compare/internal/pkg/model"
	"github.com/wltan/sgfi-compare/internal/pkg/rateconv"
)

// BestReturn is one tenure's winning offer with its realized outcome.
type BestReturn struct {
	model.Offer
	Invested     decimal.Decimal
	DollarReturn decimal.Decimal
}

// FeasibleAmount is how much of amount can actually be deployed into o: capped
// at the deposit upper bound, rounded down to the required multiple, and zero
// when the result cannot reach the lower bound. The uninvested remainder
// earns nothing.
func FeasibleAmount(o model.Offer, amount decimal.Decimal) decimal.Decimal {
	feasible := decimal.Min(amount, o.DepositUpperBound)
	if o.RequiredMultiples.Valid {
		m := o.RequiredMultiples.Decimal
		feasible = feasible.Div(m).Floor().Mul(m)
	}
	if feasible.LessThan(o.DepositLowerBound) {
		return decimal.Zero
	}
	return feasible
}

// BestReturns picks, per distinct tenure inside the window, the product whose
// feasible deployment of amount realizes the highest dollar return. Ties keep
// the first offer encountered in input order.
func BestReturns(offers []model.Offer, amount decimal.Decimal, minTenure, maxTenure int) ([]BestReturn, error) {
	best := make(map[int]BestReturn)
	for _, o := range offers {
		if o.Tenure < minTenure || o.Tenure > maxTenure {
			continue
		}
		invested := FeasibleAmount(o, amount)
		if invested.IsZero() {
			continue
		}
		ret, err := rateconv.DollarReturn(invested, o.Rate, o.Tenure)
		if err != nil {
			return nil, err
		}
		if cur, ok := best[o.Tenure]; !ok || ret.GreaterThan(cur.DollarReturn) {
			best[o.Tenure] = BestReturn{Offer: o, Invested: invested, DollarReturn: ret}
		}
	}
	return sortedByTenure(best), nil
}

// BestRates picks the top quoted rate per tenure, ignoring deployment
// feasibility: the purely rate-maximizing view. Ties keep the first offer in
// input order.
func BestRates(offers []model.Offer, minTenure, maxTenure int) []model.Offer {
	best := make(map[int]model.Offer)
	for _, o := range offers {
		if o.Tenure < minTenure || o.Tenure > maxTenure {
			continue
		}
		if cur, ok := best[o.Tenure]; !ok || o.Rate > cur.Rate {
			best[o.Tenure] = o
		}
	}

	out := make([]model.Offer, 0, len(best))
	for _, o := range best {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tenure < out[j].Tenure })
	return out
}

func sortedByTenure(best map[int]BestReturn) []BestReturn {
	out := make([]BestReturn, 0, len(best))
	for _, b := range best {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tenure < out[j].Tenure })
	return out
}
