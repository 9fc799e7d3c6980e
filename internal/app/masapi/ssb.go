package masapi

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/wltan/sgfi-compare/internal/pkg/model"
	"github.com/wltan/sgfi-compare/internal/pkg/rateconv"
)

const ssbTenureMonths = 120

var (
	ssbMinDeposit = decimal.NewFromInt(model.SSBMinDeposit)
	ssbCap        = decimal.NewFromInt(model.SSBStatutoryCap)
)

// SSBOffers expands one issue's coupon schedule into 120 canonical rows, one
// per redeemable month. The rate for month m is the compound annual equivalent
// of holding the bond that long: full years grow by their coupon, the partial
// year pro-rata.
//
// The deposit ceiling is the statutory per-person cap less what the investor
// already holds, floored at the minimum lot.
func SSBOffers(interest SSBInterest, currentHoldings decimal.Decimal) ([]model.Offer, error) {
	if interest.IssueCode == "" {
		return nil, fmt.Errorf("ssb interest record is missing issue_code")
	}
	if currentHoldings.IsNegative() {
		return nil, fmt.Errorf("current ssb holdings %s must not be negative", currentHoldings)
	}
	coupons, err := interest.Coupons()
	if err != nil {
		return nil, err
	}

	upper := ssbCap.Sub(currentHoldings).Div(ssbMinDeposit).Floor().Mul(ssbMinDeposit)
	if upper.LessThan(ssbMinDeposit) {
		upper = ssbMinDeposit
	}

	offers := make([]model.Offer, 0, ssbTenureMonths)
	growth := 1.0
	for month := 1; month <= ssbTenureMonths; month++ {
		year := (month - 1) / 12
		monthOfYear := month % 12

		total := growth * math.Pow(1+coupons[year]/100, float64(monthOfYear)/12)
		if monthOfYear == 0 {
			total = growth * (1 + coupons[year]/100)
			growth = total
		}

		rate, err := rateconv.PerAnnumRate((total-1)*100, month)
		if err != nil {
			return nil, err
		}
		offers = append(offers, model.Offer{
			Tenure:            month,
			Rate:              round4(rate),
			DepositLowerBound: ssbMinDeposit,
			DepositUpperBound: upper,
			RequiredMultiples: decimal.NewNullDecimal(ssbMinDeposit),
			Provider:          model.ProviderMAS,
			Product:           "SSB " + interest.IssueCode,
		})
	}
	return offers, nil
}

func round4(f float64) float64 {
	return math.Round(f*10_000) / 10_000
}
