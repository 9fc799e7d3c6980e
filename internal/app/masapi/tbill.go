package masapi

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wltan/sgfi-compare/internal/pkg/model"
)

var tbillLot = decimal.NewFromInt(model.TbillLotSize)

// TbillOffers formats one already-selected completed auction record as a
// single canonical row. Selecting the record (and excluding announced bills
// with no bids) is the client's job, not this adapter's.
func TbillOffers(rec TbillAuction) ([]model.Offer, error) {
	if rec.IssueCode == "" {
		return nil, fmt.Errorf("t-bill record is missing issue_code")
	}
	if rec.CutoffYield == nil {
		return nil, fmt.Errorf("t-bill record %s is missing cutoff_yield", rec.IssueCode)
	}
	if rec.AuctionTenor != 0.5 {
		return nil, fmt.Errorf("t-bill record %s has tenor %v years, expected 0.5", rec.IssueCode, rec.AuctionTenor)
	}

	return []model.Offer{{
		Tenure:            6,
		Rate:              *rec.CutoffYield,
		DepositLowerBound: tbillLot,
		DepositUpperBound: decimal.NewFromInt(model.CeilingSentinel),
		RequiredMultiples: decimal.NewNullDecimal(tbillLot),
		Provider:          model.ProviderMAS,
		Product:           "T-bill " + rec.IssueCode,
	}}, nil
}
