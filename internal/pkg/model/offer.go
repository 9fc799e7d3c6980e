package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// CeilingSentinel stands in for an open-ended deposit upper bound.
	CeilingSentinel = 99_999_999

	// SSBMinDeposit is also the required multiple for savings bonds.
	SSBMinDeposit   = 500
	SSBStatutoryCap = 200_000

	TbillLotSize = 1_000

	ProviderMAS Provider = "MAS"
)

type Provider string

// Offer is the canonical row every source converges to: one quoted rate for
// one tenure within one deposit bracket of one product.
type Offer struct {
	Tenure            int     // months
	Rate              float64 // % per annum
	DepositLowerBound decimal.Decimal
	DepositUpperBound decimal.Decimal
	RequiredMultiples decimal.NullDecimal
	Provider          Provider
	Product           string
}

// Validate enforces the row invariant adapters must uphold. Offers that fail
// here are malformed adapter output, not bad source data.
func (o Offer) Validate() error {
	if o.Tenure <= 0 {
		return fmt.Errorf("tenure must be positive, got %d", o.Tenure)
	}
	if o.Rate < 0 {
		return fmt.Errorf("rate must not be negative, got %v", o.Rate)
	}
	if o.DepositLowerBound.IsNegative() {
		return fmt.Errorf("deposit lower bound must not be negative, got %s", o.DepositLowerBound)
	}
	if o.DepositUpperBound.LessThan(o.DepositLowerBound) {
		return fmt.Errorf("deposit upper bound %s below lower bound %s", o.DepositUpperBound, o.DepositLowerBound)
	}
	if o.RequiredMultiples.Valid && !o.RequiredMultiples.Decimal.IsPositive() {
		return fmt.Errorf("required multiples must be positive when set, got %s", o.RequiredMultiples.Decimal)
	}
	if o.Provider == "" {
		return fmt.Errorf("provider must not be empty")
	}
	if o.Product == "" {
		return fmt.Errorf("product must not be empty")
	}
	return nil
}
