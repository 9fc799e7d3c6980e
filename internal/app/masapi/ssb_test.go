package masapi

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(f float64) *float64 { return &f }

// GX25010E step-up schedule, as published by MAS.
func sampleInterest() SSBInterest {
	return SSBInterest{
		IssueCode:    "GX25010E",
		Year1Coupon:  fptr(2.73),
		Year2Coupon:  fptr(2.82),
		Year3Coupon:  fptr(2.82),
		Year4Coupon:  fptr(2.82),
		Year5Coupon:  fptr(2.82),
		Year6Coupon:  fptr(2.85),
		Year7Coupon:  fptr(2.90),
		Year8Coupon:  fptr(2.95),
		Year9Coupon:  fptr(2.99),
		Year10Coupon: fptr(3.01),
	}
}

func TestSSBOffers(t *testing.T) {
	offers, err := SSBOffers(sampleInterest(), decimal.NewFromInt(10_000))
	require.NoError(t, err)
	require.Len(t, offers, 120)

	for i, o := range offers {
		assert.Equal(t, i+1, o.Tenure)
		assert.Equal(t, "500", o.DepositLowerBound.String())
		assert.Equal(t, "190000", o.DepositUpperBound.String(), "cap less current holdings")
		require.True(t, o.RequiredMultiples.Valid)
		assert.Equal(t, "500", o.RequiredMultiples.Decimal.String())
		assert.Equal(t, "MAS", string(o.Provider))
		assert.Equal(t, "SSB GX25010E", o.Product)
	}

	// redeeming inside year one earns exactly the year-one coupon, annualized
	assert.InDelta(t, 2.73, offers[0].Rate, 0.005)
	assert.InDelta(t, 2.73, offers[11].Rate, 0.005)
	// the ten-year rate approaches the compounded average of all coupons
	assert.InDelta(t, 2.86, offers[119].Rate, 0.02)
	// step-up coupons mean the rate never decreases with tenure
	for i := 1; i < len(offers); i++ {
		assert.GreaterOrEqual(t, offers[i].Rate, offers[i-1].Rate-1e-9)
	}
}

func TestSSBOffersCeilingFloor(t *testing.T) {
	// fully invested holders still see the minimum lot as their ceiling
	offers, err := SSBOffers(sampleInterest(), decimal.NewFromInt(199_900))
	require.NoError(t, err)
	assert.Equal(t, "500", offers[0].DepositUpperBound.String())

	offers, err = SSBOffers(sampleInterest(), decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "200000", offers[0].DepositUpperBound.String())
}

func TestSSBOffersValidation(t *testing.T) {
	interest := sampleInterest()
	interest.Year3Coupon = nil
	_, err := SSBOffers(interest, decimal.Zero)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year3_coupon")

	interest = sampleInterest()
	interest.IssueCode = ""
	_, err = SSBOffers(interest, decimal.Zero)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issue_code")

	_, err = SSBOffers(sampleInterest(), decimal.NewFromInt(-1))
	require.Error(t, err)
}
