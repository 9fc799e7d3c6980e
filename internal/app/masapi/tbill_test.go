package masapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTbillOffers(t *testing.T) {
	offers, err := TbillOffers(TbillAuction{
		IssueCode:    "BS24123F",
		AuctionTenor: 0.5,
		CutoffYield:  fptr(3.08),
		TotalBids:    13.2,
	})
	require.NoError(t, err)
	require.Len(t, offers, 1)

	o := offers[0]
	assert.Equal(t, 6, o.Tenure)
	assert.Equal(t, 3.08, o.Rate)
	assert.Equal(t, "1000", o.DepositLowerBound.String())
	assert.Equal(t, "99999999", o.DepositUpperBound.String())
	require.True(t, o.RequiredMultiples.Valid)
	assert.Equal(t, "1000", o.RequiredMultiples.Decimal.String())
	assert.Equal(t, "MAS", string(o.Provider))
	assert.Contains(t, o.Product, "BS24123F")
}

func TestTbillOffersRejectsBadRecords(t *testing.T) {
	_, err := TbillOffers(TbillAuction{IssueCode: "BS24124A", AuctionTenor: 0.75, CutoffYield: fptr(3.0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tenor")

	_, err = TbillOffers(TbillAuction{IssueCode: "BS24124A", AuctionTenor: 0.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cutoff_yield")

	_, err = TbillOffers(TbillAuction{AuctionTenor: 0.5, CutoffYield: fptr(3.0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issue_code")
}
