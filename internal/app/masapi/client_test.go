package masapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func stubServer(t *testing.T, handlers map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func envelope(records string) string {
	return fmt.Sprintf(`{"success": true, "result": {"total": 1, "records": [%s]}}`, records)
}

func TestLatestSSBIssue(t *testing.T) {
	srv := stubServer(t, map[string]string{
		"/listsavingbonds": envelope(`{
			"issue_code": "GX25010E",
			"isin_code": "SGXZ30907869",
			"issue_date": "2025-01-02",
			"last_day_to_apply": "2024-12-26"
		}`),
	})
	client := NewClientWithBaseURL(srv.URL+"/", zap.NewNop())

	issue, err := client.LatestSSBIssue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GX25010E", issue.IssueCode)
	assert.Equal(t, "2024-12-26", issue.LastDayToApply)
}

func TestSSBInterestCoupons(t *testing.T) {
	srv := stubServer(t, map[string]string{
		"/savingbondsinterest": envelope(`{
			"issue_code": "GX25010E",
			"year1_coupon": 2.73, "year2_coupon": 2.82, "year3_coupon": 2.82,
			"year4_coupon": 2.82, "year5_coupon": 2.82, "year6_coupon": 2.85,
			"year7_coupon": 2.9, "year8_coupon": 2.95, "year9_coupon": 2.99,
			"year10_coupon": 3.01
		}`),
	})
	client := NewClientWithBaseURL(srv.URL+"/", zap.NewNop())

	interest, err := client.SSBInterest(context.Background(), "GX25010E")
	require.NoError(t, err)
	coupons, err := interest.Coupons()
	require.NoError(t, err)
	assert.Equal(t, 2.73, coupons[0])
	assert.Equal(t, 3.01, coupons[9])
}

func TestMostRecentSixMonthTbill(t *testing.T) {
	srv := stubServer(t, map[string]string{
		"/listbondsandbills": envelope(`{
			"issue_code": "BS24123F",
			"auction_tenor": 0.5,
			"cutoff_yield": 3.08,
			"total_bids": 13.2,
			"auction_date": "2024-12-05"
		}`),
	})
	client := NewClientWithBaseURL(srv.URL+"/", zap.NewNop())

	rec, err := client.MostRecentSixMonthTbill(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BS24123F", rec.IssueCode)
	require.NotNil(t, rec.CutoffYield)
	assert.Equal(t, 3.08, *rec.CutoffYield)
}

func TestSixMonthTbillBidYield(t *testing.T) {
	srv := stubServer(t, map[string]string{
		"/pricesandyields_chart": envelope(`{
			"end_of_period": "2024-12-20",
			"bid_6m_tbill_yield": 3.02
		}`),
	})
	client := NewClientWithBaseURL(srv.URL+"/", zap.NewNop())

	yield, err := client.SixMonthTbillBidYield(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3.02, yield)
}

func TestFetchErrors(t *testing.T) {
	srv := stubServer(t, map[string]string{
		"/listsavingbonds": `{"success": true, "result": {"total": 0, "records": []}}`,
	})
	client := NewClientWithBaseURL(srv.URL+"/", zap.NewNop())

	_, err := client.LatestSSBIssue(context.Background())
	assert.ErrorContains(t, err, "no records")

	_, err = client.MostRecentSixMonthTbill(context.Background())
	assert.ErrorContains(t, err, "status 404")
}
