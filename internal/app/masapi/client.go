// Package masapi talks to the Monetary Authority of Singapore bonds-and-bills
// statistics API and converts its records into canonical offers.
package masapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public MAS bonds-and-bills statistics endpoint.
const DefaultBaseURL = "https://eservices.mas.gov.sg/statistics/api/v1/bondsandbills/m/"

// completedBidsEpsilon separates auctioned bills from announced-but-unauctioned
// ones, which the API reports with total_bids = 0.0.
const completedBidsEpsilon = 0.001

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(logger *zap.Logger) *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// NewClientWithBaseURL exists for tests pointed at a stub server.
func NewClientWithBaseURL(baseURL string, logger *zap.Logger) *Client {
	c := NewClient(logger)
	c.baseURL = baseURL
	return c
}

// fetch GETs one endpoint and decodes the API's record envelope into out,
// which must be a pointer to a slice of the per-endpoint record type.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	envelope := struct {
		Success bool `json:"success"`
		Result  struct {
			Total   int             `json:"total"`
			Records json.RawMessage `json:"records"`
		} `json:"result"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	if err := json.Unmarshal(envelope.Result.Records, out); err != nil {
		return fmt.Errorf("failed to decode %s records: %w", endpoint, err)
	}
	c.logger.Debug("fetched records", zap.String("endpoint", endpoint), zap.Int("total", envelope.Result.Total))
	return nil
}

// LatestSSBIssue returns the most recently issued savings bond.
func (c *Client) LatestSSBIssue(ctx context.Context) (SSBIssue, error) {
	params := url.Values{}
	params.Set("rows", "1")
	params.Set("sort", "issue_date desc")

	var records []SSBIssue
	if err := c.fetch(ctx, "listsavingbonds", params, &records); err != nil {
		return SSBIssue{}, err
	}
	if len(records) == 0 {
		return SSBIssue{}, fmt.Errorf("listsavingbonds returned no records")
	}
	return records[0], nil
}

// SSBInterest returns the coupon schedule of one savings-bond issue.
func (c *Client) SSBInterest(ctx context.Context, issueCode string) (SSBInterest, error) {
	params := url.Values{}
	params.Set("rows", "1")
	params.Set("filters", "issue_code:"+issueCode)

	var records []SSBInterest
	if err := c.fetch(ctx, "savingbondsinterest", params, &records); err != nil {
		return SSBInterest{}, err
	}
	if len(records) == 0 {
		return SSBInterest{}, fmt.Errorf("savingbondsinterest returned no records for issue %s", issueCode)
	}
	return records[0], nil
}

// MostRecentSixMonthTbill returns the latest 6-month T-bill whose auction has
// completed. Announced bills with no bids yet are excluded in the query.
func (c *Client) MostRecentSixMonthTbill(ctx context.Context) (TbillAuction, error) {
	params := url.Values{}
	params.Set("rows", "1")
	params.Set("filters", fmt.Sprintf(
		`bill_bond_ind:"bill" AND product_type:"B" AND auction_tenor:"0.5" AND total_bids:[%v TO *]`,
		completedBidsEpsilon))
	params.Set("sort", "auction_date desc")

	var records []TbillAuction
	if err := c.fetch(ctx, "listbondsandbills", params, &records); err != nil {
		return TbillAuction{}, err
	}
	if len(records) == 0 {
		return TbillAuction{}, fmt.Errorf("listbondsandbills returned no completed 6-month bills")
	}
	return records[0], nil
}

// SixMonthTbillBidYield returns the most recent secondary-market bid yield on
// the current 6-month T-bill.
func (c *Client) SixMonthTbillBidYield(ctx context.Context) (float64, error) {
	params := url.Values{}
	params.Set("rows", "1")
	params.Set("filters", "product_type:B")
	params.Set("sort", "end_of_period desc")

	var records []struct {
		EndOfPeriod string   `json:"end_of_period"`
		BidYield    *float64 `json:"bid_6m_tbill_yield"`
	}
	if err := c.fetch(ctx, "pricesandyields_chart", params, &records); err != nil {
		return 0, err
	}
	if len(records) == 0 || records[0].BidYield == nil {
		return 0, fmt.Errorf("pricesandyields_chart returned no bid yield")
	}
	return *records[0].BidYield, nil
}
