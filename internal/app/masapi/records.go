package masapi

import "fmt"

// SSBIssue identifies one savings-bond issue from the listsavingbonds endpoint.
type SSBIssue struct {
	IssueCode      string `json:"issue_code"`
	ISINCode       string `json:"isin_code"`
	IssueDate      string `json:"issue_date"`
	LastDayToApply string `json:"last_day_to_apply"`
}

// SSBInterest carries the ten step-up coupons of one savings-bond issue.
// Coupon fields are pointers so a missing key can be told apart from zero.
type SSBInterest struct {
	IssueCode    string   `json:"issue_code"`
	Year1Coupon  *float64 `json:"year1_coupon"`
	Year2Coupon  *float64 `json:"year2_coupon"`
	Year3Coupon  *float64 `json:"year3_coupon"`
	Year4Coupon  *float64 `json:"year4_coupon"`
	Year5Coupon  *float64 `json:"year5_coupon"`
	Year6Coupon  *float64 `json:"year6_coupon"`
	Year7Coupon  *float64 `json:"year7_coupon"`
	Year8Coupon  *float64 `json:"year8_coupon"`
	Year9Coupon  *float64 `json:"year9_coupon"`
	Year10Coupon *float64 `json:"year10_coupon"`
}

// Coupons returns the year 1..10 coupon rates, failing fast with the missing
// field's name if the record is incomplete.
func (s SSBInterest) Coupons() ([10]float64, error) {
	fields := []*float64{
		s.Year1Coupon, s.Year2Coupon, s.Year3Coupon, s.Year4Coupon, s.Year5Coupon,
		s.Year6Coupon, s.Year7Coupon, s.Year8Coupon, s.Year9Coupon, s.Year10Coupon,
	}
	var coupons [10]float64
	for i, f := range fields {
		if f == nil {
			return coupons, fmt.Errorf("ssb interest record %s is missing year%d_coupon", s.IssueCode, i+1)
		}
		coupons[i] = *f
	}
	return coupons, nil
}

// TbillAuction is one listbondsandbills record for a treasury bill.
type TbillAuction struct {
	IssueCode    string   `json:"issue_code"`
	AuctionTenor float64  `json:"auction_tenor"`
	CutoffYield  *float64 `json:"cutoff_yield"`
	TotalBids    float64  `json:"total_bids"`
	AuctionDate  string   `json:"auction_date"`
}
