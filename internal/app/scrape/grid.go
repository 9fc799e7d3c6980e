package scrape

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wltan/sgfi-compare/internal/pkg/model"
)

// Grid is one raw two-dimensional table: tenure rows by deposit-range columns.
type Grid struct {
	Header []string
	Rows   [][]string
}

// Reshape converts a raw grid into canonical offer rows, one per
// (tenure value x deposit column) cell. The first column's header must carry a
// month indicator; a table quoting tenures in some other unit must fail here
// rather than be silently misread. Cells whose rate is marked "not available"
// are dropped, never emitted as zero.
//
// Provider, product and required-multiples metadata are left for the caller.
func Reshape(grid Grid) ([]model.Offer, error) {
	if len(grid.Header) < 2 {
		return nil, &ParseError{Input: strings.Join(grid.Header, " | "), Reason: "table needs a tenure column and at least one deposit column"}
	}
	if !containsAny(strings.ToLower(grid.Header[0]), monthWords) {
		return nil, &UnitError{Cell: "", Header: grid.Header[0]}
	}

	lowers := make([]decimal.Decimal, len(grid.Header))
	uppers := make([]decimal.Decimal, len(grid.Header))
	for col := 1; col < len(grid.Header); col++ {
		lo, hi, err := ParseBounds(grid.Header[col])
		if err != nil {
			return nil, err
		}
		lowers[col], uppers[col] = lo, hi
	}

	offers := make([]model.Offer, 0, len(grid.Rows)*(len(grid.Header)-1))
	for _, row := range grid.Rows {
		if len(row) != len(grid.Header) {
			return nil, &ParseError{Input: strings.Join(row, " | "), Reason: "row width does not match header"}
		}
		months, err := ParseTenure(row[0], grid.Header[0])
		if err != nil {
			return nil, err
		}
		for _, month := range months {
			for col := 1; col < len(row); col++ {
				rate, ok, err := CleanRate(row[col])
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
				offers = append(offers, model.Offer{
					Tenure:            month,
					Rate:              rate,
					DepositLowerBound: lowers[col],
					DepositUpperBound: uppers[col],
				})
			}
		}
	}
	return offers, nil
}
