package scrape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	tenure int
	rate   float64
	lower  string
	upper  string
}

func TestReshape(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want []row
	}{
		{
			name: "headers with explicit ranges",
			grid: Grid{
				Header: []string{"Period (mths)", "$1,000 - $9,999", "$10,000 - $19,999", "$20,000 - $49,999"},
				Rows: [][]string{
					{"1", "0.1000", "0.2000", "0.3000"},
					{"2", "0.4000", "0.5000", "0.6000"},
					{"3", "0.7000", "0.8000", "0.9000"},
				},
			},
			want: []row{
				{1, 0.1, "1000", "9999"}, {1, 0.2, "10000", "19999"}, {1, 0.3, "20000", "49999"},
				{2, 0.4, "1000", "9999"}, {2, 0.5, "10000", "19999"}, {2, 0.6, "20000", "49999"},
				{3, 0.7, "1000", "9999"}, {3, 0.8, "10000", "19999"}, {3, 0.9, "20000", "49999"},
			},
		},
		{
			name: "below-style open lower range",
			grid: Grid{
				Header: []string{"Tenor (months, % p.a.)", "Below S$50,000", "S$50,000 - S$249,999"},
				Rows: [][]string{
					{"1-month", "0.10", "0.20"},
					{"2-month", "0.30", "0.40"},
					{"3-month", "0.50", "0.60"},
				},
			},
			want: []row{
				{1, 0.1, "0", "49999.99"}, {1, 0.2, "50000", "249999"},
				{2, 0.3, "0", "49999.99"}, {2, 0.4, "50000", "249999"},
				{3, 0.5, "0", "49999.99"}, {3, 0.6, "50000", "249999"},
			},
		},
		{
			name: "tenure ranges expand and n.a. cells drop",
			grid: Grid{
				Header: []string{"Tenor (months)", "S$5,000 - S$20,000", ">S$20,000 - S$50,000"},
				Rows: [][]string{
					{"1-2", "0.10", "0.20"},
					{"3-4", "0.30", "0.40"},
					{"48 (new placements not available*)", "N.A", "N.A"},
				},
			},
			want: []row{
				{1, 0.1, "5000", "20000"}, {1, 0.2, "20000.01", "50000"},
				{2, 0.1, "5000", "20000"}, {2, 0.2, "20000.01", "50000"},
				{3, 0.3, "5000", "20000"}, {3, 0.4, "20000.01", "50000"},
				{4, 0.3, "5000", "20000"}, {4, 0.4, "20000.01", "50000"},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			offers, err := Reshape(tc.grid)
			require.NoError(t, err)
			require.Len(t, offers, len(tc.want))
			for i, want := range tc.want {
				assert.Equal(t, want.tenure, offers[i].Tenure, "row %d tenure", i)
				assert.Equal(t, want.rate, offers[i].Rate, "row %d rate", i)
				assert.Equal(t, want.lower, offers[i].DepositLowerBound.String(), "row %d lower", i)
				assert.Equal(t, want.upper, offers[i].DepositUpperBound.String(), "row %d upper", i)
			}
		})
	}
}

func TestReshapeHeaderWithoutMonthIndicatorFails(t *testing.T) {
	grid := Grid{
		Header: []string{"Period", "$1,000 - $9,999"},
		Rows:   [][]string{{"1 mth", "0.3000"}},
	}
	_, err := Reshape(grid)
	var unitErr *UnitError
	require.Error(t, err)
	assert.True(t, errors.As(err, &unitErr), "expected a UnitError, got %v", err)
}

func TestReshapeUnitMismatchFails(t *testing.T) {
	grid := Grid{
		Header: []string{"Tenure in weeks", "$1,000 - $9,999"},
		Rows:   [][]string{{"6-12", "0.3000"}},
	}
	_, err := Reshape(grid)
	var unitErr *UnitError
	require.Error(t, err)
	assert.True(t, errors.As(err, &unitErr))
}

func TestReshapeWeekCellUnderMonthHeaderFails(t *testing.T) {
	grid := Grid{
		Header: []string{"Tenure (months)", "$1,000 - $9,999"},
		Rows:   [][]string{{"6-12 weeks", "0.3000"}},
	}
	_, err := Reshape(grid)
	var unitErr *UnitError
	require.Error(t, err)
	assert.True(t, errors.As(err, &unitErr), "expected a UnitError, got %v", err)
}

func TestReshapeBadRateFails(t *testing.T) {
	grid := Grid{
		Header: []string{"Tenure (months)", "$1,000 - $9,999"},
		Rows:   [][]string{{"6", "call us"}},
	}
	_, err := Reshape(grid)
	var parseErr *ParseError
	require.Error(t, err)
	assert.True(t, errors.As(err, &parseErr))
}

func TestReshapeRaggedRowFails(t *testing.T) {
	grid := Grid{
		Header: []string{"Tenure (months)", "$1,000 - $9,999", "$10,000 - $19,999"},
		Rows:   [][]string{{"6", "1.20"}},
	}
	_, err := Reshape(grid)
	require.Error(t, err)
}
