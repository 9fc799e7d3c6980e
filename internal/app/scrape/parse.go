package scrape

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wltan/sgfi-compare/internal/pkg/model"
)

var (
	ceiling      = decimal.NewFromInt(model.CeilingSentinel)
	oneCent      = decimal.RequireFromString("0.01")
	monthWords   = []string{"mth", "month"}
	otherUnits   = []string{"week", "year", "yr", "day"}
	belowWords   = []string{"below", "under"}
	aboveWords   = []string{"above", "over"}
	currencyCuts = []string{"s$", "$", ",", "p.a.", "%"}
)

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// numberTokens extracts every decimal number from s, in order.
func numberTokens(s string) []string {
	var tokens []string
	var cur strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' && cur.Len() > 0 {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			tokens = append(tokens, strings.TrimRight(cur.String(), "."))
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, strings.TrimRight(cur.String(), "."))
	}
	return tokens
}

// ParseBounds turns a free-text deposit range ("$1,000 - $9,999",
// "Below S$50,000", ">$5,000") into inclusive lower and upper bounds.
// Open-ended upper bounds map to the ceiling sentinel; single numbers with no
// qualifying word are a parse failure, never a guess.
func ParseBounds(s string) (lower, upper decimal.Decimal, err error) {
	cleaned := strings.ToLower(s)
	for _, cut := range currencyCuts {
		cleaned = strings.ReplaceAll(cleaned, cut, "")
	}
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	if strings.Contains(cleaned, "<") {
		return lower, upper, &ParseError{Input: s, Reason: "explicit '<' bound is ambiguous, expected a 'below'/'under' phrase"}
	}

	if containsAny(cleaned, belowWords) {
		nums := numberTokens(cleaned)
		if len(nums) != 1 {
			return lower, upper, &ParseError{Input: s, Reason: "'below' phrase must carry exactly one number"}
		}
		x, perr := decimal.NewFromString(nums[0])
		if perr != nil {
			return lower, upper, &ParseError{Input: s, Reason: perr.Error()}
		}
		return decimal.Zero, x.Sub(oneCent), nil
	}

	parts := strings.SplitN(cleaned, "-", 2)
	if len(parts) == 2 && len(numberTokens(parts[0])) == 1 && len(numberTokens(parts[1])) == 1 {
		if strings.Contains(parts[1], ">") {
			return lower, upper, &ParseError{Input: s, Reason: "inequality on the upper bound of a two-sided range"}
		}
		lo, perr := decimal.NewFromString(numberTokens(parts[0])[0])
		if perr != nil {
			return lower, upper, &ParseError{Input: s, Reason: perr.Error()}
		}
		hi, perr := decimal.NewFromString(numberTokens(parts[1])[0])
		if perr != nil {
			return lower, upper, &ParseError{Input: s, Reason: perr.Error()}
		}
		if strings.Contains(parts[0], ">") {
			lo = lo.Add(oneCent)
		}
		if hi.LessThan(lo) {
			return lower, upper, &ParseError{Input: s, Reason: "upper bound below lower bound"}
		}
		return lo, hi, nil
	}

	nums := numberTokens(cleaned)
	switch {
	case len(nums) == 0:
		return lower, upper, &ParseError{Input: s, Reason: "no numeric tokens"}
	case len(nums) > 1:
		return lower, upper, &ParseError{Input: s, Reason: "multiple numbers without a recognizable range"}
	}

	x, perr := decimal.NewFromString(nums[0])
	if perr != nil {
		return lower, upper, &ParseError{Input: s, Reason: perr.Error()}
	}
	if containsAny(cleaned, aboveWords) || strings.Contains(cleaned, ">") {
		return x.Add(oneCent), ceiling, nil
	}
	return lower, upper, &ParseError{Input: s, Reason: "single number without 'below'/'above' qualifier or range"}
}

// ParseTenure returns the ordered month values a tenure cell represents.
// "6-8" expands to [6 7 8]. A month indicator must appear in the cell or its
// column header; anything quoted in other units fails with a UnitError.
func ParseTenure(cell, header string) ([]int, error) {
	cellLower := strings.ToLower(cell)
	// a cell quoting weeks, years or days is never read as months, whatever
	// the header says
	if containsAny(cellLower, otherUnits) && !containsAny(cellLower, monthWords) {
		return nil, &UnitError{Cell: cell, Header: header}
	}
	if !containsAny(cellLower+" "+strings.ToLower(header), monthWords) {
		return nil, &UnitError{Cell: cell, Header: header}
	}

	nums := numberTokens(cell)
	switch len(nums) {
	case 0:
		return nil, &ParseError{Input: cell, Reason: "no numeric tokens"}
	case 1:
		n, err := strconv.Atoi(nums[0])
		if err != nil {
			return nil, &ParseError{Input: cell, Reason: "tenure is not an integer"}
		}
		return []int{n}, nil
	case 2:
		from, err1 := strconv.Atoi(nums[0])
		to, err2 := strconv.Atoi(nums[1])
		if err1 != nil || err2 != nil {
			return nil, &ParseError{Input: cell, Reason: "tenure range is not integer-valued"}
		}
		if to < from {
			return nil, &ParseError{Input: cell, Reason: "tenure range runs backwards"}
		}
		months := make([]int, 0, to-from+1)
		for m := from; m <= to; m++ {
			months = append(months, m)
		}
		return months, nil
	default:
		return nil, &ParseError{Input: cell, Reason: "too many numbers for a tenure"}
	}
}

// notAvailable lists the spellings banks use for a missing rate.
var notAvailable = map[string]bool{"na": true, "n.a": true, "n.a.": true, "n/a": true, "-": true}

// CleanRate parses a raw rate cell. ok is false when the cell is an explicit
// "not available" marker; those are absent values, never zero.
func CleanRate(s string) (rate float64, ok bool, err error) {
	cleaned := strings.ToLower(strings.ReplaceAll(s, "%", ""))
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if notAvailable[cleaned] {
		return 0, false, nil
	}
	rate, perr := strconv.ParseFloat(cleaned, 64)
	if perr != nil {
		return 0, false, &ParseError{Input: s, Reason: "rate is not numeric"}
	}
	return rate, true, nil
}
