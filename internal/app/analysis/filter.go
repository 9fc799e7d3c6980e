// Package analysis filters and ranks the combined offer table.
package analysis

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wltan/sgfi-compare/internal/pkg/model"
)

// Config mirrors the dashboard's filter controls.
//
// IncludeProviders narrows the set first; ExcludeProviders then removes from
// that narrowed set. Supplying the same provider in both therefore yields an
// empty result.
type Config struct {
	// InvestmentAmount, when set, drops rows whose deposit lower bound the
	// amount cannot reach. When unset, deposit bounds are not consulted.
	InvestmentAmount decimal.NullDecimal
	MinTenure        int
	MaxTenure        int
	MinRate          *float64
	ConsiderTbills   bool
	ConsiderSSBs     bool
	ConsiderFD       bool
	IncludeProviders []string
	ExcludeProviders []string
}

// DefaultConfig keeps every product category and tenures up to 999 months.
func DefaultConfig() Config {
	return Config{
		MaxTenure:      999,
		ConsiderTbills: true,
		ConsiderSSBs:   true,
		ConsiderFD:     true,
	}
}

// Filter returns the offers satisfying cfg, preserving input order. An empty
// result is a valid empty slice, not an error.
func Filter(offers []model.Offer, cfg Config) []model.Offer {
	include := make(map[string]bool, len(cfg.IncludeProviders))
	for _, p := range cfg.IncludeProviders {
		include[p] = true
	}
	exclude := make(map[string]bool, len(cfg.ExcludeProviders))
	for _, p := range cfg.ExcludeProviders {
		exclude[p] = true
	}

	out := make([]model.Offer, 0, len(offers))
	for _, o := range offers {
		if o.Tenure < cfg.MinTenure || o.Tenure > cfg.MaxTenure {
			continue
		}
		if cfg.InvestmentAmount.Valid && o.DepositLowerBound.GreaterThan(cfg.InvestmentAmount.Decimal) {
			continue
		}
		if cfg.MinRate != nil && o.Rate < *cfg.MinRate {
			continue
		}
		if !cfg.ConsiderTbills && productContains(o, "t-bill") {
			continue
		}
		if !cfg.ConsiderSSBs && productContains(o, "ssb") {
			continue
		}
		if !cfg.ConsiderFD && productContains(o, "fixed deposit") {
			continue
		}
		if len(include) > 0 && !include[string(o.Provider)] {
			continue
		}
		if exclude[string(o.Provider)] {
			continue
		}
		out = append(out, o)
	}
	return out
}

func productContains(o model.Offer, needle string) bool {
	return strings.Contains(strings.ToLower(o.Product), needle)
}
