package scrape

import (
	"errors"
	"fmt"

	"github.com/antchfx/htmlquery"
	"github.com/shopspring/decimal"
	"github.com/wltan/sgfi-compare/internal/pkg/model"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// ProductFixedDeposit is the product label attached to every scraped bank row.
const ProductFixedDeposit = "Fixed Deposit"

// Source produces the canonical offers of one provider.
type Source interface {
	// Product names the offering for failure records, e.g. "DBS bank fixed deposit".
	Product() string
	Offers() ([]model.Offer, error)
}

var _ Source = &FixedDeposit{}

// FixedDeposit scrapes one bank's SGD fixed-deposit rate table.
type FixedDeposit struct {
	url        string
	tableClass string
	provider   model.Provider
	multiples  decimal.NullDecimal
	logger     *zap.Logger

	load func(url string) (*html.Node, error)
}

func NewFixedDeposit(url, tableClass string, provider model.Provider, multiples decimal.NullDecimal, logger *zap.Logger) *FixedDeposit {
	return &FixedDeposit{
		url:        url,
		tableClass: tableClass,
		provider:   provider,
		multiples:  multiples,
		logger:     logger,
		load:       htmlquery.LoadURL,
	}
}

func (f *FixedDeposit) Product() string {
	return string(f.provider) + " bank fixed deposit"
}

// Offers fetches the bank page and tries every table carrying the configured
// class, in document order. The first table that reshapes cleanly wins; later
// candidates are never consulted. If every candidate fails, the error carries
// the full failure list to aid diagnosis.
func (f *FixedDeposit) Offers() ([]model.Offer, error) {
	doc, err := f.load(f.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", f.url, err)
	}

	tables, err := FindTables(doc, f.tableClass)
	if err != nil {
		return nil, err
	}
	f.logger.Debug("found candidate tables", zap.Int("count", len(tables)))

	var trialErrs []error
	for i, table := range tables {
		offers, err := f.reshapeCandidate(table)
		if err != nil {
			trialErrs = append(trialErrs, fmt.Errorf("candidate table %d: %w", i, err))
			continue
		}
		f.logger.Debug("reshaped table", zap.Int("candidate", i), zap.Int("rows", len(offers)))
		return offers, nil
	}
	return nil, fmt.Errorf("every candidate table with class %q failed to reshape: %w", f.tableClass, errors.Join(trialErrs...))
}

func (f *FixedDeposit) reshapeCandidate(table *html.Node) ([]model.Offer, error) {
	grid, err := TableToGrid(table)
	if err != nil {
		return nil, err
	}
	offers, err := Reshape(grid)
	if err != nil {
		return nil, err
	}
	for i := range offers {
		offers[i].RequiredMultiples = f.multiples
		offers[i].Provider = f.provider
		offers[i].Product = ProductFixedDeposit
	}
	return offers, nil
}
