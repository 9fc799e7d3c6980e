// Package consolidate fetches every configured source, converts per-source
// failures into data, and merges the survivors into one combined table.
package consolidate

import (
	"fmt"

	"github.com/wltan/sgfi-compare/internal/pkg/model"
)

// SchemaError reports a merge input that violates the canonical row contract.
// These are malformed adapter outputs, so they surface immediately instead of
// being swallowed like source-level fetch failures.
type SchemaError struct {
	Table int
	Row   int
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %d row %d violates canonical schema: %v", e.Table, e.Row, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// Merge validates and concatenates per-source canonical tables. Row order
// within each table is preserved and tables are appended in input order.
// All-empty input yields an empty, non-nil table.
func Merge(tables [][]model.Offer) ([]model.Offer, error) {
	total := 0
	for _, t := range tables {
		total += len(t)
	}
	combined := make([]model.Offer, 0, total)
	for ti, t := range tables {
		for ri, offer := range t {
			if err := offer.Validate(); err != nil {
				return nil, &SchemaError{Table: ti, Row: ri, Err: err}
			}
		}
		combined = append(combined, t...)
	}
	return combined, nil
}
