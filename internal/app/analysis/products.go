package analysis

import "github.com/wltan/sgfi-compare/internal/pkg/model"

// Products lists the distinct "Provider - Product" pairs in the dataset, in
// first-encountered order.
func Products(offers []model.Offer) []string {
	seen := make(map[string]bool, len(offers))
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		key := string(o.Provider) + " - " + o.Product
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}
