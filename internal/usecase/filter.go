// Package usecase provides the business logic for offer browsing, upgrade
// confirmation, and the backend search and checkout operations.
package usecase

import (
	"github.com/flysnipe/flysnipe/internal/domain"
)

// ApplyFilter returns the offers that satisfy every constraint of spec,
// preserving their relative order.
//
// Behavior:
//   - An empty spec returns a copy of the input
//   - Class, stops and price constraints are combined with AND
//   - The price bound is inclusive
//   - Does NOT mutate the original offers slice
func ApplyFilter(offers []domain.Offer, spec domain.FilterSpec) []domain.Offer {
	result := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		if spec.Matches(o) {
			result = append(result, o)
		}
	}
	return result
}
