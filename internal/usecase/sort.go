package usecase

import (
	"sort"

	"github.com/flysnipe/flysnipe/internal/domain"
)

// SortOffers orders offers by the given key.
// Uses stable sorting so offers that compare equal keep their fetch order.
//
// Sort keys:
//   - SortNone: original order
//   - SortPriceAsc / SortPriceDesc: by Price
//   - SortDurationAsc: by DurationMinutes (shortest first)
//   - SortDepartureAsc / SortArrivalAsc: lexicographic on the "HH:MM" time of day
//
// Does NOT mutate the original offers slice. Unknown keys leave the order untouched;
// callers validate keys before they get here.
func SortOffers(offers []domain.Offer, key domain.SortKey) []domain.Offer {
	result := make([]domain.Offer, len(offers))
	copy(result, offers)

	if len(result) < 2 {
		return result
	}

	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case domain.SortDurationAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DurationMinutes < result[j].DurationMinutes
		})
	case domain.SortDepartureAsc:
		// Zero-padded HH:MM compares correctly as a string
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Departure.Time < result[j].Departure.Time
		})
	case domain.SortArrivalAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Arrival.Time < result[j].Arrival.Time
		})
	}

	return result
}
