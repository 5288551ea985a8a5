package usecase

import (
	"github.com/flysnipe/flysnipe/internal/domain"
)

// newTestOffer creates an offer for filter and sort testing.
func newTestOffer(id string, price float64, stops int, class domain.FareClass) domain.Offer {
	return domain.Offer{
		ID:              id,
		Carrier:         "Sky Airways",
		FlightNumber:    "SK-" + id,
		Class:           class,
		Price:           price,
		Currency:        "USD",
		DurationMinutes: 180,
		Stops:           stops,
		Departure:       domain.Endpoint{Time: "08:00", Airport: "JFK", City: "New York"},
		Arrival:         domain.Endpoint{Time: "11:00", Airport: "LAX", City: "Los Angeles"},
	}
}

// withTimes returns o with the given departure and arrival time of day.
func withTimes(o domain.Offer, departure, arrival string) domain.Offer {
	o.Departure.Time = departure
	o.Arrival.Time = arrival
	return o
}

// withDuration returns o with the given duration.
func withDuration(o domain.Offer, minutes int) domain.Offer {
	o.DurationMinutes = minutes
	return o
}

// offerIDs extracts the ids of offers in order.
func offerIDs(offers []domain.Offer) []string {
	ids := make([]string, len(offers))
	for i, o := range offers {
		ids[i] = o.ID
	}
	return ids
}
