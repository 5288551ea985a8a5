// Package mock provides test doubles for the FlySnipe client and backend.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, scripted responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flysnipe/flysnipe/internal/domain"
)

// SearchClient is a configurable mock implementation of domain.SearchClient.
type SearchClient struct {
	offers       []domain.Offer
	err          error
	delay        time.Duration
	callCount    int
	lastCriteria domain.SearchCriteria
	mu           sync.Mutex
}

// NewSearchClient creates a mock search client that returns no offers.
// It is configured using the builder pattern methods.
func NewSearchClient() *SearchClient {
	return &SearchClient{}
}

// WithOffers configures the client to return the given offers.
func (c *SearchClient) WithOffers(offers []domain.Offer) *SearchClient {
	c.offers = offers
	return c
}

// WithError configures the client to return the given error.
func (c *SearchClient) WithError(err error) *SearchClient {
	c.err = err
	return c
}

// WithDelay configures the client to wait the given duration before responding.
func (c *SearchClient) WithDelay(d time.Duration) *SearchClient {
	c.delay = d
	return c
}

// Search implements domain.SearchClient.Search.
// It respects context cancellation, applies configured delay,
// and returns configured offers or error.
func (c *SearchClient) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Offer, error) {
	c.mu.Lock()
	c.callCount++
	c.lastCriteria = criteria
	c.mu.Unlock()

	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.delay):
		}
	}

	if c.err != nil {
		return nil, c.err
	}
	return c.offers, nil
}

// CallCount returns the number of times Search was called.
func (c *SearchClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// LastCriteria returns the criteria of the most recent call.
func (c *SearchClient) LastCriteria() domain.SearchCriteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastCriteria
}

// Ensure SearchClient implements domain.SearchClient at compile time.
var _ domain.SearchClient = (*SearchClient)(nil)

// SampleOffers returns count offers with all fields populated.
// Prices rise by 100 per offer starting at 300; departures are one hour apart from 06:00.
func SampleOffers(count int) []domain.Offer {
	offers := make([]domain.Offer, count)
	classes := []domain.FareClass{domain.FareEconomy, domain.FarePremium, domain.FareBusiness, domain.FareFirst}

	for i := 0; i < count; i++ {
		duration := 120 + (i%5)*45
		depHour := 6 + i%17
		depMinutes := depHour*60 + (i%4)*15
		arrMinutes := (depMinutes + duration) % (24 * 60)

		offers[i] = domain.Offer{
			ID:              fmt.Sprintf("offer-%d", i+1),
			Carrier:         "Sky Airways",
			FlightNumber:    fmt.Sprintf("SK%d", 100+i),
			Aircraft:        "Airbus A320",
			Class:           classes[i%len(classes)],
			Price:           300 + float64(i*100),
			Currency:        "USD",
			DurationMinutes: duration,
			Stops:           i % 3,
			Departure: domain.Endpoint{
				Time:    clock(depMinutes),
				Airport: "JFK",
				City:    "New York",
			},
			Arrival: domain.Endpoint{
				Time:    clock(arrMinutes),
				Airport: "LAX",
				City:    "Los Angeles",
			},
			Baggage:    "1 checked bag included",
			BookingURL: fmt.Sprintf("https://www.example-airline.com/book/offer-%d", i+1),
		}
	}
	return offers
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
