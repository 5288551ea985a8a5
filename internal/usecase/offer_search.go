package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/infrastructure/metrics"
	"github.com/flysnipe/flysnipe/internal/infrastructure/timeutil"
)

// Offer generation bounds.
const (
	FreeOfferCount       = 3
	MinPremiumOfferCount = 8
	MaxPremiumOfferCount = 15

	minOfferPrice    = 300
	maxOfferPrice    = 2000
	minOfferDuration = 120
	maxOfferDuration = 720
	firstDepartureHr = 6
	lastDepartureHr  = 22
)

var (
	offerCarriers = []string{"AA", "DL", "UA", "LH", "BA", "AF", "KL", "LX"}
	offerAircraft = []string{"Boeing 777", "Airbus A350", "Boeing 787", "Airbus A380", "Boeing 737", "Airbus A320"}
	offerClasses  = []domain.FareClass{domain.FareEconomy, domain.FarePremium, domain.FareBusiness, domain.FareFirst}

	// Mostly direct flights
	offerStops = []int{0, 0, 0, 1, 1, 2}
)

// OfferGenerator produces synthetic offers for a route.
// It is safe for concurrent use.
type OfferGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewOfferGenerator creates a generator. The same seed yields the same
// sequence of offers apart from their ids and booking URLs.
func NewOfferGenerator(seed uint64) *OfferGenerator {
	return &OfferGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns offers for criteria sorted by price ascending.
// Premium searches get between 8 and 15 offers, free searches get 3.
func (g *OfferGenerator) Generate(criteria domain.SearchCriteria) []domain.Offer {
	g.mu.Lock()
	defer g.mu.Unlock()

	count := FreeOfferCount
	if criteria.Premium {
		count = g.between(MinPremiumOfferCount, MaxPremiumOfferCount)
	}

	fromCode := airportCode(criteria.From)
	toCode := airportCode(criteria.To)

	offers := make([]domain.Offer, 0, count)
	for i := 0; i < count; i++ {
		carrier := offerCarriers[g.rng.IntN(len(offerCarriers))]
		duration := g.between(minOfferDuration, maxOfferDuration)
		departure := g.between(firstDepartureHr, lastDepartureHr)*60 + g.rng.IntN(60)
		arrival := (departure + duration) % (24 * 60)

		id := uuid.NewString()
		offer := domain.Offer{
			ID:              id,
			Carrier:         carrier,
			FlightNumber:    fmt.Sprintf("%s%d", carrier, g.between(100, 9999)),
			Aircraft:        offerAircraft[g.rng.IntN(len(offerAircraft))],
			Class:           offerClasses[g.rng.IntN(len(offerClasses))],
			Price:           float64(g.between(minOfferPrice, maxOfferPrice)),
			Currency:        "USD",
			DurationMinutes: duration,
			Stops:           offerStops[g.rng.IntN(len(offerStops))],
			Departure: domain.Endpoint{
				Time:    minutesToClock(departure),
				Airport: fromCode,
				City:    criteria.From,
			},
			Arrival: domain.Endpoint{
				Time:    minutesToClock(arrival),
				Airport: toCode,
				City:    criteria.To,
			},
			BookingURL: "https://www.example-airline.com/book/" + id,
		}
		if g.rng.IntN(2) == 0 {
			offer.Baggage = "1 checked bag included"
		}
		offers = append(offers, offer)
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	})
	return offers
}

// between returns a uniform integer in [lo, hi]. Caller holds the lock.
func (g *OfferGenerator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func airportCode(city string) string {
	code := strings.ToUpper(strings.ReplaceAll(city, " ", ""))
	if len(code) > 3 {
		code = code[:3]
	}
	return code
}

func minutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// OfferSearchUseCase answers offer searches on the backend.
type OfferSearchUseCase interface {
	// Search validates criteria and returns the offers for the route.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error)
}

// offerSearchUseCase implements OfferSearchUseCase over an OfferGenerator.
type offerSearchUseCase struct {
	generator *OfferGenerator
	recorder  domain.SearchRecorder
	clock     timeutil.Clock
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// OfferSearchConfig wires the optional collaborators of the search use case.
type OfferSearchConfig struct {
	// Recorder stores the search log; nil disables recording
	Recorder domain.SearchRecorder

	Clock   timeutil.Clock
	Metrics *metrics.Metrics
	Logger  zerolog.Logger
}

// NewOfferSearchUseCase creates an OfferSearchUseCase.
func NewOfferSearchUseCase(generator *OfferGenerator, config *OfferSearchConfig) OfferSearchUseCase {
	uc := &offerSearchUseCase{
		generator: generator,
		clock:     timeutil.NewRealClock(),
		logger:    zerolog.Nop(),
	}
	if config != nil {
		uc.recorder = config.Recorder
		uc.metrics = config.Metrics
		uc.logger = config.Logger
		if config.Clock != nil {
			uc.clock = config.Clock
		}
	}
	return uc
}

// Search implements OfferSearchUseCase.Search.
// Recording the search is best effort; a failure is logged and not returned.
func (uc *offerSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		uc.metrics.RecordSearch(criteria.Premium, 0, err)
		return nil, err
	}

	offers := uc.generator.Generate(criteria)
	result := domain.NewSearchResult(criteria, offers)
	uc.metrics.RecordSearch(criteria.Premium, result.TotalResults, nil)

	if uc.recorder != nil {
		rec := domain.SearchRecord{
			ID:            uuid.NewString(),
			From:          criteria.From,
			To:            criteria.To,
			DepartureDate: criteria.DepartureDate,
			Passengers:    criteria.Passengers,
			Premium:       criteria.Premium,
			ResultsCount:  result.TotalResults,
			CreatedAt:     uc.clock.Now().UTC(),
		}
		if err := uc.recorder.RecordSearch(ctx, rec); err != nil {
			uc.logger.Warn().Err(err).Str("search_id", rec.ID).Msg("Failed to record search")
		}
	}

	uc.logger.Info().
		Str("from", criteria.From).
		Str("to", criteria.To).
		Str("date", criteria.DepartureDate).
		Bool("premium", criteria.Premium).
		Int("results", result.TotalResults).
		Msg("Offer search completed")

	return &result, nil
}

// Ensure offerSearchUseCase implements OfferSearchUseCase at compile time.
var _ OfferSearchUseCase = (*offerSearchUseCase)(nil)

// NewTimeSeededOfferGenerator creates a generator seeded from the wall clock.
func NewTimeSeededOfferGenerator() *OfferGenerator {
	return NewOfferGenerator(uint64(time.Now().UnixNano()))
}
