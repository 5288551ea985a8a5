package usecase

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/domain/mocks"
	"github.com/flysnipe/flysnipe/internal/infrastructure/timeutil"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func validCriteria(premium bool) domain.SearchCriteria {
	return domain.SearchCriteria{
		From:          "New York",
		To:            "London",
		DepartureDate: "2025-07-14",
		Passengers:    1,
		Premium:       premium,
	}
}

func TestOfferGenerator_Counts(t *testing.T) {
	g := NewOfferGenerator(42)

	for i := 0; i < 50; i++ {
		assert.Len(t, g.Generate(validCriteria(false)), FreeOfferCount)

		premium := g.Generate(validCriteria(true))
		assert.GreaterOrEqual(t, len(premium), MinPremiumOfferCount)
		assert.LessOrEqual(t, len(premium), MaxPremiumOfferCount)
	}
}

func TestOfferGenerator_OfferShape(t *testing.T) {
	g := NewOfferGenerator(7)
	offers := g.Generate(validCriteria(true))

	assert.True(t, sort.SliceIsSorted(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	}), "offers are sorted by price")

	ids := make(map[string]struct{}, len(offers))
	for _, o := range offers {
		assert.GreaterOrEqual(t, o.Price, float64(minOfferPrice))
		assert.LessOrEqual(t, o.Price, float64(maxOfferPrice))
		assert.GreaterOrEqual(t, o.DurationMinutes, minOfferDuration)
		assert.LessOrEqual(t, o.DurationMinutes, maxOfferDuration)
		assert.Contains(t, []int{0, 1, 2}, o.Stops)
		assert.True(t, o.Class.IsValid())
		assert.Regexp(t, clockPattern, o.Departure.Time)
		assert.Regexp(t, clockPattern, o.Arrival.Time)
		assert.GreaterOrEqual(t, o.Departure.Time, "06:00")
		assert.LessOrEqual(t, o.Departure.Time, "22:59")
		assert.Equal(t, "NEW", o.Departure.Airport)
		assert.Equal(t, "LON", o.Arrival.Airport)
		assert.Equal(t, "New York", o.Departure.City)
		assert.Equal(t, "London", o.Arrival.City)
		assert.Contains(t, o.FlightNumber, o.Carrier)
		assert.Contains(t, o.BookingURL, o.ID)

		_, dup := ids[o.ID]
		assert.False(t, dup, "offer ids are unique")
		ids[o.ID] = struct{}{}
	}
}

func TestOfferGenerator_SameSeedSameShape(t *testing.T) {
	a := NewOfferGenerator(99).Generate(validCriteria(true))
	b := NewOfferGenerator(99).Generate(validCriteria(true))

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Price, b[i].Price)
		assert.Equal(t, a[i].FlightNumber, b[i].FlightNumber)
		assert.Equal(t, a[i].Departure.Time, b[i].Departure.Time)
	}
}

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "06:05", minutesToClock(6*60+5))
	assert.Equal(t, "23:59", minutesToClock(23*60+59))
	assert.Equal(t, "00:00", minutesToClock(0))
}

func TestAirportCode(t *testing.T) {
	assert.Equal(t, "NEW", airportCode("New York"))
	assert.Equal(t, "ROM", airportCode("rome"))
	assert.Equal(t, "OS", airportCode("Os"))
}

func TestOfferSearch_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockSearchRecorder(ctrl)
	clock := timeutil.NewMockClockFromString("2025-06-01T10:00:00Z")

	recorder.EXPECT().
		RecordSearch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec domain.SearchRecord) error {
			assert.Equal(t, "New York", rec.From)
			assert.Equal(t, "London", rec.To)
			assert.True(t, rec.Premium)
			assert.Equal(t, clock.Now(), rec.CreatedAt)
			assert.NotEmpty(t, rec.ID)
			assert.GreaterOrEqual(t, rec.ResultsCount, MinPremiumOfferCount)
			return nil
		})

	uc := NewOfferSearchUseCase(NewOfferGenerator(1), &OfferSearchConfig{Recorder: recorder, Clock: clock})

	result, err := uc.Search(context.Background(), validCriteria(true))

	require.NoError(t, err)
	assert.Equal(t, len(result.Offers), result.TotalResults)
	assert.True(t, result.PremiumFeaturesUsed)
	assert.Equal(t, "New York", result.Criteria.From)
}

func TestOfferSearch_DefaultsPassengers(t *testing.T) {
	uc := NewOfferSearchUseCase(NewOfferGenerator(1), nil)
	criteria := validCriteria(false)
	criteria.Passengers = 0
	criteria.From = "  Paris "

	result, err := uc.Search(context.Background(), criteria)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Criteria.Passengers)
	assert.Equal(t, "Paris", result.Criteria.From)
	assert.Len(t, result.Offers, FreeOfferCount)
	assert.False(t, result.PremiumFeaturesUsed)
}

func TestOfferSearch_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *domain.SearchCriteria)
		field  string
	}{
		{name: "missing from", modify: func(c *domain.SearchCriteria) { c.From = "" }, field: "from"},
		{name: "missing to", modify: func(c *domain.SearchCriteria) { c.To = " " }, field: "to"},
		{name: "same route", modify: func(c *domain.SearchCriteria) { c.To = "new york" }, field: "to"},
		{name: "bad date", modify: func(c *domain.SearchCriteria) { c.DepartureDate = "14/07/2025" }, field: "departureDate"},
		{name: "impossible date", modify: func(c *domain.SearchCriteria) { c.DepartureDate = "2025-02-30" }, field: "departureDate"},
		{name: "too many passengers", modify: func(c *domain.SearchCriteria) { c.Passengers = 10 }, field: "passengers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			recorder := mocks.NewMockSearchRecorder(ctrl)
			uc := NewOfferSearchUseCase(NewOfferGenerator(1), &OfferSearchConfig{Recorder: recorder})

			criteria := validCriteria(false)
			tt.modify(&criteria)

			result, err := uc.Search(context.Background(), criteria)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, domain.IsInvalidArgument(err))

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestOfferSearch_RecorderFailureIsNotSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockSearchRecorder(ctrl)
	recorder.EXPECT().RecordSearch(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	uc := NewOfferSearchUseCase(NewOfferGenerator(1), &OfferSearchConfig{Recorder: recorder})

	result, err := uc.Search(context.Background(), validCriteria(false))

	require.NoError(t, err)
	assert.Len(t, result.Offers, FreeOfferCount)
}
