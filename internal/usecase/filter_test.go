package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/test/testutil"
)

func filterFixture() []domain.Offer {
	return []domain.Offer{
		newTestOffer("a", 500, 0, domain.FareEconomy),
		newTestOffer("b", 200, 1, domain.FareBusiness),
		newTestOffer("c", 800, 2, domain.FareEconomy),
		newTestOffer("d", 600, 3, domain.FareFirst),
		newTestOffer("e", 0, 0, domain.FarePremium),
	}
}

func TestApplyFilter(t *testing.T) {
	tests := []struct {
		name     string
		spec     domain.FilterSpec
		expected []string
	}{
		{
			name:     "empty spec keeps everything in order",
			spec:     domain.FilterSpec{},
			expected: []string{"a", "b", "c", "d", "e"},
		},
		{
			name:     "class economy",
			spec:     domain.FilterSpec{Class: testutil.Ptr(domain.FareEconomy)},
			expected: []string{"a", "c"},
		},
		{
			name:     "direct only",
			spec:     domain.FilterSpec{Stops: domain.ExactStops(0)},
			expected: []string{"a", "e"},
		},
		{
			name:     "exactly one stop",
			spec:     domain.FilterSpec{Stops: domain.ExactStops(1)},
			expected: []string{"b"},
		},
		{
			name:     "two or more stops",
			spec:     domain.FilterSpec{Stops: domain.TwoOrMoreStops()},
			expected: []string{"c", "d"},
		},
		{
			name:     "max price is inclusive",
			spec:     domain.FilterSpec{MaxPrice: testutil.Ptr(600.0)},
			expected: []string{"a", "b", "d", "e"},
		},
		{
			name:     "max price zero keeps only free offers",
			spec:     domain.FilterSpec{MaxPrice: testutil.Ptr(0.0)},
			expected: []string{"e"},
		},
		{
			name:     "infinite max price keeps everything",
			spec:     domain.FilterSpec{MaxPrice: testutil.Ptr(math.Inf(1))},
			expected: []string{"a", "b", "c", "d", "e"},
		},
		{
			name: "constraints combine with AND",
			spec: domain.FilterSpec{
				Class:    testutil.Ptr(domain.FareEconomy),
				Stops:    domain.TwoOrMoreStops(),
				MaxPrice: testutil.Ptr(1000.0),
			},
			expected: []string{"c"},
		},
		{
			name:     "nothing matches",
			spec:     domain.FilterSpec{Class: testutil.Ptr(domain.FareFirst), Stops: domain.ExactStops(0)},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyFilter(filterFixture(), tt.spec)
			assert.Equal(t, tt.expected, offerIDs(result))
		})
	}
}

func TestApplyFilter_DoesNotMutateInput(t *testing.T) {
	offers := filterFixture()
	original := make([]domain.Offer, len(offers))
	copy(original, offers)

	_ = ApplyFilter(offers, domain.FilterSpec{MaxPrice: testutil.Ptr(100.0)})

	assert.Equal(t, original, offers)
}

func TestApplyFilter_EmptyInput(t *testing.T) {
	result := ApplyFilter(nil, domain.FilterSpec{})
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestApplyFilter_EmptySpecReturnsCopy(t *testing.T) {
	offers := filterFixture()

	result := ApplyFilter(offers, domain.FilterSpec{})
	require.Len(t, result, len(offers))

	result[0].Price = -1
	assert.NotEqual(t, -1.0, offers[0].Price)
}
