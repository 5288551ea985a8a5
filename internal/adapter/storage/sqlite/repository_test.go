package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flysnipe/flysnipe/internal/domain"
)

func TestCheckoutTransactions(t *testing.T) {
	store, clock := newTestStore(t)
	ctx := context.Background()

	tx := domain.CheckoutTransaction{
		SessionID:     "cs_42",
		Email:         "ada@example.com",
		PackageID:     "monthly",
		Amount:        9.99,
		Currency:      "usd",
		PaymentStatus: domain.PaymentUnpaid,
		CreatedAt:     clock.Now(),
		UpdatedAt:     clock.Now(),
	}
	require.NoError(t, store.CreateTransaction(ctx, tx))
	assert.Error(t, store.CreateTransaction(ctx, tx), "session ids are unique")

	got, err := store.GetTransaction(ctx, "cs_42")
	require.NoError(t, err)
	assert.Equal(t, tx, got)
	assert.False(t, got.IsPaid())

	paidAt := clock.Now().Add(3 * time.Minute)
	require.NoError(t, store.MarkPaid(ctx, "cs_42", paidAt))

	got, err = store.GetTransaction(ctx, "cs_42")
	require.NoError(t, err)
	assert.True(t, got.IsPaid())
	assert.Equal(t, paidAt, got.UpdatedAt)
	assert.Equal(t, tx.CreatedAt, got.CreatedAt)
}

func TestCheckoutTransactions_UnknownSession(t *testing.T) {
	store, clock := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetTransaction(ctx, "cs_missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	err = store.MarkPaid(ctx, "cs_missing", clock.Now())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	err = store.CreateTransaction(ctx, domain.CheckoutTransaction{})
	assert.True(t, domain.IsInvalidArgument(err))
}

func TestSearchLog(t *testing.T) {
	store, clock := newTestStore(t)
	ctx := context.Background()

	for i, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, store.RecordSearch(ctx, domain.SearchRecord{
			ID:            id,
			From:          "Paris",
			To:            "Rome",
			DepartureDate: "2025-07-01",
			Passengers:    1,
			Premium:       i%2 == 0,
			ResultsCount:  3 + i,
			CreatedAt:     clock.Now().Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := store.RecentSearches(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "s3", records[0].ID)
	assert.Equal(t, "s2", records[1].ID)
	assert.True(t, records[0].Premium)
	assert.False(t, records[1].Premium)
	assert.Equal(t, 5, records[0].ResultsCount)
}

func TestUsers(t *testing.T) {
	store, clock := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetUser(ctx, "ada@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.UpgradeToPremium(ctx, "ada@example.com", "monthly", clock.Now()))

	user, err := store.GetUser(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, user.IsPremium)
	assert.Equal(t, "monthly", user.SubscriptionType)
	require.NotNil(t, user.PremiumActivatedAt)
	assert.Equal(t, clock.Now(), *user.PremiumActivatedAt)
	assert.Equal(t, clock.Now(), user.CreatedAt)

	later := clock.Now().Add(24 * time.Hour)
	require.NoError(t, store.UpgradeToPremium(ctx, "ada@example.com", "yearly", later))

	user, err = store.GetUser(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "yearly", user.SubscriptionType)
	assert.Equal(t, later, *user.PremiumActivatedAt)
	assert.Equal(t, clock.Now(), user.CreatedAt, "creation time is kept on upgrade")

	assert.True(t, domain.IsInvalidArgument(store.UpgradeToPremium(ctx, "", "monthly", later)))
}
