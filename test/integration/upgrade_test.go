package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/usecase"
)

// newConfirmation builds an UpgradeConfirmation that polls the test backend
// on the real scheduler and persists the entitlement to the local store.
func newConfirmation(t *testing.T, env *Env, maxAttempts int, events *[]usecase.UpgradeEvent, mu *sync.Mutex) *usecase.UpgradeConfirmation {
	t.Helper()

	return usecase.NewUpgradeConfirmation(env.Client, &usecase.UpgradeConfig{
		PollInterval: 10 * time.Millisecond,
		MaxAttempts:  maxAttempts,
		QueryTimeout: time.Second,
		OnTransition: func(ev usecase.UpgradeEvent) {
			mu.Lock()
			defer mu.Unlock()
			*events = append(*events, ev)
		},
		OnEntitlement: func(ent domain.Entitlement) {
			assert.NoError(t, env.LocalStore.SaveEntitlement(context.Background(), ent))
			assert.NoError(t, env.LocalStore.ClearPendingPayment(context.Background()))
		},
	})
}

func waitTerminal(t *testing.T, m *usecase.UpgradeConfirmation) usecase.UpgradeState {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()
	state, err := m.Wait(ctx)
	require.NoError(t, err)
	return state
}

func TestUpgrade_PaidSessionUnlocksPremium(t *testing.T) {
	env := NewEnv(t)
	ctx := t.Context()

	session, url, err := env.Client.CreateCheckoutSession(ctx, "monthly", "traveler@example.com")
	require.NoError(t, err)
	assert.Contains(t, url, session.ID)
	require.NoError(t, env.LocalStore.SavePendingPayment(ctx, domain.PendingPayment{SessionID: session.ID, CreatedAt: session.CreatedAt}))

	var mu sync.Mutex
	var events []usecase.UpgradeEvent
	m := newConfirmation(t, env, 200, &events, &mu)
	require.NoError(t, m.Start(session))

	// Pay while the confirmation is polling
	resp := env.Do(t, http.MethodPost, "/api/v1/payments/checkout/"+session.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Equal(t, usecase.StateSucceeded, waitTerminal(t, m))

	ent, err := env.LocalStore.LoadEntitlement(ctx)
	require.NoError(t, err)
	assert.True(t, ent.IsPremium)
	require.NotNil(t, ent.ActivatedAt)

	_, err = env.LocalStore.LoadPendingPayment(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	premium, err := env.Client.CheckPremium(ctx, "traveler@example.com")
	require.NoError(t, err)
	assert.True(t, premium)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, events)
	assert.Equal(t, usecase.StateVerifying, events[0].To)
	assert.Equal(t, usecase.StateSucceeded, events[len(events)-1].To)
}

func TestUpgrade_ExpiredSession(t *testing.T) {
	env := NewEnv(t)

	session, _, err := env.Client.CreateCheckoutSession(t.Context(), "monthly", "")
	require.NoError(t, err)
	env.Clock.Advance(usecase.DefaultCheckoutSessionTTL + time.Minute)

	var mu sync.Mutex
	var events []usecase.UpgradeEvent
	m := newConfirmation(t, env, 5, &events, &mu)
	require.NoError(t, m.Start(session))

	assert.Equal(t, usecase.StateExpired, waitTerminal(t, m))
	assert.Equal(t, 0, m.Attempts())

	ent, err := env.LocalStore.LoadEntitlement(t.Context())
	require.NoError(t, err)
	assert.False(t, ent.IsPremium)
}

func TestUpgrade_UnpaidSessionTimesOut(t *testing.T) {
	env := NewEnv(t)

	session, _, err := env.Client.CreateCheckoutSession(t.Context(), "yearly", "")
	require.NoError(t, err)

	var mu sync.Mutex
	var events []usecase.UpgradeEvent
	m := newConfirmation(t, env, 3, &events, &mu)
	require.NoError(t, m.Start(session))

	assert.Equal(t, usecase.StateTimedOut, waitTerminal(t, m))
	assert.Equal(t, 3, m.Attempts())
	assert.NoError(t, m.LastError())
}

func TestUpgrade_UnknownSessionFails(t *testing.T) {
	env := NewEnv(t)

	var mu sync.Mutex
	var events []usecase.UpgradeEvent
	m := newConfirmation(t, env, 2, &events, &mu)
	require.NoError(t, m.Start(domain.CheckoutSession{ID: "cs_missing", CreatedAt: time.Now()}))

	assert.Equal(t, usecase.StateFailed, waitTerminal(t, m))
	assert.ErrorIs(t, m.LastError(), domain.ErrTransientQuery)
}

func TestUpgrade_CancelWhileVerifying(t *testing.T) {
	env := NewEnv(t)

	session, _, err := env.Client.CreateCheckoutSession(t.Context(), "monthly", "")
	require.NoError(t, err)

	var mu sync.Mutex
	var events []usecase.UpgradeEvent
	m := newConfirmation(t, env, 1000, &events, &mu)
	require.NoError(t, m.Start(session))
	require.NoError(t, m.Cancel())

	assert.Equal(t, usecase.StateFailed, waitTerminal(t, m))
	assert.ErrorIs(t, m.LastError(), usecase.ErrUpgradeCanceled)
}
