package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/infrastructure/timeutil"
)

func newTestStore(t *testing.T) (*Store, *timeutil.MockClock) {
	t.Helper()
	clock := timeutil.NewMockClockFromString("2025-06-01T10:00:00Z")
	store, err := Open(filepath.Join(t.TempDir(), "flysnipe.db"), Options{Clock: clock})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, clock
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ", Options{})
	assert.Error(t, err)
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.db")
	store, err := Open(path, Options{})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening keeps the schema
	store, err = Open(path, Options{})
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestStore_ClosedStoreReportsError(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	_, err := store.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestKV_PutGetDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "theme", "dark", 0))
	value, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	require.NoError(t, store.Put(ctx, "theme", "light", 0))
	value, err = store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	require.NoError(t, store.Delete(ctx, "theme"))
	_, err = store.Get(ctx, "theme")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Delete(ctx, "missing"))
	assert.True(t, domain.IsInvalidArgument(store.Put(ctx, "", "x", 0)))
}

func TestKV_Expiry(t *testing.T) {
	store, clock := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "tab_1", "active", time.Hour))
	require.NoError(t, store.Put(ctx, "forever", "yes", 0))

	clock.Advance(59 * time.Minute)
	_, err := store.Get(ctx, "tab_1")
	require.NoError(t, err)

	clock.Advance(time.Minute)
	_, err = store.Get(ctx, "tab_1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "expired keys are hidden before the sweep")

	n, err := store.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	value, err := store.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "yes", value)
}

func TestKV_Clear(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a", "1", 0))
	require.NoError(t, store.Put(ctx, "b", "2", time.Minute))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunSweeper_StopsOnCancel(t *testing.T) {
	store, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	var runErr error
	go func() {
		defer wg.Done()
		runErr = store.RunSweeper(ctx, time.Millisecond)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	wg.Wait()

	assert.NoError(t, runErr)
}

func TestEntitlement_RoundTrip(t *testing.T) {
	store, clock := newTestStore(t)
	ctx := context.Background()

	e, err := store.LoadEntitlement(ctx)
	require.NoError(t, err)
	assert.False(t, e.IsPremium, "missing entitlement is the free tier")
	assert.Nil(t, e.ActivatedAt)

	require.NoError(t, store.SaveEntitlement(ctx, domain.NewPremiumEntitlement(clock.Now())))

	e, err = store.LoadEntitlement(ctx)
	require.NoError(t, err)
	assert.True(t, e.IsPremium)
	require.NotNil(t, e.ActivatedAt)
	assert.True(t, clock.Now().Equal(*e.ActivatedAt))

	// Entitlement never expires
	clock.Advance(365 * 24 * time.Hour)
	_, err = store.SweepExpired(ctx)
	require.NoError(t, err)
	e, err = store.LoadEntitlement(ctx)
	require.NoError(t, err)
	assert.True(t, e.IsPremium)
}

func TestPendingPayment(t *testing.T) {
	store, clock := newTestStore(t)
	ctx := context.Background()

	_, err := store.LoadPendingPayment(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	pending := domain.PendingPayment{SessionID: "cs_1", CreatedAt: clock.Now()}
	require.NoError(t, store.SavePendingPayment(ctx, pending))

	got, err := store.LoadPendingPayment(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cs_1", got.SessionID)
	assert.True(t, pending.CreatedAt.Equal(got.CreatedAt))

	require.NoError(t, store.ClearPendingPayment(ctx))
	_, err = store.LoadPendingPayment(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLastSearch_ExpiresAfterADay(t *testing.T) {
	store, clock := newTestStore(t)
	ctx := context.Background()

	criteria := domain.SearchCriteria{From: "Paris", To: "Rome", DepartureDate: "2025-07-01", Passengers: 2}
	require.NoError(t, store.SaveLastSearch(ctx, criteria))

	got, err := store.LoadLastSearch(ctx)
	require.NoError(t, err)
	assert.Equal(t, criteria, got)

	clock.Advance(LastSearchQueryTTL)
	_, err = store.LoadLastSearch(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
