package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/domain/mocks"
	"github.com/flysnipe/flysnipe/internal/infrastructure/timeutil"
)

type checkoutFixture struct {
	uc           CheckoutUseCase
	transactions *mocks.MockCheckoutRepository
	users        *mocks.MockUserRepository
	clock        *timeutil.MockClock
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	ctrl := gomock.NewController(t)
	f := &checkoutFixture{
		transactions: mocks.NewMockCheckoutRepository(ctrl),
		users:        mocks.NewMockUserRepository(ctrl),
		clock:        timeutil.NewMockClockFromString("2025-06-01T10:00:00Z"),
	}
	f.uc = NewCheckoutUseCase(f.transactions, f.users, CheckoutConfig{
		BaseURL:    "https://flysnipe.test/",
		SessionTTL: 30 * time.Minute,
		Clock:      f.clock,
	})
	return f
}

func pendingTransaction(createdAt time.Time, email string) domain.CheckoutTransaction {
	return domain.CheckoutTransaction{
		SessionID:     "cs_abc",
		Email:         email,
		PackageID:     "yearly",
		Amount:        99.99,
		Currency:      "usd",
		PaymentStatus: domain.PaymentUnpaid,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestCheckout_CreateSession(t *testing.T) {
	f := newCheckoutFixture(t)

	var stored domain.CheckoutTransaction
	f.transactions.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx domain.CheckoutTransaction) error {
			stored = tx
			return nil
		})

	result, err := f.uc.CreateSession(context.Background(), "monthly", "ada@example.com")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.SessionID, "cs_"))
	assert.Equal(t, "https://flysnipe.test/checkout/"+result.SessionID, result.URL)
	assert.Equal(t, f.clock.Now(), result.CreatedAt)

	assert.Equal(t, result.SessionID, stored.SessionID)
	assert.Equal(t, "ada@example.com", stored.Email)
	assert.Equal(t, "monthly", stored.PackageID)
	assert.Equal(t, 9.99, stored.Amount)
	assert.Equal(t, "usd", stored.Currency)
	assert.Equal(t, domain.PaymentUnpaid, stored.PaymentStatus)
}

func TestCheckout_CreateSessionAnonymous(t *testing.T) {
	f := newCheckoutFixture(t)
	f.transactions.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx domain.CheckoutTransaction) error {
			assert.Equal(t, domain.AnonymousEmail, tx.Email)
			return nil
		})

	_, err := f.uc.CreateSession(context.Background(), "yearly", "  ")
	require.NoError(t, err)
}

func TestCheckout_CreateSessionUnknownPackage(t *testing.T) {
	f := newCheckoutFixture(t)

	result, err := f.uc.CreateSession(context.Background(), "lifetime", "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUnknownPackage)
}

func TestCheckout_CreateSessionStoreError(t *testing.T) {
	f := newCheckoutFixture(t)
	f.transactions.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(errors.New("locked"))

	_, err := f.uc.CreateSession(context.Background(), "monthly", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create checkout transaction")
}

func TestCheckout_Status(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	paid := pendingTransaction(now.Add(-2*time.Hour), "ada@example.com")
	paid.PaymentStatus = domain.PaymentPaid

	tests := []struct {
		name          string
		tx            domain.CheckoutTransaction
		expectedState string
		expectedPay   string
	}{
		{
			name:          "fresh session is open",
			tx:            pendingTransaction(now.Add(-5*time.Minute), "ada@example.com"),
			expectedState: domain.SessionOpen,
			expectedPay:   domain.PaymentUnpaid,
		},
		{
			name:          "session at the ttl is still open",
			tx:            pendingTransaction(now.Add(-30*time.Minute), "ada@example.com"),
			expectedState: domain.SessionOpen,
			expectedPay:   domain.PaymentUnpaid,
		},
		{
			name:          "stale unpaid session is expired",
			tx:            pendingTransaction(now.Add(-31*time.Minute), "ada@example.com"),
			expectedState: domain.SessionExpired,
			expectedPay:   domain.PaymentUnpaid,
		},
		{
			name:          "paid session is complete regardless of age",
			tx:            paid,
			expectedState: domain.SessionComplete,
			expectedPay:   domain.PaymentPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			f.transactions.EXPECT().GetTransaction(gomock.Any(), "cs_abc").Return(tt.tx, nil)

			status, err := f.uc.Status(context.Background(), "cs_abc")

			require.NoError(t, err)
			assert.Equal(t, tt.expectedState, status.Status)
			assert.Equal(t, tt.expectedPay, status.PaymentStatus)
			assert.Equal(t, int64(9999), status.AmountTotal)
			assert.Equal(t, "usd", status.Currency)
			assert.Equal(t, "cs_abc", status.SessionID)
		})
	}
}

func TestCheckout_StatusUnknownSession(t *testing.T) {
	f := newCheckoutFixture(t)
	f.transactions.EXPECT().
		GetTransaction(gomock.Any(), "cs_missing").
		Return(domain.CheckoutTransaction{}, domain.ErrSessionNotFound)

	_, err := f.uc.Status(context.Background(), "cs_missing")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestCheckout_Complete(t *testing.T) {
	f := newCheckoutFixture(t)
	tx := pendingTransaction(f.clock.Now().Add(-time.Minute), "ada@example.com")

	gomock.InOrder(
		f.transactions.EXPECT().GetTransaction(gomock.Any(), "cs_abc").Return(tx, nil),
		f.users.EXPECT().UpgradeToPremium(gomock.Any(), "ada@example.com", "yearly", f.clock.Now()).Return(nil),
		f.transactions.EXPECT().MarkPaid(gomock.Any(), "cs_abc", f.clock.Now()).Return(nil),
	)

	status, err := f.uc.Complete(context.Background(), "cs_abc")

	require.NoError(t, err)
	assert.Equal(t, domain.SessionComplete, status.Status)
	assert.Equal(t, domain.PaymentPaid, status.PaymentStatus)
}

func TestCheckout_CompleteAnonymousSkipsUpgrade(t *testing.T) {
	f := newCheckoutFixture(t)
	tx := pendingTransaction(f.clock.Now(), domain.AnonymousEmail)

	f.transactions.EXPECT().GetTransaction(gomock.Any(), "cs_abc").Return(tx, nil)
	f.transactions.EXPECT().MarkPaid(gomock.Any(), "cs_abc", gomock.Any()).Return(nil)

	status, err := f.uc.Complete(context.Background(), "cs_abc")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, status.PaymentStatus)
}

func TestCheckout_CompleteAlreadyPaidReappliesUpgrade(t *testing.T) {
	f := newCheckoutFixture(t)
	tx := pendingTransaction(f.clock.Now().Add(-time.Hour), "ada@example.com")
	tx.PaymentStatus = domain.PaymentPaid
	tx.UpdatedAt = f.clock.Now().Add(-50 * time.Minute)

	f.transactions.EXPECT().GetTransaction(gomock.Any(), "cs_abc").Return(tx, nil)
	f.users.EXPECT().UpgradeToPremium(gomock.Any(), "ada@example.com", "yearly", tx.UpdatedAt).Return(nil)

	status, err := f.uc.Complete(context.Background(), "cs_abc")

	require.NoError(t, err)
	assert.Equal(t, domain.SessionComplete, status.Status)
}

func TestCheckout_CompleteUpgradeFailureLeavesSessionUnpaid(t *testing.T) {
	f := newCheckoutFixture(t)
	tx := pendingTransaction(f.clock.Now().Add(-time.Minute), "ada@example.com")
	errDisk := errors.New("disk I/O error")

	gomock.InOrder(
		// First attempt: the upgrade fails and nothing is marked paid
		f.transactions.EXPECT().GetTransaction(gomock.Any(), "cs_abc").Return(tx, nil),
		f.users.EXPECT().UpgradeToPremium(gomock.Any(), "ada@example.com", "yearly", f.clock.Now()).Return(errDisk),
		// Retry: both writes go through
		f.transactions.EXPECT().GetTransaction(gomock.Any(), "cs_abc").Return(tx, nil),
		f.users.EXPECT().UpgradeToPremium(gomock.Any(), "ada@example.com", "yearly", f.clock.Now()).Return(nil),
		f.transactions.EXPECT().MarkPaid(gomock.Any(), "cs_abc", f.clock.Now()).Return(nil),
	)

	_, err := f.uc.Complete(context.Background(), "cs_abc")
	require.ErrorIs(t, err, errDisk)

	status, err := f.uc.Complete(context.Background(), "cs_abc")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, status.PaymentStatus)
}

func TestCheckout_CompleteAnonymousAlreadyPaid(t *testing.T) {
	f := newCheckoutFixture(t)
	tx := pendingTransaction(f.clock.Now().Add(-time.Hour), domain.AnonymousEmail)
	tx.PaymentStatus = domain.PaymentPaid

	f.transactions.EXPECT().GetTransaction(gomock.Any(), "cs_abc").Return(tx, nil)

	status, err := f.uc.Complete(context.Background(), "cs_abc")

	require.NoError(t, err)
	assert.Equal(t, domain.SessionComplete, status.Status)
}

func TestCheckout_CompleteExpired(t *testing.T) {
	f := newCheckoutFixture(t)
	tx := pendingTransaction(f.clock.Now().Add(-time.Hour), "ada@example.com")

	f.transactions.EXPECT().GetTransaction(gomock.Any(), "cs_abc").Return(tx, nil)

	_, err := f.uc.Complete(context.Background(), "cs_abc")

	assert.True(t, domain.IsInvalidState(err))
}

func TestCheckout_CheckPremium(t *testing.T) {
	t.Run("premium user", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.users.EXPECT().GetUser(gomock.Any(), "ada@example.com").Return(domain.User{Email: "ada@example.com", IsPremium: true}, nil)

		premium, err := f.uc.CheckPremium(context.Background(), " ada@example.com ")
		require.NoError(t, err)
		assert.True(t, premium)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.users.EXPECT().GetUser(gomock.Any(), "nobody@example.com").Return(domain.User{}, domain.ErrNotFound)

		_, err := f.uc.CheckPremium(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing email", func(t *testing.T) {
		f := newCheckoutFixture(t)

		_, err := f.uc.CheckPremium(context.Background(), "")
		assert.True(t, domain.IsInvalidArgument(err))
	})
}
