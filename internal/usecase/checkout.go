package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/infrastructure/metrics"
	"github.com/flysnipe/flysnipe/internal/infrastructure/timeutil"
)

// DefaultCheckoutSessionTTL is how long an unpaid session stays open.
const DefaultCheckoutSessionTTL = 30 * time.Minute

// CheckoutSessionResult is returned when a checkout session is created.
type CheckoutSessionResult struct {
	SessionID string
	URL       string
	CreatedAt time.Time
}

// CheckoutUseCase manages hosted checkout sessions on the backend.
type CheckoutUseCase interface {
	// CreateSession starts a checkout for a premium package.
	CreateSession(ctx context.Context, packageID, email string) (*CheckoutSessionResult, error)

	// Status reports the payment status of a session.
	Status(ctx context.Context, sessionID string) (*domain.CheckoutStatus, error)

	// Complete marks a session paid and upgrades its user.
	Complete(ctx context.Context, sessionID string) (*domain.CheckoutStatus, error)

	// CheckPremium reports whether the account with email is premium.
	CheckPremium(ctx context.Context, email string) (bool, error)
}

// CheckoutConfig configures the checkout use case.
type CheckoutConfig struct {
	// BaseURL is the public origin of the hosted checkout page
	BaseURL string

	// SessionTTL is how long an unpaid session stays open (default: 30m)
	SessionTTL time.Duration

	Clock   timeutil.Clock
	Metrics *metrics.Metrics
	Logger  zerolog.Logger
}

type checkoutUseCase struct {
	transactions domain.CheckoutRepository
	users        domain.UserRepository
	baseURL      string
	ttl          time.Duration
	clock        timeutil.Clock
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewCheckoutUseCase creates a CheckoutUseCase.
func NewCheckoutUseCase(transactions domain.CheckoutRepository, users domain.UserRepository, config CheckoutConfig) CheckoutUseCase {
	uc := &checkoutUseCase{
		transactions: transactions,
		users:        users,
		baseURL:      strings.TrimRight(config.BaseURL, "/"),
		ttl:          config.SessionTTL,
		clock:        config.Clock,
		metrics:      config.Metrics,
		logger:       config.Logger,
	}
	if uc.ttl <= 0 {
		uc.ttl = DefaultCheckoutSessionTTL
	}
	if uc.clock == nil {
		uc.clock = timeutil.NewRealClock()
	}
	return uc
}

// CreateSession implements CheckoutUseCase.CreateSession.
func (uc *checkoutUseCase) CreateSession(ctx context.Context, packageID, email string) (*CheckoutSessionResult, error) {
	pkg, err := domain.LookupPackage(packageID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, packageID)
	}

	email = strings.TrimSpace(email)
	if email == "" {
		email = domain.AnonymousEmail
	}

	now := uc.clock.Now().UTC()
	tx := domain.CheckoutTransaction{
		SessionID:     "cs_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Email:         email,
		PackageID:     pkg.ID,
		Amount:        pkg.Price,
		Currency:      pkg.Currency,
		PaymentStatus: domain.PaymentUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.transactions.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create checkout transaction: %w", err)
	}
	uc.metrics.RecordCheckoutSession(pkg.ID)

	uc.logger.Info().
		Str("session_id", tx.SessionID).
		Str("package", pkg.ID).
		Msg("Checkout session created")

	return &CheckoutSessionResult{
		SessionID: tx.SessionID,
		URL:       uc.baseURL + "/checkout/" + tx.SessionID,
		CreatedAt: now,
	}, nil
}

// Status implements CheckoutUseCase.Status.
func (uc *checkoutUseCase) Status(ctx context.Context, sessionID string) (*domain.CheckoutStatus, error) {
	tx, err := uc.transactions.GetTransaction(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	status := uc.statusOf(tx)
	uc.metrics.RecordStatusQuery(status.Status)
	return status, nil
}

// Complete implements CheckoutUseCase.Complete.
// The user is upgraded before the session is marked paid, and completing a
// paid session re-applies the upgrade at the recorded payment time, so a
// retry after a partial failure converges. An expired session cannot be completed.
func (uc *checkoutUseCase) Complete(ctx context.Context, sessionID string) (*domain.CheckoutStatus, error) {
	tx, err := uc.transactions.GetTransaction(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if tx.IsPaid() {
		if err := uc.upgradeUser(ctx, tx, tx.UpdatedAt); err != nil {
			return nil, err
		}
		return uc.statusOf(tx), nil
	}
	if uc.isExpired(tx) {
		return nil, domain.WrapInvalidState("checkout session %s has expired", sessionID)
	}

	now := uc.clock.Now().UTC()
	if err := uc.upgradeUser(ctx, tx, now); err != nil {
		return nil, err
	}
	if err := uc.transactions.MarkPaid(ctx, sessionID, now); err != nil {
		return nil, fmt.Errorf("failed to mark session paid: %w", err)
	}
	tx.PaymentStatus = domain.PaymentPaid
	tx.UpdatedAt = now
	uc.metrics.RecordPaymentCompleted()

	uc.logger.Info().
		Str("session_id", sessionID).
		Str("package", tx.PackageID).
		Msg("Checkout session paid")

	return uc.statusOf(tx), nil
}

// upgradeUser marks the session's account premium. Anonymous checkouts have no account.
func (uc *checkoutUseCase) upgradeUser(ctx context.Context, tx domain.CheckoutTransaction, at time.Time) error {
	if tx.Email == domain.AnonymousEmail {
		return nil
	}
	if err := uc.users.UpgradeToPremium(ctx, tx.Email, tx.PackageID, at); err != nil {
		return fmt.Errorf("failed to upgrade user: %w", err)
	}
	return nil
}

// CheckPremium implements CheckoutUseCase.CheckPremium.
func (uc *checkoutUseCase) CheckPremium(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, domain.NewValidationError("email", "email is required")
	}

	user, err := uc.users.GetUser(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("failed to load user: %w", err)
	}
	return user.IsPremium, nil
}

func (uc *checkoutUseCase) isExpired(tx domain.CheckoutTransaction) bool {
	return !tx.IsPaid() && uc.clock.Now().Sub(tx.CreatedAt) > uc.ttl
}

func (uc *checkoutUseCase) statusOf(tx domain.CheckoutTransaction) *domain.CheckoutStatus {
	status := &domain.CheckoutStatus{
		Status:        domain.SessionOpen,
		PaymentStatus: domain.PaymentUnpaid,
		AmountTotal:   int64(math.Round(tx.Amount * 100)),
		Currency:      tx.Currency,
		SessionID:     tx.SessionID,
	}

	switch {
	case tx.IsPaid():
		status.Status = domain.SessionComplete
		status.PaymentStatus = domain.PaymentPaid
	case uc.isExpired(tx):
		status.Status = domain.SessionExpired
	}
	return status
}

// Ensure checkoutUseCase implements CheckoutUseCase at compile time.
var _ CheckoutUseCase = (*checkoutUseCase)(nil)
