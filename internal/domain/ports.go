package domain

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

import (
	"context"
	"time"
)

// SearchClient fetches offers from the remote search service.
// Any non-success answer is reported as an error; callers do not retry.
type SearchClient interface {
	Search(ctx context.Context, criteria SearchCriteria) ([]Offer, error)
}

// PaymentStatusQuerier queries the remote payment-status endpoint.
// Exactly one remote call is made per invocation.
type PaymentStatusQuerier interface {
	QueryStatus(ctx context.Context, sessionID string) (PaymentStatus, error)
}

// CheckoutCreator creates hosted checkout sessions.
// It returns the session and the URL the user must be redirected to.
type CheckoutCreator interface {
	CreateCheckoutSession(ctx context.Context, packageID, email string) (CheckoutSession, string, error)
}

// EntitlementStore persists the local entitlement state.
type EntitlementStore interface {
	LoadEntitlement(ctx context.Context) (Entitlement, error)
	SaveEntitlement(ctx context.Context, e Entitlement) error
}

// SearchRecorder stores search analytics on the backend.
type SearchRecorder interface {
	RecordSearch(ctx context.Context, rec SearchRecord) error
}

// CheckoutRepository stores checkout transactions on the backend.
type CheckoutRepository interface {
	CreateTransaction(ctx context.Context, tx CheckoutTransaction) error
	GetTransaction(ctx context.Context, sessionID string) (CheckoutTransaction, error)
	MarkPaid(ctx context.Context, sessionID string, at time.Time) error
}

// UserRepository stores backend accounts.
type UserRepository interface {
	GetUser(ctx context.Context, email string) (User, error)
	UpgradeToPremium(ctx context.Context, email, subscription string, at time.Time) error
}
