package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/flysnipe/flysnipe/internal/domain"
)

// Local keys and their lifetimes.
const (
	KeyEntitlement     = "entitlement"
	KeyPendingPayment  = "pendingPayment"
	KeyLastSearchQuery = "lastSearchQuery"

	LastSearchQueryTTL = 24 * time.Hour
	PendingPaymentTTL  = 24 * time.Hour
)

// LoadEntitlement returns the stored entitlement, or the free tier when none is stored.
func (s *Store) LoadEntitlement(ctx context.Context) (domain.Entitlement, error) {
	var e domain.Entitlement
	if err := s.GetJSON(ctx, KeyEntitlement, &e); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Entitlement{}, nil
		}
		return domain.Entitlement{}, err
	}
	return e, nil
}

// SaveEntitlement replaces the stored entitlement.
func (s *Store) SaveEntitlement(ctx context.Context, e domain.Entitlement) error {
	return s.PutJSON(ctx, KeyEntitlement, e, 0)
}

// SavePendingPayment remembers a checkout awaiting confirmation.
func (s *Store) SavePendingPayment(ctx context.Context, p domain.PendingPayment) error {
	return s.PutJSON(ctx, KeyPendingPayment, p, PendingPaymentTTL)
}

// LoadPendingPayment returns the pending checkout or domain.ErrNotFound.
func (s *Store) LoadPendingPayment(ctx context.Context) (domain.PendingPayment, error) {
	var p domain.PendingPayment
	if err := s.GetJSON(ctx, KeyPendingPayment, &p); err != nil {
		return domain.PendingPayment{}, err
	}
	return p, nil
}

// ClearPendingPayment forgets the pending checkout.
func (s *Store) ClearPendingPayment(ctx context.Context) error {
	return s.Delete(ctx, KeyPendingPayment)
}

// SaveLastSearch remembers the most recent search criteria for a day.
func (s *Store) SaveLastSearch(ctx context.Context, c domain.SearchCriteria) error {
	return s.PutJSON(ctx, KeyLastSearchQuery, c, LastSearchQueryTTL)
}

// LoadLastSearch returns the remembered criteria or domain.ErrNotFound.
func (s *Store) LoadLastSearch(ctx context.Context) (domain.SearchCriteria, error) {
	var c domain.SearchCriteria
	if err := s.GetJSON(ctx, KeyLastSearchQuery, &c); err != nil {
		return domain.SearchCriteria{}, err
	}
	return c, nil
}

// Ensure Store implements domain.EntitlementStore at compile time.
var _ domain.EntitlementStore = (*Store)(nil)
