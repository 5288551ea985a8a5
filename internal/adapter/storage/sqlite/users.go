package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/flysnipe/flysnipe/internal/domain"
)

// GetUser loads an account. Unknown emails report domain.ErrNotFound.
func (s *Store) GetUser(ctx context.Context, email string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return domain.User{}, err
	}

	var u domain.User
	var premium int
	var activatedAt sql.NullInt64
	var createdAt int64
	row := db.QueryRowContext(ctx,
		`SELECT email, is_premium, premium_activated_at, subscription_type, created_at FROM users WHERE email = ?`, email)
	if err := row.Scan(&u.Email, &premium, &activatedAt, &u.SubscriptionType, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%w: user %s", domain.ErrNotFound, email)
		}
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}

	u.IsPremium = premium != 0
	if activatedAt.Valid {
		t := fromUnixNano(activatedAt.Int64)
		u.PremiumActivatedAt = &t
	}
	u.CreatedAt = fromUnixNano(createdAt)
	return u, nil
}

// UpgradeToPremium marks the account premium, creating it if needed.
func (s *Store) UpgradeToPremium(ctx context.Context, email, subscription string, at time.Time) error {
	if email == "" {
		return domain.WrapInvalidArgument("email is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO users (email, is_premium, premium_activated_at, subscription_type, created_at)
		 VALUES (?, 1, ?, ?, ?)
		 ON CONFLICT(email) DO UPDATE SET
		   is_premium = 1,
		   premium_activated_at = excluded.premium_activated_at,
		   subscription_type = excluded.subscription_type`,
		email, toUnixNano(at), subscription, toUnixNano(at),
	)
	if err != nil {
		return fmt.Errorf("upgrade user: %w", err)
	}
	return nil
}

// Ensure Store implements domain.UserRepository at compile time.
var _ domain.UserRepository = (*Store)(nil)
